package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockProvider is a Provider that returns canned responses in FIFO order.
// It records every request it receives for inspection.
type MockProvider struct {
	mu        sync.Mutex
	responses []mockResponse
	Requests  []Request
}

type mockResponse struct {
	resp *Response
	err  error
}

// NewMockProvider creates an empty mock provider. Queue responses with
// QueueResponse or QueueError before use.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// QueueResponse queues a successful response with the given JSON content.
func (m *MockProvider) QueueResponse(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{
		resp: &Response{
			Content:    json.RawMessage(content),
			Model:      "mock",
			StopReason: "end",
		},
	})
}

// QueueError queues an error to be returned instead of a response.
func (m *MockProvider) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.responses) == 0 {
		return nil, fmt.Errorf("mock provider: no responses queued")
	}

	next := m.responses[0]
	m.responses = m.responses[1:]

	if next.err != nil {
		return nil, next.err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, next.resp.Content); err != nil {
			return nil, err
		}
	}

	return next.resp, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// RequestCount returns how many requests the mock has received.
func (m *MockProvider) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
