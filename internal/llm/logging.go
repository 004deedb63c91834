package llm

import (
	"context"
	"time"
)

// CallRecord describes one completed provider call, success or failure.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
}

// Recorder receives a CallRecord for every provider call.
type Recorder interface {
	RecordCall(ctx context.Context, rec CallRecord) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, rec CallRecord) error

func (f RecorderFunc) RecordCall(ctx context.Context, rec CallRecord) error {
	return f(ctx, rec)
}

// loggingProvider records every call made through it. Recording failures
// never fail the call itself.
type loggingProvider struct {
	inner    Provider
	name     string
	recorder Recorder
}

// WithLogging wraps a provider so every call is recorded. A nil recorder
// returns the provider unwrapped.
func WithLogging(inner Provider, name string, recorder Recorder) Provider {
	if recorder == nil {
		return inner
	}
	return &loggingProvider{inner: inner, name: name, recorder: recorder}
}

func (p *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider: p.name,
		Model:    p.inner.ModelID(),
		Purpose:  PurposeFrom(ctx),
		Latency:  time.Since(start),
		Success:  err == nil,
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}

	// Recording is best effort; an audit failure must not break tutoring.
	_ = p.recorder.RecordCall(context.WithoutCancel(ctx), rec)

	return resp, err
}

func (p *loggingProvider) ModelID() string {
	return p.inner.ModelID()
}
