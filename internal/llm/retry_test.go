package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingProvider struct {
	calls   int
	failFor int
	err     error
}

func (p *countingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	p.calls++
	if p.calls <= p.failFor {
		return nil, p.err
	}
	return &Response{Content: []byte(`{}`), Model: "counting"}, nil
}

func (p *countingProvider) ModelID() string { return "counting" }

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	inner := &countingProvider{failFor: 2, err: &ErrProviderUnavailable{Err: errors.New("527")}}
	p := WithRetry(inner, fastRetryConfig(3))

	resp, err := p.Generate(t.Context(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp == nil || inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &countingProvider{failFor: 10, err: &ErrRateLimit{}}
	p := WithRetry(inner, fastRetryConfig(3))

	_, err := p.Generate(t.Context(), Request{})
	var rateLimit *ErrRateLimit
	if !errors.As(err, &rateLimit) {
		t.Errorf("error = %v, want ErrRateLimit", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad json")}},
		{"max tokens", &ErrMaxTokensExceeded{}},
		{"plain error", errors.New("nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &countingProvider{failFor: 10, err: tt.err}
			p := WithRetry(inner, fastRetryConfig(3))

			if _, err := p.Generate(t.Context(), Request{}); err == nil {
				t.Fatal("expected error")
			}
			if inner.calls != 1 {
				t.Errorf("calls = %d, want 1", inner.calls)
			}
		})
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	inner := &countingProvider{failFor: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Hour,
		MaxWait:     time.Hour,
		Multiplier:  1.0,
	})

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestShouldRetry(t *testing.T) {
	if !shouldRetry(&ErrRateLimit{}) {
		t.Error("rate limit should retry")
	}
	if !shouldRetry(&ErrProviderUnavailable{}) {
		t.Error("unavailable should retry")
	}
	if shouldRetry(&ErrInvalidResponse{}) {
		t.Error("invalid response should not retry")
	}
	if shouldRetry(&ErrMaxTokensExceeded{}) {
		t.Error("max tokens should not retry")
	}
}
