package llm

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// retryProvider wraps a Provider with retry and exponential backoff on
// transient errors. Rate-limit errors with a RetryAfter hint wait at least
// that long before the next attempt.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with retry middleware.
func WithRetry(inner Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: inner, cfg: cfg}
}

func (p *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := p.backoff(attempt, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := p.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !shouldRetry(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (p *retryProvider) ModelID() string {
	return p.inner.ModelID()
}

// backoff computes the delay before the given attempt, with ±20% jitter.
func (p *retryProvider) backoff(attempt int, lastErr error) time.Duration {
	delay := p.cfg.InitialWait
	for i := 1; i < attempt; i++ {
		delay = time.Duration(float64(delay) * p.cfg.Multiplier)
	}
	if delay > p.cfg.MaxWait {
		delay = p.cfg.MaxWait
	}

	jitter := time.Duration((rand.Float64()*0.4 - 0.2) * float64(delay))
	delay += jitter

	var rateLimit *ErrRateLimit
	if errors.As(lastErr, &rateLimit) && rateLimit.RetryAfter > delay {
		delay = rateLimit.RetryAfter
	}

	return delay
}

// shouldRetry reports whether the error is transient. Invalid responses and
// exceeded token limits will not improve on retry.
func shouldRetry(err error) bool {
	var rateLimit *ErrRateLimit
	if errors.As(err, &rateLimit) {
		return true
	}

	var unavailable *ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return true
	}

	return false
}
