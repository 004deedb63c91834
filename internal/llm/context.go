package llm

import "context"

type purposeKey struct{}

// WithPurpose tags a context with the purpose of the request ("tutor",
// "evaluate", "quiz", "advise"). The logging middleware records it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag on the context, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
