package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// LLMRequestEvent captures a single LLM API call for auditing.
type LLMRequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends audit events with a global monotonic sequence. The
// mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type EventRepo struct {
	db *sql.DB
	mu sync.Mutex
}

// AppendLLMRequest records an LLM API call event.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, ev LLMRequestEvent) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(sequence, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC().UnixMilli(),
		ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		boolToInt(ev.Success), ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// CountLLMRequests returns the number of recorded LLM calls and how many
// succeeded. Used by the stats surface.
func (r *EventRepo) CountLLMRequests(ctx context.Context) (total, succeeded int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(success), 0) FROM llm_events`,
	).Scan(&total, &succeeded)
	if err != nil {
		return 0, 0, fmt.Errorf("count llm events: %w", err)
	}
	return total, succeeded, nil
}

func (r *EventRepo) nextSequence(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var seq int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
