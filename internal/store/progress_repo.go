package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/techskyline/academy/internal/progress"
)

// ProgressRepo persists the single learner progress document as a JSON blob.
// It implements progress.Repo.
type ProgressRepo struct {
	db *sql.DB
}

// LoadState returns the persisted progress state, or (nil, nil) when no
// document has been written yet. A document that fails to deserialize is
// reported as an error; the ledger substitutes the default state.
func (r *ProgressRepo) LoadState(ctx context.Context) (*progress.State, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM progress WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress document: %w", err)
	}

	var state progress.State
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, fmt.Errorf("decode progress document: %w", err)
	}
	return &state, nil
}

// SaveState writes the full snapshot in one statement. The upsert replaces
// the whole document, so readers see either the prior snapshot or the new
// one, never a partial write.
func (r *ProgressRepo) SaveState(ctx context.Context, state progress.State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode progress document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (id, document, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(doc), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("write progress document: %w", err)
	}
	return nil
}

var _ progress.Repo = (*ProgressRepo)(nil)
