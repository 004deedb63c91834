package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/techskyline/academy/internal/config"
	"github.com/techskyline/academy/internal/credential"
	"github.com/techskyline/academy/internal/llm"
	"github.com/techskyline/academy/internal/progress"
	"github.com/techskyline/academy/internal/store"
	"github.com/techskyline/academy/internal/tutor"
)

// openStore opens the database for the invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadConfig reads the optional config file.
func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// loadLedger builds the progress ledger on top of the store and loads the
// current state.
func loadLedger(ctx context.Context, st *store.Store, cfg *config.Config) (*progress.Ledger, error) {
	ledger := progress.NewLedgerWithAwards(st.ProgressRepo(), cfg.AwardsTable())
	if err := ledger.Load(ctx); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return ledger, nil
}

// buildIssuer constructs the certificate issuer from config.
func buildIssuer(cfg *config.Config) (*credential.Issuer, error) {
	policy, threshold, err := cfg.IssuerPolicy()
	if err != nil {
		return nil, err
	}
	return credential.NewIssuer(policy, threshold), nil
}

// buildTutor wires the LLM provider, with API traffic recorded into the
// store. Returns nil when no provider is configured; callers degrade.
func buildTutor(ctx context.Context, st *store.Store) *tutor.Tutor {
	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), eventRecorder(st))
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		return nil
	}
	return tutor.New(provider, tutor.DefaultConfig())
}

// buildProvider is buildTutor without the facade, for callers that speak to
// the provider directly.
func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	return llm.NewProvider(ctx, llm.ConfigFromEnv(), eventRecorder(st))
}

func eventRecorder(st *store.Store) llm.Recorder {
	events := st.EventRepo()
	return llm.RecorderFunc(func(ctx context.Context, rec llm.CallRecord) error {
		return events.AppendLLMRequest(ctx, store.LLMRequestEvent{
			Provider:     rec.Provider,
			Model:        rec.Model,
			Purpose:      rec.Purpose,
			InputTokens:  rec.InputTokens,
			OutputTokens: rec.OutputTokens,
			LatencyMs:    rec.Latency.Milliseconds(),
			Success:      rec.Success,
			ErrorMessage: rec.ErrorMessage,
		})
	})
}
