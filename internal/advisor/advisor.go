// Package advisor recommends the learner's next step from a snapshot of
// their progress. Recommendations are advisory text only; nothing here
// writes back to the ledger.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/llm"
	"github.com/techskyline/academy/internal/progress"
)

// Config holds generation limits for advisor calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

// Recommendation is the advisor's suggested next step.
type Recommendation struct {
	NextStep    string   `json:"next_step"`
	Reasoning   string   `json:"reasoning"`
	FocusSkills []string `json:"focus_skills"`
}

// Service produces recommendations asynchronously. Only one request is
// in-flight at a time; a new request replaces a pending result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Recommendation
	err     error
	ready   bool
}

// NewService creates an advisor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts recommendation generation from the given progress snapshot.
// The snapshot is the caller's copy; the advisor never touches live state.
func (s *Service) Request(ctx context.Context, snapshot progress.State) {
	go func() {
		rec, err := s.generate(ctx, snapshot)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = rec
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending recommendation if one is ready.
// Returns (nil, false) if none is ready. The slot is cleared either way
// once a result has been reported.
func (s *Service) Consume() (*Recommendation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	rec := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return rec, rec != nil
}

// Recommend generates a recommendation synchronously. Used by the CLI
// surface where blocking is fine.
func (s *Service) Recommend(ctx context.Context, snapshot progress.State) (*Recommendation, error) {
	return s.generate(ctx, snapshot)
}

func (s *Service) generate(ctx context.Context, snapshot progress.State) (*Recommendation, error) {
	ctx = llm.WithPurpose(ctx, "advise")

	req := llm.Request{
		System: advisorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdvisorMessage(snapshot)},
		},
		Schema:      RecommendationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("recommendation generation: %w", err)
	}

	var rec Recommendation
	if err := json.Unmarshal(resp.Content, &rec); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}
	return &rec, nil
}

const advisorSystemPrompt = `You are an academic advisor for a professional AI literacy program.

Rules:
- Recommend exactly one concrete next step: a specific module, lab, or quiz from the remaining work, or certificate issuance if everything is complete.
- Ground the reasoning in the learner's actual progress: what they finished, their skill levels, and what the next step unlocks.
- Focus skills are the 1-3 skills the recommended step will improve most.
- Be encouraging but specific. Two or three sentences of reasoning, no more.`

func buildAdvisorMessage(snapshot progress.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Track: %s\n", snapshot.Track)
	fmt.Fprintf(&b, "Level: %d (XP: %d)\n", snapshot.Level, snapshot.XP)

	b.WriteString("\nCompleted modules:\n")
	writeCompleted(&b, snapshot.CompletedModules)

	b.WriteString("\nRemaining modules:\n")
	var remaining []string
	for _, m := range catalog.Modules() {
		if !snapshot.HasModule(m.ID) {
			remaining = append(remaining, fmt.Sprintf("%s (%s)", m.ID, m.Title))
		}
	}
	if len(remaining) == 0 {
		b.WriteString("None\n")
	} else {
		for _, r := range remaining {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	b.WriteString("\nCompleted labs:\n")
	writeCompleted(&b, snapshot.CompletedLabs)

	b.WriteString("\nSkill levels:\n")
	names := make([]string, 0, len(snapshot.Skills))
	for name := range snapshot.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d/100\n", name, snapshot.Skills[name])
	}

	return b.String()
}

func writeCompleted(b *strings.Builder, ids []string) {
	if len(ids) == 0 {
		b.WriteString("None\n")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(b, "- %s\n", id)
	}
}

// RecommendationSchema defines the JSON schema for advisor responses.
var RecommendationSchema = &llm.Schema{
	Name:        "next-step-recommendation",
	Description: "A recommended next step for the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"next_step": map[string]any{
				"type":        "string",
				"description": "The single recommended action, naming a specific module, lab, or quiz",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this step, grounded in the learner's progress",
			},
			"focus_skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "The skills this step improves most, 1 to 3 entries",
			},
		},
		"required":             []any{"next_step", "reasoning", "focus_skills"},
		"additionalProperties": false,
	},
}
