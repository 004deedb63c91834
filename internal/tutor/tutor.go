// Package tutor is the generative collaborator behind labs, quizzes, and
// evaluations. Every entry point absorbs provider failures: the rest of the
// app treats AI output as enrichment, never as a required dependency.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/techskyline/academy/internal/llm"
)

// Fallback texts shown when the provider fails. Callers render these
// verbatim, so they must read like an answer, not a stack trace.
const (
	fallbackEmpty       = "No response received."
	fallbackAPIKey      = "API Key is missing or invalid. Please check your environment configuration."
	fallbackUnreachable = "An error occurred while communicating with the AI. Please try again."
)

// Config holds generation limits for tutor calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Tutor wraps an LLM provider with the collaborator contract.
type Tutor struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Tutor backed by the given provider.
func New(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, cfg: cfg}
}

// Evaluation is structured feedback on a learner's lab submission.
type Evaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Question is a single generated quiz question. CorrectAnswer indexes
// into Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// RunPrompt sends a free-form prompt through the provider and returns the
// text. It never returns an error: failures degrade to a non-empty fallback
// message the caller can display as-is.
func (t *Tutor) RunPrompt(ctx context.Context, system, user string) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		if strings.Contains(err.Error(), "API key") || strings.Contains(err.Error(), "API Key") {
			return fallbackAPIKey
		}
		return fallbackUnreachable
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return fallbackEmpty
	}
	return text
}

// Evaluate scores a learner's lab work. The second return value reports
// whether an evaluation actually happened: (nil, false) means the provider
// failed or answered off-schema, which is not the same as a zero score.
func (t *Tutor) Evaluate(ctx context.Context, labPrompt, output string) (*Evaluation, bool) {
	ctx = llm.WithPurpose(ctx, "evaluate")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: evaluateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluateMessage(labPrompt, output)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, false
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return nil, false
	}
	return &ev, true
}

// Summarize condenses text for display. Best effort: on failure it returns
// the same fallback messages as RunPrompt.
func (t *Tutor) Summarize(ctx context.Context, text string) string {
	return t.RunPrompt(ctx, summarizeSystemPrompt, text)
}

// GenerateQuiz produces multiple-choice questions for the given module
// content. Unlike RunPrompt there is no useful degraded output, so errors
// surface and the caller decides how to proceed.
func (t *Tutor) GenerateQuiz(ctx context.Context, moduleTitle, content string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(moduleTitle, content)},
		},
		Schema:      QuizSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var out struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation returned no questions")
	}

	for i, q := range out.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d out of range", i+1, q.CorrectAnswer)
		}
	}

	return out.Questions, nil
}
