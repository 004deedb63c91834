package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/techskyline/academy/internal/llm"
	"github.com/techskyline/academy/internal/progress"
)

func testSnapshot() progress.State {
	st := progress.DefaultState()
	st.CompletedModules = []string{"ai-basics", "prompt-engineering"}
	st.XP = 200
	st.Level = 1
	st.Skills["Prompt Design"] = 40
	return st
}

const recommendationJSON = `{
	"next_step": "Complete the ai-agents module",
	"reasoning": "You finished the fundamentals; agents build directly on your prompt design skills.",
	"focus_skills": ["Agentic Logic"]
}`

func TestRecommendSynchronous(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(recommendationJSON)

	rec, err := NewService(mock, DefaultConfig()).Recommend(t.Context(), testSnapshot())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.NextStep != "Complete the ai-agents module" {
		t.Errorf("NextStep = %q", rec.NextStep)
	}
	if len(rec.FocusSkills) != 1 {
		t.Errorf("FocusSkills = %v", rec.FocusSkills)
	}
}

func TestRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueResponse(recommendationJSON)

	svc := NewService(mock, DefaultConfig())

	if _, ok := svc.Consume(); ok {
		t.Fatal("Consume before Request should report nothing ready")
	}

	svc.Request(t.Context(), testSnapshot())

	var rec *Recommendation
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := svc.Consume(); ok {
			rec = r
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if rec == nil {
		t.Fatal("no recommendation became ready")
	}

	if _, ok := svc.Consume(); ok {
		t.Error("second Consume should find the slot cleared")
	}
}

func TestConsumeReportsFailureOnce(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.QueueError(&llm.ErrProviderUnavailable{})

	svc := NewService(mock, DefaultConfig())
	svc.Request(t.Context(), testSnapshot())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if rec, ok := svc.Consume(); ok || rec != nil {
		t.Errorf("failed generation should yield (nil, false), got (%v, %v)", rec, ok)
	}
}

func TestAdvisorMessageContent(t *testing.T) {
	msg := buildAdvisorMessage(testSnapshot())

	for _, want := range []string{
		"ai-basics",
		"ai-agents",
		"Prompt Design: 40/100",
		"Level: 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestAdvisorMessageAllComplete(t *testing.T) {
	st := testSnapshot()
	st.CompletedModules = []string{"ai-basics", "prompt-engineering", "ai-agents", "data-ai", "use-cases"}

	msg := buildAdvisorMessage(st)
	if !strings.Contains(msg, "Remaining modules:\nNone") {
		t.Errorf("expected no remaining modules:\n%s", msg)
	}
}
