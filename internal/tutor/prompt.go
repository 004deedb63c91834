package tutor

import (
	"fmt"
	"strings"
)

const evaluateSystemPrompt = `You are an instructor reviewing prompt engineering exercises from professionals learning to work with AI systems.

Rules:
- Score the work from 0 to 100 based on clarity, specificity, and how well the prompt fits its stated goal.
- Feedback should be direct and practical, addressed to the learner in the second person.
- List concrete strengths you observed, not generic praise.
- List improvements as specific actions the learner could take, not vague advice.
- A weak attempt still deserves honest strengths. An excellent attempt still deserves at least one improvement.`

const quizSystemPrompt = `You are creating a knowledge-check quiz for a professional AI literacy course.

Rules:
- Generate exactly 5 multiple-choice questions covering the module content provided.
- Each question has exactly 4 options with exactly one correct answer.
- Distractors should reflect plausible misunderstandings, not random noise.
- Questions test understanding and application, not trivia or exact wording recall.
- Explanations state why the correct answer is right in one or two sentences.`

const summarizeSystemPrompt = `Summarize the following text in two or three sentences for a busy professional. Keep the key takeaways, drop the filler. Respond with the summary only.`

func buildEvaluateMessage(labPrompt, output string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lab exercise:\n%s\n\n", labPrompt)
	fmt.Fprintf(&b, "Learner's submission:\n%s\n", output)
	return b.String()
}

func buildQuizMessage(moduleTitle, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Module: %s\n\n", moduleTitle)
	fmt.Fprintf(&b, "Content:\n%s\n", content)
	return b.String()
}
