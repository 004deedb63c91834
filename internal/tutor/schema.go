package tutor

import "github.com/techskyline/academy/internal/llm"

// EvaluationSchema defines the JSON schema for lab evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "lab-evaluation",
	Description: "Structured feedback on a learner's prompt engineering work",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     float64(0),
				"maximum":     float64(100),
				"description": "Overall quality score from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two paragraphs of overall feedback, addressed to the learner",
			},
			"strengths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Specific things the learner did well",
			},
			"improvements": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Specific, actionable suggestions for next time",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "module-quiz",
	Description: "A set of multiple-choice questions for a course module",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, self-contained and unambiguous",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options where exactly one is correct",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"minimum":     float64(0),
							"maximum":     float64(3),
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct, one or two sentences",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
