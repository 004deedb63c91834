package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func evaluationTestSchema() *Schema {
	return &Schema{
		Name: "test-evaluation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score": map[string]any{
					"type":    "integer",
					"minimum": float64(0),
					"maximum": float64(100),
				},
				"feedback": map[string]any{"type": "string"},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid",
			content: `{"score": 85, "feedback": "solid work", "strengths": ["clarity"]}`,
		},
		{
			name:    "minimal valid",
			content: `{"score": 0, "feedback": ""}`,
		},
		{
			name:    "missing required field",
			content: `{"score": 85}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: `{"score": "eighty", "feedback": "x"}`,
			wantErr: true,
		},
		{
			name:    "out of range",
			content: `{"score": 150, "feedback": "x"}`,
			wantErr: true,
		},
		{
			name:    "extra property",
			content: `{"score": 85, "feedback": "x", "grade": "A"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: `the model apologizes and refuses`,
			wantErr: true,
		},
	}

	schema := evaluationTestSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(schema, json.RawMessage(tt.content))
			if (err != nil) != tt.wantErr {
				t.Errorf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("error type = %T, want ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	schema := evaluationTestSchema()
	schema.Name = "test-cache-reuse"

	first, err := getCompiledSchema(schema)
	if err != nil {
		t.Fatalf("first compile: %v", err)
	}
	second, err := getCompiledSchema(schema)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	if first != second {
		t.Error("expected cached schema instance on second call")
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema, err := buildGeminiSchema(evaluationTestSchema().Definition)
	if err != nil {
		t.Fatalf("buildGeminiSchema: %v", err)
	}

	if len(schema.Properties) != 3 {
		t.Errorf("properties = %d, want 3", len(schema.Properties))
	}
	if schema.Properties["strengths"].Items == nil {
		t.Error("array property lost its items schema")
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v, want 2 entries", schema.Required)
	}
}
