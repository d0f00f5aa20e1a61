package coursegen

import "github.com/abhisek/skillpath/internal/llm"

// CourseContentSchema defines the JSON schema for curriculum generation.
// A curriculum is 5-8 ordered modules; the type enum is closed so a module
// the client cannot render never reaches the store.
var CourseContentSchema = &llm.Schema{
	Name:        "course-content",
	Description: "An ordered curriculum of modules for one course",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 8,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"description": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"duration": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "e.g. '15 mins', '1 hour'",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"video", "article", "quiz", "assignment"},
						},
						"content": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Interpretation depends on type; see the instruction",
						},
					},
					"required":             []any{"title", "description", "duration", "type", "content"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules"},
		"additionalProperties": false,
	},
}
