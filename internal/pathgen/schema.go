package pathgen

import "github.com/abhisek/skillpath/internal/llm"

// LearningPathSchema defines the JSON schema for learning-path generation.
// A path is 5-7 recommended courses; every field is a required non-empty
// string so a half-filled course can never slip through.
var LearningPathSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A personalized learning path of vocational and skill-based courses",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courses": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 7,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Course title, e.g. 'Web Development Bootcamp'",
						},
						"description": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "One or two sentences on what the course covers",
						},
						"category": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Broad sector, e.g. 'IT', 'Healthcare', 'Retail', 'Soft Skills'",
						},
						"level": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Estimated NSQF level, e.g. 'NSQF Level 4'",
						},
						"duration": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Realistic duration, e.g. '3 Months', '6 Weeks'",
						},
					},
					"required":             []any{"title", "description", "category", "level", "duration"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"courses"},
		"additionalProperties": false,
	},
}
