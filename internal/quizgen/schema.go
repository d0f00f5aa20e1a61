package quizgen

import "github.com/abhisek/skillpath/internal/llm"

// QuizSchema defines the JSON schema for quiz generation: exactly five
// questions with exactly four options each. Membership of correctAnswer in
// options is not expressible here; validateQuiz enforces it after parsing.
var QuizSchema = &llm.Schema{
	Name:        "module-quiz",
	Description: "A five-question multiple-choice quiz for one course module",
	Definition: map[string]any{
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
			"questions": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Must be one of the options, verbatim",
						},
						"explanation": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "description", "questions"},
		"additionalProperties": false,
	},
}
