package quizgen

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a vocational training assessor. You write clear multiple-choice questions that test practical understanding, not rote memorization.`

// buildQuizUserMessage renders the quiz instruction for a module.
func buildQuizUserMessage(moduleTitle, courseTitle string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a quiz for the module %q in the course %q.\n", moduleTitle, courseTitle))
	b.WriteString(`
Instructions:
1. Exactly 5 questions.
2. Each question has exactly 4 options and one correct answer.
3. 'correctAnswer' must repeat one of the options verbatim.
4. Each question carries a one or two sentence explanation of the correct answer.
5. Vary difficulty from basic recall to applied judgement.`)

	return b.String()
}
