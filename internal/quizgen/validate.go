package quizgen

import "fmt"

// validateQuiz checks the semantic constraints the schema cannot express.
// A quiz failing here is treated the same as a malformed generation result.
func validateQuiz(out *quizOutput) error {
	if len(out.Questions) != 5 {
		return fmt.Errorf("quiz has %d questions, want 5", len(out.Questions))
	}
	for i, q := range out.Questions {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return fmt.Errorf("question %d: correct answer %q is not among the options", i, q.CorrectAnswer)
		}
	}
	return nil
}

func contains(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
