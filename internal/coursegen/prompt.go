package coursegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillpath/internal/store"
)

const contentSystemPrompt = `You are an expert curriculum designer for vocational education. You build practical, hands-on curricula that prepare learners for real jobs.`

// buildContentUserMessage renders the curriculum instruction for a course.
// The profile is optional context; absent fields degrade to placeholders.
func buildContentUserMessage(courseTitle string, profile *store.Profile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a detailed curriculum of 5-8 modules for a course titled %q.\n", courseTitle))

	if profile != nil {
		b.WriteString(fmt.Sprintf("\nThe learner's career goal is %q and their education level is %q. Pitch the material accordingly.\n",
			orElse(profile.CareerGoal, "General Employment"),
			orElse(profile.EducationLevel, "Unknown")))
	}

	b.WriteString(`
Instructions:
1. Mix module types across 'video', 'article', 'quiz' and 'assignment'. Most modules should be video or article; include at least one quiz.
2. Order modules from foundations to application.
3. For 'duration', use short estimates like "15 mins" or "1 hour".
4. The 'content' field depends on 'type':
   - video: a one-sentence summary of what the video should cover (it will be replaced by a real video link).
   - article: the full instructional text, at least 150 words.
   - quiz: a short description of what the quiz will assess.
   - assignment: a short description of the task the learner must complete.`)

	return b.String()
}

// orElse returns s, or fallback when s is empty.
func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
