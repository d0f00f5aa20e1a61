package pathgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillpath/internal/store"
)

const pathSystemPrompt = `You are a career counsellor for the Indian vocational education system. You design personalized learning paths that improve employability in the Indian job market.`

// buildPathUserMessage renders the generation instruction from a profile.
// Absent fields degrade to neutral placeholders; this function never fails.
func buildPathUserMessage(profile *store.Profile) string {
	var b strings.Builder

	b.WriteString("Generate a personalized learning path of 5-7 vocational and skill-based courses for a user with the following profile. The goal is to help them achieve their career aspirations and improve employability in the Indian job market.\n")

	b.WriteString("\nUser Profile:\n")
	b.WriteString(fmt.Sprintf("- Name: %s\n", orElse(profile.FullName, "User")))
	b.WriteString(fmt.Sprintf("- Education: %s (Major: %s)\n",
		orElse(profile.EducationLevel, "Unknown"),
		orElse(profile.Major, "N/A")))
	b.WriteString(fmt.Sprintf("- Career Goal: %s\n", orElse(profile.CareerGoal, "General Employment")))
	b.WriteString(fmt.Sprintf("- Key Skills: %s\n", joinOrNone(profile.Skills)))
	b.WriteString(fmt.Sprintf("- Preferred Job Roles: %s\n", joinOrNone(profile.PreferredJobRoles)))
	b.WriteString(fmt.Sprintf("- Location: %s, %s\n",
		orElse(profile.District, "India"),
		orElse(profile.State, "")))

	b.WriteString(`
Instructions:
1. Ensure the courses are aligned with NSQF (National Skills Qualifications Framework) levels where applicable.
2. Include a mix of technical (hard) skills and soft skills.
3. For 'category', use broad terms like "IT", "Healthcare", "Construction", "Automotive", "Retail", "Soft Skills".
4. For 'level', estimate the NSQF level (e.g., Level 3, 4, 5, 6).
5. For 'duration', provide realistic estimates (e.g., "3 Months", "6 Weeks").`)

	return b.String()
}

// orElse returns s, or fallback when s is empty.
func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// joinOrNone renders a skill/role list, or "None listed" when empty.
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None listed"
	}
	return strings.Join(items, ", ")
}
