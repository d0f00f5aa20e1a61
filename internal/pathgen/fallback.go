package pathgen

import "github.com/abhisek/skillpath/internal/store"

// fallbackCourses returns the static curated path used when generation is
// unavailable. Returned values are fresh copies; callers may mutate them.
func fallbackCourses() []*store.Course {
	return []*store.Course{
		{
			Title:         "Advanced React Native",
			Description:   "Build premium mobile apps.",
			Category:      "Mobile Dev",
			Level:         "NSQF Level 6",
			Duration:      "3 Months",
			Rating:        4.9,
			EnrolledCount: 1500,
		},
		{
			Title:         "AI for Everyone",
			Description:   "Understand the basics of AI.",
			Category:      "Data Science",
			Level:         "NSQF Level 5",
			Duration:      "2 Months",
			Rating:        4.7,
			EnrolledCount: 3200,
		},
		{
			Title:         "Modern UI/UX Design",
			Description:   "Create stunning interfaces.",
			Category:      "Design",
			Level:         "NSQF Level 5",
			Duration:      "4 Months",
			Rating:        4.8,
			EnrolledCount: 950,
		},
		{
			Title:         "Python for Finance",
			Description:   "Analyze financial data.",
			Category:      "Finance",
			Level:         "NSQF Level 6",
			Duration:      "3 Months",
			Rating:        4.6,
			EnrolledCount: 700,
		},
		{
			Title:         "Effective Communication",
			Description:   "Speak with confidence.",
			Category:      "Soft Skills",
			Level:         "NSQF Level 4",
			Duration:      "1 Month",
			Rating:        4.9,
			EnrolledCount: 5000,
		},
	}
}
