package coursegen

import "github.com/abhisek/skillpath/internal/store"

// fallbackModules returns the fixed minimal curriculum used when generation
// fails. A course must never be left without modules once content generation
// has been triggered.
func fallbackModules() []*store.Module {
	return []*store.Module{
		{
			Title:       "Introduction",
			Description: "Overview of the course.",
			Duration:    "15 mins",
			Type:        store.ModuleVideo,
			Content:     "Welcome to the course.",
		},
		{
			Title:       "Basics",
			Description: "Fundamental concepts.",
			Duration:    "45 mins",
			Type:        store.ModuleArticle,
			Content:     "Read Chapter 1.",
		},
	}
}
