package store

import (
	"time"

	"gorm.io/datatypes"
)

// Course origin values. Recording the branch that produced a course keeps
// the generated-vs-fallback split visible in the data instead of implicit
// in control flow.
const (
	OriginGenerated = "generated"
	OriginFallback  = "fallback"
)

// Module type values.
const (
	ModuleVideo      = "video"
	ModuleArticle    = "article"
	ModuleQuiz       = "quiz"
	ModuleAssignment = "assignment"
)

// Enrollment status values.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
)

// User is an authenticated account. Authentication itself happens outside
// this system; the store only needs the identity to link records to.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:255"`
	CreatedAt time.Time
}

// Profile holds a user's onboarding answers. Created once when onboarding
// completes; there is no update path.
type Profile struct {
	ID             string `gorm:"primaryKey;size:36"`
	UserID         string `gorm:"uniqueIndex;size:36"`
	OnboardingStep int

	FullName string
	DOB      string
	Gender   string

	EducationLevel  string
	InstitutionName string
	PassingYear     string
	Major           string

	AnnualFamilyIncome string
	Category           string
	State              string
	District           string

	CareerGoal        string
	PreferredJobRoles datatypes.JSONSlice[string]
	Skills            datatypes.JSONSlice[string]

	CreatedAt time.Time
}

// Course is a recommended course linked to the user it was generated for.
type Course struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"index;size:36"`
	Title       string
	Description string
	Category    string
	Level       string
	Duration    string

	Rating        float64
	EnrolledCount int

	// Origin is OriginGenerated or OriginFallback.
	Origin string

	Modules   []Module `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// Module is one lesson unit of a course. Order establishes the sequence
// within the course; Content is interpreted according to Type (a video
// URL, article prose, or a descriptive placeholder).
type Module struct {
	ID          string `gorm:"primaryKey;size:36"`
	CourseID    string `gorm:"index;size:36"`
	Order       int    `gorm:"column:sort_order"`
	Title       string
	Description string
	Type        string
	Duration    string
	Content     string
}

// Quiz belongs to exactly one module.
type Quiz struct {
	ID          string `gorm:"primaryKey;size:36"`
	ModuleID    string `gorm:"uniqueIndex;size:36"`
	Title       string
	Description string

	Questions []Question `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// Question is one quiz question with exactly four options. CorrectAnswer
// is always a member of Options; quizgen enforces this before persistence.
type Question struct {
	ID            string `gorm:"primaryKey;size:36"`
	QuizID        string `gorm:"index;size:36"`
	Order         int    `gorm:"column:sort_order"`
	Text          string
	Options       datatypes.JSONSlice[string]
	CorrectAnswer string
	Explanation   string
}

// Enrollment links a user to a course. At most one per (user, course);
// the composite unique index enforces this at the persistence boundary.
type Enrollment struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"size:36;uniqueIndex:idx_enrollment_user_course"`
	CourseID     string `gorm:"size:36;uniqueIndex:idx_enrollment_user_course"`
	Progress     int
	Status       string
	LastAccessed time.Time
	CreatedAt    time.Time
}
