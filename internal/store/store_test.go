package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testCourse(userID string) *Course {
	return &Course{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         "Advanced React Native",
		Description:   "Build premium mobile apps.",
		Category:      "Mobile Dev",
		Level:         "NSQF Level 6",
		Duration:      "3 Months",
		Rating:        4.9,
		EnrolledCount: 1500,
		Origin:        OriginGenerated,
	}
}

func TestCourseRepo_CreateBatchAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	userID := uuid.NewString()

	good := testCourse(userID)
	dup := testCourse(userID)
	dup.ID = good.ID // primary key collision forces a rollback

	err := s.Courses().CreateBatch(ctx, []*Course{good, dup})
	require.Error(t, err)

	courses, err := s.Courses().ByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, courses, "partial failure must leave no courses behind")
}

func TestCourseRepo_ModuleOrderingRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	course := testCourse(uuid.NewString())
	require.NoError(t, s.Courses().CreateBatch(ctx, []*Course{course}))

	// Insert out of sequence order; reads must come back sorted by index.
	modules := []*Module{
		{ID: uuid.NewString(), Order: 2, Title: "Deploying", Type: ModuleArticle},
		{ID: uuid.NewString(), Order: 0, Title: "Introduction", Type: ModuleVideo},
		{ID: uuid.NewString(), Order: 1, Title: "Components", Type: ModuleQuiz},
	}
	require.NoError(t, s.Courses().ReplaceModules(ctx, course.ID, modules))

	got, err := s.Courses().ModulesByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Introduction", got[0].Title)
	assert.Equal(t, "Components", got[1].Title)
	assert.Equal(t, "Deploying", got[2].Title)

	has, err := s.Courses().HasModules(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCourseRepo_ReplaceModulesOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	course := testCourse(uuid.NewString())
	require.NoError(t, s.Courses().CreateBatch(ctx, []*Course{course}))

	first := []*Module{{ID: uuid.NewString(), Order: 0, Title: "Old", Type: ModuleVideo}}
	require.NoError(t, s.Courses().ReplaceModules(ctx, course.ID, first))

	second := []*Module{
		{ID: uuid.NewString(), Order: 0, Title: "Introduction", Type: ModuleVideo},
		{ID: uuid.NewString(), Order: 1, Title: "Basics", Type: ModuleArticle},
	}
	require.NoError(t, s.Courses().ReplaceModules(ctx, course.ID, second))

	got, err := s.Courses().ModulesByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Introduction", got[0].Title)
}

func TestEnrollmentRepo_UniquePerUserCourse(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	userID := uuid.NewString()
	courseID := uuid.NewString()

	first := &Enrollment{ID: uuid.NewString(), UserID: userID, CourseID: courseID, Status: EnrollmentActive}
	require.NoError(t, s.Enrollments().Create(ctx, first))

	second := &Enrollment{ID: uuid.NewString(), UserID: userID, CourseID: courseID, Status: EnrollmentActive}
	err := s.Enrollments().Create(ctx, second)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	all, err := s.Enrollments().ByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnrollmentRepo_UpdateProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	e := &Enrollment{ID: uuid.NewString(), UserID: uuid.NewString(), CourseID: uuid.NewString(), Status: EnrollmentActive}
	require.NoError(t, s.Enrollments().Create(ctx, e))

	require.NoError(t, s.Enrollments().UpdateProgress(ctx, e.ID, 150))

	got, err := s.Enrollments().ByUser(ctx, e.UserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Progress)
	assert.Equal(t, EnrollmentCompleted, got[0].Status)

	err = s.Enrollments().UpdateProgress(ctx, uuid.NewString(), 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizRepo_OnePerModule(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	moduleID := uuid.NewString()

	quiz := &Quiz{ID: uuid.NewString(), ModuleID: moduleID, Title: "Basics Quiz"}
	questions := []*Question{
		{ID: uuid.NewString(), Order: 1, Text: "Q2", Options: datatypes.JSONSlice[string]{"a", "b", "c", "d"}, CorrectAnswer: "b"},
		{ID: uuid.NewString(), Order: 0, Text: "Q1", Options: datatypes.JSONSlice[string]{"a", "b", "c", "d"}, CorrectAnswer: "a"},
	}
	require.NoError(t, s.Quizzes().CreateWithQuestions(ctx, quiz, questions))

	dup := &Quiz{ID: uuid.NewString(), ModuleID: moduleID, Title: "Another"}
	err := s.Quizzes().CreateWithQuestions(ctx, dup, nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.Quizzes().ByModule(ctx, moduleID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "Q1", got.Questions[0].Text, "questions come back in sequence order")

	exists, err := s.Quizzes().ExistsForModule(ctx, moduleID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileRepo_OnePerUser(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	userID := uuid.NewString()

	p := &Profile{
		ID:             uuid.NewString(),
		UserID:         userID,
		FullName:       "Asha",
		EducationLevel: "B.Tech",
		CareerGoal:     "Software Engineer",
		Skills:         datatypes.JSONSlice[string]{"React"},
	}
	require.NoError(t, s.Profiles().Create(ctx, p))

	dup := &Profile{ID: uuid.NewString(), UserID: userID, FullName: "Asha"}
	assert.ErrorIs(t, s.Profiles().Create(ctx, dup), ErrAlreadyExists)

	got, err := s.Profiles().ByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.FullName)
	assert.Equal(t, []string{"React"}, []string(got.Skills))
}

func TestUserRepo_GetOrCreate(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	u1, err := s.Users().GetOrCreate(ctx, "asha@example.com")
	require.NoError(t, err)

	u2, err := s.Users().GetOrCreate(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)
}
