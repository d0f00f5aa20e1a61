package enroll

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/skillpath/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	st, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func seedCourse(t *testing.T, st *store.Store, userID string) *store.Course {
	t.Helper()
	course := &store.Course{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  "Tally Accounting",
		Origin: store.OriginFallback,
	}
	if err := st.Courses().CreateBatch(t.Context(), []*store.Course{course}); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func TestEnroll_CreatesActiveEnrollment(t *testing.T) {
	st := openTestStore(t)
	course := seedCourse(t, st, "user-1")
	svc := NewService(st.Enrollments(), st.Courses(), zap.NewNop())

	e, err := svc.Enroll(t.Context(), "user-1", course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if e.Progress != 0 || e.Status != store.EnrollmentActive {
		t.Errorf("new enrollment = progress %d status %q, want 0/active", e.Progress, e.Status)
	}
	if e.LastAccessed.IsZero() {
		t.Error("last accessed not set")
	}
}

func TestEnroll_SecondAttemptReportsAlreadyExists(t *testing.T) {
	st := openTestStore(t)
	course := seedCourse(t, st, "user-1")
	svc := NewService(st.Enrollments(), st.Courses(), zap.NewNop())

	if _, err := svc.Enroll(t.Context(), "user-1", course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	_, err := svc.Enroll(t.Context(), "user-1", course.ID)
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("got %v, want store.ErrAlreadyExists", err)
	}

	list, err := svc.List(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d enrollments, want exactly 1", len(list))
	}
}

func TestEnroll_UnknownCourseRejected(t *testing.T) {
	st := openTestStore(t)
	svc := NewService(st.Enrollments(), st.Courses(), zap.NewNop())

	_, err := svc.Enroll(t.Context(), "user-1", "no-such-course")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want store.ErrNotFound", err)
	}
}

func TestRecordProgress_CompletesAtHundred(t *testing.T) {
	st := openTestStore(t)
	course := seedCourse(t, st, "user-1")
	svc := NewService(st.Enrollments(), st.Courses(), zap.NewNop())

	e, err := svc.Enroll(t.Context(), "user-1", course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.RecordProgress(t.Context(), e.ID, 150); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	list, err := svc.List(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Progress != 100 || list[0].Status != store.EnrollmentCompleted {
		t.Errorf("enrollment = progress %d status %q, want 100/completed", list[0].Progress, list[0].Status)
	}
}
