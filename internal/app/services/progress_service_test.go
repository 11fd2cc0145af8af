package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/repositories"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
)

type fakeCatalog struct {
	courses map[uuid.UUID]*models.Course
}

func (f *fakeCatalog) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return course, nil
}

type lectureKey struct {
	userID    int64
	courseID  uuid.UUID
	lectureID uuid.UUID
}

type courseKey struct {
	userID   int64
	courseID uuid.UUID
}

type fakeProgressStore struct {
	lectures map[lectureKey]models.UserLectureProgress
	courses  map[courseKey]models.UserCourseProgress
	titles   map[uuid.UUID]string
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{
		lectures: make(map[lectureKey]models.UserLectureProgress),
		courses:  make(map[courseKey]models.UserCourseProgress),
		titles:   make(map[uuid.UUID]string),
	}
}

func (f *fakeProgressStore) GetLecture(_ context.Context, userID int64, courseID, lectureID uuid.UUID) (*models.UserLectureProgress, error) {
	lp, ok := f.lectures[lectureKey{userID, courseID, lectureID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := lp
	return &out, nil
}

func (f *fakeProgressStore) UpsertLecture(_ context.Context, lp *models.UserLectureProgress) error {
	f.lectures[lectureKey{lp.UserID, lp.CourseID, lp.LectureID}] = *lp
	return nil
}

func (f *fakeProgressStore) CountCompletedLectures(_ context.Context, userID int64, courseID uuid.UUID) (int, error) {
	count := 0
	for key, lp := range f.lectures {
		if key.userID == userID && key.courseID == courseID && lp.IsCompleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeProgressStore) GetCourseProgress(_ context.Context, userID int64, courseID uuid.UUID) (*models.UserCourseProgress, error) {
	cp, ok := f.courses[courseKey{userID, courseID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := cp
	return &out, nil
}

func (f *fakeProgressStore) UpsertCourseProgress(_ context.Context, cp *models.UserCourseProgress) error {
	f.courses[courseKey{cp.UserID, cp.CourseID}] = *cp
	return nil
}

func (f *fakeProgressStore) ListCourseProgressByUser(_ context.Context, userID int64) ([]*repositories.CourseProgressWithTitle, error) {
	var rows []*repositories.CourseProgressWithTitle
	for key, cp := range f.courses {
		if key.userID != userID {
			continue
		}
		row := &repositories.CourseProgressWithTitle{UserCourseProgress: cp}
		row.CourseTitle = f.titles[key.courseID]
		rows = append(rows, row)
	}
	return rows, nil
}

func newTestProgressService(courses ...*models.Course) (ProgressService, *fakeProgressStore) {
	catalog := &fakeCatalog{courses: make(map[uuid.UUID]*models.Course)}
	for _, c := range courses {
		catalog.courses[c.ID] = c
	}
	store := newFakeProgressStore()
	for _, c := range courses {
		store.titles[c.ID] = c.Title
	}

	svc := NewProgressService(catalog, store)
	svc.(*progressServiceImpl).now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func event(courseID, lectureID uuid.UUID, seconds int64, completed bool) *dto.RecordLectureEventRequest {
	return &dto.RecordLectureEventRequest{
		CourseID:       courseID,
		LectureID:      lectureID,
		WatchedSeconds: seconds,
		Completed:      completed,
	}
}

func TestRecordLectureEvent_FirstEventStartsCourse(t *testing.T) {
	courseID := uuid.New()
	lectureID := uuid.New()
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	summary, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 30, false))
	require.NoError(t, err)

	assert.Equal(t, models.CourseStatusInProgress, summary.Status)
	assert.Equal(t, 0, summary.CompletedLecturesCount)
	assert.Equal(t, 0, summary.CompletionPercentage)
	assert.Equal(t, 4, summary.TotalLectures)
	require.NotNil(t, summary.LastAccessedLectureID)
	assert.Equal(t, lectureID, *summary.LastAccessedLectureID)
	assert.Equal(t, int64(30), summary.LastPlayedTimestamp)
	assert.NotNil(t, summary.StartedAt)
	assert.Nil(t, summary.CompletedAt)
}

func TestRecordLectureEvent_Idempotent(t *testing.T) {
	courseID := uuid.New()
	lectureID := uuid.New()
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	first, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 120, true))
	require.NoError(t, err)

	replay, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 120, true))
	require.NoError(t, err)

	assert.Equal(t, first, replay)
}

func TestRecordLectureEvent_RegressionRejected(t *testing.T) {
	courseID := uuid.New()
	lectureID := uuid.New()
	svc, store := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	_, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 300, false))
	require.NoError(t, err)

	_, err = svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 100, false))
	assert.ErrorIs(t, err, apperrors.ErrProgressRegression)

	// The rejected event must not have touched the stored row.
	lp, err := store.GetLecture(context.Background(), 7, courseID, lectureID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), lp.WatchedDurationSeconds)
}

func TestRecordLectureEvent_ResetAllowsLowerSeconds(t *testing.T) {
	courseID := uuid.New()
	lectureID := uuid.New()
	svc, store := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	_, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 300, true))
	require.NoError(t, err)

	resetEvent := event(courseID, lectureID, 10, false)
	resetEvent.Reset = true
	summary, err := svc.RecordLectureEvent(context.Background(), 7, resetEvent)
	require.NoError(t, err)

	lp, err := store.GetLecture(context.Background(), 7, courseID, lectureID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), lp.WatchedDurationSeconds)
	// Completion stays set even through a reset.
	assert.True(t, lp.IsCompleted)
	assert.Equal(t, 1, summary.CompletedLecturesCount)
}

func TestRecordLectureEvent_CompletionConvergence(t *testing.T) {
	courseID := uuid.New()
	lectures := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	var summary *models.UserCourseProgress
	var err error
	for i, lectureID := range lectures {
		summary, err = svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 600, true))
		require.NoError(t, err)
		assert.Equal(t, i+1, summary.CompletedLecturesCount)
	}

	assert.Equal(t, models.CourseStatusCompleted, summary.Status)
	assert.Equal(t, 100, summary.CompletionPercentage)
	require.NotNil(t, summary.CompletedAt)
	assert.Equal(t, 4, summary.TotalLectures)
}

func TestRecordLectureEvent_PercentageRounding(t *testing.T) {
	courseID := uuid.New()
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 3})

	summary, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, uuid.New(), 600, true))
	require.NoError(t, err)
	assert.Equal(t, 33, summary.CompletionPercentage)

	summary, err = svc.RecordLectureEvent(context.Background(), 7, event(courseID, uuid.New(), 600, true))
	require.NoError(t, err)
	assert.Equal(t, 67, summary.CompletionPercentage)
}

func TestRecordLectureEvent_CompletedIsTerminal(t *testing.T) {
	courseID := uuid.New()
	lectureID := uuid.New()
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 1})

	summary, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 600, true))
	require.NoError(t, err)
	require.Equal(t, models.CourseStatusCompleted, summary.Status)
	completedAt := summary.CompletedAt

	// Re-watching after completion keeps the course completed.
	summary, err = svc.RecordLectureEvent(context.Background(), 7, event(courseID, lectureID, 900, false))
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusCompleted, summary.Status)
	assert.Equal(t, 100, summary.CompletionPercentage)
	assert.Equal(t, completedAt, summary.CompletedAt)
	assert.Equal(t, int64(900), summary.LastPlayedTimestamp)
}

func TestRecordLectureEvent_ZeroLectureCourseRejected(t *testing.T) {
	courseID := uuid.New()
	svc, store := newTestProgressService(&models.Course{ID: courseID, Title: "Empty", TotalLectures: 0})

	_, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, uuid.New(), 30, false))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCourse)

	// Rejection happens before any write.
	assert.Empty(t, store.lectures)
	assert.Empty(t, store.courses)
}

func TestRecordLectureEvent_UnknownCourse(t *testing.T) {
	svc, _ := newTestProgressService()

	_, err := svc.RecordLectureEvent(context.Background(), 7, event(uuid.New(), uuid.New(), 30, false))
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestRecordLectureEvent_OutOfOrderLecturesCommute(t *testing.T) {
	courseID := uuid.New()
	lectureA := uuid.New()
	lectureB := uuid.New()
	course := &models.Course{ID: courseID, Title: "Databases", TotalLectures: 2}

	svcForward, _ := newTestProgressService(course)
	_, err := svcForward.RecordLectureEvent(context.Background(), 7, event(courseID, lectureA, 600, true))
	require.NoError(t, err)
	forward, err := svcForward.RecordLectureEvent(context.Background(), 7, event(courseID, lectureB, 600, true))
	require.NoError(t, err)

	svcReverse, _ := newTestProgressService(course)
	_, err = svcReverse.RecordLectureEvent(context.Background(), 7, event(courseID, lectureB, 600, true))
	require.NoError(t, err)
	reverse, err := svcReverse.RecordLectureEvent(context.Background(), 7, event(courseID, lectureA, 600, true))
	require.NoError(t, err)

	assert.Equal(t, forward.CompletedLecturesCount, reverse.CompletedLecturesCount)
	assert.Equal(t, forward.CompletionPercentage, reverse.CompletionPercentage)
	assert.Equal(t, forward.Status, reverse.Status)
}

func TestGetCourseSummary(t *testing.T) {
	courseID := uuid.New()
	svc, _ := newTestProgressService(&models.Course{ID: courseID, Title: "Databases", TotalLectures: 4})

	t.Run("no progress yet", func(t *testing.T) {
		_, err := svc.GetCourseSummary(context.Background(), 7, courseID)
		assert.ErrorIs(t, err, apperrors.ErrProgressNotFound)
	})

	t.Run("after an event", func(t *testing.T) {
		_, err := svc.RecordLectureEvent(context.Background(), 7, event(courseID, uuid.New(), 60, true))
		require.NoError(t, err)

		summary, err := svc.GetCourseSummary(context.Background(), 7, courseID)
		require.NoError(t, err)
		assert.Equal(t, "Databases", summary.CourseTitle)
		assert.Equal(t, 25, summary.CompletionPercentage)
		assert.Equal(t, string(models.CourseStatusInProgress), summary.Status)
	})
}

func TestGetCourseSummaries(t *testing.T) {
	courseA := &models.Course{ID: uuid.New(), Title: "Databases", TotalLectures: 2}
	courseB := &models.Course{ID: uuid.New(), Title: "Networks", TotalLectures: 2}
	svc, _ := newTestProgressService(courseA, courseB)

	_, err := svc.RecordLectureEvent(context.Background(), 7, event(courseA.ID, uuid.New(), 60, true))
	require.NoError(t, err)
	_, err = svc.RecordLectureEvent(context.Background(), 7, event(courseB.ID, uuid.New(), 60, false))
	require.NoError(t, err)

	summaries, err := svc.GetCourseSummaries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byTitle := map[string]*dto.CourseProgressSummary{}
	for _, s := range summaries {
		byTitle[s.CourseTitle] = s
	}
	assert.Equal(t, 50, byTitle["Databases"].CompletionPercentage)
	assert.Equal(t, 0, byTitle["Networks"].CompletionPercentage)

	// Another user sees nothing.
	other, err := svc.GetCourseSummaries(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}
