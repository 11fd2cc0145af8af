package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/repositories"
	"github.com/kaan/edusphere/internal/pkg/apperrors"
	"github.com/kaan/edusphere/internal/pkg/logger"
)

// CourseCatalog is the course lookup surface the aggregator needs.
// Satisfied by *repositories.CourseRepository.
type CourseCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

// ProgressStore is the persistence surface for progress rows. Satisfied
// by *repositories.ProgressRepository.
type ProgressStore interface {
	GetLecture(ctx context.Context, userID int64, courseID, lectureID uuid.UUID) (*models.UserLectureProgress, error)
	UpsertLecture(ctx context.Context, lp *models.UserLectureProgress) error
	CountCompletedLectures(ctx context.Context, userID int64, courseID uuid.UUID) (int, error)
	GetCourseProgress(ctx context.Context, userID int64, courseID uuid.UUID) (*models.UserCourseProgress, error)
	UpsertCourseProgress(ctx context.Context, cp *models.UserCourseProgress) error
	ListCourseProgressByUser(ctx context.Context, userID int64) ([]*repositories.CourseProgressWithTitle, error)
}

// ProgressService reconciles lecture-level watch events into course-level
// summaries and drives the not_started -> in_progress -> completed state
// machine.
type ProgressService interface {
	RecordLectureEvent(ctx context.Context, userID int64, event *dto.RecordLectureEventRequest) (*models.UserCourseProgress, error)
	GetCourseSummaries(ctx context.Context, userID int64) ([]*dto.CourseProgressSummary, error)
	GetCourseSummary(ctx context.Context, userID int64, courseID uuid.UUID) (*dto.CourseProgressSummary, error)
}

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	catalog CourseCatalog
	store   ProgressStore
	now     func() time.Time
}

// NewProgressService creates a new progress service instance
func NewProgressService(catalog CourseCatalog, store ProgressStore) ProgressService {
	return &progressServiceImpl{
		catalog: catalog,
		store:   store,
		now:     time.Now,
	}
}

// RecordLectureEvent applies one playback event. Events for the same
// lecture must not move watched time backward unless the caller marks an
// explicit reset; events for different lectures of the same course are
// independent and commutative. Replaying an identical event leaves all
// derived state unchanged.
func (s *progressServiceImpl) RecordLectureEvent(ctx context.Context, userID int64, event *dto.RecordLectureEventRequest) (*models.UserCourseProgress, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	if event.WatchedSeconds < 0 {
		return nil, fmt.Errorf("%w: watched seconds cannot be negative", apperrors.ErrValidationFailed)
	}

	course, err := s.catalog.GetByID(ctx, event.CourseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error loading course: %w", err)
	}
	// A zero-lecture course can never complete and would divide by zero
	// below; reject before any row is created or modified.
	if course.TotalLectures <= 0 {
		return nil, fmt.Errorf("%w: course %s", apperrors.ErrInvalidCourse, course.ID)
	}

	now := s.now()

	lecture := &models.UserLectureProgress{
		UserID:                 userID,
		CourseID:               event.CourseID,
		LectureID:              event.LectureID,
		WatchedDurationSeconds: event.WatchedSeconds,
		IsCompleted:            event.Completed,
		LastWatchedAt:          now,
	}

	previous, err := s.store.GetLecture(ctx, userID, event.CourseID, event.LectureID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error loading lecture progress: %w", err)
	}
	if previous != nil {
		if event.WatchedSeconds < previous.WatchedDurationSeconds && !event.Reset {
			return nil, fmt.Errorf("%w: lecture %s has %d seconds recorded, event carries %d",
				apperrors.ErrProgressRegression, event.LectureID,
				previous.WatchedDurationSeconds, event.WatchedSeconds)
		}
		// Completion is one-way; a later partial replay never clears it.
		lecture.IsCompleted = previous.IsCompleted || event.Completed
	}

	if err := s.store.UpsertLecture(ctx, lecture); err != nil {
		return nil, fmt.Errorf("error saving lecture progress: %w", err)
	}

	completedCount, err := s.store.CountCompletedLectures(ctx, userID, event.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error counting completed lectures: %w", err)
	}
	if completedCount > course.TotalLectures {
		// More completed rows than the catalog admits lectures; the
		// catalog shrank after events were recorded. Cap the summary.
		logger.Warn().Str("courseID", course.ID.String()).Int("completed", completedCount).
			Int("total", course.TotalLectures).Msg("Completed lecture count exceeds catalog total")
		completedCount = course.TotalLectures
	}

	summary, err := s.store.GetCourseProgress(ctx, userID, event.CourseID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("error loading course progress: %w", err)
		}
		summary = &models.UserCourseProgress{
			UserID:   userID,
			CourseID: event.CourseID,
			Status:   models.CourseStatusNotStarted,
		}
	}

	summary.CompletedLecturesCount = completedCount
	summary.TotalLectures = course.TotalLectures
	summary.CompletionPercentage = int(math.Round(100 * float64(completedCount) / float64(course.TotalLectures)))

	// Bookkeeping fields reflect the most recent event unconditionally,
	// independent of completion state.
	lectureID := event.LectureID
	summary.LastAccessedLectureID = &lectureID
	summary.LastPlayedTimestamp = event.WatchedSeconds
	summary.LastAccessedAt = now

	switch summary.Status {
	case models.CourseStatusCompleted:
		// Terminal; re-applied events never regress status or counts.
	default:
		if summary.StartedAt == nil {
			startedAt := now
			summary.StartedAt = &startedAt
		}
		if completedCount == course.TotalLectures {
			summary.Status = models.CourseStatusCompleted
			completedAt := now
			summary.CompletedAt = &completedAt
		} else {
			summary.Status = models.CourseStatusInProgress
		}
	}

	if err := s.store.UpsertCourseProgress(ctx, summary); err != nil {
		return nil, fmt.Errorf("error saving course progress: %w", err)
	}

	return summary, nil
}

// GetCourseSummaries returns the user's course progress projections,
// most recently accessed first.
func (s *progressServiceImpl) GetCourseSummaries(ctx context.Context, userID int64) ([]*dto.CourseProgressSummary, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	rows, err := s.store.ListCourseProgressByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing course progress: %w", err)
	}

	summaries := make([]*dto.CourseProgressSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, toSummary(&row.UserCourseProgress, row.CourseTitle))
	}
	return summaries, nil
}

// GetCourseSummary returns the projection for a single course.
func (s *progressServiceImpl) GetCourseSummary(ctx context.Context, userID int64, courseID uuid.UUID) (*dto.CourseProgressSummary, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	course, err := s.catalog.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error loading course: %w", err)
	}

	progress, err := s.store.GetCourseProgress(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error loading course progress: %w", err)
	}

	return toSummary(progress, course.Title), nil
}

func toSummary(cp *models.UserCourseProgress, title string) *dto.CourseProgressSummary {
	return &dto.CourseProgressSummary{
		CourseID:               cp.CourseID,
		CourseTitle:            title,
		CompletionPercentage:   cp.CompletionPercentage,
		Status:                 string(cp.Status),
		LastAccessedLectureID:  cp.LastAccessedLectureID,
		LastPlayedTimestamp:    cp.LastPlayedTimestamp,
		TotalLectures:          cp.TotalLectures,
		CompletedLecturesCount: cp.CompletedLecturesCount,
	}
}
