package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/pkg/logger"
)

// ErrProgressNotFound is returned when no progress row exists for the key.
var ErrProgressNotFound = ErrNotFound

// CourseProgressWithTitle joins the course-level summary with the catalog
// title for listing screens.
type CourseProgressWithTitle struct {
	models.UserCourseProgress
	CourseTitle string
}

// ProgressRepository handles lecture- and course-level progress rows.
// Uniqueness of (user, course) and (user, course, lecture) is enforced
// here through composite-key upserts, matching the unique indexes.
type ProgressRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetLecture retrieves the lecture progress row for a composite key
func (r *ProgressRepository) GetLecture(ctx context.Context, userID int64, courseID, lectureID uuid.UUID) (*models.UserLectureProgress, error) {
	sql, args, err := r.sb.Select("id", "user_id", "course_id", "lecture_id",
		"watched_duration_seconds", "is_completed", "last_watched_at").
		From("user_lecture_progress").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID, "lecture_id": lectureID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get lecture progress SQL")
		return nil, fmt.Errorf("failed to build get lecture progress query: %w", err)
	}

	lp := &models.UserLectureProgress{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&lp.ID, &lp.UserID, &lp.CourseID, &lp.LectureID,
		&lp.WatchedDurationSeconds, &lp.IsCompleted, &lp.LastWatchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		logger.Error().Err(err).Msg("Error scanning lecture progress row")
		return nil, fmt.Errorf("error getting lecture progress: %w", err)
	}

	return lp, nil
}

// UpsertLecture inserts or updates the lecture progress row keyed by
// (user, course, lecture).
func (r *ProgressRepository) UpsertLecture(ctx context.Context, lp *models.UserLectureProgress) error {
	sql, args, err := r.sb.Insert("user_lecture_progress").
		Columns("user_id", "course_id", "lecture_id", "watched_duration_seconds", "is_completed", "last_watched_at").
		Values(lp.UserID, lp.CourseID, lp.LectureID, lp.WatchedDurationSeconds, lp.IsCompleted, lp.LastWatchedAt).
		Suffix(`ON CONFLICT (user_id, course_id, lecture_id) DO UPDATE SET
			watched_duration_seconds = EXCLUDED.watched_duration_seconds,
			is_completed = EXCLUDED.is_completed,
			last_watched_at = EXCLUDED.last_watched_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert lecture progress SQL")
		return fmt.Errorf("failed to build upsert lecture progress query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing upsert lecture progress query")
		return fmt.Errorf("error upserting lecture progress: %w", err)
	}

	return nil
}

// CountCompletedLectures counts completed lecture rows for a (user, course)
func (r *ProgressRepository) CountCompletedLectures(ctx context.Context, userID int64, courseID uuid.UUID) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("user_lecture_progress").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID, "is_completed": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count completed lectures query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting completed lectures")
		return 0, fmt.Errorf("error counting completed lectures: %w", err)
	}

	return count, nil
}

var courseProgressColumns = []string{
	"id", "user_id", "course_id", "completed_lectures_count", "total_lectures",
	"completion_percentage", "last_accessed_lecture_id", "last_played_timestamp",
	"status", "started_at", "last_accessed_at", "completed_at",
}

func scanCourseProgress(row pgx.Row, cp *models.UserCourseProgress) error {
	return row.Scan(&cp.ID, &cp.UserID, &cp.CourseID, &cp.CompletedLecturesCount,
		&cp.TotalLectures, &cp.CompletionPercentage, &cp.LastAccessedLectureID,
		&cp.LastPlayedTimestamp, &cp.Status, &cp.StartedAt, &cp.LastAccessedAt, &cp.CompletedAt)
}

// GetCourseProgress retrieves the course summary row for a (user, course)
func (r *ProgressRepository) GetCourseProgress(ctx context.Context, userID int64, courseID uuid.UUID) (*models.UserCourseProgress, error) {
	sql, args, err := r.sb.Select(courseProgressColumns...).
		From("user_course_progress").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course progress SQL")
		return nil, fmt.Errorf("failed to build get course progress query: %w", err)
	}

	cp := &models.UserCourseProgress{}
	if err := scanCourseProgress(r.db.QueryRow(ctx, sql, args...), cp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course progress row")
		return nil, fmt.Errorf("error getting course progress: %w", err)
	}

	return cp, nil
}

// UpsertCourseProgress inserts or updates the course summary row keyed by
// (user, course).
func (r *ProgressRepository) UpsertCourseProgress(ctx context.Context, cp *models.UserCourseProgress) error {
	sql, args, err := r.sb.Insert("user_course_progress").
		Columns("user_id", "course_id", "completed_lectures_count", "total_lectures",
			"completion_percentage", "last_accessed_lecture_id", "last_played_timestamp",
			"status", "started_at", "last_accessed_at", "completed_at").
		Values(cp.UserID, cp.CourseID, cp.CompletedLecturesCount, cp.TotalLectures,
			cp.CompletionPercentage, cp.LastAccessedLectureID, cp.LastPlayedTimestamp,
			cp.Status, cp.StartedAt, cp.LastAccessedAt, cp.CompletedAt).
		Suffix(`ON CONFLICT (user_id, course_id) DO UPDATE SET
			completed_lectures_count = EXCLUDED.completed_lectures_count,
			total_lectures = EXCLUDED.total_lectures,
			completion_percentage = EXCLUDED.completion_percentage,
			last_accessed_lecture_id = EXCLUDED.last_accessed_lecture_id,
			last_played_timestamp = EXCLUDED.last_played_timestamp,
			status = EXCLUDED.status,
			started_at = EXCLUDED.started_at,
			last_accessed_at = EXCLUDED.last_accessed_at,
			completed_at = EXCLUDED.completed_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert course progress SQL")
		return fmt.Errorf("failed to build upsert course progress query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing upsert course progress query")
		return fmt.Errorf("error upserting course progress: %w", err)
	}

	return nil
}

// ListCourseProgressByUser lists a user's course summaries joined with
// catalog titles, most recently accessed first.
func (r *ProgressRepository) ListCourseProgressByUser(ctx context.Context, userID int64) ([]*CourseProgressWithTitle, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.user_id", "p.course_id", "p.completed_lectures_count", "p.total_lectures",
		"p.completion_percentage", "p.last_accessed_lecture_id", "p.last_played_timestamp",
		"p.status", "p.started_at", "p.last_accessed_at", "p.completed_at", "c.title").
		From("user_course_progress p").
		Join("courses c ON c.id = p.course_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("p.last_accessed_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list course progress SQL")
		return nil, fmt.Errorf("failed to build list course progress query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list course progress query")
		return nil, fmt.Errorf("error querying course progress: %w", err)
	}
	defer rows.Close()

	items := []*CourseProgressWithTitle{}
	for rows.Next() {
		item := &CourseProgressWithTitle{}
		err := rows.Scan(&item.ID, &item.UserID, &item.CourseID, &item.CompletedLecturesCount,
			&item.TotalLectures, &item.CompletionPercentage, &item.LastAccessedLectureID,
			&item.LastPlayedTimestamp, &item.Status, &item.StartedAt, &item.LastAccessedAt,
			&item.CompletedAt, &item.CourseTitle)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course progress row")
			return nil, fmt.Errorf("error scanning course progress row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course progress rows")
		return nil, fmt.Errorf("error iterating course progress rows: %w", err)
	}

	return items, nil
}
