package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus is the per-(user, course) state machine state. Transitions
// only ever move forward: not_started -> in_progress -> completed.
type CourseStatus string

const (
	CourseStatusNotStarted CourseStatus = "not_started"
	CourseStatusInProgress CourseStatus = "in_progress"
	CourseStatusCompleted  CourseStatus = "completed"
)

// UserCourseProgress is the course-level progress summary, one row per
// (user, course). It is derived state: the aggregator recomputes counts
// and percentage from the lecture rows on every accepted event.
type UserCourseProgress struct {
	ID                     int64        `json:"id"`
	UserID                 int64        `json:"user_id"`
	CourseID               uuid.UUID    `json:"course_id"`
	CompletedLecturesCount int          `json:"completed_lectures_count"`
	TotalLectures          int          `json:"total_lectures"`
	CompletionPercentage   int          `json:"completion_percentage"`
	LastAccessedLectureID  *uuid.UUID   `json:"last_accessed_lecture_id,omitempty"`
	LastPlayedTimestamp    int64        `json:"last_played_timestamp"`
	Status                 CourseStatus `json:"status"`
	StartedAt              *time.Time   `json:"started_at,omitempty"`
	LastAccessedAt         time.Time    `json:"last_accessed_at"`
	CompletedAt            *time.Time   `json:"completed_at,omitempty"`
}

// UserLectureProgress is the lecture-level watch record, one row per
// (user, course, lecture). WatchedDurationSeconds is monotonically
// non-decreasing and IsCompleted flips false -> true exactly once.
type UserLectureProgress struct {
	ID                     int64     `json:"id"`
	UserID                 int64     `json:"user_id"`
	CourseID               uuid.UUID `json:"course_id"`
	LectureID              uuid.UUID `json:"lecture_id"`
	WatchedDurationSeconds int64     `json:"watched_duration_seconds"`
	IsCompleted            bool      `json:"is_completed"`
	LastWatchedAt          time.Time `json:"last_watched_at"`
}
