package dto

import "github.com/google/uuid"

// RecordLectureEventRequest is a single playback event from the player.
// Reset must be set explicitly to accept a watched-seconds value below
// the stored one.
type RecordLectureEventRequest struct {
	CourseID       uuid.UUID `json:"course_id" binding:"required"`
	LectureID      uuid.UUID `json:"lecture_id" binding:"required"`
	WatchedSeconds int64     `json:"watched_seconds" binding:"min=0"`
	Completed      bool      `json:"completed"`
	Reset          bool      `json:"reset"`
}

// CourseProgressSummary is the read-projection listing screens consume.
type CourseProgressSummary struct {
	CourseID               uuid.UUID  `json:"course_id"`
	CourseTitle            string     `json:"course_title"`
	CompletionPercentage   int        `json:"completion_percentage"`
	Status                 string     `json:"status"`
	LastAccessedLectureID  *uuid.UUID `json:"last_accessed_lecture_id,omitempty"`
	LastPlayedTimestamp    int64      `json:"last_played_timestamp"`
	TotalLectures          int        `json:"total_lectures"`
	CompletedLecturesCount int        `json:"completed_lectures_count"`
}
