package dto

import "github.com/google/uuid"

// UpsertCourseRequest registers or refreshes a catalog course entry
type UpsertCourseRequest struct {
	ID            uuid.UUID `json:"id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	TotalLectures int       `json:"total_lectures" binding:"min=0"`
}
