package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is the minimal catalog record the progress aggregator needs.
// Lecture content itself lives in the content catalog; only the lecture
// count matters for completion percentages.
type Course struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TotalLectures int       `json:"total_lectures"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
