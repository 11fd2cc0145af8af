package models

import "time"

// BranchStatus is the lifecycle state of a branch.
type BranchStatus string

const (
	BranchStatusActive   BranchStatus = "active"
	BranchStatusInactive BranchStatus = "inactive"
)

// Branch is a field of study offered by a university. Branches are owned
// by exactly one university and are never owned by a college; a college
// only references a subset of its university's branches.
type Branch struct {
	ID           int64        `json:"id"`
	UniversityID int64        `json:"university_id"`
	Name         string       `json:"name"`
	Code         string       `json:"code"`
	Description  *string      `json:"description,omitempty"`
	Status       BranchStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
