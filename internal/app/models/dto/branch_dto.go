package dto

// CreateBranchRequest represents branch creation data. UniversityID is
// immutable after creation; there is no corresponding update field.
type CreateBranchRequest struct {
	UniversityID int64   `json:"university_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Code         string  `json:"code" binding:"required"`
	Description  *string `json:"description"`
}

// UpdateBranchRequest represents branch update data
type UpdateBranchRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description"`
}

// UpdateBranchStatusRequest toggles a branch between active and inactive
type UpdateBranchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}
