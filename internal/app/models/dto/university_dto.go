package dto

// CreateUniversityRequest represents university creation data
type CreateUniversityRequest struct {
	Name             string   `json:"name" binding:"required"`
	LogoURL          *string  `json:"logo_url"`
	ChairmanName     string   `json:"chairman_name"`
	ChairmanPhotoURL *string  `json:"chairman_photo_url"`
	ContactNumbers   []string `json:"contact_numbers"`
}

// UpdateUniversityRequest represents university update data
type UpdateUniversityRequest struct {
	Name             string   `json:"name" binding:"required"`
	LogoURL          *string  `json:"logo_url"`
	ChairmanName     string   `json:"chairman_name"`
	ChairmanPhotoURL *string  `json:"chairman_photo_url"`
	ContactNumbers   []string `json:"contact_numbers"`
}

// UniversityListResponse represents a paginated list of universities
type UniversityListResponse struct {
	Universities interface{}    `json:"universities"`
	Pagination   PaginationInfo `json:"pagination"`
}
