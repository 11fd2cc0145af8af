package dto

// CreateCollegeRequest represents college creation data
type CreateCollegeRequest struct {
	UniversityID     int64    `json:"university_id" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	LogoURL          *string  `json:"logo_url"`
	ChairmanName     string   `json:"chairman_name"`
	ChairmanPhotoURL *string  `json:"chairman_photo_url"`
	ContactNumbers   []string `json:"contact_numbers"`
	OfferedBranches  []int64  `json:"offered_branches"`
	IsPartnered      bool     `json:"is_partnered"`
}

// UpdateCollegeRequest represents college update data
type UpdateCollegeRequest struct {
	Name             string   `json:"name" binding:"required"`
	LogoURL          *string  `json:"logo_url"`
	ChairmanName     string   `json:"chairman_name"`
	ChairmanPhotoURL *string  `json:"chairman_photo_url"`
	ContactNumbers   []string `json:"contact_numbers"`
	OfferedBranches  []int64  `json:"offered_branches"`
	IsPartnered      bool     `json:"is_partnered"`
}
