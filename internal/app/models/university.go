package models

import "time"

// University is the root of the tenant hierarchy. It owns zero or more
// branches and zero or more colleges.
type University struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	LogoURL          *string    `json:"logo_url,omitempty"`
	ChairmanName     string     `json:"chairman_name"`
	ChairmanPhotoURL *string    `json:"chairman_photo_url,omitempty"`
	ContactNumbers   []string   `json:"contact_numbers"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the university has been soft-deleted.
// Soft-deleted universities are invisible to hierarchy validation.
func (u *University) IsDeleted() bool {
	return u.DeletedAt != nil
}
