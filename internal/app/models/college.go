package models

import "time"

// College is a partner institution under a university. OfferedBranches
// holds ids of branches the college offers; every one of them must belong
// to the college's own university.
type College struct {
	ID               int64     `json:"id"`
	UniversityID     int64     `json:"university_id"`
	Name             string    `json:"name"`
	LogoURL          *string   `json:"logo_url,omitempty"`
	ChairmanName     string    `json:"chairman_name"`
	ChairmanPhotoURL *string   `json:"chairman_photo_url,omitempty"`
	ContactNumbers   []string  `json:"contact_numbers"`
	OfferedBranches  []int64   `json:"offered_branches"`
	IsPartnered      bool      `json:"is_partnered"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OffersBranch reports whether the given branch id is in the college's
// offered set.
func (c *College) OffersBranch(branchID int64) bool {
	for _, id := range c.OfferedBranches {
		if id == branchID {
			return true
		}
	}
	return false
}
