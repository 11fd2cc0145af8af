package dto

// ActivatePartnerRequest selects the college whose branding should become active
type ActivatePartnerRequest struct {
	CollegeID int64 `json:"college_id" binding:"required"`
}

// PartnerStateResponse reports the current partner session state
type PartnerStateResponse struct {
	IsPartnerMode bool        `json:"is_partner_mode"`
	Context       interface{} `json:"context,omitempty"`
}

// StatsResponse carries entity counts for the admin dashboard
type StatsResponse struct {
	Universities      int64 `json:"universities"`
	Branches          int64 `json:"branches"`
	Colleges          int64 `json:"colleges"`
	PartneredColleges int64 `json:"partnered_colleges"`
	Courses           int64 `json:"courses"`
}
