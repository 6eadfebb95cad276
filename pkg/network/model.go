package network

import "time"

const (
	RoleMentor   = "Mentor"
	RoleInvestor = "Investor"
)

const (
	StatusPendingReview = "Pending Review"
	StatusApproved      = "Approved"
	StatusDeclined      = "Declined"
)

type NetworkSignup struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ExpertiseAreas string    `json:"expertise_areas,omitempty"`
	CVKey          string    `json:"cv_key,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type NetworkSignupList struct {
	Items []NetworkSignup `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
