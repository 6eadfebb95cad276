package applications

import "time"

// Status values an application moves through; transitions are admin-driven
// and only ever move forward.
type Status string

const (
	StatusSubmitted   Status = "Submitted"
	StatusUnderReview Status = "Under Review"
	StatusInterview   Status = "Interview"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
)

const DefaultIndustry = "Technology"

type Application struct {
	ID              int64     `json:"id"`
	TrackingID      string    `json:"tracking_id"`
	FounderName     string    `json:"founder_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	VentureName     string    `json:"venture_name"`
	Industry        string    `json:"industry"`
	PitchDeckKey    string    `json:"pitch_deck_key"`
	BusinessPlanKey string    `json:"business_plan_key,omitempty"`
	GDPRConsent     bool      `json:"gdpr_consent"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ApplicationList struct {
	Items []Application `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// FileInput carries the declared metadata of a file picked in the wizard,
// before any bytes reach the object store.
type FileInput struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Submission is the accumulated form record the wizard builds up across steps.
type Submission struct {
	FounderName  string     `json:"founder_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	VentureName  string     `json:"venture_name"`
	Industry     string     `json:"industry"`
	GDPRConsent  bool       `json:"gdpr_consent"`
	PitchDeck    *FileInput `json:"pitch_deck"`
	BusinessPlan *FileInput `json:"business_plan"`
}

// FileRefs holds the storage keys returned by the upload handler for the
// documents attached to a submission.
type FileRefs struct {
	PitchDeckKey    string `json:"pitch_deck_key"`
	BusinessPlanKey string `json:"business_plan_key"`
}

// StatusView is the public shape returned by the tracking lookup; it never
// exposes storage keys or contact details.
type StatusView struct {
	TrackingID  string    `json:"tracking_id"`
	VentureName string    `json:"venture_name"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
