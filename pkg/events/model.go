package events

import "time"

type EventRegistration struct {
	ID           int64     `json:"id"`
	EventName    string    `json:"event_name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventRegistrationList struct {
	Items []EventRegistration `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
