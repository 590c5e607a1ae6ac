package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusConfirmed ApplicationStatus = "confirmed"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusConfirmed, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	EventTitle string            `json:"event_title"`
	UserID     string            `json:"user_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Contact is what an attendee submits when registering for an event.
type Contact struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}
