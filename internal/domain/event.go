package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusFuture    EventStatus = "future"
)

// RegistrationStatus is the per-viewer projection of an event: whether the
// viewing attendee has an application for it and in what state. It is computed
// per request and is never part of the canonical event record.
type RegistrationStatus string

const (
	RegistrationNone      RegistrationStatus = "none"
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationRejected  RegistrationStatus = "rejected"
)

type Event struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	EventDate          time.Time          `json:"event_date"`
	Location           string             `json:"location"`
	Category           string             `json:"category"`
	Capacity           int                `json:"capacity"`
	Attendees          int                `json:"attendees"`
	ImageURL           string             `json:"image_url,omitempty"`
	Status             EventStatus        `json:"status"`
	RegistrationStatus RegistrationStatus `json:"registration_status,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type EventForm struct {
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	Category    string
	Capacity    int
	ImageURL    string
}
