package dto

import (
	"time"

	"github.com/evgsol/eventhub/internal/domain"
)

type EventResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	EventDate          string `json:"event_date"`
	Location           string `json:"location"`
	Category           string `json:"category"`
	Capacity           int    `json:"capacity"`
	Attendees          int    `json:"attendees"`
	ImageURL           string `json:"image_url,omitempty"`
	Status             string `json:"status"`
	RegistrationStatus string `json:"registration_status,omitempty"`
	CreatedAt          string `json:"created_at"`
}

type ApplicationResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type RegistrationResponse struct {
	Applied     bool                 `json:"applied"`
	Application *ApplicationResponse `json:"application,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		EventDate:          e.EventDate.Format(time.RFC3339),
		Location:           e.Location,
		Category:           e.Category,
		Capacity:           e.Capacity,
		Attendees:          e.Attendees,
		ImageURL:           e.ImageURL,
		Status:             string(e.Status),
		RegistrationStatus: string(e.RegistrationStatus),
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
	}
}

func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:         a.ID,
		EventID:    a.EventID,
		EventTitle: a.EventTitle,
		UserID:     a.UserID,
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
