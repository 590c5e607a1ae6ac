package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	ImageURL    string `json:"image_url"`
}

type RescheduleEventRequest struct {
	EventDate string `json:"event_date" binding:"required"`
}

type RegisterRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed rejected"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
