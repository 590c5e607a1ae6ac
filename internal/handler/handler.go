package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error)
	List(ctx context.Context, viewerID string) ([]*domain.Event, error)
	Delete(ctx context.Context, id string) error
	Reschedule(ctx context.Context, id string, date time.Time) (*domain.Event, error)
}

type RegistrationSvc interface {
	Toggle(ctx context.Context, eventID string, contact domain.Contact) (*domain.Application, bool, error)
	List(ctx context.Context) ([]*domain.Application, error)
	SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	adminKey            string
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, adminKey string) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		adminKey:            adminKey,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("viewer_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	form := domain.EventForm{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Location:    req.Location,
		Category:    req.Category,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), form)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RescheduleEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RescheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.Reschedule(c.Request.Context(), id, eventDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contact := domain.Contact{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}

	app, applied, err := h.registrationService.Toggle(c.Request.Context(), eventID, contact)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.RegistrationResponse{Applied: applied}
	if app != nil {
		r := dto.ToApplicationResponse(app)
		resp.Application = &r
	}

	c.JSON(http.StatusOK, resp)
}

// Applications

func (h *Handler) ListApplications(c *ginext.Context) {
	apps, err := h.registrationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		resp = append(resp, dto.ToApplicationResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateApplicationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid application id"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.registrationService.SetStatus(
		c.Request.Context(), id, domain.ApplicationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

// Admin

func (h *Handler) AdminLogin(c *ginext.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminKey)) != 1 {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid admin key"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
