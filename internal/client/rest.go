package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/handler/dto"
)

const adminKeyHeader = "X-Admin-Key"

// REST implements the appstate backend port over the EventHub HTTP API.
// Failed calls are not retried; the state layer decides how to recover.
type REST struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	adminKey string
}

func New(baseURL string, timeout time.Duration) *REST {
	return &REST{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *REST) ListEvents(ctx context.Context, viewerID string) ([]*domain.Event, error) {
	path := "/api/events"
	if viewerID != "" {
		path += "?viewer_id=" + url.QueryEscape(viewerID)
	}

	var events []*domain.Event
	if err := c.do(ctx, http.MethodGet, path, nil, &events); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (c *REST) CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	req := dto.CreateEventRequest{
		Title:       form.Title,
		Description: form.Description,
		EventDate:   form.EventDate.Format(time.RFC3339),
		Location:    form.Location,
		Category:    form.Category,
		Capacity:    form.Capacity,
		ImageURL:    form.ImageURL,
	}

	var event domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", req, &event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

func (c *REST) DeleteEvent(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (c *REST) RescheduleEvent(ctx context.Context, id string, date time.Time) error {
	req := dto.RescheduleEventRequest{EventDate: date.Format(time.RFC3339)}
	if err := c.do(ctx, http.MethodPatch, "/api/events/"+id, req, nil); err != nil {
		return fmt.Errorf("reschedule event: %w", err)
	}
	return nil
}

func (c *REST) Register(ctx context.Context, eventID string, contact domain.Contact) error {
	req := dto.RegisterRequest{
		UserID: contact.UserID,
		Name:   contact.Name,
		Email:  contact.Email,
		Phone:  contact.Phone,
	}
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/register", req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *REST) ListApplications(ctx context.Context) ([]*domain.Application, error) {
	var apps []*domain.Application
	if err := c.do(ctx, http.MethodGet, "/api/applications", nil, &apps); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (c *REST) UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	req := dto.UpdateApplicationStatusRequest{Status: string(status)}
	if err := c.doWith(ctx, http.MethodPatch, "/api/applications/"+id, req, nil, domain.ErrApplicationNotFound); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// AdminLogin verifies the credential and, on success, remembers it as the
// admin key sent with content-management calls.
func (c *REST) AdminLogin(ctx context.Context, password string) error {
	req := dto.AdminLoginRequest{Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", req, nil); err != nil {
		return fmt.Errorf("admin login: %w", err)
	}

	c.mu.Lock()
	c.adminKey = password
	c.mu.Unlock()

	return nil
}

func (c *REST) do(ctx context.Context, method, path string, body, out any) error {
	return c.doWith(ctx, method, path, body, out, domain.ErrEventNotFound)
}

func (c *REST) doWith(ctx context.Context, method, path string, body, out any, notFound error) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	if c.adminKey != "" {
		req.Header.Set(adminKeyHeader, c.adminKey)
	}
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp, notFound)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response, notFound error) error {
	var body dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return notFound
	case http.StatusUnauthorized:
		return domain.ErrInvalidAdminKey
	case http.StatusConflict:
		return domain.ErrAlreadyApplied
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	default:
		return fmt.Errorf("backend: %s", msg)
	}
}
