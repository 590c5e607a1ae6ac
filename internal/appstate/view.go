package appstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/evgsol/eventhub/internal/appstate/ports"
)

type View string

const (
	ViewHome       View = "home"
	ViewAdminLogin View = "admin-login"
	ViewCMS        View = "cms"
	ViewDashboard  View = "user-dashboard"
)

// AdminFragment is the hidden URL-fragment entry point for the admin login
// screen. It is a navigation convenience only; authorization is enforced by
// the backend on every admin operation.
const AdminFragment = "#admin"

// ViewState is the four-state machine selecting the active screen. There is
// no terminal state; it runs for the lifetime of the session.
type ViewState struct {
	mu       sync.Mutex
	backend  ports.Backend
	session  *Session
	view     View
	fragment string
}

func NewViewState(backend ports.Backend, session *Session) *ViewState {
	return &ViewState{
		backend: backend,
		session: session,
		view:    ViewHome,
	}
}

func (v *ViewState) Current() View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

func (v *ViewState) Fragment() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fragment
}

// Resolve returns the view to display and whether access to it is allowed.
// Entering cms without admin access, or the dashboard without an attendee
// identity, yields allowed=false and the renderer shows the access-denied
// fallback instead of silently redirecting.
func (v *ViewState) Resolve() (View, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.view {
	case ViewCMS:
		return v.view, v.session.IsAdmin()
	case ViewDashboard:
		return v.view, v.session.User() != nil
	default:
		return v.view, true
	}
}

// SetFragment records the URL fragment; checked at startup and on every
// fragment change. "#admin" opens the admin login screen, anything else means
// the default state.
func (v *ViewState) SetFragment(fragment string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.fragment = fragment
	if fragment == AdminFragment && !v.session.IsAdmin() {
		v.view = ViewAdminLogin
	}
}

func (v *ViewState) GoHome() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = ViewHome
}

func (v *ViewState) OpenAdminLogin() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = ViewAdminLogin
}

func (v *ViewState) OpenDashboard() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = ViewDashboard
}

// LoginAdmin checks the credential against the backend and enters the cms
// state on success.
func (v *ViewState) LoginAdmin(ctx context.Context, password string) error {
	if err := v.backend.AdminLogin(ctx, password); err != nil {
		return fmt.Errorf("admin login: %w", err)
	}

	v.session.GrantAdmin()

	v.mu.Lock()
	v.view = ViewCMS
	v.mu.Unlock()

	return nil
}

// LogoutAdmin leaves the cms state and clears the fragment trigger.
func (v *ViewState) LogoutAdmin() {
	v.session.RevokeAdmin()

	v.mu.Lock()
	v.view = ViewHome
	v.fragment = ""
	v.mu.Unlock()
}

// LogoutUser ends the attendee session and returns home.
func (v *ViewState) LogoutUser() {
	v.session.Logout()

	v.mu.Lock()
	v.view = ViewHome
	v.mu.Unlock()
}
