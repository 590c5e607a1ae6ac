package appstate

import (
	"sync"

	"github.com/evgsol/eventhub/internal/domain"
)

// Session tracks the logged-in attendee and the admin flag. The two are
// independent auth domains: admin access is a bare flag, not a User record.
type Session struct {
	mu    sync.Mutex
	user  *domain.User
	admin bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Login(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns a copy of the attendee identity, or nil when not logged in.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *Session) GrantAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = true
}

func (s *Session) RevokeAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = false
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}
