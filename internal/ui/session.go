package ui

import (
	"sync"

	"github.com/fundfeed/discovery-card/internal/model"
)

// DemoSession is an in-memory session provider for the demo host
type DemoSession struct {
	mu   sync.RWMutex
	user *model.User
}

// CurrentUser implements presenter.SessionProvider
func (s *DemoSession) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// LogIn sets the current user
func (s *DemoSession) LogIn(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// LogOut clears the current user
func (s *DemoSession) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// LoggedIn reports whether a user is present
func (s *DemoSession) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
