package session

import (
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

// Storage keys for the persisted session flags.
const (
	keyLoggedIn = "isLoggedIn"
	keyUserType = "userType"
)

// Manager is the typed session lifecycle over the raw key-value store:
// Login creates the session, Logout destroys it, Current reads it. There is
// no expiry; a persisted session stays valid until explicitly cleared.
type Manager struct {
	store Store
	log   *logrus.Logger
}

func NewManager(store Store, logger *logrus.Logger) *Manager {
	return &Manager{store: store, log: logger}
}

// Login persists the flags for the given role.
func (m *Manager) Login(role domain.Role) error {
	if err := m.store.Set(keyLoggedIn, "true"); err != nil {
		m.log.Errorf("Session: Failed to persist login flag: %v", err)
		return err
	}
	if err := m.store.Set(keyUserType, string(role)); err != nil {
		m.log.Errorf("Session: Failed to persist role: %v", err)
		return err
	}
	m.log.Infof("Session: Logged in with role '%s'", role)
	return nil
}

// Logout removes both flags. Safe to call when not logged in.
func (m *Manager) Logout() error {
	if err := m.store.Remove(keyLoggedIn); err != nil {
		m.log.Errorf("Session: Failed to clear login flag: %v", err)
		return err
	}
	if err := m.store.Remove(keyUserType); err != nil {
		m.log.Errorf("Session: Failed to clear role: %v", err)
		return err
	}
	m.log.Info("Session: Logged out")
	return nil
}

// Current returns the typed session derived from the persisted flags. Any
// missing or malformed flag reads as a logged-out session.
func (m *Manager) Current() domain.Session {
	loggedIn, ok := m.store.Get(keyLoggedIn)
	if !ok || loggedIn != "true" {
		return domain.Session{}
	}

	userType, ok := m.store.Get(keyUserType)
	if !ok {
		return domain.Session{}
	}

	role := domain.Role(userType)
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.Session{}
	}

	return domain.Session{LoggedIn: true, Role: role}
}
