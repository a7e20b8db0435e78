package usecase

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/k-abishek/online-shopping/internal/domain"
	"github.com/k-abishek/online-shopping/internal/session"
)

// AuthUseCase runs the login and logout flows over an Authenticator and the
// session manager.
type AuthUseCase interface {
	Login(creds domain.Credentials) (domain.Role, error)
	Logout() error
	Current() domain.Session
}

type authUseCase struct {
	authenticator domain.Authenticator
	sessions      *session.Manager
	log           *logrus.Logger
}

func NewAuthUseCase(authenticator domain.Authenticator, sessions *session.Manager, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		authenticator: authenticator,
		sessions:      sessions,
		log:           logger,
	}
}

// Login authenticates the credentials and, on success, persists the session
// for the resolved role. Validation failures write nothing.
func (uc *authUseCase) Login(creds domain.Credentials) (domain.Role, error) {
	role, err := uc.authenticator.Authenticate(creds)
	if err != nil {
		uc.log.Warnf("Use Case: Login rejected for user '%s': %v", creds.Username, err)
		return "", err
	}

	if err := uc.sessions.Login(role); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	uc.log.Infof("Use Case: Login succeeded for user '%s' with role '%s'", creds.Username, role)
	return role, nil
}

func (uc *authUseCase) Logout() error {
	return uc.sessions.Logout()
}

func (uc *authUseCase) Current() domain.Session {
	return uc.sessions.Current()
}

// staticAuthenticator resolves roles against a single configured admin
// credential pair: a match grants admin, any other non-empty pair grants the
// shopper role. The admin password is kept only as a bcrypt hash.
type staticAuthenticator struct {
	adminUsername string
	adminHash     []byte
	log           *logrus.Logger
}

// NewStaticAuthenticator hashes the configured admin password up front.
func NewStaticAuthenticator(adminUsername, adminPassword string, logger *logrus.Logger) (domain.Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &staticAuthenticator{
		adminUsername: adminUsername,
		adminHash:     hash,
		log:           logger,
	}, nil
}

func (a *staticAuthenticator) Authenticate(creds domain.Credentials) (domain.Role, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", domain.ErrMissingCredentials
	}

	if creds.Username == a.adminUsername {
		if err := bcrypt.CompareHashAndPassword(a.adminHash, []byte(creds.Password)); err == nil {
			return domain.RoleAdmin, nil
		}
		a.log.Warnf("Authenticator: Wrong password for admin username '%s', treating as shopper", creds.Username)
	}

	return domain.RoleUser, nil
}
