package domain

import "errors"

// Role is the access level carried by a session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the typed view of the persisted login state. The zero value
// means "not logged in".
type Session struct {
	LoggedIn bool `json:"loggedIn"`
	Role     Role `json:"role"`
}

// Credentials is a username/password pair submitted by the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrMissingCredentials is returned when either field of the login form is
// empty. The login flow treats it as a validation error, not a failed login.
var ErrMissingCredentials = errors.New("username and password are required")

// Authenticator decides which role a credential pair maps to. The static
// implementation in usecase compares against hardcoded admin credentials;
// a real credential store can replace it without touching callers.
type Authenticator interface {
	Authenticate(creds Credentials) (Role, error)
}
