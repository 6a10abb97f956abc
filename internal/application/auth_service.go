package application

import (
	"slices"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

// AuthService checks a (username, password) pair against an injected
// allow-list and shared password. A successful login is the only path
// that arms the reminder timers.
type AuthService struct {
	allowedUsers []string
	password     string
	clock        ports.Clock
}

func NewAuthService(allowedUsers []string, password string, clock ports.Clock) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthService{
		allowedUsers: allowedUsers,
		password:     password,
		clock:        clock,
	}
}

// Login validates the credentials. On success it marks the session
// logged in and starts both reminder timers at the same instant; on
// failure the session is left untouched.
func (s *AuthService) Login(session *domain.Session, username, password string) error {
	if !slices.Contains(s.allowedUsers, username) || password != s.password {
		return domain.ErrInvalidCredentials
	}

	session.Arm(username, s.clock.Now())

	return nil
}
