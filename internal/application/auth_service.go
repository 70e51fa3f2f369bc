// internal/application/auth_service.go
package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/ports"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Screens where a 401 is a failed login shown inline, not an expired session.
var loginPaths = []string{"/auth/signin", "/auth/signup", "/admin/login", "/admin/signin"}

type AuthService struct {
	api     ports.AuthAPIPort
	session *SessionService
	log     log.FieldLogger
}

func NewAuthService(api ports.AuthAPIPort, session *SessionService, logger log.FieldLogger) *AuthService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &AuthService{api: api, session: session, log: logger.WithField("component", "auth")}
}

func validateCredentials(email, password string) error {
	var v domain.ValidationError
	switch {
	case strings.TrimSpace(email) == "":
		v.Add("email", "is required")
	case !emailRegex.MatchString(strings.TrimSpace(email)):
		v.Add("email", "is not a valid address")
	}
	switch {
	case password == "":
		v.Add("password", "is required")
	case len(password) < minPasswordLength:
		v.Add("password", "must be at least 6 characters")
	}
	return v.Err()
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	user, token, err := s.api.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetAuth(ctx, user, token); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminLogin signs in through the admin endpoint. The result is always an admin.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	user, token, err := s.api.AdminLogin(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	admin := user.Clone()
	admin.UserType = domain.UserTypeAdmin
	if err := s.session.SetAuth(ctx, admin, token); err != nil {
		return nil, err
	}
	return admin, nil
}

// SignOut tells the platform best effort and always clears the local session.
func (s *AuthService) SignOut(ctx context.Context) error {
	if s.session.IsAuthenticated() {
		if err := s.api.SignOut(ctx); err != nil {
			s.log.WithError(err).Warn("remote sign out failed")
		}
	}
	return s.session.ClearAuth(ctx)
}

// RefreshAdminProfile reloads role and permissions of the signed-in admin, keeping
// the stored token.
func (s *AuthService) RefreshAdminProfile(ctx context.Context) (*domain.User, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if !s.session.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", domain.ErrForbidden)
	}
	fresh, err := s.api.AdminMe(ctx)
	if err != nil {
		return nil, err
	}
	err = s.session.UpdateUser(ctx, func(u *domain.User) {
		u.Name = fresh.Name
		u.Email = fresh.Email
		u.PhoneNumber = fresh.PhoneNumber
		u.AdminRole = fresh.AdminRole
		u.AdminPermissions = append([]string(nil), fresh.AdminPermissions...)
	})
	if err != nil {
		return nil, err
	}
	return s.session.User(), nil
}

// HandleUnauthorized reacts to a 401. It returns true when the caller should send
// the user to sign in, false on login screens where the error is shown in place.
func (s *AuthService) HandleUnauthorized(ctx context.Context, path string) bool {
	if IsLoginPath(path) {
		return false
	}
	if err := s.session.ClearAuth(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear session after 401")
	}
	s.log.WithField("path", path).Info("session expired")
	return true
}

func IsLoginPath(path string) bool {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	for _, p := range loginPaths {
		if path == p {
			return true
		}
	}
	return false
}
