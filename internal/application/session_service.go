// internal/application/session_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
	"github.com/zamgas/zamgas-client/internal/ports"
	"github.com/zamgas/zamgas-client/pkg/auth"
)

const (
	StorageKeyToken = "authToken"
	StorageKeyUser  = "user"
)

// Session is an immutable view of the auth state.
type Session struct {
	User  *domain.User
	Token string
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// SessionService owns the current user and token. Writers go to storage first and
// only then swap memory, so readers never see a state that was not persisted.
type SessionService struct {
	storage ports.StoragePort
	log     log.FieldLogger
	now     func() time.Time

	// writeMu serializes SetAuth, ClearAuth, UpdateUser and Restore.
	writeMu sync.Mutex
	mu      sync.RWMutex
	user    *domain.User
	token   string
}

func NewSessionService(storage ports.StoragePort, logger log.FieldLogger) *SessionService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &SessionService{
		storage: storage,
		log:     logger.WithField("component", "session"),
		now:     time.Now,
	}
}

func (s *SessionService) SetAuth(ctx context.Context, user *domain.User, token string) error {
	if user == nil || strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: user and token are required", domain.ErrInvalidSession)
	}
	if err := user.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.storage.SetItems(ctx, map[string]string{
		StorageKeyToken: token,
		StorageKeyUser:  string(data),
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.swap(user.Clone(), token)
	s.log.WithFields(log.Fields{"user_id": user.ID, "user_type": user.UserType}).Info("session stored")
	return nil
}

// ClearAuth is idempotent; clearing an empty session succeeds.
func (s *SessionService) ClearAuth(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.storage.RemoveItems(ctx, StorageKeyToken, StorageKeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.swap(nil, "")
	s.log.Debug("session cleared")
	return nil
}

// Restore loads the persisted session. Anything missing, malformed or expired
// leaves the service unauthenticated; it never fails.
func (s *SessionService) Restore(ctx context.Context) Session {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	user, token, reason := s.load(ctx)
	if reason != "" {
		s.swap(nil, "")
		if reason != "empty" && reason != "unreadable" {
			s.log.WithField("reason", reason).Warn("discarding stored session")
			if err := s.storage.RemoveItems(ctx, StorageKeyToken, StorageKeyUser); err != nil {
				s.log.WithError(err).Warn("failed to remove stale session")
			}
		}
		return Session{}
	}
	s.swap(user, token)
	return s.Snapshot()
}

func (s *SessionService) load(ctx context.Context) (*domain.User, string, string) {
	token, hasToken, err := s.storage.GetItem(ctx, StorageKeyToken)
	if err != nil {
		s.log.WithError(err).Warn("failed to read stored token")
		return nil, "", "unreadable"
	}
	raw, hasUser, err := s.storage.GetItem(ctx, StorageKeyUser)
	if err != nil {
		s.log.WithError(err).Warn("failed to read stored user")
		return nil, "", "unreadable"
	}
	switch {
	case !hasToken && !hasUser:
		return nil, "", "empty"
	case !hasToken || !hasUser || token == "":
		return nil, "", "partial"
	}

	user := &domain.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, "", "malformed user"
	}
	if err := user.Validate(); err != nil {
		return nil, "", "invalid user"
	}
	if auth.Expired(token, s.now()) {
		return nil, "", "expired token"
	}
	return user, token, ""
}

// UpdateUser applies patch to a copy of the current user and persists it.
func (s *SessionService) UpdateUser(ctx context.Context, patch func(*domain.User)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.Snapshot()
	if !cur.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	next := cur.User.Clone()
	patch(next)
	next.ID = cur.User.ID
	if err := next.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.SetItems(ctx, map[string]string{StorageKeyUser: string(data)}); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.swap(next, cur.Token)
	return nil
}

func (s *SessionService) swap(user *domain.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
}

// Snapshot returns user and token read under one lock.
func (s *SessionService) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{User: s.user.Clone(), Token: s.token}
}

func (s *SessionService) IsAuthenticated() bool { return s.Snapshot().IsAuthenticated() }

func (s *SessionService) User() *domain.User { return s.Snapshot().User }

// Token implements rest.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

// AdminRole is empty unless the current user is an admin.
func (s *SessionService) AdminRole() domain.AdminRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.user.IsAdmin() {
		return ""
	}
	return s.user.AdminRole
}

func (s *SessionService) HasPermission(permission string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.HasPermission(permission)
}

// HasAnyPermission is false for an empty list.
func (s *SessionService) HasAnyPermission(permissions ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range permissions {
		if s.user.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAllPermissions is true for an empty list.
func (s *SessionService) HasAllPermissions(permissions ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range permissions {
		if !s.user.HasPermission(p) {
			return false
		}
	}
	return true
}

// CanAccess gates a screen on a permission list. No permissions means open access.
func (s *SessionService) CanAccess(requireAll bool, permissions ...string) bool {
	if len(permissions) == 0 {
		return true
	}
	if requireAll {
		return s.HasAllPermissions(permissions...)
	}
	return s.HasAnyPermission(permissions...)
}
