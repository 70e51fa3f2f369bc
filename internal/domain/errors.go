// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidTransition is returned when an action is not legal from the order's current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrReasonRequired is returned when an order is cancelled without a reason.
	ErrReasonRequired = errors.New("cancellation reason is required")

	// ErrTotalsMismatch is returned when grand_total does not match its components.
	ErrTotalsMismatch = errors.New("order totals mismatch")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidSession   = errors.New("invalid session")

	// ErrUnauthorized marks a 401 answer from the platform API.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork marks transport failures and request timeouts.
	ErrNetwork = errors.New("network error")

	ErrOrderNotFound  = errors.New("order not found")
	ErrAlreadyPolling = errors.New("deposit is already being polled")
	ErrValidation     = errors.New("validation failed")
)

// TransitionError describes a rejected order action.
type TransitionError struct {
	OrderID       string
	Action        Action
	Status        OrderStatus
	CourierStatus CourierStatus
}

func (e *TransitionError) Error() string {
	courier := string(e.CourierStatus)
	if courier == "" {
		courier = "unassigned"
	}
	return fmt.Sprintf("invalid transition: cannot %s order %s (status %s, courier %s)",
		e.Action, e.OrderID, e.Status, courier)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ValidationError collects client-side field problems found before any request is sent.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// Err returns nil when no field failed.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range sortedKeys(e.Fields) {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
