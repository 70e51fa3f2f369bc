// internal/cli/errors.go
package cli

import (
	"context"
	"errors"

	"github.com/zamgas/zamgas-client/internal/adapters/rest"
	"github.com/zamgas/zamgas-client/internal/domain"
)

// describe turns an error into the one line shown to the user.
func describe(err error, sessionExpired bool) string {
	var apiErr *rest.APIError
	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "you are not signed in, run `zamgas signin` first"
	case sessionExpired:
		return "your session has expired, please sign in again"
	case errors.Is(err, domain.ErrInvalidSession):
		return "the platform returned an account that cannot be used here (" + err.Error() + ")"
	case errors.Is(err, domain.ErrForbidden) && !errors.As(err, &apiErr):
		return "your account is not allowed to do that"
	case errors.Is(err, domain.ErrNetwork):
		return "cannot reach the ZAMGAS servers, check your connection and try again"
	case rest.IsRetryable(err):
		return "the ZAMGAS servers had a problem, please try again shortly"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	}
	return err.Error()
}
