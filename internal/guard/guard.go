// Package guard decides whether a request may reach a protected page.
package guard

import (
	"net/http"

	"github.com/soaringjerry/bemestar/internal/models"
)

type Decision int

const (
	Loading Decision = iota
	RedirectLogin
	RedirectUnauthorized
	Allow
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	case Allow:
		return "allow"
	}
	return "unknown"
}

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Evaluate checks loading first, then authentication, then the role. An
// empty required set admits any signed-in user.
func Evaluate(state models.AuthState, required models.RoleSet) Decision {
	if state.IsLoading {
		return Loading
	}
	if !state.IsAuthenticated || state.User == nil {
		return RedirectLogin
	}
	if !required.Empty() && !required.Contains(state.User.Role) {
		return RedirectUnauthorized
	}
	return Allow
}

// StateSource yields the current auth state.
type StateSource interface {
	State() models.AuthState
}

// Require guards next. The original target is not remembered on redirect.
func Require(src StateSource, roles ...models.Role) func(http.Handler) http.Handler {
	required := models.NewRoleSet(roles...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Evaluate(src.State(), required) {
			case Loading:
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusServiceUnavailable)
			case RedirectLogin:
				http.Redirect(w, r, LoginPath, http.StatusFound)
			case RedirectUnauthorized:
				http.Redirect(w, r, UnauthorizedPath, http.StatusFound)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
