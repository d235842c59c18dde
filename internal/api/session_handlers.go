package api

import (
	"net/http"

	"github.com/soaringjerry/bemestar/internal/guard"
	"github.com/soaringjerry/bemestar/internal/middleware"
	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
	"github.com/soaringjerry/bemestar/internal/utils"
)

type meView struct {
	State     models.AuthState `json:"state"`
	RoleLabel string           `json:"roleLabel,omitempty"`
	Nav       []NavItem        `json:"nav"`
}

type loginResult struct {
	User     *models.User `json:"user"`
	Redirect string       `json:"redirect"`
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"name":    "Bem-Estar API",
		"locale":  locale,
		"msg":     utils.T(locale, "health.ok"),
		"version": rt.version,
	})
}

func (rt *Router) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, guard.LoginPath, http.StatusFound)
}

func (rt *Router) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusNotFound, "error.not_found")
}

func (rt *Router) handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusForbidden, "auth.forbidden")
}

// GET /login reports the current auth state so the form can decide
// whether to show itself.
func (rt *Router) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusOK, services.Envelope[models.AuthState]{Data: rt.auth.State(), Success: true})
}

func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginCredentials
	if err := decodeJSON(w, r, &creds); err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.auth.Login(r.Context(), creds); err != nil {
		rt.writeError(w, r, err)
		return
	}
	st := rt.auth.State()
	writeEnvelope(w, r, http.StatusOK, services.Envelope[loginResult]{
		Data:    loginResult{User: st.User, Redirect: homePath(rt.auth)},
		Success: true,
		Message: "auth.login_ok",
	})
}

func (rt *Router) handleLogout(w http.ResponseWriter, r *http.Request) {
	rt.auth.Logout(r.Context())
	writeEnvelope(w, r, http.StatusOK, services.Envelope[loginResult]{
		Data:    loginResult{Redirect: guard.LoginPath},
		Success: true,
		Message: "auth.logged_out",
	})
}

func (rt *Router) handleMe(w http.ResponseWriter, r *http.Request) {
	st := rt.auth.State()
	view := meView{State: st, Nav: visibleNav(rt.auth)}
	if st.User != nil {
		view.RoleLabel = st.User.Role.Label()
	}
	writeEnvelope(w, r, http.StatusOK, services.Envelope[meView]{Data: view, Success: true})
}
