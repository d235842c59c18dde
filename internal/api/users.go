package api

import (
	"net/http"
	"strings"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

func filterUsers(us []*models.User, search, role string) []*models.User {
	needle := strings.ToLower(search)
	out := make([]*models.User, 0, len(us))
	for _, u := range us {
		if role != "" && role != "all" && string(u.Role) != role {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(u.Name), needle) && !strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (rt *Router) handleListUsers(w http.ResponseWriter, r *http.Request) {
	env, err := rt.users.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	env.Data = filterUsers(env.Data, q.Get("search"), q.Get("role"))
	writeEnvelope(w, r, http.StatusOK, env)
}

func (rt *Router) relistUsers(w http.ResponseWriter, r *http.Request, status int, msg string) {
	env, err := rt.users.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	env.Message = msg
	writeEnvelope(w, r, status, env)
}

func (rt *Router) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var d UserDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.users.Create(r.Context(), d.Input())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistUsers(w, r, http.StatusCreated, res.Message)
}

func (rt *Router) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var d UserDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Email) == "" {
		rt.writeError(w, r, services.NewInvalidError("user.required"))
		return
	}
	res, err := rt.users.Update(r.Context(), r.PathValue("id"), d.Patch())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistUsers(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := rt.users.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistUsers(w, r, http.StatusOK, res.Message)
}
