package api

import (
	"net/http"
	"strings"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

// filterCompanies matches name case-insensitively or the CNPJ as typed.
func filterCompanies(cs []*models.Company, search string) []*models.Company {
	if search == "" {
		return cs
	}
	needle := strings.ToLower(search)
	out := make([]*models.Company, 0, len(cs))
	for _, c := range cs {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.CNPJ, search) {
			out = append(out, c)
		}
	}
	return out
}

func (rt *Router) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	env, err := rt.companies.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	env.Data = filterCompanies(env.Data, r.URL.Query().Get("search"))
	writeEnvelope(w, r, http.StatusOK, env)
}

// relistCompanies answers a mutation with the refreshed collection and the
// mutation's message.
func (rt *Router) relistCompanies(w http.ResponseWriter, r *http.Request, status int, msg string) {
	env, err := rt.companies.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	env.Message = msg
	writeEnvelope(w, r, status, env)
}

func (rt *Router) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var d CompanyDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.companies.Create(r.Context(), d.Input())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistCompanies(w, r, http.StatusCreated, res.Message)
}

func (rt *Router) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var d CompanyDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.CNPJ) == "" {
		rt.writeError(w, r, services.NewInvalidError("company.required"))
		return
	}
	res, err := rt.companies.Update(r.Context(), r.PathValue("id"), d.Patch())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistCompanies(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	res, err := rt.companies.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistCompanies(w, r, http.StatusOK, res.Message)
}
