package api

import (
	"net/http"
	"strings"

	"github.com/soaringjerry/bemestar/internal/guard"
	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

type responseDraft struct {
	Answers []models.Answer `json:"answers"`
	Sector  string          `json:"sector"`
}

func (rt *Router) handlePending(w http.ResponseWriter, r *http.Request) {
	st := rt.auth.State()
	if st.User == nil {
		http.Redirect(w, r, guard.LoginPath, http.StatusFound)
		return
	}
	env, err := rt.questionnaires.GetPending(r.Context(), st.User.ID)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, env)
}

// handleSubmitResponse records answers. The sector defaults to the
// respondent's own.
func (rt *Router) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var d responseDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	sector := strings.TrimSpace(d.Sector)
	if sector == "" {
		if u := rt.auth.State().User; u != nil {
			sector = u.Sector
		}
	}
	env, err := rt.questionnaires.SubmitResponse(r.Context(), services.ResponseInput{
		QuestionnaireID: r.PathValue("id"),
		Answers:         d.Answers,
		Sector:          sector,
	})
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeEnvelope(w, r, http.StatusCreated, env)
}
