package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

func filterQuestionnaires(qs []*models.Questionnaire, search, status string) []*models.Questionnaire {
	needle := strings.ToLower(search)
	out := make([]*models.Questionnaire, 0, len(qs))
	for _, q := range qs {
		if needle != "" && !strings.Contains(strings.ToLower(q.Title), needle) {
			continue
		}
		if status != "" && status != "all" && string(q.Status) != status {
			continue
		}
		out = append(out, q)
	}
	return out
}

type categoryGroup struct {
	Category  string             `json:"category"`
	Questions []*models.Question `json:"questions"`
}

// questionnaireForm is what the create/edit dialog needs: selectable
// questions grouped by category and the companies to assign.
type questionnaireForm struct {
	Groups    []categoryGroup   `json:"groups"`
	Companies []*models.Company `json:"companies"`
}

func groupByCategory(qs []*models.Question) []categoryGroup {
	idx := map[string]int{}
	groups := []categoryGroup{}
	for _, q := range qs {
		i, ok := idx[q.Category]
		if !ok {
			i = len(groups)
			idx[q.Category] = i
			groups = append(groups, categoryGroup{Category: q.Category})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}
	return groups
}

func (rt *Router) handleListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	env, err := rt.questionnaires.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	env.Data = filterQuestionnaires(env.Data, q.Get("search"), q.Get("status"))
	writeEnvelope(w, r, http.StatusOK, env)
}

func (rt *Router) handleGetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	env, err := rt.questionnaires.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if env.Data == nil {
		rt.writeError(w, r, services.NewNotFoundError("questionnaire.not_found"))
		return
	}
	writeEnvelope(w, r, http.StatusOK, env)
}

func (rt *Router) handleQuestionnaireForm(w http.ResponseWriter, r *http.Request) {
	qs, err := rt.questions.GetActive(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	cs, err := rt.companies.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, services.Envelope[questionnaireForm]{
		Data:    questionnaireForm{Groups: groupByCategory(qs.Data), Companies: cs.Data},
		Success: true,
	})
}

func (rt *Router) relistQuestionnaires(w http.ResponseWriter, r *http.Request, status int, msg string) {
	env, err := rt.questionnaires.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	env.Message = msg
	writeEnvelope(w, r, status, env)
}

func (rt *Router) handleCreateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var d QuestionnaireDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	start, end, err := d.Validate()
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	active, err := rt.questions.GetActive(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	questions := ResolveQuestions(d.QuestionIDs, active.Data, nil)
	if len(questions) == 0 {
		rt.writeError(w, r, services.NewInvalidError("questionnaire.no_questions"))
		return
	}
	res, err := rt.questionnaires.Create(r.Context(), services.QuestionnaireInput{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Questions:   questions,
		StartDate:   start,
		EndDate:     end,
		Status:      d.status(),
		CompanyID:   d.CompanyID,
	})
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestionnaires(w, r, http.StatusCreated, res.Message)
}

func (rt *Router) handleUpdateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var d QuestionnaireDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	start, end, err := d.Validate()
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	id := r.PathValue("id")
	current, err := rt.questionnaires.GetByID(r.Context(), id)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if current.Data == nil {
		rt.writeError(w, r, services.NewNotFoundError("questionnaire.not_found"))
		return
	}
	active, err := rt.questions.GetActive(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	questions := ResolveQuestions(d.QuestionIDs, active.Data, current.Data.Questions)
	if len(questions) == 0 {
		rt.writeError(w, r, services.NewInvalidError("questionnaire.no_questions"))
		return
	}
	title := strings.TrimSpace(d.Title)
	desc := strings.TrimSpace(d.Description)
	status := d.status()
	res, err := rt.questionnaires.Update(r.Context(), id, services.QuestionnairePatch{
		Title:       &title,
		Description: &desc,
		Questions:   questions,
		StartDate:   &start,
		EndDate:     &end,
		Status:      &status,
		CompanyID:   &d.CompanyID,
	})
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestionnaires(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleDeleteQuestionnaire(w http.ResponseWriter, r *http.Request) {
	res, err := rt.questionnaires.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestionnaires(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleExportResponses(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, err := rt.questionnaires.ExportResponsesCSV(r.Context(), id)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=questionario-%s-respostas.csv", id))
	_, _ = w.Write(b)
}

func (rt *Router) handleSummary(w http.ResponseWriter, r *http.Request) {
	env, err := rt.questionnaires.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, env)
}
