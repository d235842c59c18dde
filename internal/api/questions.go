package api

import (
	"net/http"
	"strings"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

// questionPage is the question bank table: the filtered rows plus counters
// and the category filter options, both computed over the whole bank.
type questionPage struct {
	Questions  []*models.Question `json:"questions"`
	Active     int                `json:"active"`
	Inactive   int                `json:"inactive"`
	Categories []string           `json:"categories"`
}

func buildQuestionPage(all []*models.Question, search, category string) questionPage {
	page := questionPage{Questions: make([]*models.Question, 0, len(all)), Categories: []string{}}
	seen := map[string]bool{}
	needle := strings.ToLower(search)
	for _, q := range all {
		if q.Active {
			page.Active++
		} else {
			page.Inactive++
		}
		if !seen[q.Category] {
			seen[q.Category] = true
			page.Categories = append(page.Categories, q.Category)
		}
		if needle != "" && !strings.Contains(strings.ToLower(q.Text), needle) {
			continue
		}
		if category != "" && category != "all" && q.Category != category {
			continue
		}
		page.Questions = append(page.Questions, q)
	}
	return page
}

func (rt *Router) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	env, err := rt.questions.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	writeEnvelope(w, r, http.StatusOK, services.Envelope[questionPage]{
		Data:    buildQuestionPage(env.Data, q.Get("search"), q.Get("category")),
		Success: true,
	})
}

func (rt *Router) relistQuestions(w http.ResponseWriter, r *http.Request, status int, msg string) {
	env, err := rt.questions.GetAll(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeEnvelope(w, r, status, services.Envelope[questionPage]{
		Data:    buildQuestionPage(env.Data, "", ""),
		Success: true,
		Message: msg,
	})
}

func (rt *Router) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var d QuestionDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.questions.Create(r.Context(), d.Input())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestions(w, r, http.StatusCreated, res.Message)
}

func (rt *Router) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var d QuestionDraft
	if err := decodeJSON(w, r, &d); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.questions.Update(r.Context(), r.PathValue("id"), d.Patch())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestions(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	res, err := rt.questions.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestions(w, r, http.StatusOK, res.Message)
}

func (rt *Router) handleToggleQuestion(w http.ResponseWriter, r *http.Request) {
	res, err := rt.questions.ToggleActive(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	rt.relistQuestions(w, r, http.StatusOK, res.Message)
}
