package api

import (
	"log/slog"
	"net/http"

	"github.com/soaringjerry/bemestar/internal/guard"
	"github.com/soaringjerry/bemestar/internal/models"
)

type Deps struct {
	Auth           AuthContext
	Companies      CompanyService
	Users          UserService
	Questions      QuestionService
	Questionnaires QuestionnaireService
	Logger         *slog.Logger
	Version        string
}

type Router struct {
	auth           AuthContext
	companies      CompanyService
	users          UserService
	questions      QuestionService
	questionnaires QuestionnaireService
	log            *slog.Logger
	version        string
}

func NewRouter(d Deps) *Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		auth:           d.Auth,
		companies:      d.Companies,
		users:          d.Users,
		questions:      d.Questions,
		questionnaires: d.Questionnaires,
		log:            logger,
		version:        d.Version,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	admin := guard.Require(rt.auth, models.RoleAdmin)
	member := guard.Require(rt.auth)
	handle := func(pattern string, mw func(http.Handler) http.Handler, h http.HandlerFunc) {
		mux.Handle(pattern, mw(h))
	}

	mux.HandleFunc("GET /health", rt.handleHealth)
	mux.HandleFunc("GET /{$}", rt.handleRoot)
	mux.HandleFunc("GET /login", rt.handleLoginPage)
	mux.HandleFunc("POST /login", rt.handleLogin)
	mux.HandleFunc("POST /logout", rt.handleLogout)
	mux.HandleFunc("GET /unauthorized", rt.handleUnauthorized)
	mux.HandleFunc("/", rt.handleNotFound)

	handle("GET /me", member, rt.handleMe)
	handle("GET /questionarios/pendentes", member, rt.handlePending)
	handle("POST /questionarios/{id}/respostas", member, rt.handleSubmitResponse)

	handle("GET /admin/empresas", admin, rt.handleListCompanies)
	handle("POST /admin/empresas", admin, rt.handleCreateCompany)
	handle("PUT /admin/empresas/{id}", admin, rt.handleUpdateCompany)
	handle("DELETE /admin/empresas/{id}", admin, rt.handleDeleteCompany)

	handle("GET /admin/usuarios", admin, rt.handleListUsers)
	handle("POST /admin/usuarios", admin, rt.handleCreateUser)
	handle("PUT /admin/usuarios/{id}", admin, rt.handleUpdateUser)
	handle("DELETE /admin/usuarios/{id}", admin, rt.handleDeleteUser)

	handle("GET /admin/perguntas", admin, rt.handleListQuestions)
	handle("POST /admin/perguntas", admin, rt.handleCreateQuestion)
	handle("PUT /admin/perguntas/{id}", admin, rt.handleUpdateQuestion)
	handle("DELETE /admin/perguntas/{id}", admin, rt.handleDeleteQuestion)
	handle("POST /admin/perguntas/{id}/toggle", admin, rt.handleToggleQuestion)

	handle("GET /admin/questionarios", admin, rt.handleListQuestionnaires)
	handle("GET /admin/questionarios/form", admin, rt.handleQuestionnaireForm)
	handle("GET /admin/questionarios/{id}", admin, rt.handleGetQuestionnaire)
	handle("POST /admin/questionarios", admin, rt.handleCreateQuestionnaire)
	handle("PUT /admin/questionarios/{id}", admin, rt.handleUpdateQuestionnaire)
	handle("DELETE /admin/questionarios/{id}", admin, rt.handleDeleteQuestionnaire)
	handle("GET /admin/questionarios/{id}/respostas.csv", admin, rt.handleExportResponses)
	handle("GET /admin/questionarios/{id}/resumo", admin, rt.handleSummary)
}

// Handler returns a fresh mux with every route registered.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	rt.Register(mux)
	return mux
}
