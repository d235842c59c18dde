package api

import (
	"context"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

// AuthContext is the session the pages run under.
type AuthContext interface {
	State() models.AuthState
	Login(ctx context.Context, creds models.LoginCredentials) error
	Logout(ctx context.Context)
	HasRole(roles ...models.Role) bool
}

type CompanyService interface {
	GetAll(ctx context.Context) (services.Envelope[[]*models.Company], error)
	Create(ctx context.Context, in services.CompanyInput) (services.Envelope[*models.Company], error)
	Update(ctx context.Context, id string, p services.CompanyPatch) (services.Envelope[*models.Company], error)
	Delete(ctx context.Context, id string) (services.Envelope[any], error)
}

type UserService interface {
	GetAll(ctx context.Context) (services.Envelope[[]*models.User], error)
	Create(ctx context.Context, in services.UserInput) (services.Envelope[*models.User], error)
	Update(ctx context.Context, id string, p services.UserPatch) (services.Envelope[*models.User], error)
	Delete(ctx context.Context, id string) (services.Envelope[any], error)
}

type QuestionService interface {
	GetAll(ctx context.Context) (services.Envelope[[]*models.Question], error)
	GetActive(ctx context.Context) (services.Envelope[[]*models.Question], error)
	Create(ctx context.Context, in services.QuestionInput) (services.Envelope[*models.Question], error)
	Update(ctx context.Context, id string, p services.QuestionPatch) (services.Envelope[*models.Question], error)
	Delete(ctx context.Context, id string) (services.Envelope[any], error)
	ToggleActive(ctx context.Context, id string) (services.Envelope[*models.Question], error)
}

type QuestionnaireService interface {
	GetAll(ctx context.Context) (services.Envelope[[]*models.Questionnaire], error)
	GetByID(ctx context.Context, id string) (services.Envelope[*models.Questionnaire], error)
	GetPending(ctx context.Context, userID string) (services.Envelope[[]*models.Questionnaire], error)
	Create(ctx context.Context, in services.QuestionnaireInput) (services.Envelope[*models.Questionnaire], error)
	Update(ctx context.Context, id string, p services.QuestionnairePatch) (services.Envelope[*models.Questionnaire], error)
	Delete(ctx context.Context, id string) (services.Envelope[any], error)
	SubmitResponse(ctx context.Context, in services.ResponseInput) (services.Envelope[*models.QuestionnaireResponse], error)
	ExportResponsesCSV(ctx context.Context, questionnaireID string) ([]byte, error)
	Summary(ctx context.Context, questionnaireID string) (services.Envelope[*services.ResponseSummary], error)
}

var (
	_ CompanyService       = (*services.CompanyService)(nil)
	_ UserService          = (*services.UserService)(nil)
	_ QuestionService      = (*services.QuestionService)(nil)
	_ QuestionnaireService = (*services.QuestionnaireService)(nil)
)
