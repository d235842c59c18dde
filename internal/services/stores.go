package services

import "github.com/soaringjerry/bemestar/internal/models"

// Store ports. Getters return nil when the id is unknown; Update and Delete
// report false when there was nothing to change. Implementations own the
// records they hold and hand out copies.

type CompanyStore interface {
	ListCompanies() []*models.Company
	GetCompany(id string) *models.Company
	AddCompany(c *models.Company)
	UpdateCompany(c *models.Company) bool
	DeleteCompany(id string) bool
}

type QuestionStore interface {
	ListQuestions() []*models.Question
	GetQuestion(id string) *models.Question
	AddQuestion(q *models.Question)
	UpdateQuestion(q *models.Question) bool
	DeleteQuestion(id string) bool
}

type QuestionnaireStore interface {
	ListQuestionnaires() []*models.Questionnaire
	GetQuestionnaire(id string) *models.Questionnaire
	AddQuestionnaire(q *models.Questionnaire)
	UpdateQuestionnaire(q *models.Questionnaire) bool
	DeleteQuestionnaire(id string) bool

	AddResponse(r *models.QuestionnaireResponse)
	ListResponses(questionnaireID string) []*models.QuestionnaireResponse
}

type UserStore interface {
	ListUsers() []*models.User
	GetUser(id string) *models.User
	FindUserByEmail(email string) *models.User
	AddUser(u *models.User)
	UpdateUser(u *models.User) bool
	DeleteUser(id string) bool
}
