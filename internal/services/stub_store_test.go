package services

import "github.com/soaringjerry/bemestar/internal/models"

// stubStore keeps records in insertion order and copies on the way in and
// out, like the real repository.
type stubStore struct {
	companies      []*models.Company
	questions      []*models.Question
	questionnaires []*models.Questionnaire
	users          []*models.User
	responses      []*models.QuestionnaireResponse
}

func newStubStore() *stubStore { return &stubStore{} }

func (s *stubStore) ListCompanies() []*models.Company {
	out := make([]*models.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c.Clone())
	}
	return out
}

func (s *stubStore) GetCompany(id string) *models.Company {
	for _, c := range s.companies {
		if c.ID == id {
			return c.Clone()
		}
	}
	return nil
}

func (s *stubStore) AddCompany(c *models.Company) { s.companies = append(s.companies, c.Clone()) }

func (s *stubStore) UpdateCompany(c *models.Company) bool {
	for i := range s.companies {
		if s.companies[i].ID == c.ID {
			s.companies[i] = c.Clone()
			return true
		}
	}
	return false
}

func (s *stubStore) DeleteCompany(id string) bool {
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return true
		}
	}
	return false
}

func (s *stubStore) ListQuestions() []*models.Question {
	out := make([]*models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q.Clone())
	}
	return out
}

func (s *stubStore) GetQuestion(id string) *models.Question {
	for _, q := range s.questions {
		if q.ID == id {
			return q.Clone()
		}
	}
	return nil
}

func (s *stubStore) AddQuestion(q *models.Question) { s.questions = append(s.questions, q.Clone()) }

func (s *stubStore) UpdateQuestion(q *models.Question) bool {
	for i := range s.questions {
		if s.questions[i].ID == q.ID {
			s.questions[i] = q.Clone()
			return true
		}
	}
	return false
}

func (s *stubStore) DeleteQuestion(id string) bool {
	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return true
		}
	}
	return false
}

func (s *stubStore) ListQuestionnaires() []*models.Questionnaire {
	out := make([]*models.Questionnaire, 0, len(s.questionnaires))
	for _, q := range s.questionnaires {
		out = append(out, q.Clone())
	}
	return out
}

func (s *stubStore) GetQuestionnaire(id string) *models.Questionnaire {
	for _, q := range s.questionnaires {
		if q.ID == id {
			return q.Clone()
		}
	}
	return nil
}

func (s *stubStore) AddQuestionnaire(q *models.Questionnaire) {
	s.questionnaires = append(s.questionnaires, q.Clone())
}

func (s *stubStore) UpdateQuestionnaire(q *models.Questionnaire) bool {
	for i := range s.questionnaires {
		if s.questionnaires[i].ID == q.ID {
			s.questionnaires[i] = q.Clone()
			return true
		}
	}
	return false
}

func (s *stubStore) DeleteQuestionnaire(id string) bool {
	for i := range s.questionnaires {
		if s.questionnaires[i].ID == id {
			s.questionnaires = append(s.questionnaires[:i], s.questionnaires[i+1:]...)
			return true
		}
	}
	return false
}

func (s *stubStore) AddResponse(r *models.QuestionnaireResponse) {
	s.responses = append(s.responses, r.Clone())
}

func (s *stubStore) ListResponses(questionnaireID string) []*models.QuestionnaireResponse {
	var out []*models.QuestionnaireResponse
	for _, r := range s.responses {
		if r.QuestionnaireID == questionnaireID {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *stubStore) ListUsers() []*models.User {
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

func (s *stubStore) GetUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u.Clone()
		}
	}
	return nil
}

func (s *stubStore) FindUserByEmail(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return u.Clone()
		}
	}
	return nil
}

func (s *stubStore) AddUser(u *models.User) { s.users = append(s.users, u.Clone()) }

func (s *stubStore) UpdateUser(u *models.User) bool {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u.Clone()
			return true
		}
	}
	return false
}

func (s *stubStore) DeleteUser(id string) bool {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
