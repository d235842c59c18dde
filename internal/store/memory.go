package store

import (
	"strings"
	"sync"

	"github.com/soaringjerry/bemestar/internal/models"
)

// MemoryStore is the process-wide repository behind every domain service.
// Records are copied on the way in and on the way out, so callers never
// share state with the store. List order is insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	companies      map[string]*models.Company
	companyOrder   []string
	questions      map[string]*models.Question
	questionOrder  []string
	questionnaires map[string]*models.Questionnaire
	qnOrder        []string
	users          map[string]*models.User
	userOrder      []string
	responses      []*models.QuestionnaireResponse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:      map[string]*models.Company{},
		questions:      map[string]*models.Question{},
		questionnaires: map[string]*models.Questionnaire{},
		users:          map[string]*models.User{},
		responses:      []*models.QuestionnaireResponse{},
	}
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func (s *MemoryStore) ListCompanies() []*models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Company, 0, len(s.companyOrder))
	for _, id := range s.companyOrder {
		out = append(out, s.companies[id].Clone())
	}
	return out
}

func (s *MemoryStore) GetCompany(id string) *models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies[id].Clone()
}

func (s *MemoryStore) AddCompany(c *models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.companies[c.ID]; !exists {
		s.companyOrder = append(s.companyOrder, c.ID)
	}
	s.companies[c.ID] = c.Clone()
}

func (s *MemoryStore) UpdateCompany(c *models.Company) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[c.ID]; !ok {
		return false
	}
	s.companies[c.ID] = c.Clone()
	return true
}

func (s *MemoryStore) DeleteCompany(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return false
	}
	delete(s.companies, id)
	s.companyOrder = removeID(s.companyOrder, id)
	return true
}

func (s *MemoryStore) ListQuestions() []*models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Question, 0, len(s.questionOrder))
	for _, id := range s.questionOrder {
		out = append(out, s.questions[id].Clone())
	}
	return out
}

func (s *MemoryStore) GetQuestion(id string) *models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions[id].Clone()
}

func (s *MemoryStore) AddQuestion(q *models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.questions[q.ID]; !exists {
		s.questionOrder = append(s.questionOrder, q.ID)
	}
	s.questions[q.ID] = q.Clone()
}

func (s *MemoryStore) UpdateQuestion(q *models.Question) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[q.ID]; !ok {
		return false
	}
	s.questions[q.ID] = q.Clone()
	return true
}

func (s *MemoryStore) DeleteQuestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[id]; !ok {
		return false
	}
	delete(s.questions, id)
	s.questionOrder = removeID(s.questionOrder, id)
	return true
}

func (s *MemoryStore) ListQuestionnaires() []*models.Questionnaire {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Questionnaire, 0, len(s.qnOrder))
	for _, id := range s.qnOrder {
		out = append(out, s.questionnaires[id].Clone())
	}
	return out
}

func (s *MemoryStore) GetQuestionnaire(id string) *models.Questionnaire {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questionnaires[id].Clone()
}

func (s *MemoryStore) AddQuestionnaire(q *models.Questionnaire) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.questionnaires[q.ID]; !exists {
		s.qnOrder = append(s.qnOrder, q.ID)
	}
	s.questionnaires[q.ID] = q.Clone()
}

func (s *MemoryStore) UpdateQuestionnaire(q *models.Questionnaire) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questionnaires[q.ID]; !ok {
		return false
	}
	s.questionnaires[q.ID] = q.Clone()
	return true
}

// DeleteQuestionnaire keeps the questionnaire's responses; they can still be
// exported by id only while the questionnaire exists.
func (s *MemoryStore) DeleteQuestionnaire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questionnaires[id]; !ok {
		return false
	}
	delete(s.questionnaires, id)
	s.qnOrder = removeID(s.qnOrder, id)
	return true
}

func (s *MemoryStore) AddResponse(r *models.QuestionnaireResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, r.Clone())
}

func (s *MemoryStore) ListResponses(questionnaireID string) []*models.QuestionnaireResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.QuestionnaireResponse, 0, len(s.responses))
	for _, r := range s.responses {
		if r.QuestionnaireID == questionnaireID {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *MemoryStore) ListUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id].Clone())
	}
	return out
}

func (s *MemoryStore) GetUser(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id].Clone()
}

// FindUserByEmail matches exactly, after trimming surrounding spaces.
func (s *MemoryStore) FindUserByEmail(email string) *models.User {
	email = strings.TrimSpace(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Email == email {
			return u.Clone()
		}
	}
	return nil
}

func (s *MemoryStore) AddUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.ID]; !exists {
		s.userOrder = append(s.userOrder, u.ID)
	}
	s.users[u.ID] = u.Clone()
}

func (s *MemoryStore) UpdateUser(u *models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return false
	}
	s.users[u.ID] = u.Clone()
	return true
}

func (s *MemoryStore) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
	return true
}
