package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is a person who can sign in to the console.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CompanyID string    `json:"companyId"`
	Sector    string    `json:"sector,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Company is an organization whose employees answer questionnaires.
// CNPJ is kept as typed by the operator; only presence is checked.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// QuestionType selects how a question is answered.
type QuestionType string

const (
	QuestionScale          QuestionType = "scale"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
)

func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionScale, QuestionMultipleChoice, QuestionText:
		return QuestionType(s), nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// Question lives in the reusable question bank. Options is only set for
// multiple_choice questions.
type Question struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Type      QuestionType `json:"type"`
	Options   []string     `json:"options,omitempty"`
	Category  string       `json:"category"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (q *Question) Clone() *Question {
	if q == nil {
		return nil
	}
	out := *q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	return &out
}

// QuestionnaireStatus is the publication state of a questionnaire.
type QuestionnaireStatus string

const (
	StatusDraft  QuestionnaireStatus = "draft"
	StatusActive QuestionnaireStatus = "active"
	StatusClosed QuestionnaireStatus = "closed"
)

func ParseQuestionnaireStatus(s string) (QuestionnaireStatus, error) {
	switch QuestionnaireStatus(s) {
	case StatusDraft, StatusActive, StatusClosed:
		return QuestionnaireStatus(s), nil
	}
	return "", fmt.Errorf("unknown questionnaire status %q", s)
}

// Questionnaire groups a snapshot of bank questions for one company.
// Questions are copies taken when the questionnaire was saved; later edits
// to the bank do not reach them.
type Questionnaire struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []Question          `json:"questions"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Status      QuestionnaireStatus `json:"status"`
	CompanyID   string              `json:"companyId"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func (q *Questionnaire) Clone() *Questionnaire {
	if q == nil {
		return nil
	}
	out := *q
	out.Questions = CloneQuestions(q.Questions)
	return &out
}

// CloneQuestions deep-copies a question slice, options included.
func CloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i := range qs {
		out[i] = *qs[i].Clone()
	}
	return out
}

// Answer holds one answered question. Value is either a JSON string or a
// JSON number.
type Answer struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
}

// String renders the answer value without JSON quoting.
func (a Answer) String() string {
	var s string
	if err := json.Unmarshal(a.Value, &s); err == nil {
		return s
	}
	return string(a.Value)
}

// QuestionnaireResponse is one submitted set of answers.
type QuestionnaireResponse struct {
	ID              string    `json:"id"`
	QuestionnaireID string    `json:"questionnaireId"`
	Answers         []Answer  `json:"answers"`
	SubmittedAt     time.Time `json:"submittedAt"`
	Sector          string    `json:"sector"`
}

func (r *QuestionnaireResponse) Clone() *QuestionnaireResponse {
	if r == nil {
		return nil
	}
	out := *r
	if r.Answers != nil {
		out.Answers = make([]Answer, len(r.Answers))
		for i, a := range r.Answers {
			out.Answers[i] = Answer{QuestionID: a.QuestionID, Value: append(json.RawMessage(nil), a.Value...)}
		}
	}
	return &out
}

// LoginCredentials is what the login form submits.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthState is the console's view of who is signed in.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}
