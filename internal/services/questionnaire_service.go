package services

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

type QuestionnaireInput struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Questions   []models.Question          `json:"questions"`
	StartDate   time.Time                  `json:"startDate"`
	EndDate     time.Time                  `json:"endDate"`
	Status      models.QuestionnaireStatus `json:"status"`
	CompanyID   string                     `json:"companyId"`
}

type QuestionnairePatch struct {
	Title       *string
	Description *string
	Questions   []models.Question
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *models.QuestionnaireStatus
	CompanyID   *string
}

// ResponseInput is a respondent's submission before it gets an id.
type ResponseInput struct {
	QuestionnaireID string          `json:"questionnaireId"`
	Answers         []models.Answer `json:"answers"`
	Sector          string          `json:"sector"`
}

type QuestionnaireService struct {
	store   QuestionnaireStore
	latency Latency
	now     func() time.Time
	idGen   func() string
}

func NewQuestionnaireService(store QuestionnaireStore, latency Latency) *QuestionnaireService {
	return &QuestionnaireService{
		store:   store,
		latency: latency,
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   func() string { return shortID(8) },
	}
}

func (s *QuestionnaireService) GetAll(ctx context.Context) (Envelope[[]*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.Questionnaire]{}, err
	}
	return ok(s.store.ListQuestionnaires()), nil
}

func (s *QuestionnaireService) GetActive(ctx context.Context) (Envelope[[]*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.Filter); err != nil {
		return Envelope[[]*models.Questionnaire]{}, err
	}
	return ok(s.active()), nil
}

// GetPending lists the questionnaires a user still has to answer. Answers
// are not tracked per user, so every active questionnaire is pending and
// userID is unused.
func (s *QuestionnaireService) GetPending(ctx context.Context, userID string) (Envelope[[]*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.Questionnaire]{}, err
	}
	return ok(s.active()), nil
}

func (s *QuestionnaireService) active() []*models.Questionnaire {
	all := s.store.ListQuestionnaires()
	out := make([]*models.Questionnaire, 0, len(all))
	for _, q := range all {
		if q.Status == models.StatusActive {
			out = append(out, q)
		}
	}
	return out
}

func (s *QuestionnaireService) GetByID(ctx context.Context, id string) (Envelope[*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*models.Questionnaire]{}, err
	}
	return ok(s.store.GetQuestionnaire(id)), nil
}

// Create stores the questionnaire with its own copy of the questions.
// CompanyID is not checked against the company repository.
func (s *QuestionnaireService) Create(ctx context.Context, in QuestionnaireInput) (Envelope[*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Questionnaire]{}, err
	}
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if _, err := models.ParseQuestionnaireStatus(string(status)); err != nil {
		return Envelope[*models.Questionnaire]{}, NewInvalidError("questionnaire.invalid_status")
	}
	q := &models.Questionnaire{
		ID:          s.idGen(),
		Title:       in.Title,
		Description: in.Description,
		Questions:   models.CloneQuestions(in.Questions),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		CompanyID:   in.CompanyID,
		CreatedAt:   s.now(),
	}
	if q.Questions == nil {
		q.Questions = []models.Question{}
	}
	s.store.AddQuestionnaire(q)
	return okMsg(q.Clone(), "questionnaire.created"), nil
}

func (s *QuestionnaireService) Update(ctx context.Context, id string, p QuestionnairePatch) (Envelope[*models.Questionnaire], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Questionnaire]{}, err
	}
	q := s.store.GetQuestionnaire(id)
	if q == nil {
		return Envelope[*models.Questionnaire]{}, NewNotFoundError("questionnaire.not_found")
	}
	if p.Status != nil {
		if _, err := models.ParseQuestionnaireStatus(string(*p.Status)); err != nil {
			return Envelope[*models.Questionnaire]{}, NewInvalidError("questionnaire.invalid_status")
		}
		q.Status = *p.Status
	}
	if p.Title != nil {
		q.Title = *p.Title
	}
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.Questions != nil {
		q.Questions = models.CloneQuestions(p.Questions)
	}
	if p.StartDate != nil {
		q.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		q.EndDate = *p.EndDate
	}
	if p.CompanyID != nil {
		q.CompanyID = *p.CompanyID
	}
	if !s.store.UpdateQuestionnaire(q) {
		return Envelope[*models.Questionnaire]{}, NewNotFoundError("questionnaire.not_found")
	}
	return okMsg(q, "questionnaire.updated"), nil
}

func (s *QuestionnaireService) Delete(ctx context.Context, id string) (Envelope[any], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[any]{}, err
	}
	if !s.store.DeleteQuestionnaire(id) {
		return Envelope[any]{}, NewNotFoundError("questionnaire.not_found")
	}
	return okMsg[any](nil, "questionnaire.deleted"), nil
}

// SubmitResponse records a respondent's answers. Only active questionnaires
// accept responses, and every answer must reference one of the
// questionnaire's embedded questions.
func (s *QuestionnaireService) SubmitResponse(ctx context.Context, in ResponseInput) (Envelope[*models.QuestionnaireResponse], error) {
	if err := wait(ctx, s.latency.Submit); err != nil {
		return Envelope[*models.QuestionnaireResponse]{}, err
	}
	q := s.store.GetQuestionnaire(in.QuestionnaireID)
	if q == nil {
		return Envelope[*models.QuestionnaireResponse]{}, NewNotFoundError("questionnaire.not_found")
	}
	if q.Status != models.StatusActive {
		return Envelope[*models.QuestionnaireResponse]{}, NewConflictError("questionnaire.not_active")
	}
	if len(in.Answers) == 0 {
		return Envelope[*models.QuestionnaireResponse]{}, NewInvalidError("response.answers_required")
	}
	known := make(map[string]models.Question, len(q.Questions))
	for _, qq := range q.Questions {
		known[qq.ID] = qq
	}
	for _, a := range in.Answers {
		qq, found := known[a.QuestionID]
		if !found {
			return Envelope[*models.QuestionnaireResponse]{}, NewInvalidError("response.unknown_question")
		}
		if !validAnswer(qq, a) {
			return Envelope[*models.QuestionnaireResponse]{}, NewInvalidError("response.invalid_value")
		}
	}
	r := &models.QuestionnaireResponse{
		ID:              s.idGen(),
		QuestionnaireID: q.ID,
		Answers:         in.Answers,
		SubmittedAt:     s.now(),
		Sector:          strings.TrimSpace(in.Sector),
	}
	r = r.Clone()
	s.store.AddResponse(r)
	return okMsg(r.Clone(), "response.submitted"), nil
}

func (s *QuestionnaireService) ListResponses(ctx context.Context, questionnaireID string) (Envelope[[]*models.QuestionnaireResponse], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.QuestionnaireResponse]{}, err
	}
	if s.store.GetQuestionnaire(questionnaireID) == nil {
		return Envelope[[]*models.QuestionnaireResponse]{}, NewNotFoundError("questionnaire.not_found")
	}
	return ok(s.store.ListResponses(questionnaireID)), nil
}

// ExportResponsesCSV renders the questionnaire's responses in long format.
func (s *QuestionnaireService) ExportResponsesCSV(ctx context.Context, questionnaireID string) ([]byte, error) {
	env, err := s.ListResponses(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	rows := make([]LongRow, 0, len(env.Data))
	for _, r := range env.Data {
		for _, a := range r.Answers {
			rows = append(rows, LongRow{
				ResponseID:      r.ID,
				QuestionnaireID: r.QuestionnaireID,
				QuestionID:      a.QuestionID,
				Value:           a.String(),
				Sector:          r.Sector,
				SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
			})
		}
	}
	return ExportLongCSV(rows)
}

// validAnswer checks a value against its question: scale answers are
// integers in 1..ScalePoints, multiple_choice answers one of the options,
// text answers any string or number.
func validAnswer(q models.Question, a models.Answer) bool {
	if !scalarJSON(a.Value) {
		return false
	}
	switch q.Type {
	case models.QuestionScale:
		v, err := strconv.Atoi(a.String())
		return err == nil && v >= 1 && v <= ScalePoints
	case models.QuestionMultipleChoice:
		return slices.Contains(q.Options, a.String())
	}
	return true
}

// scalarJSON accepts a JSON string or number.
func scalarJSON(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v.(type) {
	case string, float64:
		return true
	}
	return false
}
