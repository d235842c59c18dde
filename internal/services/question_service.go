package services

import (
	"context"
	"strings"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

type QuestionInput struct {
	Text     string              `json:"text"`
	Type     models.QuestionType `json:"type"`
	Options  []string            `json:"options,omitempty"`
	Category string              `json:"category"`
	Active   bool                `json:"active"`
}

// QuestionPatch overwrites the non-nil fields. Options is applied as a
// whole when OptionsSet is true, so a patch can clear it.
type QuestionPatch struct {
	Text       *string
	Type       *models.QuestionType
	Options    []string
	OptionsSet bool
	Category   *string
	Active     *bool
}

type QuestionService struct {
	store   QuestionStore
	latency Latency
	now     func() time.Time
	idGen   func() string
}

func NewQuestionService(store QuestionStore, latency Latency) *QuestionService {
	return &QuestionService{
		store:   store,
		latency: latency,
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   func() string { return shortID(8) },
	}
}

func (s *QuestionService) GetAll(ctx context.Context) (Envelope[[]*models.Question], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.Question]{}, err
	}
	return ok(s.store.ListQuestions()), nil
}

// GetActive lists the questions that can be picked for a questionnaire.
func (s *QuestionService) GetActive(ctx context.Context) (Envelope[[]*models.Question], error) {
	if err := wait(ctx, s.latency.Filter); err != nil {
		return Envelope[[]*models.Question]{}, err
	}
	all := s.store.ListQuestions()
	out := make([]*models.Question, 0, len(all))
	for _, q := range all {
		if q.Active {
			out = append(out, q)
		}
	}
	return ok(out), nil
}

func (s *QuestionService) GetByID(ctx context.Context, id string) (Envelope[*models.Question], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*models.Question]{}, err
	}
	return ok(s.store.GetQuestion(id)), nil
}

func (s *QuestionService) Create(ctx context.Context, in QuestionInput) (Envelope[*models.Question], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Question]{}, err
	}
	q := &models.Question{
		ID:        s.idGen(),
		Text:      in.Text,
		Type:      in.Type,
		Options:   in.Options,
		Category:  in.Category,
		Active:    in.Active,
		CreatedAt: s.now(),
	}
	if err := normalizeQuestion(q); err != nil {
		return Envelope[*models.Question]{}, err
	}
	s.store.AddQuestion(q)
	return okMsg(q.Clone(), "question.created"), nil
}

func (s *QuestionService) Update(ctx context.Context, id string, p QuestionPatch) (Envelope[*models.Question], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Question]{}, err
	}
	q := s.store.GetQuestion(id)
	if q == nil {
		return Envelope[*models.Question]{}, NewNotFoundError("question.not_found")
	}
	if p.Text != nil {
		q.Text = *p.Text
	}
	if p.Type != nil {
		q.Type = *p.Type
	}
	if p.OptionsSet {
		q.Options = append([]string(nil), p.Options...)
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.Active != nil {
		q.Active = *p.Active
	}
	if err := normalizeQuestion(q); err != nil {
		return Envelope[*models.Question]{}, err
	}
	if !s.store.UpdateQuestion(q) {
		return Envelope[*models.Question]{}, NewNotFoundError("question.not_found")
	}
	return okMsg(q, "question.updated"), nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) (Envelope[any], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[any]{}, err
	}
	if !s.store.DeleteQuestion(id) {
		return Envelope[any]{}, NewNotFoundError("question.not_found")
	}
	return okMsg[any](nil, "question.deleted"), nil
}

// ToggleActive flips the active flag. Questionnaires that already embed
// the question keep their copy.
func (s *QuestionService) ToggleActive(ctx context.Context, id string) (Envelope[*models.Question], error) {
	if err := wait(ctx, s.latency.Filter); err != nil {
		return Envelope[*models.Question]{}, err
	}
	q := s.store.GetQuestion(id)
	if q == nil {
		return Envelope[*models.Question]{}, NewNotFoundError("question.not_found")
	}
	q.Active = !q.Active
	if !s.store.UpdateQuestion(q) {
		return Envelope[*models.Question]{}, NewNotFoundError("question.not_found")
	}
	msg := "question.deactivated"
	if q.Active {
		msg = "question.activated"
	}
	return okMsg(q, msg), nil
}

// normalizeQuestion enforces the options invariant: only multiple_choice
// questions carry options, and they must carry at least one.
func normalizeQuestion(q *models.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidError("question.text_required")
	}
	if _, err := models.ParseQuestionType(string(q.Type)); err != nil {
		return NewInvalidError("question.invalid_type")
	}
	if q.Type != models.QuestionMultipleChoice {
		q.Options = nil
		return nil
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		return NewInvalidError("question.options_required")
	}
	q.Options = opts
	return nil
}
