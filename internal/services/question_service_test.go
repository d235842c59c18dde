package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/soaringjerry/bemestar/internal/models"
)

func TestQuestionOptionsOnlyForMultipleChoice(t *testing.T) {
	svc := NewQuestionService(newStubStore(), Latency{})
	ctx := context.Background()

	env, err := svc.Create(ctx, QuestionInput{
		Text:     "Como você avalia a comunicação?",
		Type:     models.QuestionMultipleChoice,
		Options:  []string{" Sim", "", "Não "},
		Category: "Comunicação",
		Active:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if want := []string{"Sim", "Não"}; !reflect.DeepEqual(env.Data.Options, want) {
		t.Fatalf("options = %v, want %v", env.Data.Options, want)
	}

	scale := models.QuestionScale
	upd, err := svc.Update(ctx, env.Data.ID, QuestionPatch{Type: &scale})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Data.Options != nil {
		t.Fatalf("scale question kept options %v", upd.Data.Options)
	}

	text, err := svc.Create(ctx, QuestionInput{Text: "Comentários", Type: models.QuestionText, Options: []string{"a"}})
	if err != nil {
		t.Fatalf("create text: %v", err)
	}
	if text.Data.Options != nil {
		t.Fatalf("text question has options")
	}
}

func TestQuestionMultipleChoiceNeedsOptions(t *testing.T) {
	svc := NewQuestionService(newStubStore(), Latency{})
	_, err := svc.Create(context.Background(), QuestionInput{Text: "x", Type: models.QuestionMultipleChoice, Options: []string{" ", ""}})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid || se.Message != "question.options_required" {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := svc.Create(context.Background(), QuestionInput{Text: "x", Type: "slider"}); err == nil {
		t.Fatalf("expected invalid type error")
	}
}

func TestQuestionToggleTwiceRestores(t *testing.T) {
	store := newStubStore()
	store.AddQuestion(&models.Question{ID: "7", Text: "Há oportunidades de crescimento?", Type: models.QuestionScale, Category: "Desenvolvimento"})
	svc := NewQuestionService(store, Latency{})
	ctx := context.Background()

	first, err := svc.ToggleActive(ctx, "7")
	if err != nil || !first.Data.Active || first.Message != "question.activated" {
		t.Fatalf("first toggle: %+v %v", first, err)
	}
	second, err := svc.ToggleActive(ctx, "7")
	if err != nil || second.Data.Active || second.Message != "question.deactivated" {
		t.Fatalf("second toggle: %+v %v", second, err)
	}
	if _, err := svc.ToggleActive(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("toggle missing: %v", err)
	}
}

func TestQuestionGetActive(t *testing.T) {
	store := newStubStore()
	store.AddQuestion(&models.Question{ID: "1", Text: "a", Type: models.QuestionScale, Active: true})
	store.AddQuestion(&models.Question{ID: "2", Text: "b", Type: models.QuestionScale})
	store.AddQuestion(&models.Question{ID: "3", Text: "c", Type: models.QuestionText, Active: true})
	svc := NewQuestionService(store, Latency{})

	env, err := svc.GetActive(context.Background())
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	var ids []string
	for _, q := range env.Data {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "3"}) {
		t.Fatalf("active ids = %v", ids)
	}
}

func TestQuestionDeleteMissing(t *testing.T) {
	store := newStubStore()
	store.AddQuestion(&models.Question{ID: "1", Text: "a", Type: models.QuestionScale})
	svc := NewQuestionService(store, Latency{})
	if _, err := svc.Delete(context.Background(), "2"); !IsNotFound(err) {
		t.Fatalf("want not_found, got %v", err)
	}
	if len(store.questions) != 1 {
		t.Fatalf("store changed")
	}
}
