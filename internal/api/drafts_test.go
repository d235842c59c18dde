package api

import (
	"reflect"
	"testing"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

func TestQuestionDraftOptions(t *testing.T) {
	d := QuestionDraft{Text: "Como está a comunicação?", Type: "multiple_choice", Options: " Sim, , Não ,", Category: "Comunicação"}
	if got, want := d.SplitOptions(), []string{"Sim", "Não"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("options = %v, want %v", got, want)
	}
	d.Type = "scale"
	if got := d.SplitOptions(); got != nil {
		t.Fatalf("scale options = %v", got)
	}
	d.Type = "multiple_choice"
	d.Options = " , ,"
	if got := d.SplitOptions(); len(got) != 0 {
		t.Fatalf("blank options = %v", got)
	}
	p := QuestionDraft{Type: "text", Options: "a,b"}.Patch()
	if !p.OptionsSet || p.Options != nil {
		t.Fatalf("text patch should clear options: %+v", p)
	}
}

func TestQuestionnaireDraftValidate(t *testing.T) {
	base := QuestionnaireDraft{Title: "Clima", QuestionIDs: []string{"1"}, StartDate: "2024-10-01", EndDate: "2024-12-31"}
	start, end, err := base.Validate()
	if err != nil {
		t.Fatalf("valid draft: %v", err)
	}
	if start.Format(dateLayout) != "2024-10-01" || end.Format(dateLayout) != "2024-12-31" {
		t.Fatalf("dates = %v %v", start, end)
	}

	cases := []struct {
		name string
		edit func(*QuestionnaireDraft)
		key  string
	}{
		{"blank title", func(d *QuestionnaireDraft) { d.Title = "  " }, "questionnaire.title_required"},
		{"no questions", func(d *QuestionnaireDraft) { d.QuestionIDs = nil }, "questionnaire.no_questions"},
		{"bad start", func(d *QuestionnaireDraft) { d.StartDate = "01/10/2024" }, "questionnaire.invalid_date"},
		{"missing end", func(d *QuestionnaireDraft) { d.EndDate = "" }, "questionnaire.invalid_date"},
		{"end before start", func(d *QuestionnaireDraft) { d.EndDate = "2024-09-30" }, "questionnaire.end_before_start"},
	}
	for _, tc := range cases {
		d := base
		tc.edit(&d)
		_, _, err := d.Validate()
		se, ok := services.AsServiceError(err)
		if !ok || se.Code != services.ErrorInvalid || se.Message != tc.key {
			t.Fatalf("%s: err = %v", tc.name, err)
		}
	}

	same := base
	same.EndDate = same.StartDate
	if _, _, err := same.Validate(); err != nil {
		t.Fatalf("same-day questionnaire rejected: %v", err)
	}
}

func TestResolveQuestions(t *testing.T) {
	active := []*models.Question{
		{ID: "1", Text: "a", Active: true},
		{ID: "2", Text: "b", Active: true},
		{ID: "5", Text: "e", Type: models.QuestionMultipleChoice, Options: []string{"X"}, Active: true},
	}
	existing := []models.Question{{ID: "7", Text: "old"}, {ID: "1", Text: "stale"}}

	got := ResolveQuestions([]string{"5", "7", "1", "99"}, active, existing)
	var ids []string
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "5", "7"}) {
		t.Fatalf("ids = %v", ids)
	}
	if got[0].Text != "a" {
		t.Fatalf("active copy should win over stale embedded copy")
	}
	got[1].Options[0] = "Y"
	if active[2].Options[0] != "X" {
		t.Fatalf("resolved question aliases the bank")
	}
}

func TestCompanyDraftDefaultsActive(t *testing.T) {
	if !(CompanyDraft{Name: "A", CNPJ: "1"}).Input().Active {
		t.Fatalf("company should default to active")
	}
	off := false
	if (CompanyDraft{Name: "A", CNPJ: "1", Active: &off}).Input().Active {
		t.Fatalf("explicit inactive ignored")
	}
}
