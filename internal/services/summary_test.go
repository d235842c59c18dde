package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

func answer(qid, raw string) models.Answer {
	return models.Answer{QuestionID: qid, Value: json.RawMessage(raw)}
}

func TestSummaryAggregatesResponses(t *testing.T) {
	store := newStubStore()
	store.AddQuestionnaire(&models.Questionnaire{ID: "1", Status: models.StatusActive, Questions: []models.Question{
		{ID: "a", Type: models.QuestionScale},
		{ID: "b", Type: models.QuestionScale},
		{ID: "c", Type: models.QuestionMultipleChoice, Options: []string{"Bom", "Ruim"}},
		{ID: "d", Type: models.QuestionText},
	}})
	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	store.AddResponse(&models.QuestionnaireResponse{ID: "r1", QuestionnaireID: "1", SubmittedAt: day2, Sector: "TI",
		Answers: []models.Answer{answer("a", "5"), answer("b", `"4"`), answer("c", `"Bom"`), answer("d", `"ok"`)}})
	store.AddResponse(&models.QuestionnaireResponse{ID: "r2", QuestionnaireID: "1", SubmittedAt: day1, Sector: "RH",
		Answers: []models.Answer{answer("a", "1"), answer("b", "2"), answer("c", `"Talvez"`)}})
	store.AddResponse(&models.QuestionnaireResponse{ID: "r3", QuestionnaireID: "1", SubmittedAt: day1, Sector: "TI",
		Answers: []models.Answer{answer("a", "9")}})

	svc := NewQuestionnaireService(store, Latency{})
	env, err := svc.Summary(context.Background(), "1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	sum := env.Data
	if sum.TotalResponses != 3 {
		t.Fatalf("total = %d", sum.TotalResponses)
	}
	a := sum.Questions[0]
	if a.Total != 2 || a.Histogram[0] != 1 || a.Histogram[4] != 1 || a.Mean != 3 {
		t.Fatalf("scale a = %+v", a)
	}
	c := sum.Questions[2]
	if c.Total != 1 || c.Choices[0].Count != 1 || c.Choices[1].Count != 0 {
		t.Fatalf("choices c = %+v", c)
	}
	if d := sum.Questions[3]; d.Total != 1 || d.Histogram != nil || d.Choices != nil {
		t.Fatalf("text d = %+v", d)
	}
	if sum.N != 2 {
		t.Fatalf("alpha respondents = %d", sum.N)
	}
	if sum.Alpha <= 0 {
		t.Fatalf("alpha = %v", sum.Alpha)
	}
	if len(sum.Timeseries) != 2 || sum.Timeseries[0].Date != "2024-03-01" || sum.Timeseries[0].Count != 2 {
		t.Fatalf("timeseries = %+v", sum.Timeseries)
	}
	if len(sum.Sectors) != 2 || sum.Sectors[0].Sector != "RH" || sum.Sectors[1].Count != 2 {
		t.Fatalf("sectors = %+v", sum.Sectors)
	}
}

func TestSummaryMissingQuestionnaire(t *testing.T) {
	svc := NewQuestionnaireService(newStubStore(), Latency{})
	_, err := svc.Summary(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestSummaryWithoutResponses(t *testing.T) {
	store := newStubStore()
	store.AddQuestionnaire(&models.Questionnaire{ID: "1", Questions: []models.Question{{ID: "a", Type: models.QuestionScale}}})
	env, err := NewQuestionnaireService(store, Latency{}).Summary(context.Background(), "1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if env.Data.TotalResponses != 0 || env.Data.Alpha != 0 || env.Data.N != 0 || env.Data.Questions[0].Mean != 0 {
		t.Fatalf("empty summary = %+v", env.Data)
	}
	if env.Data.Timeseries == nil || env.Data.Sectors == nil {
		t.Fatalf("empty slices should not be nil")
	}
}
