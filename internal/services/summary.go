package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/soaringjerry/bemestar/internal/models"
)

// ScalePoints is the width of every scale question (1 to 5).
const ScalePoints = 5

type QuestionSummary struct {
	QuestionID string              `json:"questionId"`
	Text       string              `json:"text"`
	Type       models.QuestionType `json:"type"`
	Category   string              `json:"category"`
	Total      int                 `json:"total"`
	// Histogram counts scale answers 1..ScalePoints.
	Histogram []int   `json:"histogram,omitempty"`
	Mean      float64 `json:"mean,omitempty"`
	// Choices counts multiple_choice answers by option, in option order.
	Choices []ChoiceCount `json:"choices,omitempty"`
}

type ChoiceCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// ResponseSummary aggregates a questionnaire's responses. Alpha is
// computed over the scale questions from respondents who answered all of
// them; N is how many such respondents there were.
type ResponseSummary struct {
	QuestionnaireID string            `json:"questionnaireId"`
	TotalResponses  int               `json:"totalResponses"`
	Questions       []QuestionSummary `json:"questions"`
	Sectors         []SectorCount     `json:"sectors"`
	Timeseries      []DailyCount      `json:"timeseries"`
	Alpha           float64           `json:"alpha"`
	N               int               `json:"n"`
}

func (s *QuestionnaireService) Summary(ctx context.Context, questionnaireID string) (Envelope[*ResponseSummary], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*ResponseSummary]{}, err
	}
	q := s.store.GetQuestionnaire(questionnaireID)
	if q == nil {
		return Envelope[*ResponseSummary]{}, NewNotFoundError("questionnaire.not_found")
	}
	return ok(summarize(q, s.store.ListResponses(questionnaireID))), nil
}

func summarize(q *models.Questionnaire, responses []*models.QuestionnaireResponse) *ResponseSummary {
	out := &ResponseSummary{
		QuestionnaireID: q.ID,
		TotalResponses:  len(responses),
		Questions:       make([]QuestionSummary, len(q.Questions)),
		Sectors:         []SectorCount{},
		Timeseries:      []DailyCount{},
	}
	index := make(map[string]int, len(q.Questions))
	sums := make([]float64, len(q.Questions))
	var scaleIDs []string
	for i, qq := range q.Questions {
		index[qq.ID] = i
		qs := QuestionSummary{QuestionID: qq.ID, Text: qq.Text, Type: qq.Type, Category: qq.Category}
		switch qq.Type {
		case models.QuestionScale:
			qs.Histogram = make([]int, ScalePoints)
			scaleIDs = append(scaleIDs, qq.ID)
		case models.QuestionMultipleChoice:
			qs.Choices = make([]ChoiceCount, len(qq.Options))
			for j, opt := range qq.Options {
				qs.Choices[j] = ChoiceCount{Option: opt}
			}
		}
		out.Questions[i] = qs
	}

	days := map[string]int{}
	sectors := map[string]int{}
	scaleRows := make([]map[string]float64, 0, len(responses))
	for _, r := range responses {
		days[r.SubmittedAt.UTC().Format("2006-01-02")]++
		if r.Sector != "" {
			sectors[r.Sector]++
		}
		row := map[string]float64{}
		for _, a := range r.Answers {
			i, found := index[a.QuestionID]
			if !found {
				continue
			}
			qs := &out.Questions[i]
			switch qs.Type {
			case models.QuestionScale:
				v, err := strconv.Atoi(a.String())
				if err != nil || v < 1 || v > ScalePoints {
					continue
				}
				qs.Histogram[v-1]++
				sums[i] += float64(v)
				row[a.QuestionID] = float64(v)
			case models.QuestionMultipleChoice:
				val := a.String()
				matched := false
				for j := range qs.Choices {
					if qs.Choices[j].Option == val {
						qs.Choices[j].Count++
						matched = true
						break
					}
				}
				if !matched {
					continue
				}
			}
			qs.Total++
		}
		scaleRows = append(scaleRows, row)
	}
	for i := range out.Questions {
		if out.Questions[i].Type == models.QuestionScale && out.Questions[i].Total > 0 {
			out.Questions[i].Mean = sums[i] / float64(out.Questions[i].Total)
		}
	}

	matrix := alphaMatrix(scaleIDs, scaleRows)
	out.Alpha = CronbachAlpha(matrix)
	out.N = len(matrix)

	for d, c := range days {
		out.Timeseries = append(out.Timeseries, DailyCount{Date: d, Count: c})
	}
	sort.Slice(out.Timeseries, func(i, j int) bool { return out.Timeseries[i].Date < out.Timeseries[j].Date })
	for sec, c := range sectors {
		out.Sectors = append(out.Sectors, SectorCount{Sector: sec, Count: c})
	}
	sort.Slice(out.Sectors, func(i, j int) bool { return out.Sectors[i].Sector < out.Sectors[j].Sector })
	return out
}

// alphaMatrix keeps only respondents with a value for every id.
func alphaMatrix(ids []string, rows []map[string]float64) [][]float64 {
	matrix := make([][]float64, 0, len(rows))
	for _, m := range rows {
		row := make([]float64, 0, len(ids))
		for _, id := range ids {
			v, found := m[id]
			if !found {
				break
			}
			row = append(row, v)
		}
		if len(row) == len(ids) && len(ids) > 0 {
			matrix = append(matrix, row)
		}
	}
	return matrix
}
