package services

import (
	"bytes"
	"encoding/csv"
)

var longHeader = []string{"response_id", "questionnaire_id", "question_id", "value", "sector", "submitted_at"}

// LongRow is one answer in long format. SubmittedAt is RFC3339.
type LongRow struct {
	ResponseID      string
	QuestionnaireID string
	QuestionID      string
	Value           string
	Sector          string
	SubmittedAt     string
}

func (r LongRow) record() []string {
	return []string{r.ResponseID, r.QuestionnaireID, r.QuestionID, r.Value, r.Sector, r.SubmittedAt}
}

// ExportLongCSV renders a header followed by one record per row.
func ExportLongCSV(rows []LongRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, longHeader)
	for _, r := range rows {
		records = append(records, r.record())
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
