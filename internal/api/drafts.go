package api

import (
	"strings"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
)

// Drafts are the raw form submissions of the admin pages. Updates send the
// whole form, so every draft field is written on save.

type CompanyDraft struct {
	Name   string `json:"name"`
	CNPJ   string `json:"cnpj"`
	Active *bool  `json:"active"`
}

func (d CompanyDraft) active() bool { return d.Active == nil || *d.Active }

func (d CompanyDraft) Input() services.CompanyInput {
	return services.CompanyInput{Name: strings.TrimSpace(d.Name), CNPJ: strings.TrimSpace(d.CNPJ), Active: d.active()}
}

func (d CompanyDraft) Patch() services.CompanyPatch {
	in := d.Input()
	return services.CompanyPatch{Name: &in.Name, CNPJ: &in.CNPJ, Active: &in.Active}
}

type UserDraft struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
	Sector    string `json:"sector"`
}

func (d UserDraft) Input() services.UserInput {
	return services.UserInput{
		Name:      strings.TrimSpace(d.Name),
		Email:     strings.TrimSpace(d.Email),
		Role:      models.Role(d.Role),
		CompanyID: d.CompanyID,
		Sector:    strings.TrimSpace(d.Sector),
	}
}

func (d UserDraft) Patch() services.UserPatch {
	in := d.Input()
	return services.UserPatch{Name: &in.Name, Email: &in.Email, Role: &in.Role, CompanyID: &in.CompanyID, Sector: &in.Sector}
}

// QuestionDraft carries options as one comma-separated field.
type QuestionDraft struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Options  string `json:"options"`
	Active   *bool  `json:"active"`
}

// SplitOptions returns the trimmed, non-empty options, or nil for any type
// but multiple_choice.
func (d QuestionDraft) SplitOptions() []string {
	if models.QuestionType(d.Type) != models.QuestionMultipleChoice {
		return nil
	}
	var out []string
	for _, o := range strings.Split(d.Options, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (d QuestionDraft) Input() services.QuestionInput {
	return services.QuestionInput{
		Text:     strings.TrimSpace(d.Text),
		Type:     models.QuestionType(d.Type),
		Options:  d.SplitOptions(),
		Category: strings.TrimSpace(d.Category),
		Active:   d.Active == nil || *d.Active,
	}
}

func (d QuestionDraft) Patch() services.QuestionPatch {
	in := d.Input()
	return services.QuestionPatch{
		Text:       &in.Text,
		Type:       &in.Type,
		Options:    in.Options,
		OptionsSet: true,
		Category:   &in.Category,
		Active:     &in.Active,
	}
}

const dateLayout = "2006-01-02"

type QuestionnaireDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	QuestionIDs []string `json:"questionIds"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Status      string   `json:"status"`
	CompanyID   string   `json:"companyId"`
}

// Validate runs the form checks that must pass before any service call and
// returns the parsed dates.
func (d QuestionnaireDraft) Validate() (start, end time.Time, err error) {
	if strings.TrimSpace(d.Title) == "" {
		return time.Time{}, time.Time{}, services.NewInvalidError("questionnaire.title_required")
	}
	if len(d.QuestionIDs) == 0 {
		return time.Time{}, time.Time{}, services.NewInvalidError("questionnaire.no_questions")
	}
	start, err = time.Parse(dateLayout, strings.TrimSpace(d.StartDate))
	if err != nil {
		return time.Time{}, time.Time{}, services.NewInvalidError("questionnaire.invalid_date")
	}
	end, err = time.Parse(dateLayout, strings.TrimSpace(d.EndDate))
	if err != nil {
		return time.Time{}, time.Time{}, services.NewInvalidError("questionnaire.invalid_date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, services.NewInvalidError("questionnaire.end_before_start")
	}
	return start, end, nil
}

func (d QuestionnaireDraft) status() models.QuestionnaireStatus {
	if d.Status == "" {
		return models.StatusDraft
	}
	return models.QuestionnaireStatus(d.Status)
}

// ResolveQuestions copies the selected questions out of the active bank,
// in bank order. Selected ids that are no longer active keep the copy the
// questionnaire already embeds; ids found in neither are dropped.
func ResolveQuestions(ids []string, active []*models.Question, existing []models.Question) []models.Question {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	out := make([]models.Question, 0, len(ids))
	for _, q := range active {
		if selected[q.ID] {
			out = append(out, *q.Clone())
			delete(selected, q.ID)
		}
	}
	for _, id := range ids {
		if !selected[id] {
			continue
		}
		for _, q := range existing {
			if q.ID == id {
				out = append(out, *q.Clone())
				break
			}
		}
		delete(selected, id)
	}
	return out
}
