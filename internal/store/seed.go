package store

import (
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed loads the fixture data the console ships with: one admin, two
// companies, eight bank questions and three questionnaires.
func Seed(s *MemoryStore, now time.Time) {
	s.AddUser(&models.User{
		ID:        "1",
		Name:      "Administrador Sistema",
		Email:     "admin@empresa.com",
		Role:      models.RoleAdmin,
		CompanyID: "1",
		CreatedAt: day("2024-01-01"),
	})

	s.AddCompany(&models.Company{ID: "1", Name: "Tech Solutions Ltda", CNPJ: "12.345.678/0001-90", Active: true, CreatedAt: day("2024-01-01")})
	s.AddCompany(&models.Company{ID: "2", Name: "Saúde Corp", CNPJ: "98.765.432/0001-10", Active: true, CreatedAt: day("2024-02-01")})

	bank := []models.Question{
		{ID: "1", Text: "Como você avalia seu nível de estresse no trabalho?", Type: models.QuestionScale, Category: "Estresse", Active: true},
		{ID: "2", Text: "Você se sente valorizado pela empresa?", Type: models.QuestionScale, Category: "Satisfação", Active: true},
		{ID: "3", Text: "Como está sua qualidade de sono?", Type: models.QuestionScale, Category: "Saúde", Active: true},
		{ID: "4", Text: "Você consegue equilibrar vida pessoal e profissional?", Type: models.QuestionScale, Category: "Equilíbrio", Active: true},
		{ID: "5", Text: "Como você descreveria o ambiente de trabalho?", Type: models.QuestionMultipleChoice, Options: []string{"Excelente", "Bom", "Regular", "Ruim"}, Category: "Ambiente", Active: true},
		{ID: "6", Text: "Você se sente motivado para realizar suas tarefas?", Type: models.QuestionScale, Category: "Motivação", Active: true},
		{ID: "7", Text: "Existem conflitos frequentes na sua equipe?", Type: models.QuestionScale, Category: "Relacionamento", Active: false},
		{ID: "8", Text: "Você tem oportunidades de crescimento profissional?", Type: models.QuestionScale, Category: "Carreira", Active: true},
	}
	for i := range bank {
		bank[i].CreatedAt = now
		s.AddQuestion(&bank[i])
	}

	s.AddQuestionnaire(&models.Questionnaire{
		ID:          "1",
		Title:       "Pesquisa de Bem-Estar Q4 2024",
		Description: "Avaliação trimestral do bem-estar dos colaboradores",
		Questions:   bank[0:5],
		StartDate:   day("2024-10-01"),
		EndDate:     day("2024-12-31"),
		Status:      models.StatusActive,
		CompanyID:   "1",
		CreatedAt:   now,
	})
	s.AddQuestionnaire(&models.Questionnaire{
		ID:          "2",
		Title:       "Pesquisa de Clima Organizacional",
		Description: "Avaliação do clima e ambiente de trabalho",
		Questions:   bank[2:6],
		StartDate:   day("2024-11-01"),
		EndDate:     day("2024-11-30"),
		Status:      models.StatusActive,
		CompanyID:   "1",
		CreatedAt:   now,
	})
	s.AddQuestionnaire(&models.Questionnaire{
		ID:          "3",
		Title:       "Pesquisa de Satisfação 2023",
		Description: "Avaliação anual de satisfação",
		Questions:   bank[0:4],
		StartDate:   day("2023-11-01"),
		EndDate:     day("2023-12-15"),
		Status:      models.StatusClosed,
		CompanyID:   "1",
		CreatedAt:   now,
	})
}

// NewSeeded returns a store loaded with Seed.
func NewSeeded(now time.Time) *MemoryStore {
	s := NewMemoryStore()
	Seed(s, now)
	return s
}
