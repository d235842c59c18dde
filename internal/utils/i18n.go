package utils

// Server-side messages keyed by message key. Services return keys; the
// HTTP layer renders them through T.

const DefaultLocale = "pt"

var SupportedLocales = []string{"pt", "en"}

var translations = map[string]map[string]string{
	"pt": {
		"health.ok":                      "ok",
		"auth.invalid_credentials":       "Credenciais inválidas",
		"auth.login_ok":                  "Login realizado com sucesso",
		"auth.logged_out":                "Sessão encerrada",
		"auth.forbidden":                 "Você não tem permissão para acessar esta página",
		"company.created":                "Empresa criada com sucesso",
		"company.updated":                "Empresa atualizada",
		"company.deleted":                "Empresa removida",
		"company.not_found":              "Empresa não encontrada",
		"company.required":               "Nome e CNPJ são obrigatórios",
		"user.created":                   "Usuário criado com sucesso",
		"user.updated":                   "Usuário atualizado",
		"user.deleted":                   "Usuário removido",
		"user.not_found":                 "Usuário não encontrado",
		"user.required":                  "Nome e e-mail são obrigatórios",
		"user.invalid_role":              "Perfil inválido",
		"question.created":               "Pergunta criada com sucesso",
		"question.updated":               "Pergunta atualizada",
		"question.deleted":               "Pergunta removida",
		"question.not_found":             "Pergunta não encontrada",
		"question.activated":             "Pergunta ativada",
		"question.deactivated":           "Pergunta desativada",
		"question.text_required":         "O texto da pergunta é obrigatório",
		"question.invalid_type":          "Tipo de pergunta inválido",
		"question.options_required":      "Perguntas de múltipla escolha precisam de opções",
		"questionnaire.created":          "Questionário criado com sucesso",
		"questionnaire.updated":          "Questionário atualizado",
		"questionnaire.deleted":          "Questionário removido",
		"questionnaire.not_found":        "Questionário não encontrado",
		"questionnaire.invalid_status":   "Status inválido",
		"questionnaire.not_active":       "Questionário não está ativo",
		"questionnaire.title_required":   "O título é obrigatório",
		"questionnaire.no_questions":     "Selecione pelo menos uma pergunta",
		"questionnaire.invalid_date":     "Data inválida, use o formato AAAA-MM-DD",
		"questionnaire.end_before_start": "A data de término deve ser posterior à data de início",
		"response.submitted":             "Respostas enviadas com sucesso",
		"response.answers_required":      "Envie pelo menos uma resposta",
		"response.unknown_question":      "Resposta para pergunta desconhecida",
		"response.invalid_value":         "Valor de resposta inválido",
		"request.invalid_body":           "Requisição inválida",
		"error.not_found":                "Página não encontrada",
		"error.internal":                 "Erro interno do servidor",
	},
	"en": {
		"health.ok":                      "ok",
		"auth.invalid_credentials":       "Invalid credentials",
		"auth.login_ok":                  "Signed in",
		"auth.logged_out":                "Signed out",
		"auth.forbidden":                 "You do not have permission to access this page",
		"company.created":                "Company created",
		"company.updated":                "Company updated",
		"company.deleted":                "Company removed",
		"company.not_found":              "Company not found",
		"company.required":               "Name and CNPJ are required",
		"user.created":                   "User created",
		"user.updated":                   "User updated",
		"user.deleted":                   "User removed",
		"user.not_found":                 "User not found",
		"user.required":                  "Name and email are required",
		"user.invalid_role":              "Invalid role",
		"question.created":               "Question created",
		"question.updated":               "Question updated",
		"question.deleted":               "Question removed",
		"question.not_found":             "Question not found",
		"question.activated":             "Question activated",
		"question.deactivated":           "Question deactivated",
		"question.text_required":         "Question text is required",
		"question.invalid_type":          "Invalid question type",
		"question.options_required":      "Multiple choice questions need options",
		"questionnaire.created":          "Questionnaire created",
		"questionnaire.updated":          "Questionnaire updated",
		"questionnaire.deleted":          "Questionnaire removed",
		"questionnaire.not_found":        "Questionnaire not found",
		"questionnaire.invalid_status":   "Invalid status",
		"questionnaire.not_active":       "Questionnaire is not active",
		"questionnaire.title_required":   "Title is required",
		"questionnaire.no_questions":     "Select at least one question",
		"questionnaire.invalid_date":     "Invalid date, use YYYY-MM-DD",
		"questionnaire.end_before_start": "End date must not be before the start date",
		"response.submitted":             "Responses submitted",
		"response.answers_required":      "Submit at least one answer",
		"response.unknown_question":      "Answer references an unknown question",
		"response.invalid_value":         "Invalid answer value",
		"request.invalid_body":           "Invalid request",
		"error.not_found":                "Page not found",
		"error.internal":                 "Internal server error",
	},
}

// T returns the translated string for key in locale, then in the default
// locale, then the key itself.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[DefaultLocale][key]; ok {
		return v
	}
	return key
}
