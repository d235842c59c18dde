package utils

import "testing"

func TestT_Fallback(t *testing.T) {
	if got := T("fr", "company.created"); got != "Empresa criada com sucesso" {
		t.Fatalf("fallback to pt failed: %s", got)
	}
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key should echo: %s", got)
	}
}

func TestT_LocalesHaveSameKeys(t *testing.T) {
	for _, loc := range SupportedLocales {
		for key := range translations[DefaultLocale] {
			if _, ok := translations[loc][key]; !ok {
				t.Fatalf("locale %s missing key %s", loc, key)
			}
		}
		if len(translations[loc]) != len(translations[DefaultLocale]) {
			t.Fatalf("locale %s has %d keys, want %d", loc, len(translations[loc]), len(translations[DefaultLocale]))
		}
	}
}
