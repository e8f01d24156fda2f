package i18n

import "testing"

func TestTranslations_KnownLanguages(t *testing.T) {
	for _, lang := range []string{"en", "hi", "mr", "gu"} {
		dict := Translations(lang)
		if dict["dashboard"] == "" {
			t.Errorf("language %q missing dashboard key", lang)
		}
	}
}

func TestTranslations_FallsBackToEnglish(t *testing.T) {
	if got := Translations("fr")["dashboard"]; got != "Dashboard" {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
}
