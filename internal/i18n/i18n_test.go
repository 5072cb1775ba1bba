package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestT_English(t *testing.T) {
	SetLanguage("en")

	if got := T("col_name"); got != "Name" {
		t.Errorf("T(col_name) = %q, want %q", got, "Name")
	}
	if got := T("status_quit"); got != "quit" {
		t.Errorf("T(status_quit) = %q, want %q", got, "quit")
	}
}

func TestT_MissingKey(t *testing.T) {
	SetLanguage("en")
	if got := T("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("T(nonexistent_key) = %q, want %q", got, "nonexistent_key")
	}
}

func TestTf(t *testing.T) {
	SetLanguage("en")
	got := Tf("notify_reloaded", 42)
	want := "Reloaded 42 models"
	if got != want {
		t.Errorf("Tf(notify_reloaded, 42) = %q, want %q", got, want)
	}
}

func TestSetLanguage_Unknown(t *testing.T) {
	for _, lang := range []string{"fr", "", "not a tag", "en-GB,en;q=0.9"} {
		SetLanguage(lang)
		if Current() != LangEN {
			t.Errorf("SetLanguage(%q): got %q, want EN", lang, Current())
		}
	}
	if Tag() != language.English {
		t.Errorf("Tag() = %v, want English", Tag())
	}
}
