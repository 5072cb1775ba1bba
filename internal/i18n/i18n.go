package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language represents a supported locale.
type Language string

const (
	LangEN Language = "en"
)

var catalogs = map[Language]map[string]string{
	LangEN: en,
}

// supported is indexed in the same order as the matcher's tags.
var supported = []Language{LangEN}

var matcher = language.NewMatcher([]language.Tag{language.English})

var current Language = LangEN

// SetLanguage changes the active locale. lang is a BCP 47 tag or an
// Accept-Language style list; unsupported values fall back to English.
func SetLanguage(lang string) {
	_, idx := language.MatchStrings(matcher, lang)
	current = supported[idx]
}

// Current returns the active language.
func Current() Language {
	return current
}

// Tag returns the language tag of the active locale.
func Tag() language.Tag {
	return language.Make(string(current))
}

// T returns the translated string for the given key.
// If the key is not found, the English text or the key itself is returned.
func T(key string) string {
	if v, ok := catalogs[current][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
