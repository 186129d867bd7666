package gw2

import (
	"fmt"
	"strings"
)

// Language is one of the locales supported by the official API.
type Language int

// Supported languages. English is the default, as it is server-side.
const (
	LanguageEnglish Language = iota
	LanguageSpanish
	LanguageGerman
	LanguageFrench
	LanguageChinese
)

// Languages returns every supported language in declaration order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageSpanish, LanguageGerman, LanguageFrench, LanguageChinese}
}

// Code returns the two-letter code sent in the Accept-Language header.
func (l Language) Code() string {
	switch l {
	case LanguageSpanish:
		return "es"
	case LanguageGerman:
		return "de"
	case LanguageFrench:
		return "fr"
	case LanguageChinese:
		return "zh"
	default:
		return "en"
	}
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return l.Code()
}

// ParseLanguage maps a two-letter code (case-insensitive) to a Language.
func ParseLanguage(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range Languages() {
		if lang.Code() == code {
			return lang, nil
		}
	}

	return LanguageEnglish, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}
