package ports

import "go.trai.ch/tricks/internal/core/domain"

// Translator resolves user-facing strings.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// T returns the message for key with {{name}} placeholders replaced from vars.
	// fallback is used when no catalog defines key.
	T(key, fallback string, vars map[string]string) string
}

// TranslatorOrDefault returns t, or the built-in English translator when t is nil.
func TranslatorOrDefault(t Translator) Translator {
	if t == nil {
		return domain.FallbackTranslator{}
	}
	return t
}
