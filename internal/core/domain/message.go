package domain

import "strings"

// Interpolate replaces {{name}} placeholders in msg. Unknown placeholders are kept.
func Interpolate(msg string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(msg, "{{") {
		return msg
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// FallbackTranslator renders the built-in English text of every message.
type FallbackTranslator struct{}

// T interpolates fallback with vars and ignores key.
func (FallbackTranslator) T(_, fallback string, vars map[string]string) string {
	return Interpolate(fallback, vars)
}
