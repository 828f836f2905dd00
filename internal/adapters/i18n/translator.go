// Package i18n translates user-facing strings from catalogs embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// supported lists the languages with a catalog, the default first.
var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

// Translator implements ports.Translator.
type Translator struct {
	lang     string
	messages map[string]string
	fallback map[string]string
}

// New creates a Translator for lang. An empty lang is taken from the
// environment (LC_ALL, LC_MESSAGES, LANG). Unsupported languages use English.
func New(lang string) (*Translator, error) {
	if lang == domain.AutoLanguage {
		lang = FromEnv(os.Getenv)
	}
	base := Match(lang)

	fallback, err := loadCatalog(domain.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	messages := fallback
	if base != domain.DefaultLanguage {
		if messages, err = loadCatalog(base); err != nil {
			return nil, err
		}
	}

	return &Translator{lang: base, messages: messages, fallback: fallback}, nil
}

// Language returns the base language the translator resolved to.
func (t *Translator) Language() string {
	return t.lang
}

// T returns the message for key with {{name}} placeholders replaced from vars.
func (t *Translator) T(key, fallback string, vars map[string]string) string {
	msg, ok := t.messages[key]
	if !ok {
		if msg, ok = t.fallback[key]; !ok {
			msg = fallback
		}
	}
	return domain.Interpolate(msg, vars)
}

// FromEnv returns the first locale set in LC_ALL, LC_MESSAGES or LANG.
func FromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Match maps a locale such as "de_DE.UTF-8" onto the base language of a catalog.
func Match(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")

	if locale == "" || locale == "C" || locale == "POSIX" {
		return domain.DefaultLanguage
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return domain.DefaultLanguage
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return domain.DefaultLanguage
	}
	b, _ := supported[idx].Base()
	return b.String()
}

func loadCatalog(lang string) (map[string]string, error) {
	name := path.Join("catalogs", lang+".yaml")
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogParseFailed, err.Error()), "catalog", name)
	}
	return parseCatalog(name, data)
}

// parseCatalog flattens nested YAML mappings into dotted keys.
func parseCatalog(name string, data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogParseFailed, err.Error()), "catalog", name)
	}

	messages := make(map[string]string)
	if err := flatten("", tree, messages); err != nil {
		return nil, zerr.With(err, "catalog", name)
	}
	return messages, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		default:
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrCatalogParseFailed, "expected string or mapping"), "key", key), "type", fmt.Sprintf("%T", v))
		}
	}
	return nil
}
