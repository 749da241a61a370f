package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves dotted message keys against per-locale tables. It is
// passed explicitly to the components that need it rather than living as a
// package-level singleton.
type Translator struct {
	tables        map[string]map[string]interface{}
	defaultLocale string
}

// New loads every embedded locale table. The default locale must be present;
// lookups in other locales fall back to it for missing keys.
func New(defaultLocale string) (*Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	tables := make(map[string]map[string]interface{}, len(entries))
	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), ".json")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", locale, err)
		}

		var table map[string]interface{}
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", locale, err)
		}
		tables[locale] = table
	}

	if _, ok := tables[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no translation table", defaultLocale)
	}

	return &Translator{tables: tables, defaultLocale: defaultLocale}, nil
}

// Locales returns the locales with a loaded translation table.
func (t *Translator) Locales() []string {
	locales := make([]string, 0, len(t.tables))
	for locale := range t.tables {
		locales = append(locales, locale)
	}
	return locales
}

// DefaultLocale returns the configured fallback locale.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// T resolves a dotted key ("contact.thank_you") in the given locale, falling
// back to the default locale. Unresolvable keys return the key itself so a
// missing translation is visible rather than silent.
func (t *Translator) T(locale, key string) string {
	if s, ok := t.lookup(locale, key).(string); ok {
		return s
	}
	if s, ok := t.lookup(t.defaultLocale, key).(string); ok {
		return s
	}
	return key
}

// List resolves a dotted key to a list of strings, such as the post-submission
// next-steps copy. Missing keys return nil.
func (t *Translator) List(locale, key string) []string {
	v := t.lookup(locale, key)
	if v == nil {
		v = t.lookup(t.defaultLocale, key)
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (t *Translator) lookup(locale, key string) interface{} {
	table, ok := t.tables[locale]
	if !ok {
		return nil
	}

	var current interface{} = map[string]interface{}(table)
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = node[part]
		if !ok {
			return nil
		}
	}
	return current
}
