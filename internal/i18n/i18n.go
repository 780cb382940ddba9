// Package i18n resolves UI label text for the supported languages.
//
// Catalogs are immutable and loaded at startup; every function here is a
// pure lookup with no side effects, so concurrent use needs no locking.
package i18n

import (
	"fmt"
	"strings"
)

// FormatError reports a template placeholder with no supplied value.
// It indicates a programming defect (caller and template disagree about
// the slot set), not a user-recoverable condition.
type FormatError struct {
	Lang string
	Key  string
	Slot string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("i18n: missing substitution %q for %s/%s", e.Slot, e.Lang, e.Key)
}

// Option is one language choice for the UI selector.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Languages returns the selector options in presentation order.
func Languages() []Option {
	return []Option{
		{Code: LangJapanese, Label: catalogs[LangJapanese].Name},
		{Code: LangEnglish, Label: catalogs[LangEnglish].Name},
	}
}

// Supported reports whether lang is a known language code.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Lookup resolves key in the given language's catalog. An absent key is
// not an error: the key itself is returned so a missing translation shows
// up in the UI instead of breaking it.
func Lookup(lang, key string) string {
	if text, ok := catalogs[lang].Strings[key]; ok {
		return text
	}
	return key
}

// Format resolves key and interpolates the named {slot} placeholders from
// subs. Every placeholder present in the template must have a value;
// extra entries in subs are ignored, matching how the templates were
// originally consumed.
func Format(lang, key string, subs map[string]string) (string, error) {
	return expand(lang, key, Lookup(lang, key), subs)
}

// Strings returns a copy of every resolved label for the language, keyed
// by string key. Templates keep their raw {slot} placeholders; callers
// interpolate the ones they render.
func Strings(lang string) map[string]string {
	src := catalogs[lang].Strings
	out := make(map[string]string, len(src))
	for key, text := range src {
		out[key] = text
	}
	return out
}

// Examples returns a copy of the example prompts for the language.
func Examples(lang string) []string {
	src := catalogs[lang].Examples
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func expand(lang, key, template string, subs map[string]string) (string, error) {
	if !strings.ContainsRune(template, '{') {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}
		rel := strings.IndexByte(template[i:], '}')
		if rel < 0 {
			// Unterminated brace: emit the rest verbatim.
			b.WriteString(template[i:])
			break
		}
		slot := template[i+1 : i+rel]
		val, ok := subs[slot]
		if !ok {
			return "", &FormatError{Lang: lang, Key: key, Slot: slot}
		}
		b.WriteString(val)
		i += rel + 1
	}
	return b.String(), nil
}
