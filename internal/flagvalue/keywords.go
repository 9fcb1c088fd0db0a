package flagvalue

import (
	"flag"
	"strings"

	"braces.dev/errtrace"
)

// Keywords is a flag value of the form "lang=kw1,kw2,..."
// naming additional keywords for a language.
//
// Use with [ListOf] to accept it more than once.
type Keywords struct {
	Language string
	Words    []string
}

var _ flag.Getter = (*Keywords)(nil)

// Get returns the Keywords value itself.
func (kw *Keywords) Get() any { return *kw }

// String returns the value in the form accepted by Set.
func (kw *Keywords) String() string {
	return kw.Language + "=" + strings.Join(kw.Words, ",")
}

// Set parses "lang=kw1,kw2,...".
// Whitespace around names is ignored, as are empty keywords.
func (kw *Keywords) Set(s string) error {
	lang, words, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.Errorf("expected form 'lang=keyword,...', got %q", s)
	}

	lang = strings.TrimSpace(lang)
	if lang == "" {
		return errtrace.Errorf("missing language in %q", s)
	}

	kw.Language = lang
	kw.Words = nil
	for _, w := range strings.Split(words, ",") {
		if w = strings.TrimSpace(w); w != "" {
			kw.Words = append(kw.Words, w)
		}
	}
	return nil
}

// KeywordMap combines a list of Keywords into a map
// from language to keywords.
// Keywords for the same language are concatenated in order.
func KeywordMap(kws []Keywords) map[string][]string {
	m := make(map[string][]string, len(kws))
	for _, kw := range kws {
		words := m[kw.Language]
		if words == nil {
			words = []string{}
		}
		m[kw.Language] = append(words, kw.Words...)
	}
	return m
}
