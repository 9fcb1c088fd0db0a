package highlight

import (
	"io"
	"log"
	"slices"
	"sort"
	"strings"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/slidefix/internal/sliceutil"
)

// Language is a language known to an [Engine].
type Language struct {
	// Name of the language as it was registered.
	Name string

	// Lexer used to tokenize code in this language.
	Lexer chroma.Lexer

	// BuiltIn lists the built-in keywords for this language
	// without duplicates.
	//
	// The Engine never modifies this slice in place;
	// augmentation replaces it.
	BuiltIn []string
}

// Engine is a registry of languages and their built-in keywords.
//
// An Engine is shared, mutable configuration:
// changes made with [Engine.AddKeywords] are visible
// to everyone holding the same *Engine.
// It is safe for concurrent use.
//
// The zero value is ready to use.
type Engine struct {
	// Log receives warnings.
	// Output is discarded if unset.
	Log *log.Logger

	// DebugLog receives debug messages.
	// Output is discarded if unset.
	DebugLog *log.Logger

	// Lookup finds a lexer for a language that hasn't been registered.
	// It returns nil if the language is unknown.
	//
	// Defaults to Chroma's lexer registry.
	Lookup func(name string) chroma.Lexer

	mu    sync.Mutex
	langs map[string]*Language // lower-cased name or alias => language
}

// Register adds a language to the engine under the given name
// and the names and aliases of the lexer.
// Names are case-insensitive.
//
// Registering the same name again replaces the previous language
// for that name.
func (e *Engine) Register(name string, lexer chroma.Lexer, builtIn ...string) Language {
	e.mu.Lock()
	defer e.mu.Unlock()

	return *e.register(name, lexer, builtIn)
}

func (e *Engine) register(name string, lexer chroma.Lexer, builtIn []string) *Language {
	if e.langs == nil {
		e.langs = make(map[string]*Language)
	}

	l := &Language{
		Name:    name,
		Lexer:   lexer,
		BuiltIn: sliceutil.Union(builtIn, nil),
	}
	e.langs[strings.ToLower(name)] = l

	if lexer == nil {
		return l
	}
	if cfg := lexer.Config(); cfg != nil {
		for _, alias := range append([]string{cfg.Name}, cfg.Aliases...) {
			alias = strings.ToLower(alias)
			if _, ok := e.langs[alias]; !ok {
				e.langs[alias] = l
			}
		}
	}
	return l
}

// Language looks up a language by name or alias.
// Names are case-insensitive.
//
// Languages that were not registered but are known to Lookup
// are registered on first use with no built-in keywords.
func (e *Engine) Language(name string) (Language, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.language(name)
	if !ok {
		return Language{}, false
	}
	return *l, true
}

// BuiltIns returns a copy of the built-in keywords for a language,
// or nil if the language is unknown.
func (e *Engine) BuiltIns(name string) []string {
	l, ok := e.Language(name)
	if !ok {
		return nil
	}
	return slices.Clone(l.BuiltIn)
}

// language must be called with mu held.
func (e *Engine) language(name string) (*Language, bool) {
	if name == "" {
		return nil, false
	}

	if l, ok := e.langs[strings.ToLower(name)]; ok {
		return l, true
	}

	lookup := e.Lookup
	if lookup == nil {
		lookup = lexers.Get
	}
	lexer := lookup(name)
	if lexer == nil {
		return nil, false
	}
	return e.register(name, lexer, nil), true
}

// AddKeywords adds keywords to the built-in sets of languages.
// keywords maps a language name to the keywords to add to it.
//
// For each language found, the built-in set becomes the union
// of the existing set and the new keywords.
// Keywords that are already present are not duplicated.
//
// Languages that cannot be found are skipped with a warning.
// AddKeywords returns their names, sorted.
func (e *Engine) AddKeywords(keywords map[string][]string) (missing []string) {
	warn := e.Log
	if warn == nil {
		warn = log.New(io.Discard, "", 0)
	}
	debug := e.DebugLog
	if debug == nil {
		debug = log.New(io.Discard, "", 0)
	}

	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		l, ok := e.language(name)
		if !ok {
			warn.Printf("warning: no language %q", name)
			missing = append(missing, name)
			continue
		}

		kwds := keywords[name]
		debug.Printf("adding keywords %q to %q", kwds, name)
		l.BuiltIn = sliceutil.Union(l.BuiltIn, kwds)
	}
	return missing
}
