package highlight

import (
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// Lex tokenizes src with the language's lexer,
// marking the language's built-in keywords as [chroma.NameBuiltin].
func (l *Language) Lex(src string) ([]chroma.Token, error) {
	if l.Lexer == nil {
		return nil, errtrace.Errorf("language %q has no lexer", l.Name)
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(l.Lexer), nil, src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	// Lexers may add a trailing newline.
	// Drop it so the code block keeps its original text.
	if n := len(tokens); n > 0 && !strings.HasSuffix(src, "\n") {
		last := &tokens[n-1]
		last.Value = strings.TrimSuffix(last.Value, "\n")
		if last.Value == "" {
			tokens = tokens[:n-1]
		}
	}

	markBuiltIns(tokens, l.BuiltIn)
	return tokens, nil
}

// markBuiltIns re-tags plain names and bare words
// that match a built-in keyword.
// Names the lexer gave a more specific role
// (functions, classes, attributes, ...) keep it,
// as do keywords, strings, and comments.
func markBuiltIns(tokens []chroma.Token, builtIn []string) {
	if len(builtIn) == 0 {
		return
	}

	set := make(map[string]struct{}, len(builtIn))
	for _, kw := range builtIn {
		set[kw] = struct{}{}
	}

	for i, tok := range tokens {
		switch tok.Type {
		case chroma.Name, chroma.NameOther, chroma.Text:
		default:
			continue
		}
		if _, ok := set[tok.Value]; ok {
			tokens[i].Type = chroma.NameBuiltin
		}
	}
}
