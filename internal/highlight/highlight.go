package highlight

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var _codeBlock = cascadia.MustCompile("pre > code")

// Highlighter highlights code blocks in an HTML document
// using the languages registered in an [Engine].
type Highlighter struct {
	// Engine holds the languages and their built-in keywords.
	Engine *Engine // required

	// Style used for syntax highlighting of code.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
		h.style = h.Style
		if h.style == nil {
			h.style = PlainStyle
		}
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style))
}

// HighlightAll highlights every <pre> > <code> block under root
// that names a known language.
// It returns the number of blocks highlighted.
func (h *Highlighter) HighlightAll(root *html.Node) (int, error) {
	var count int
	for _, code := range cascadia.QueryAll(root, _codeBlock) {
		ok, err := h.Highlight(code)
		if err != nil {
			return count, errtrace.Wrap(err)
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// Highlight replaces the contents of a <code> element
// with its syntax highlighted form.
//
// The language is taken from the class attribute of the element
// or its parent: "language-X", "lang-X", or a bare "X".
// Blocks in an unknown language are left unchanged,
// and Highlight reports false for them.
func (h *Highlighter) Highlight(code *html.Node) (bool, error) {
	h.init()

	lang, ok := h.language(code)
	if !ok {
		return false, nil
	}

	tokens, err := lang.Lex(textContent(code))
	if err != nil {
		return false, errtrace.Errorf("tokenize %v: %w", lang.Name, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, chroma.Literator(tokens...)); err != nil {
		return false, errtrace.Errorf("format %v: %w", lang.Name, err)
	}

	nodes, err := html.ParseFragment(&buf, code)
	if err != nil {
		return false, errtrace.Wrap(err)
	}

	for c := code.FirstChild; c != nil; c = code.FirstChild {
		code.RemoveChild(c)
	}
	for _, n := range nodes {
		code.AppendChild(n)
	}

	if h.UseClasses {
		addClass(code, chroma.StandardTypes[chroma.PreWrapper])
	}
	return true, nil
}

func (h *Highlighter) language(code *html.Node) (Language, bool) {
	for _, n := range []*html.Node{code, code.Parent} {
		if n == nil {
			continue
		}
		for _, class := range strings.Fields(getAttr(n, "class")) {
			name := class
			for _, prefix := range []string{"language-", "lang-"} {
				if s, ok := strings.CutPrefix(name, prefix); ok {
					name = s
					break
				}
			}
			if l, ok := h.Engine.Language(name); ok {
				return l, true
			}
		}
	}
	return Language{}, false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		if !strings.Contains(" "+a.Val+" ", " "+class+" ") {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
		}
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
