package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, fades comments ever so slightly,
// and makes built-in keywords stand out.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:     "#666666",
	chroma.Keyword:     "bold",
	chroma.NameBuiltin: "#0550ae",
	chroma.PreWrapper:  "bg:#eeeeee",
	chroma.Background:  "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}

// Style returns the registered Chroma style with the given name,
// falling back to [PlainStyle] if name is empty or unknown.
func Style(name string) *chroma.Style {
	if s, ok := styles.Registry[name]; ok {
		return s
	}
	return PlainStyle
}
