package relocate

import (
	"io"
	"log"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var _codeBlock = cascadia.MustCompile("pre > code")

// Eligible reports whether an attribute with the given name
// should be moved from a wrapper to its content element.
//
// contenteditable is matched as a prefix
// so that variants of the attribute are moved too.
func Eligible(name string) bool {
	return strings.HasPrefix(name, "data-") ||
		strings.HasPrefix(name, "contenteditable")
}

// Relocator moves eligible attributes
// from <pre> elements onto their child <code> elements.
//
// The zero value is ready to use.
type Relocator struct {
	// Log receives one line for every code block processed.
	// Output is discarded if unset.
	Log *log.Logger
}

// Relocate finds every <pre> > <code> pair under root
// and moves eligible attributes from the <pre> to the <code>.
// The tree is modified in place.
//
// It returns the total number of attributes moved.
// Running Relocate again on the same tree moves nothing.
func (r *Relocator) Relocate(root *html.Node) int {
	logger := r.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var total int
	for i, code := range cascadia.QueryAll(root, _codeBlock) {
		pre := code.Parent
		if pre == nil {
			continue
		}

		n := Move(pre, code)
		logger.Printf("code block %d: moved %d attribute(s) to <code>", i, n)
		total += n
	}
	return total
}

// Move moves eligible attributes from wrapper to content,
// in the order in which they appear on wrapper.
// Attributes that already exist on content are overwritten.
// Other attributes on wrapper are left untouched.
//
// Returns the number of attributes moved.
func Move(wrapper, content *html.Node) (moved int) {
	if wrapper == nil || content == nil {
		return 0
	}

	kept := wrapper.Attr[:0]
	for _, attr := range wrapper.Attr {
		if !Eligible(attr.Key) {
			kept = append(kept, attr)
			continue
		}
		setAttr(content, attr)
		moved++
	}

	// Clear the tail so that removed attributes don't linger
	// in the backing array.
	for i := len(kept); i < len(wrapper.Attr); i++ {
		wrapper.Attr[i] = html.Attribute{}
	}
	wrapper.Attr = kept
	return moved
}

// setAttr sets attr on n, replacing an existing attribute with the same
// name and namespace if there is one.
func setAttr(n *html.Node, attr html.Attribute) {
	for i, a := range n.Attr {
		if a.Namespace == attr.Namespace && a.Key == attr.Key {
			n.Attr[i].Val = attr.Val
			return
		}
	}
	n.Attr = append(n.Attr, attr)
}
