package relocate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/slidefix/internal/iotest"
	"golang.org/x/net/html"
)

func TestEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want bool
	}{
		{give: "data-line-numbers", want: true},
		{give: "data-", want: true},
		{give: "data-trim", want: true},
		{give: "contenteditable", want: true},
		{give: "contenteditable-x", want: true},
		{give: "class"},
		{give: "id"},
		{give: "data"},
		{give: "xdata-foo"},
		{give: "content"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Eligible(tt.give))
		})
	}
}

func TestRelocator_Relocate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string

		wantPre   []html.Attribute
		wantCode  []html.Attribute
		wantMoved int
	}{
		{
			desc: "data attribute",
			give: `<pre data-line-numbers="1-3" class="lang-js"><code>x</code></pre>`,
			wantPre: []html.Attribute{
				{Key: "class", Val: "lang-js"},
			},
			wantCode: []html.Attribute{
				{Key: "data-line-numbers", Val: "1-3"},
			},
			wantMoved: 1,
		},
		{
			desc: "contenteditable overwrites",
			give: `<pre contenteditable="true"><code contenteditable="false">x</code></pre>`,
			wantCode: []html.Attribute{
				{Key: "contenteditable", Val: "true"},
			},
			wantMoved: 1,
		},
		{
			desc: "order preserved",
			give: `<pre data-a="1" id="block" data-b="2" data-trim><code class="python">x</code></pre>`,
			wantPre: []html.Attribute{
				{Key: "id", Val: "block"},
			},
			wantCode: []html.Attribute{
				{Key: "class", Val: "python"},
				{Key: "data-a", Val: "1"},
				{Key: "data-b", Val: "2"},
				{Key: "data-trim", Val: ""},
			},
			wantMoved: 3,
		},
		{
			desc: "nothing eligible",
			give: `<pre class="sourceCode" id="cb1"><code>x</code></pre>`,
			wantPre: []html.Attribute{
				{Key: "class", Val: "sourceCode"},
				{Key: "id", Val: "cb1"},
			},
		},
		{
			desc: "mixed case attribute names",
			give: `<pre contentEditable="true" Data-Id="x"><code>x</code></pre>`,
			wantCode: []html.Attribute{
				{Key: "contenteditable", Val: "true"},
				{Key: "data-id", Val: "x"},
			},
			wantMoved: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, tt.give)
			r := Relocator{Log: iotest.Logger(t)}
			assert.Equal(t, tt.wantMoved, r.Relocate(doc))

			pre := cascadia.MustCompile("pre").MatchFirst(doc)
			code := cascadia.MustCompile("code").MatchFirst(doc)
			require.NotNil(t, pre)
			require.NotNil(t, code)

			assert.Equal(t, tt.wantPre, nonEmpty(pre.Attr), "pre")
			assert.Equal(t, tt.wantCode, nonEmpty(code.Attr), "code")
		})
	}
}

func TestRelocator_Relocate_manyBlocks(t *testing.T) {
	t.Parallel()

	doc := parse(t, `
		<section>
			<pre data-id="a"><code>1</code></pre>
			<div><pre data-id="b" class="x"><code>2</code></pre></div>
			<pre data-id="c"><span><code>3</code></span></pre>
			<p data-id="d"><code>4</code></p>
		</section>`)

	var r Relocator
	assert.Equal(t, 2, r.Relocate(doc))

	codes := cascadia.QueryAll(doc, cascadia.MustCompile("code"))
	require.Len(t, codes, 4)

	assert.Equal(t, "a", attr(codes[0], "data-id"))
	assert.Equal(t, "b", attr(codes[1], "data-id"))

	// Not direct children of a <pre>. Left alone.
	assert.Empty(t, attr(codes[2], "data-id"))
	assert.Empty(t, attr(codes[3], "data-id"))
	assert.Equal(t, "c", attr(codes[2].Parent.Parent, "data-id"))
	assert.Equal(t, "d", attr(codes[3].Parent, "data-id"))
}

func TestRelocator_Relocate_idempotent(t *testing.T) {
	t.Parallel()

	const give = `<pre data-line-numbers="2" class="c" contenteditable>` +
		`<code data-x="y">x</code></pre>`

	doc := parse(t, give)
	var r Relocator
	assert.Equal(t, 2, r.Relocate(doc))
	once := render(t, doc)

	assert.Zero(t, r.Relocate(doc), "second run should move nothing")
	assert.Equal(t, once, render(t, doc))
}

func TestRelocator_Relocate_noBlocks(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<p data-x="1">hello</p>`)
	before := render(t, doc)

	var r Relocator
	assert.Zero(t, r.Relocate(doc))
	assert.Equal(t, before, render(t, doc))
}

func TestMove_detached(t *testing.T) {
	t.Parallel()

	code := &html.Node{
		Type: html.ElementNode,
		Data: "code",
		Attr: []html.Attribute{{Key: "data-x", Val: "1"}},
	}

	assert.Zero(t, Move(code.Parent, code))
	assert.Equal(t, []html.Attribute{{Key: "data-x", Val: "1"}}, code.Attr)
}

func parse(t testing.TB, s string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func render(t testing.TB, n *html.Node) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, n))
	return buf.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nonEmpty returns nil for empty attribute lists
// so that comparisons don't depend on slice capacity.
func nonEmpty(attrs []html.Attribute) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
