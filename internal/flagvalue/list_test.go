package flagvalue

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc       string
		give       []string
		want       []Keywords
		wantString string
		wantMap    map[string][]string
	}{
		{
			desc:    "no arguments",
			give:    []string{"-highlight"},
			wantMap: map[string][]string{},
		},
		{
			desc:       "separate",
			give:       []string{"-keywords", "python=match,case"},
			want:       []Keywords{{Language: "python", Words: []string{"match", "case"}}},
			wantString: "python=match,case",
			wantMap:    map[string][]string{"python": {"match", "case"}},
		},
		{
			desc:       "joint",
			give:       []string{"-keywords=js=await"},
			want:       []Keywords{{Language: "js", Words: []string{"await"}}},
			wantString: "js=await",
			wantMap:    map[string][]string{"js": {"await"}},
		},
		{
			desc: "interleaved and repeated",
			give: []string{
				"-keywords", "python=match,case",
				"-highlight",
				"-keywords=js=await",
				"-keywords", "python=type",
				"-keywords", "rust=",
			},
			want: []Keywords{
				{Language: "python", Words: []string{"match", "case"}},
				{Language: "js", Words: []string{"await"}},
				{Language: "python", Words: []string{"type"}},
				{Language: "rust"},
			},
			wantString: "python=match,case; js=await; python=type; rust=",
			wantMap: map[string][]string{
				"python": {"match", "case", "type"},
				"js":     {"await"},
				"rust":   {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

			var got []Keywords
			list := ListOf(&got)
			fset.Var(list, "keywords", "")
			_ = fset.Bool("highlight", false, "")
			require.NoError(t, fset.Parse(tt.give))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, list.Get(), "Get")
			assert.Equal(t, tt.wantString, list.String(), "String")
			assert.Equal(t, tt.wantMap, KeywordMap(got), "KeywordMap")
		})
	}
}

func TestList_error(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var got []Keywords
	fset.Var(ListOf(&got), "keywords", "")

	err := fset.Parse([]string{
		"-keywords=python=match",
		"-keywords", "python",
		"-keywords", "js=await",
	})
	assert.ErrorContains(t, err, `expected form 'lang=keyword,...', got "python"`)

	// Parsing stops at the bad value; earlier values are kept.
	assert.Equal(t, []Keywords{
		{Language: "python", Words: []string{"match"}},
	}, got)
}
