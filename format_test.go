package main

import (
	"encoding/json"
	"testing"

	"github.com/hhhapz/docmake/pdfmake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		limit int
		out   string
		more  bool
	}{
		{"fits", "a\nb", 3, "a\nb", false},
		{"cut on line", "aa\nbb\ncc", 6, "aa\nbb", true},
		{"first line only", "aa\nbb", 4, "aa", true},
		{"long first line", "abcdef\ng", 3, "abc", true},
		{"rune boundary", "héllo", 2, "h", true},
		{"zero", "abc", 0, "", true},
		{"negative limit", "abc", -5, "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, more := truncate(c.input, c.limit)
			assert.Equal(t, c.out, out)
			assert.Equal(t, c.more, more)
			assert.LessOrEqual(t, len(out), max(c.limit, 0))
		})
	}
}

func TestRenderDocument(t *testing.T) {
	p, err := renderDocument(pdfmake.Converter{}, "# Title\n\ntext\n", 1000)
	require.NoError(t, err)
	assert.False(t, p.more)
	assert.Equal(t, 2, p.nodes)
	assert.Equal(t, len(p.body), p.size)
	assert.JSONEq(t, `{"content": [{"text": "Title"}, {"text": "text"}]}`, p.body)

	p, err = renderDocument(pdfmake.Converter{}, "# Title\n\ntext\n", 20)
	require.NoError(t, err)
	assert.True(t, p.more)
	assert.LessOrEqual(t, len(p.body), 20)
	assert.Greater(t, p.size, 20)

	p, err = renderDocument(pdfmake.Converter{}, "# Title\n", 10-fence)
	require.NoError(t, err)
	assert.True(t, p.more)
	assert.Empty(t, p.body)
}

func TestMarshalDocument(t *testing.T) {
	content := []pdfmake.Content{pdfmake.Text{Text: "a", Attrs: pdfmake.Attributes{"bold": true}}}

	compact, err := marshalDocument(content, false)
	require.NoError(t, err)
	assert.Equal(t, `{"content":[{"bold":true,"text":"a"}]}`+"\n", string(compact))

	indented, err := marshalDocument(content, true)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"content\": [")
	assert.True(t, json.Valid(indented))

	empty, err := marshalDocument(nil, false)
	require.NoError(t, err)
	assert.Equal(t, `{"content":[]}`+"\n", string(empty))
}
