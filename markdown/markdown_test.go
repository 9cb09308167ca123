package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name     string
		opts     Options
		src      string
		contains string
		missing  string
	}{
		{
			name:     "heading",
			src:      "# Hello",
			contains: `<h1 id="hello">Hello</h1>`,
		},
		{
			name:     "emphasis",
			src:      "**a** *b*",
			contains: "<p><strong>a</strong> <em>b</em></p>",
		},
		{
			name:     "raw html passes through",
			src:      "a <span>b</span>",
			contains: "<span>b</span>",
		},
		{
			name:     "safe drops raw html",
			opts:     Options{Safe: true},
			src:      "a <span>b</span>",
			contains: "raw HTML omitted",
			missing:  "<span>",
		},
		{
			name:     "gfm by default",
			src:      "~~gone~~",
			contains: "<del>gone</del>",
		},
		{
			name:    "explicit extensions replace the default",
			opts:    Options{Extensions: []string{"table"}},
			src:     "~~gone~~",
			missing: "<del>",
		},
		{
			name:     "hard wraps",
			opts:     Options{HardWraps: true},
			src:      "a\nb",
			contains: "<br",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := New(c.opts).Render([]byte(c.src))
			require.NoError(t, err)
			if c.contains != "" {
				assert.Contains(t, string(out), c.contains)
			}
			if c.missing != "" {
				assert.NotContains(t, string(out), c.missing)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := New(Options{}).Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCollectExtensions(t *testing.T) {
	assert.Equal(t, []goldmark.Extender{extension.GFM}, collectExtensions(nil))

	exts := collectExtensions([]string{"Tables", " table ", "bogus", "autolink", "linkify"})
	assert.Equal(t, []goldmark.Extender{extension.Table, extension.Linkify}, exts)

	assert.Empty(t, collectExtensions([]string{"bogus"}))
}
