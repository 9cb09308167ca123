// Package markdown renders markdown into HTML with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options configures a Renderer.
type Options struct {
	// Extensions are goldmark extension names, see extensionAliases. An
	// empty list enables GFM.
	Extensions []string

	HardWraps bool

	// Safe drops raw HTML found in the source instead of passing it
	// through.
	Safe bool
}

// Renderer turns markdown into HTML. It holds no state besides its options
// and may be shared between goroutines.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := newEngine(r.opts).Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.Safe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

// extensionAliases maps accepted names to the canonical extension name.
var extensionAliases = map[string]string{
	"gfm":           "gfm",
	"table":         "table",
	"tables":        "table",
	"strikethrough": "strikethrough",
	"linkify":       "linkify",
	"autolink":      "linkify",
	"tasklist":      "tasklist",
	"definition":    "definition",
	"footnote":      "footnote",
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// collectExtensions resolves extension names. Unknown names are skipped and
// aliases of an already enabled extension are not added twice.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key, ok := extensionAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		extenders = append(extenders, extensionRegistry[key])
		seen[key] = struct{}{}
	}

	return extenders
}
