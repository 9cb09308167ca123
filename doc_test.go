package main

import (
	"testing"

	"github.com/hhhapz/doc"
	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		module string
		parts  []string
	}{
		{
			name:   "stdlib basic",
			query:  "strings",
			module: "strings",
			parts:  []string{},
		},
		{
			name:   "stdlib method",
			query:  "strings.Builder.Grow",
			module: "strings",
			parts:  []string{"builder", "grow"},
		},
		{
			name:   "stdlib redirect type",
			query:  "json.Unmarshal",
			module: "encoding/json",
			parts:  []string{"unmarshal"},
		},
		{
			name:   "stdlib crypto",
			query:  "md5.Sum",
			module: "crypto/md5",
			parts:  []string{"sum"},
		},
		{
			name:   "stdlib compress",
			query:  "flate.NewWriter",
			module: "compress/flate",
			parts:  []string{"newwriter"},
		},
		{
			name:   "stdlib cipher",
			query:  "aes.NewCipher",
			module: "crypto/aes",
			parts:  []string{"newcipher"},
		},
		{
			name:   "x package",
			query:  "x/net/html.Parse",
			module: "golang.org/x/net/html",
			parts:  []string{"parse"},
		},
		{
			name:   "custom method with space",
			query:  "github.com/yuin/goldmark Markdown Convert",
			module: "github.com/yuin/goldmark",
			parts:  []string{"markdown", "convert"},
		},
		{
			name:   "versioned",
			query:  "github.com/spf13/viper@v1.17.0 Viper",
			module: "github.com/spf13/viper@v1.17.0",
			parts:  []string{"Viper"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			module, parts := parseQuery(c.query)
			assert.Equal(t, c.module, module)
			assert.Equal(t, c.parts, parts)
		})
	}
}

func TestLookup(t *testing.T) {
	pkg := doc.Package{
		URL:      "example.com/pdf",
		Overview: doc.Comment{doc.Paragraph("Package pdf writes documents.")},
		Types: map[string]doc.Type{
			"writer": {
				Name:    "Writer",
				Comment: doc.Comment{doc.Paragraph("Writer writes.")},
				Methods: map[string]doc.Method{
					"flush": {For: "Writer", Name: "Flush"},
				},
			},
		},
		Functions: map[string]doc.Function{
			"new": {Name: "New"},
		},
	}

	cases := []struct {
		name    string
		parts   []string
		title   string
		anchor  string
		missing string
	}{
		{"package", nil, "Package example.com/pdf", "", ""},
		{"type", []string{"writer"}, "example.com/pdf: Writer", "#Writer", ""},
		{"function", []string{"new"}, "example.com/pdf: New", "#New", ""},
		{"method", []string{"writer", "flush"}, "example.com/pdf: Writer.Flush", "#Writer.Flush", ""},
		{"missing type", []string{"reader"}, "", "", "reader"},
		{"missing method", []string{"writer", "close"}, "", "", "close"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			title, anchor, _, missing := lookup(pkg, c.parts)
			assert.Equal(t, c.title, title)
			assert.Equal(t, c.anchor, anchor)
			assert.Equal(t, c.missing, missing)
		})
	}
}

func TestDocMarkdown(t *testing.T) {
	md := docMarkdown("Package pdf", doc.Comment{doc.Paragraph("Package pdf writes documents.")})
	assert.Contains(t, md, "# Package pdf\n\n")
	assert.Contains(t, md, "Package pdf writes documents.")

	assert.Equal(t, "# New\n\n*No documentation found*\n", docMarkdown("New", nil))
}
