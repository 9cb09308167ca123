package pdfmake

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/hhhapz/docmake/markdown"
	"golang.org/x/net/html"
)

// Renderer turns markdown into HTML.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

type RendererFunc func(src []byte) ([]byte, error)

func (f RendererFunc) Render(src []byte) ([]byte, error) {
	return f(src)
}

// Parser turns HTML into the top level elements of the document body.
type Parser interface {
	Parse(src []byte) ([]*html.Node, error)
}

type ParserFunc func(src []byte) ([]*html.Node, error)

func (f ParserFunc) Parse(src []byte) ([]*html.Node, error) {
	return f(src)
}

// HTMLParser parses full or fragment HTML documents with goquery.
type HTMLParser struct{}

func (HTMLParser) Parse(src []byte) ([]*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}
	return doc.Find("body").Children().Nodes, nil
}

// Converter converts markdown into pdfmake content. A nil Renderer uses
// goldmark with the default options, a nil Parser uses HTMLParser.
//
// A Converter keeps no state between calls and may be used concurrently as
// long as Style is not modified.
type Converter struct {
	Renderer Renderer
	Parser   Parser
	Style    Style
}

// Convert returns one node per top level element, in document order. Errors
// from the renderer or the parser are returned as is.
func (c Converter) Convert(md string) ([]Content, error) {
	renderer := c.Renderer
	if renderer == nil {
		renderer = markdown.New(markdown.Options{})
	}
	parser := c.Parser
	if parser == nil {
		parser = HTMLParser{}
	}

	src, err := renderer.Render([]byte(md))
	if err != nil {
		return nil, err
	}
	elements, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	content := make([]Content, 0, len(elements))
	for _, el := range elements {
		content = append(content, build(el, c.Style))
	}
	return content, nil
}

// Convert converts md with the default renderer and parser.
func Convert(md string, style Style) ([]Content, error) {
	return Converter{Style: style}.Convert(md)
}
