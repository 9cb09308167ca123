package pdfmake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Style holds the per tag overrides merged into the generated nodes. A key
// that is not set means no override. A Style is read, never written, by the
// converter.
type Style struct {
	P  Attributes `json:"p,omitempty"`
	H1 Attributes `json:"h1,omitempty"`
	H2 Attributes `json:"h2,omitempty"`
	H3 Attributes `json:"h3,omitempty"`
	H4 Attributes `json:"h4,omitempty"`
	H5 Attributes `json:"h5,omitempty"`
	H6 Attributes `json:"h6,omitempty"`
	UL Attributes `json:"ul,omitempty"`
	OL Attributes `json:"ol,omitempty"`
	LI Attributes `json:"li,omitempty"`

	// A applies to links, including links nested in bold or italic text.
	A Attributes `json:"a,omitempty"`
}

// For returns the overrides for a tag name, case insensitive.
func (s Style) For(tag string) Attributes {
	switch strings.ToLower(tag) {
	case "p":
		return s.P
	case "h1":
		return s.H1
	case "h2":
		return s.H2
	case "h3":
		return s.H3
	case "h4":
		return s.H4
	case "h5":
		return s.H5
	case "h6":
		return s.H6
	case "ul":
		return s.UL
	case "ol":
		return s.OL
	case "li":
		return s.LI
	case "a":
		return s.A
	}
	return nil
}

// LoadStyle decodes a JSON style file such as
//
//	{"h1": {"fontSize": 24, "bold": true}, "a": {"color": "blue"}}
//
// Unknown keys are ignored and an empty file is the zero Style.
func LoadStyle(r io.Reader) (Style, error) {
	var style Style
	err := json.NewDecoder(r).Decode(&style)
	if errors.Is(err, io.EOF) {
		return Style{}, nil
	}
	if err != nil {
		return Style{}, fmt.Errorf("could not decode style: %w", err)
	}
	return style, nil
}
