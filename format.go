package main

import (
	"strings"
	"unicode/utf8"

	"github.com/hhhapz/docmake/pdfmake"
)

type preview struct {
	body  string
	size  int
	nodes int
	more  bool
}

// renderDocument converts md and returns the indented document JSON cut to
// limit bytes.
func renderDocument(conv pdfmake.Converter, md string, limit int) (preview, error) {
	content, err := conv.Convert(md)
	if err != nil {
		return preview{}, err
	}
	b, err := marshalDocument(content, true)
	if err != nil {
		return preview{}, err
	}

	full := strings.TrimSpace(string(b))
	body, more := truncate(full, limit)
	return preview{
		body:  body,
		size:  len(full),
		nodes: len(content),
		more:  more,
	}, nil
}

// truncate cuts s at the last line that fits in limit bytes. A first line
// longer than limit is cut on a rune boundary. A negative limit is 0.
func truncate(s string, limit int) (string, bool) {
	if limit < 0 {
		limit = 0
	}
	if len(s) <= limit {
		return s, false
	}

	b := strings.Builder{}
	b.Grow(limit)

	for i, line := range strings.Split(s, "\n") {
		if i == 0 && len(line) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			return line[:cut], true
		}

		if i > 0 {
			if b.Len()+len(line)+1 > limit {
				break
			}
			b.WriteRune('\n')
		}
		b.WriteString(line)
	}
	return b.String(), true
}
