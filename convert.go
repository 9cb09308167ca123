package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hhhapz/docmake/pdfmake"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type convertOptions struct {
	input  string
	output string
	indent bool
	dump   bool
}

func convertFile(conv pdfmake.Converter, opts convertOptions) error {
	var in io.Reader = os.Stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer f.Close()
		in = f
	}

	src, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "could not read input")
	}

	content, err := conv.Convert(string(src))
	if err != nil {
		return errors.Wrap(err, "could not convert markdown")
	}
	if opts.dump {
		pp.Fprintln(os.Stderr, content)
	}

	out, err := marshalDocument(content, opts.indent)
	if err != nil {
		return err
	}

	if err := writeDocument(opts.output, out); err != nil {
		return err
	}

	log.Info().
		Str("input", humanize.Bytes(uint64(len(src)))).
		Str("output", humanize.Bytes(uint64(len(out)))).
		Int("nodes", len(content)).
		Msg("converted document")
	return nil
}

// writeDocument writes b to path, or to stdout when path is empty.
func writeDocument(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return errors.Wrap(err, "could not write document")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create output")
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return errors.Wrap(err, "could not write document")
	}
	return errors.Wrap(f.Close(), "could not close output")
}

func marshalDocument(content []pdfmake.Content, indent bool) ([]byte, error) {
	doc := pdfmake.Document{Content: content}

	var b []byte
	var err error
	if indent {
		b, err = json.MarshalIndent(doc, "", "  ")
	} else {
		b, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not encode document")
	}
	return append(b, '\n'), nil
}
