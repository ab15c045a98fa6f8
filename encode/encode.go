// Package encode writes pandoc documents as JSON, the form pandoc reads
// back, or as YAML for reading.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/format"
)

type EncState struct {
	format  format.Format
	compact bool
	indent  int
}

func Encode(doc *ast.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	switch es.format {
	case format.JSONFormat:
		if !es.compact {
			buf := &bytes.Buffer{}
			if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
				return err
			}
			d = buf.Bytes()
		}
	case format.YAMLFormat:
		if d, err = yaml.JSONToYAML(d); err != nil {
			return fmt.Errorf("could not convert to yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// Bytes is Encode to a byte slice.
func Bytes(doc *ast.Document, opts ...EncodeOption) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(doc, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MustString(doc *ast.Document, opts ...EncodeOption) string {
	d, err := Bytes(doc, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}
