package filter

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
	"github.com/signadot/sphinxmd/ast"
)

func str(s string) *ast.Str { return ast.FromString(s) }

func words(s string) []ast.Inline { return ast.FromWords(s) }

func para(s string) *ast.Para { return ast.NewPara(words(s)...) }

func plain(s string) *ast.Plain { return &ast.Plain{Inlines: words(s)} }

func div(class string, bs ...ast.Block) *ast.Div {
	return &ast.Div{Attr: ast.Attr{Classes: []string{class}}, Blocks: bs}
}

func strong(ins ...ast.Inline) *ast.Strong { return &ast.Strong{Inlines: ins} }

func refCode(s string) *ast.Code {
	return &ast.Code{Attr: ast.Attr{KVs: []ast.KV{{Key: "role", Value: "ref"}}}, Text: s}
}

func newDoc(bs ...ast.Block) *ast.Document {
	return &ast.Document{APIVersion: []int{1, 23, 1}, Blocks: bs}
}

// logged returns a logger writing JSON lines to the returned buffer.
func logged() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf), buf
}

// diagnostics counts the log lines of buf with message msg.
func diagnostics(buf *bytes.Buffer, msg string) int {
	return strings.Count(buf.String(), `"message":"`+msg+`"`)
}
