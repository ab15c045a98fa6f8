package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/bookmark"
	"github.com/signadot/sphinxmd/filter"
	"github.com/signadot/sphinxmd/format"
)

const doc = `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[
{"t":"Header","c":[1,["intro",[],[]],[{"t":"Str","c":"Intro"}]]},
{"t":"Para","c":[{"t":"Str","c":"see"},{"t":"SoftBreak"},{"t":"Code","c":[["",[],[["role","ref"]]],"intro"]}]}]}`

func TestReadInput(t *testing.T) {
	yamlFmt := format.YAMLFormat
	tests := []struct {
		name string
		cfg  *MainConfig
		in   string
	}{
		{"json", &MainConfig{}, `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":"hi"}]}]}`},
		{"yaml", &MainConfig{InFormat: &yamlFmt}, `
pandoc-api-version: [1, 23]
meta: {}
blocks:
- t: Para
  c:
  - t: Str
    c: hi
`},
	}
	want := []ast.Block{ast.NewPara(ast.FromString("hi"))}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := readInput(tt.cfg, "-", strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if in.name != "<stdin>" || in.size != len(tt.in) {
				t.Errorf("got name %q size %d", in.name, in.size)
			}
			if diff := cmp.Diff(want, in.doc.Blocks); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := readInput(&MainConfig{}, "-", strings.NewReader(`{"meta":{},"blocks":[]}`)); err == nil {
		t.Error("expected a version error")
	}
}

func TestWriteRefs(t *testing.T) {
	reg := bookmark.NewRegistry()
	reg.Set("intro", bookmark.FromHeader("intro", ast.FromWords("Intro")))
	buf := &bytes.Buffer{}
	if err := writeRefs(buf, reg, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "intro  #intro  Intro\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf.Reset()
	if err := writeRefs(buf, reg, true); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "intro\n"; got != want {
		t.Errorf("raw: got %q, want %q", got, want)
	}
}

func TestDiffDocs(t *testing.T) {
	in, err := readInput(&MainConfig{}, "-", strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	res, err := filter.New().Run(in.doc)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &DiffConfig{MainConfig: &MainConfig{}, Context: 1}
	d, err := diffDocs(cfg, in, res.Doc, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(d, "--- <stdin>\n+++ <stdin> (filtered)\n") {
		t.Errorf("unexpected diff header:\n%s", d)
	}
	if !strings.Contains(d, "\n- ") || !strings.Contains(d, "\n+ ") {
		t.Errorf("expected removed and added lines:\n%s", d)
	}
	if d, err := diffDocs(cfg, in, in.doc, false); err != nil || d != "" {
		t.Errorf("same document: got %q, %v", d, err)
	}

	cfg.Patch = true
	d, err = diffDocs(cfg, in, res.Doc, false)
	if err != nil {
		t.Fatal(err)
	}
	var patch map[string]any
	if err := json.Unmarshal([]byte(d), &patch); err != nil {
		t.Fatalf("invalid patch %q: %v", d, err)
	}
	if _, ok := patch["blocks"]; !ok {
		t.Errorf("patch does not touch blocks: %s", d)
	}
}

func TestCountNodes(t *testing.T) {
	d := &ast.Document{Blocks: []ast.Block{ast.NewPara(ast.FromWords("a b")...)}}
	if n := countNodes(d); n != 4 {
		t.Errorf("got %d nodes, want 4", n)
	}
}

func TestSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &MainConfig{Verbose: true, Err: buf}
	in := &input{name: "x.json", size: 2048}
	res := &filter.Result{
		Doc:   &ast.Document{Blocks: []ast.Block{ast.NewPara(ast.FromString("a"))}},
		Stats: filter.Stats{Titles: 1, Refs: 2, Unresolved: []string{"zz"}},
	}
	cfg.summarize(in, res, 1000)
	want := "x.json: 2.0 kB in, 1.0 kB out, 2 nodes, 1 titles repaired, 0 bookmarks, 3 references (1 unresolved), 0 functions, 0 field lists\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf.Reset()
	cfg.Verbose = false
	cfg.summarize(in, res, 1000)
	if buf.Len() != 0 {
		t.Errorf("unexpected summary %q", buf.String())
	}
}
