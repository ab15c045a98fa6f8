package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/ast"
)

type input struct {
	name string
	size int
	doc  *ast.Document
}

// readInput decodes the document at path, "-" meaning stdin.
func readInput(cfg *MainConfig, path string, stdin io.Reader) (*input, error) {
	r := stdin
	name := "<stdin>"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
		name = path
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	size := len(d)
	if cfg.inFormat().IsYAML() {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting %s from yaml: %w", name, err)
		}
	}
	doc := &ast.Document{}
	if err := json.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return &input{name: name, size: size, doc: doc}, nil
}

// eachInput calls f on the document of each file of args, or of stdin
// when args is empty.
func eachInput(cfg *MainConfig, cc *cli.Context, args []string, f func(in *input) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		in, err := readInput(cfg, arg, cc.In)
		if err != nil {
			return err
		}
		if err := f(in); err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
	}
	return nil
}
