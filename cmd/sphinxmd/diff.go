package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/encode"
	"github.com/signadot/sphinxmd/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: negative -context %d", cli.ErrUsage, cfg.Context)
	}
	f, err := cfg.filter()
	if err != nil {
		return err
	}
	differs := false
	err = eachInput(cfg.MainConfig, cc, args, func(in *input) error {
		res, err := f.Run(in.doc)
		if err != nil {
			return err
		}
		d, err := diffDocs(cfg, in, res.Doc, cfg.colors(cc.Out))
		if err != nil {
			return err
		}
		if d == "" {
			return nil
		}
		differs = true
		_, err = cc.Out.Write([]byte(d))
		return err
	})
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs returns the difference between the input and the rewritten
// document, "" when there is none.
func diffDocs(cfg *DiffConfig, in *input, out *ast.Document, colors bool) (string, error) {
	if cfg.Patch {
		from, err := encode.Bytes(in.doc, encode.Compact(true))
		if err != nil {
			return "", err
		}
		to, err := encode.Bytes(out, encode.Compact(true))
		if err != nil {
			return "", err
		}
		if bytes.Equal(from, to) {
			return "", nil
		}
		patch, err := libdiff.MergePatch(from, to)
		if err != nil {
			return "", err
		}
		return string(patch) + "\n", nil
	}
	opts := append(cfg.encOpts(), encode.Compact(false))
	from, err := encode.Bytes(in.doc, opts...)
	if err != nil {
		return "", err
	}
	to, err := encode.Bytes(out, opts...)
	if err != nil {
		return "", err
	}
	lines := libdiff.Lines(string(from), string(to))
	if !libdiff.Changed(lines) {
		return "", nil
	}
	return fmt.Sprintf("--- %s\n+++ %s (filtered)\n", in.name, in.name) +
		libdiff.Format(lines, cfg.Context, colors), nil
}
