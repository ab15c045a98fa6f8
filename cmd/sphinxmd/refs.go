package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/bookmark"
)

func refs(cfg *RefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Refs.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := cfg.filter()
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, func(in *input) error {
		doc, err := f.RepairTitles(in.doc)
		if err != nil {
			return err
		}
		return writeRefs(cc.Out, f.Bookmarks(doc), cfg.Raw)
	})
}

func writeRefs(w io.Writer, reg *bookmark.Registry, raw bool) error {
	if raw {
		for _, id := range reg.IDs() {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
		}
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, id := range reg.IDs() {
		b, _ := reg.Lookup(id)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, b.Anchor, ast.Stringify(b.Caption...))
	}
	return tw.Flush()
}
