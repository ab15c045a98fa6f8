package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/filter"
)

func (cfg *MainConfig) summarize(in *input, res *filter.Result, outSize int) {
	if !cfg.Verbose {
		return
	}
	st := res.Stats
	fmt.Fprintf(cfg.errOut(), "%s: %s in, %s out, %s nodes, %d titles repaired, %d bookmarks, %d references (%d unresolved), %d functions, %d field lists\n",
		in.name,
		humanize.Bytes(uint64(in.size)),
		humanize.Bytes(uint64(outSize)),
		humanize.Comma(int64(countNodes(res.Doc))),
		st.Titles, st.Bookmarks, st.Refs+len(st.Unresolved), len(st.Unresolved),
		st.Functions, st.FieldLists)
}

func countNodes(doc *ast.Document) int {
	n := 0
	ast.VisitAll(doc.Blocks, func(ast.Node) bool {
		n++
		return true
	})
	return n
}
