package filter

import (
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/bookmark"
	"github.com/signadot/sphinxmd/debug"
)

func (s *State) collectBookmarks(doc *ast.Document) *bookmark.Registry {
	reg := bookmark.NewRegistry()
	ast.VisitAll(doc.Blocks, func(n ast.Node) bool {
		h, ok := n.(*ast.Header)
		if !ok {
			return true
		}
		b := bookmark.FromHeader(h.Attr.ID, h.Inlines)
		if debug.Bookmarks() {
			debug.Logf("bookmark %q -> %s\n", h.Attr.ID, b.Anchor)
		}
		reg.Set(h.Attr.ID, b)
		return true
	})
	s.stats.Bookmarks = reg.Len()
	return reg
}
