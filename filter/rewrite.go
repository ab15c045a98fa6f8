package filter

import (
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/bookmark"
	"github.com/signadot/sphinxmd/debug"
)

func (s *State) rewrite(doc *ast.Document) (*ast.Document, error) {
	return ast.WalkDocument(doc, s.rewriteNode)
}

func (s *State) rewriteNode(n ast.Node) ([]ast.Node, ast.Result, error) {
	if debug.Walk() {
		debug.Logf("rewrite %s\n", n.Kind())
	}
	switch x := n.(type) {
	case *ast.BlockQuote:
		return s.quote(x)
	case *ast.Div:
		op := s.containerFor(x.Attr)
		if op == nil {
			return nil, ast.Continue, nil
		}
		if debug.Rewrite() {
			debug.Logf("container %s on div %q %v\n", op.Class(), x.Attr.ID, x.Attr.Classes)
		}
		s.stats.Containers[op.Class()]++
		return op.Rewrite(x, s)
	case *ast.Code:
		return s.reference(x)
	case *ast.CodeBlock:
		return s.codeBlock(x)
	case *ast.Table:
		t, err := ast.WalkTableBodies(x, s.tableQuote)
		if err != nil {
			return nil, ast.Continue, err
		}
		return []ast.Node{t}, ast.Replace, nil
	case *ast.SoftBreak:
		return []ast.Node{&ast.RawInline{Format: "html", Text: s.cfg.LineBreak}}, ast.Replace, nil
	case *ast.DefinitionList:
		if s.cfg.FieldListsInAPIOnly {
			return nil, ast.Continue, nil
		}
		div, err := s.fieldList(x)
		if err != nil {
			return nil, ast.Continue, err
		}
		return []ast.Node{div}, ast.Replace, nil
	}
	return nil, ast.Continue, nil
}

// reference turns a `:ref:` code span into a link to the heading it names.
func (s *State) reference(c *ast.Code) ([]ast.Node, ast.Result, error) {
	if role, _ := c.Attr.Get("role"); role != "ref" {
		return nil, ast.Continue, nil
	}
	b, ok := s.reg.Lookup(c.Text)
	if !ok {
		s.stats.Unresolved = append(s.stats.Unresolved, c.Text)
		s.log.Warn().Str("ref", c.Text).Msg("unresolved reference")
		link := &ast.Link{
			Inlines: []ast.Inline{ast.FromString(c.Text)},
			Target:  ast.Target{URL: bookmark.Slug(c.Text)},
		}
		return []ast.Node{link}, ast.ReplaceSkip, nil
	}
	s.stats.Refs++
	if debug.Rewrite() {
		debug.Logf("ref %q -> %s\n", c.Text, b.Anchor)
	}
	// a heading may refer to itself
	if s.resolving[c.Text] {
		link := &ast.Link{Inlines: []ast.Inline{ast.FromString(c.Text)}, Target: ast.Target{URL: b.Anchor}}
		return []ast.Node{link}, ast.ReplaceSkip, nil
	}
	s.resolving[c.Text] = true
	caption, err := ast.WalkInlines(b.Caption, s.rewriteNode)
	delete(s.resolving, c.Text)
	if err != nil {
		return nil, ast.Continue, err
	}
	return []ast.Node{&ast.Link{Inlines: caption, Target: ast.Target{URL: b.Anchor}}}, ast.ReplaceSkip, nil
}

func (s *State) codeBlock(cb *ast.CodeBlock) ([]ast.Node, ast.Result, error) {
	attr, changed := cb.Attr, false
	for _, c := range cb.Attr.Classes {
		if to, ok := s.cfg.Languages[c]; ok && to != c {
			attr = attr.ReplaceClass(c, to)
			changed = true
		}
	}
	if !changed {
		return nil, ast.Continue, nil
	}
	return []ast.Node{&ast.CodeBlock{Attr: attr, Text: cb.Text}}, ast.Replace, nil
}
