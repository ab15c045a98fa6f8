package filter

import (
	"slices"

	"github.com/signadot/sphinxmd/ast"
)

func nodes[T ast.Node](ts []T) []ast.Node {
	res := make([]ast.Node, len(ts))
	for i, t := range ts {
		res[i] = t
	}
	return res
}

func keep(ast.Node) ([]ast.Node, ast.Result, error) {
	return nil, ast.Continue, nil
}

// quote rewrites a block quote. RST turns indented text into quotes, so by
// default the quote is dropped and its content spliced into the parent.
func (s *State) quote(q *ast.BlockQuote) ([]ast.Node, ast.Result, error) {
	bs, err := s.unquote(q.Blocks, s.rewriteNode)
	if err != nil {
		return nil, ast.Continue, err
	}
	if s.cfg.UnwrapQuotes {
		return nodes(bs), ast.ReplaceSkip, nil
	}
	return []ast.Node{&ast.BlockQuote{Blocks: bs}}, ast.ReplaceSkip, nil
}

// tableQuote unwraps the quotes found in table bodies.
func (s *State) tableQuote(n ast.Node) ([]ast.Node, ast.Result, error) {
	q, ok := n.(*ast.BlockQuote)
	if !ok {
		return nil, ast.Continue, nil
	}
	bs, err := s.unquote(q.Blocks, keep)
	if err != nil {
		return nil, ast.Continue, err
	}
	return nodes(bs), ast.ReplaceSkip, nil
}

// unquote indents the line blocks of the content bs of a quote, then walks
// it with f, splicing nested quotes into their parent.
func (s *State) unquote(bs []ast.Block, f ast.Func) ([]ast.Block, error) {
	bs, err := ast.WalkBlocks(bs, s.indentLines)
	if err != nil {
		return nil, err
	}
	var g ast.Func
	g = func(n ast.Node) ([]ast.Node, ast.Result, error) {
		q, ok := n.(*ast.BlockQuote)
		if !ok {
			return f(n)
		}
		inner, err := ast.WalkBlocks(q.Blocks, g)
		if err != nil {
			return nil, ast.Continue, err
		}
		return nodes(inner), ast.ReplaceSkip, nil
	}
	return ast.WalkBlocks(bs, g)
}

func (s *State) indentLines(n ast.Node) ([]ast.Node, ast.Result, error) {
	lb, ok := n.(*ast.LineBlock)
	if !ok || len(lb.Lines) == 0 {
		return nil, ast.Continue, nil
	}
	lines := slices.Clone(lb.Lines)
	lines[0] = append([]ast.Inline{&ast.RawInline{Format: "html", Text: s.cfg.LineIndent}}, lb.Lines[0]...)
	return []ast.Node{&ast.LineBlock{Lines: lines}}, ast.ReplaceSkip, nil
}
