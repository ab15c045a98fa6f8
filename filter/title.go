package filter

import (
	"regexp"
	"strings"

	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/debug"
)

// underline matches a line of "=" or "-" a heading underline was made of.
var underline = regexp.MustCompile(`^([=]{2,}|[-]{2,})?$`)

func (s *State) repairTitles(doc *ast.Document) (*ast.Document, error) {
	return ast.WalkDocument(doc, s.repairTitle)
}

// repairTitle splits a paragraph of the form
//
//	title text, SoftBreak, "=====", SoftBreak, more text
//
// into a heading and a paragraph holding what follows the underline.
func (s *State) repairTitle(n ast.Node) ([]ast.Node, ast.Result, error) {
	p, ok := n.(*ast.Para)
	if !ok || len(p.Inlines) < 3 {
		return nil, ast.Continue, nil
	}
	afterBreak := false
	for i, in := range p.Inlines {
		if str, ok := in.(*ast.Str); ok && afterBreak && underline.MatchString(str.Text) {
			level := 3
			if strings.HasPrefix(str.Text, "-") {
				level = 4
			}
			h := ast.NewHeader(level, p.Inlines[:i-1]...)
			s.stats.Titles++
			s.log.Warn().Str("title", ast.Stringify(h.Inlines...)).Msg("malformed title")
			if debug.Titles() {
				debug.Logf("split title at inline %d of %v\n", i, p)
			}
			if len(p.Inlines) > i+2 {
				return []ast.Node{h, ast.NewPara(p.Inlines[i+2:]...)}, ast.Replace, nil
			}
			return []ast.Node{h}, ast.Replace, nil
		}
		_, afterBreak = in.(*ast.SoftBreak)
	}
	return nil, ast.Continue, nil
}
