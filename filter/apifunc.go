package filter

import (
	"strings"

	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/debug"
)

type headerState int

const (
	headerPending headerState = iota
	headerEmitted
)

// apiState follows the walk of one sphinx-js function container. count
// numbers the nodes of the container in document order from 0; subCount
// does the same from the start of the latest nested function.
type apiState struct {
	count       int
	subCount    int
	inSub       bool
	pkg         string
	hasPkg      bool
	header      headerState
	subFunction bool
}

func (st *apiState) firstOfScope() bool {
	return st.count == 0 || (st.inSub && st.subCount == 0)
}

// apiFunction rewrites the content of a js-function Div: the signature
// paragraph becomes a heading, JSON paragraphs become code blocks, field
// lists become sections and nested functions get a heading of their own,
// qualified by the package of the outer signature.
func (s *State) apiFunction(div *ast.Div) (*ast.Div, error) {
	st := &apiState{count: -1}
	bs, err := ast.WalkBlocks(div.Blocks, s.apiVisitor(st))
	if err != nil {
		return nil, err
	}
	return &ast.Div{Attr: div.Attr, Blocks: bs}, nil
}

func (s *State) apiVisitor(st *apiState) ast.Func {
	var f ast.Func
	f = func(n ast.Node) ([]ast.Node, ast.Result, error) {
		st.count++
		if st.inSub {
			st.subCount++
		}
		if debug.APIFunc() {
			debug.Logf("api %s count=%d sub=%d/%t header=%d\n", n.Kind(), st.count, st.subCount, st.inSub, st.header)
		}
		switch x := n.(type) {
		case *ast.Para:
			if st.firstOfScope() {
				if h := s.signature(st, x.Inlines); h != nil {
					return []ast.Node{h}, ast.ReplaceSkip, nil
				}
				return nil, ast.Continue, nil
			}
			if cb := jsonBlock(x); cb != nil {
				return []ast.Node{cb}, ast.ReplaceSkip, nil
			}
		case *ast.BulletList:
			if st.count == 0 {
				return s.methodMarker(st, x, f)
			}
		case *ast.DefinitionList:
			div, err := s.fieldList(x)
			if err != nil {
				return nil, ast.Continue, err
			}
			return []ast.Node{div}, ast.Replace, nil
		case *ast.Div:
			if !x.Attr.HasClass(apiFunctionOp{}.Class()) {
				break
			}
			st.header = headerPending
			st.subFunction = true
			st.inSub = true
			st.subCount = -1
			bs, err := ast.WalkBlocks(x.Blocks, f)
			if err != nil {
				return nil, ast.Continue, err
			}
			attr := x.Attr.Clone()
			attr.Classes = []string{"js-sub-function"}
			return []ast.Node{&ast.Div{Attr: attr, Blocks: bs}}, ast.ReplaceSkip, nil
		}
		return nil, ast.Continue, nil
	}
	return f
}

// signature returns the heading made of the signature paragraph ins, or nil
// if the current function already has one.
func (s *State) signature(st *apiState, ins []ast.Inline) *ast.Header {
	if !st.hasPkg {
		text := ast.Stringify(ins...)
		if i := strings.LastIndex(text, "."); i >= 0 {
			st.pkg, st.hasPkg = text[:i], true
		}
	}
	if st.header == headerEmitted {
		return nil
	}
	st.header = headerEmitted
	level := 4
	if st.hasPkg && st.subFunction {
		ins = qualify(st.pkg, ins)
		level = 5
	}
	h := ast.NewHeader(level, ins...)
	s.stats.Functions++
	s.log.Info().Str("heading", ast.Stringify(h.Inlines...)).Msg("function")
	return h
}

func qualify(pkg string, ins []ast.Inline) []ast.Inline {
	if len(ins) > 0 {
		if str, ok := ins[0].(*ast.Str); ok {
			return append([]ast.Inline{ast.FromString(pkg + "." + str.Text)}, ins[1:]...)
		}
	}
	return append([]ast.Inline{ast.FromString(pkg + ".")}, ins...)
}

// methodMarker handles a function whose signature comes as the first item
// of a bullet list, as sphinx-js renders instance methods. The item is
// marked with a leading "-" and treated as the signature paragraph; the
// remaining items are kept as a list.
func (s *State) methodMarker(st *apiState, bl *ast.BulletList, f ast.Func) ([]ast.Node, ast.Result, error) {
	if len(bl.Items) == 0 {
		return nil, ast.Continue, nil
	}
	first := bl.Items[0]
	ins, ok := leadInlines(first)
	if !ok {
		return nil, ast.Continue, nil
	}
	st.count = -1
	marked := append([]ast.Inline{ast.FromString("-"), &ast.Space{}}, ins...)
	para := ast.NewPara(marked...)
	repl, res, err := f(para)
	if err != nil {
		return nil, ast.Continue, err
	}
	var out []ast.Node
	if res == ast.Replace || res == ast.ReplaceSkip {
		out = append(out, repl...)
	} else {
		out = append(out, para)
	}
	out = append(out, nodes(first[1:])...)
	if len(bl.Items) > 1 {
		out = append(out, &ast.BulletList{Items: bl.Items[1:]})
	}
	return out, ast.Replace, nil
}

// jsonBlock returns a json code block for a paragraph that reads as a JSON
// object, or nil.
func jsonBlock(p *ast.Para) *ast.CodeBlock {
	if len(p.Inlines) == 0 {
		return nil
	}
	if _, ok := p.Inlines[0].(*ast.Str); !ok {
		return nil
	}
	text := ast.Stringify(p.Inlines...)
	if !strings.HasPrefix(strings.TrimSpace(text), "{") {
		return nil
	}
	return &ast.CodeBlock{Attr: ast.Attr{Classes: []string{"json"}}, Text: text}
}
