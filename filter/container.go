package filter

import (
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/sphinxmd/ast"
)

// ContainerOp rewrites the Divs pandoc makes of one kind of Sphinx
// directive.
type ContainerOp interface {
	// Class is the Div class the op handles.
	Class() string
	Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error)
}

var (
	mu    sync.RWMutex
	ops   = map[string]ContainerOp{}
	order []string
)

// RegisterContainer adds op to the registry. Ops are tried in registration
// order; a Div is rewritten by the first op whose class, or an alias of it,
// the Div carries.
func RegisterContainer(op ContainerOp) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := ops[op.Class()]
	if present {
		return fmt.Errorf("%s: %w", op.Class(), ErrContainerExists)
	}
	ops[op.Class()] = op
	order = append(order, op.Class())
	return nil
}

func init() {
	RegisterContainer(titleOp{})
	RegisterContainer(versionOp{class: "versionadded", prefix: "New in version "})
	RegisterContainer(versionOp{class: "versionchanged", prefix: "Changed in version "})
	RegisterContainer(apiFunctionOp{})
	RegisterContainer(noteOp{})
	RegisterContainer(warningOp{})
}

func LookupContainer(class string) ContainerOp {
	mu.RLock()
	defer mu.RUnlock()
	return ops[class]
}

// Containers returns the registered ops in the order they are tried.
func Containers() []ContainerOp {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]ContainerOp, 0, len(order))
	for _, c := range order {
		res = append(res, ops[c])
	}
	return res
}

func (s *State) containerFor(a ast.Attr) ContainerOp {
	if len(a.Classes) == 0 {
		return nil
	}
	for _, op := range Containers() {
		if a.HasClass(op.Class()) {
			return op
		}
		for alias, target := range s.cfg.Containers {
			if target == op.Class() && a.HasClass(alias) {
				return op
			}
		}
	}
	return nil
}

// leadInlines returns the inlines of the first of bs, if it has any.
func leadInlines(bs []ast.Block) ([]ast.Inline, bool) {
	if len(bs) == 0 {
		return nil, false
	}
	switch b := bs[0].(type) {
	case *ast.Para:
		return b.Inlines, true
	case *ast.Plain:
		return b.Inlines, true
	}
	return nil, false
}

// withInlines returns a copy of the paragraph or plain block b holding ins.
func withInlines(b ast.Block, ins []ast.Inline) ast.Block {
	if _, ok := b.(*ast.Plain); ok {
		return &ast.Plain{Inlines: ins}
	}
	return &ast.Para{Inlines: ins}
}

type titleOp struct{}

func (titleOp) Class() string { return "title" }

// Rewrite emboldens the first inline of the title and splices the Div's
// content into its parent.
func (titleOp) Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error) {
	bs := slices.Clone(div.Blocks)
	if ins, ok := leadInlines(bs); ok && len(ins) > 0 {
		lead := append([]ast.Inline{&ast.Strong{Inlines: ins[:1:1]}}, ins[1:]...)
		bs[0] = withInlines(bs[0], lead)
	}
	return nodes(bs), ast.Replace, nil
}

type versionOp struct {
	class  string
	prefix string
}

func (o versionOp) Class() string { return o.class }

func (o versionOp) Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error) {
	ins := []ast.Inline{&ast.Strong{Inlines: ast.FromWords(o.prefix)}}
	rest := div.Blocks
	if lead, ok := leadInlines(div.Blocks); ok {
		ins = append(ins, lead...)
		rest = rest[1:]
	}
	res := []ast.Node{ast.NewPara(ins...)}
	return append(res, nodes(rest)...), ast.Replace, nil
}

type apiFunctionOp struct{}

func (apiFunctionOp) Class() string { return "js-function" }

func (apiFunctionOp) Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error) {
	res, err := s.apiFunction(div)
	if err != nil {
		return nil, ast.Continue, err
	}
	return []ast.Node{res}, ast.Replace, nil
}

type noteOp struct{}

func (noteOp) Class() string { return "note" }

func (noteOp) Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error) {
	return []ast.Node{&ast.BlockQuote{Blocks: div.Blocks}}, ast.Replace, nil
}

type warningOp struct{}

func (warningOp) Class() string { return "warning" }

func (warningOp) Rewrite(div *ast.Div, s *State) ([]ast.Node, ast.Result, error) {
	bs := append(slices.Clone(div.Blocks), &ast.RawBlock{Format: "markdown", Text: s.cfg.WarningMarker})
	return []ast.Node{&ast.BlockQuote{Blocks: bs}}, ast.Replace, nil
}
