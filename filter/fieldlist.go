package filter

import (
	"fmt"

	"github.com/signadot/sphinxmd/ast"
)

// paramVariant tells the two shapes of a ":param:" field apart.
type paramVariant int

const (
	// ":param type name:", term [param, sp, type, sp, name]
	paramTyped paramVariant = iota
	// ":param name:", term [param, sp, name]; the name stands for its type
	paramNamed
)

type param struct {
	variant paramVariant
	name    ast.Inline
	typ     []ast.Inline
	desc    []ast.Inline
}

func newParam(term []ast.Inline) (param, bool) {
	switch len(term) {
	case 5:
		return param{variant: paramTyped, name: term[4], typ: term[2:3]}, true
	case 3:
		return param{variant: paramNamed, name: term[2], typ: term[2:3]}, true
	}
	return param{}, false
}

// item renders p as "name (**type**) - description".
func (p param) item() []ast.Block {
	ins := []ast.Inline{
		p.name,
		&ast.Space{},
		ast.FromString("("),
		&ast.Strong{Inlines: p.typ},
		ast.FromString(")"),
		&ast.Space{},
		ast.FromString("-"),
		&ast.Space{},
	}
	return []ast.Block{&ast.Plain{Inlines: append(ins, p.desc...)}}
}

func fieldTag(term []ast.Inline) string {
	if len(term) == 0 {
		return ""
	}
	if str, ok := term[0].(*ast.Str); ok {
		return str.Text
	}
	return ""
}

// fieldList turns a Sphinx field list into titled bullet lists of
// arguments, return values and return types.
func (s *State) fieldList(dl *ast.DefinitionList) (*ast.Div, error) {
	var (
		params  []param
		returns [][]ast.Block
		rtypes  [][]ast.Block
	)
	for i, item := range dl.Items {
		var def []ast.Block
		if len(item.Definitions) > 0 {
			def = item.Definitions[0]
		}
		switch tag := fieldTag(item.Term); tag {
		case "param":
			p, ok := newParam(item.Term)
			if !ok {
				continue
			}
			p.desc, _ = leadInlines(def)
			params = append(params, p)
		case "type":
			if len(params) == 0 {
				return nil, fmt.Errorf("%w: field %d: %q has no parameter to apply to", ErrInputShape, i, ast.Stringify(item.Term...))
			}
			typ, ok := leadInlines(def)
			if !ok || len(typ) == 0 {
				return nil, fmt.Errorf("%w: field %d: %q has no type", ErrInputShape, i, ast.Stringify(item.Term...))
			}
			params[len(params)-1].typ = typ
		case "returns":
			returns = append(returns, def)
		case "return":
			if len(def) == 0 {
				return nil, fmt.Errorf("%w: field %d: %q has no description", ErrInputShape, i, ast.Stringify(item.Term...))
			}
			returns = append(returns, def)
		case "rtype":
			rtypes = append(rtypes, def)
		}
	}
	s.stats.FieldLists++

	div := &ast.Div{}
	section := func(title string, items [][]ast.Block) {
		if len(items) == 0 {
			return
		}
		div.Blocks = append(div.Blocks,
			ast.NewPara(&ast.Strong{Inlines: []ast.Inline{ast.FromString(title)}}),
			&ast.BulletList{Items: items},
		)
	}
	args := make([][]ast.Block, len(params))
	for i, p := range params {
		args[i] = p.item()
	}
	section(s.cfg.Sections.Arguments, args)
	section(s.cfg.Sections.Returns, returns)
	section(s.cfg.Sections.ReturnTypes, rtypes)
	return div, nil
}
