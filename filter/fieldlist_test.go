package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sphinxmd/ast"
)

func paramLead(name string, typ ...ast.Inline) []ast.Inline {
	return []ast.Inline{
		str(name), &ast.Space{}, str("("), strong(typ...), str(")"),
		&ast.Space{}, str("-"), &ast.Space{},
	}
}

func field(term string, bs ...ast.Block) ast.DefinitionItem {
	item := ast.DefinitionItem{Term: words(term)}
	if bs != nil {
		item.Definitions = [][]ast.Block{bs}
	}
	return item
}

func section(title string, items ...[]ast.Block) []ast.Block {
	return []ast.Block{
		ast.NewPara(strong(str(title))),
		&ast.BulletList{Items: items},
	}
}

type fieldListTest struct {
	name  string
	in    []ast.DefinitionItem
	out   []ast.Block
	err   error
	setup func(*Config)
}

func TestFieldList(t *testing.T) {
	argItem := func(name string, typ []ast.Inline, desc string) []ast.Block {
		return []ast.Block{&ast.Plain{Inlines: append(paramLead(name, typ...), words(desc)...)}}
	}
	tests := []fieldListTest{
		{
			name: "typed and named params",
			in: []ast.DefinitionItem{
				field("param int count", para("how many")),
				field("param name", para("who")),
			},
			out: section("Arguments",
				argItem("count", []ast.Inline{str("int")}, "how many"),
				argItem("name", []ast.Inline{str("name")}, "who"),
			),
		},
		{
			name: "type patches the last param",
			in: []ast.DefinitionItem{
				field("param a", para("first")),
				field("param b", para("second")),
				field("type b", para("Array.<string>")),
			},
			out: section("Arguments",
				argItem("a", []ast.Inline{str("a")}, "first"),
				argItem("b", []ast.Inline{str("Array.<string>")}, "second"),
			),
		},
		{
			name: "returns",
			in: []ast.DefinitionItem{
				field("param x", plain("in")),
				field("returns", para("a promise")),
				field("return", para("or a value")),
				field("rtype", para("Promise")),
			},
			out: append(append(
				section("Arguments", argItem("x", []ast.Inline{str("x")}, "in")),
				section("Returns", []ast.Block{para("a promise")}, []ast.Block{para("or a value")})...),
				section("Return Types", []ast.Block{para("Promise")})...),
		},
		{
			name: "param without description",
			in:   []ast.DefinitionItem{field("param x")},
			out:  section("Arguments", []ast.Block{&ast.Plain{Inlines: paramLead("x", str("x"))}}),
		},
		{
			name: "unknown tags",
			in: []ast.DefinitionItem{
				field("raises Error", para("sometimes")),
				field("param too many words here", para("x")),
			},
			out: nil,
		},
		{
			name: "section titles",
			setup: func(c *Config) {
				c.Sections.Arguments = "Parameters"
			},
			in:  []ast.DefinitionItem{field("param x", para("d"))},
			out: section("Parameters", argItem("x", []ast.Inline{str("x")}, "d")),
		},
		{
			name: "type first",
			in:   []ast.DefinitionItem{field("type x", para("int"))},
			err:  ErrInputShape,
		},
		{
			name: "type without description",
			in:   []ast.DefinitionItem{field("param x", para("d")), field("type x")},
			err:  ErrInputShape,
		},
		{
			name: "type with empty paragraph",
			in:   []ast.DefinitionItem{field("param x", para("d")), field("type x", &ast.Para{})},
			err:  ErrInputShape,
		},
		{
			name: "return without description",
			in:   []ast.DefinitionItem{field("return")},
			err:  ErrInputShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.setup != nil {
				tt.setup(cfg)
			}
			s := New(WithConfig(cfg)).newState(nil)
			out, err := s.fieldList(&ast.DefinitionList{Items: tt.in})
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got error %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, out.Blocks); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldListParamOrder(t *testing.T) {
	var items []ast.DefinitionItem
	names := []string{"e", "d", "c", "b", "a"}
	for _, n := range names {
		items = append(items, field("param "+n, para("desc")), field("type "+n, para("T"+n)))
	}
	out, err := New().newState(nil).fieldList(&ast.DefinitionList{Items: items})
	if err != nil {
		t.Fatal(err)
	}
	list := out.Blocks[1].(*ast.BulletList)
	if len(list.Items) != len(names) {
		t.Fatalf("got %d params, want %d", len(list.Items), len(names))
	}
	for i, item := range list.Items {
		ins := item[0].(*ast.Plain).Inlines
		if got := ast.Stringify(ins[0]); got != names[i] {
			t.Errorf("param %d is %q, want %q", i, got, names[i])
		}
		if got := ast.Stringify(ins[3]); got != "T"+names[i] {
			t.Errorf("param %d has type %q", i, got)
		}
	}
}

func TestFieldListPlacement(t *testing.T) {
	dl := &ast.DefinitionList{Items: []ast.DefinitionItem{field("param x", para("d"))}}
	want := &ast.Div{Blocks: section("Arguments", []ast.Block{
		&ast.Plain{Inlines: append(paramLead("x", str("x")), words("d")...)},
	})}

	out, err := New().Rewrite(newDoc(dl), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ast.Block{want}, out.Blocks); diff != "" {
		t.Errorf("top level (-want +got):\n%s", diff)
	}

	cfg := DefaultConfig()
	cfg.FieldListsInAPIOnly = true
	f := New(WithConfig(cfg))
	out, err = f.Rewrite(newDoc(dl), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ast.Block{dl}, out.Blocks); diff != "" {
		t.Errorf("api only, top level (-want +got):\n%s", diff)
	}
	out, err = f.Rewrite(newDoc(div("js-function", para("f(x)"), dl)), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ast.Block{div("js-function", ast.NewHeader(4, str("f(x)")), want)}, out.Blocks); diff != "" {
		t.Errorf("api only, in function (-want +got):\n%s", diff)
	}
}

func TestInputShapeAbortsRun(t *testing.T) {
	dl := &ast.DefinitionList{Items: []ast.DefinitionItem{field("type x", para("int"))}}
	res, err := New().Run(newDoc(para("ok"), div("js-function", para("f()"), dl)))
	if !errors.Is(err, ErrInputShape) {
		t.Fatalf("got %v, want %v", err, ErrInputShape)
	}
	if res != nil {
		t.Errorf("expected no result, got %v", res)
	}
}
