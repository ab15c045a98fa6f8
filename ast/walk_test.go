package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func para(words string) *Para { return NewPara(FromWords(words)...) }

func TestWalkBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   []Block
		f    Func
		out  []Block
	}{
		{
			name: "delete rules",
			in:   []Block{para("a"), &HorizontalRule{}, para("b")},
			f: func(n Node) ([]Node, Result, error) {
				if _, ok := n.(*HorizontalRule); ok {
					return nil, Replace, nil
				}
				return nil, Continue, nil
			},
			out: []Block{para("a"), para("b")},
		},
		{
			name: "unwrap quotes",
			in:   []Block{&BlockQuote{Blocks: []Block{para("a"), &BlockQuote{Blocks: []Block{para("b")}}}}},
			f: func(n Node) ([]Node, Result, error) {
				q, ok := n.(*BlockQuote)
				if !ok {
					return nil, Continue, nil
				}
				repl := make([]Node, len(q.Blocks))
				for i, b := range q.Blocks {
					repl[i] = b
				}
				return repl, Replace, nil
			},
			// the nested quote is a replacement and is not visited again
			out: []Block{para("a"), &BlockQuote{Blocks: []Block{para("b")}}},
		},
		{
			name: "replacement children are walked",
			in:   []Block{&Div{Blocks: []Block{para("x y")}}},
			f: func(n Node) ([]Node, Result, error) {
				switch x := n.(type) {
				case *Div:
					return []Node{&BlockQuote{Blocks: x.Blocks}}, Replace, nil
				case *Str:
					return []Node{FromString(x.Text + "!")}, Replace, nil
				}
				return nil, Continue, nil
			},
			out: []Block{&BlockQuote{Blocks: []Block{para("x! y!")}}},
		},
		{
			name: "replace skip",
			in:   []Block{&Div{Blocks: []Block{para("x")}}},
			f: func(n Node) ([]Node, Result, error) {
				switch x := n.(type) {
				case *Div:
					return []Node{&BlockQuote{Blocks: x.Blocks}}, ReplaceSkip, nil
				case *Str:
					return []Node{FromString("changed")}, Replace, nil
				}
				return nil, Continue, nil
			},
			out: []Block{&BlockQuote{Blocks: []Block{para("x")}}},
		},
		{
			name: "skip",
			in:   []Block{&Div{Blocks: []Block{para("x")}}, para("x")},
			f: func(n Node) ([]Node, Result, error) {
				switch x := n.(type) {
				case *Div:
					return nil, Skip, nil
				case *Str:
					return []Node{FromString(x.Text + x.Text)}, Replace, nil
				}
				return nil, Continue, nil
			},
			out: []Block{&Div{Blocks: []Block{para("x")}}, para("xx")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := WalkBlocks(tt.in, tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkLeavesInputAlone(t *testing.T) {
	in := []Block{&Div{Blocks: []Block{para("a b")}}}
	want := []Block{&Div{Blocks: []Block{para("a b")}}}
	_, err := WalkBlocks(in, func(n Node) ([]Node, Result, error) {
		if _, ok := n.(*Space); ok {
			return nil, Replace, nil
		}
		return nil, Continue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestWalkErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := WalkBlocks([]Block{para("a")}, func(n Node) ([]Node, Result, error) {
		if _, ok := n.(*Str); ok {
			return nil, Continue, boom
		}
		return nil, Continue, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
	_, err = WalkBlocks([]Block{para("a")}, func(n Node) ([]Node, Result, error) {
		if _, ok := n.(*Para); ok {
			return []Node{FromString("x")}, Replace, nil
		}
		return nil, Continue, nil
	})
	if !errors.Is(err, ErrUnexpectedType) {
		t.Errorf("got %v, want %v", err, ErrUnexpectedType)
	}
}

func TestWalkTableBodies(t *testing.T) {
	cell := func(b Block) Cell { return Cell{RowSpan: 1, ColSpan: 1, Blocks: []Block{b}} }
	row := func(b Block) Row { return Row{Cells: []Cell{cell(b)}} }
	in := &Table{
		Head:   TableHead{Rows: []Row{row(para("h"))}},
		Bodies: []TableBody{{Body: []Row{row(para("b"))}}},
		Foot:   TableFoot{Rows: []Row{row(para("f"))}},
	}
	out, err := WalkTableBodies(in, func(n Node) ([]Node, Result, error) {
		if s, ok := n.(*Str); ok {
			return []Node{FromString(s.Text + "2")}, Replace, nil
		}
		return nil, Continue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Table{
		Head:   TableHead{Rows: []Row{row(para("h"))}},
		Bodies: []TableBody{{Body: []Row{row(para("b2"))}}},
		Foot:   TableFoot{Rows: []Row{row(para("f"))}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in  []Inline
		out string
	}{
		{FromWords("hello  world"), "hello  world"},
		{[]Inline{&Strong{Inlines: FromWords("a b")}, &SoftBreak{}, &Code{Text: "c"}}, "a b c"},
		{[]Inline{&Math{Text: "x^2"}, &LineBreak{}, &RawInline{Format: "html", Text: "<b>"}}, "x^2 "},
		{[]Inline{&Link{Inlines: FromWords("l"), Target: Target{URL: "#x"}}, &Note{Blocks: []Block{para("n")}}}, "ln"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Stringify(tt.in...); got != tt.out {
			t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestAttrClasses(t *testing.T) {
	a := Attr{Classes: []string{"objective-c", "numberLines"}}
	if got := a.ReplaceClass("objective-c", "objc").Classes; !cmp.Equal(got, []string{"objc", "numberLines"}) {
		t.Errorf("replace: %v", got)
	}
	if got := a.WithClass("x").WithoutClass("numberLines").Classes; !cmp.Equal(got, []string{"objective-c", "x"}) {
		t.Errorf("with/without: %v", got)
	}
	if !cmp.Equal(a.Classes, []string{"objective-c", "numberLines"}) {
		t.Errorf("receiver changed: %v", a.Classes)
	}
}
