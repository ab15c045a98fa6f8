package ast

import (
	"fmt"
	"strings"
)

// Result tells a walk what to do with the node just visited.
type Result int

const (
	// Continue keeps the node and walks its children.
	Continue Result = iota
	// Skip keeps the node as is.
	Skip
	// Replace substitutes the returned nodes for the visited one and walks
	// the children of each replacement. The replacements themselves are not
	// visited again. An empty replacement deletes the node.
	Replace
	// ReplaceSkip substitutes the returned nodes without walking them.
	ReplaceSkip
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Skip:
		return "skip"
	case Replace:
		return "replace"
	case ReplaceSkip:
		return "replace-skip"
	}
	return "<unknown result>"
}

// Func is called for every node of a walk, in document order, parents
// before children.
type Func func(n Node) (repl []Node, res Result, err error)

func WalkBlocks(bs []Block, f Func) ([]Block, error) {
	return walkList(bs, f)
}

func WalkInlines(ins []Inline, f Func) ([]Inline, error) {
	return walkList(ins, f)
}

// WalkDocument walks the top level blocks of doc, returning a new document
// sharing doc's version and meta.
func WalkDocument(doc *Document, f Func) (*Document, error) {
	blocks, err := WalkBlocks(doc.Blocks, f)
	if err != nil {
		return nil, err
	}
	return &Document{APIVersion: doc.APIVersion, Meta: doc.Meta, Blocks: blocks}, nil
}

func walkList[T Node](list []T, f Func) ([]T, error) {
	if list == nil {
		return nil, nil
	}
	res := make([]T, 0, len(list))
	for _, n := range list {
		repl, r, err := f(n)
		if err != nil {
			return nil, err
		}
		switch r {
		case Continue:
			c, err := Children(n, f)
			if err != nil {
				return nil, err
			}
			res = append(res, c.(T))
		case Skip:
			res = append(res, n)
		case Replace, ReplaceSkip:
			for _, rn := range repl {
				t, ok := rn.(T)
				if !ok {
					return nil, fmt.Errorf("%w: %s in place of %s", ErrUnexpectedType, rn.Kind(), n.Kind())
				}
				if r == Replace {
					c, err := Children(t, f)
					if err != nil {
						return nil, err
					}
					t = c.(T)
				}
				res = append(res, t)
			}
		default:
			return nil, fmt.Errorf("invalid walk result %d", r)
		}
	}
	return res, nil
}

func walkLists[T Node](lists [][]T, f Func) ([][]T, error) {
	if lists == nil {
		return nil, nil
	}
	res := make([][]T, len(lists))
	for i, l := range lists {
		wl, err := walkList(l, f)
		if err != nil {
			return nil, err
		}
		res[i] = wl
	}
	return res, nil
}

func walkCaption(c Caption, f Func) (Caption, error) {
	var err error
	res := Caption{}
	if res.Short, err = walkList(c.Short, f); err != nil {
		return Caption{}, err
	}
	if res.Blocks, err = walkList(c.Blocks, f); err != nil {
		return Caption{}, err
	}
	return res, nil
}

func walkRows(rows []Row, f Func) ([]Row, error) {
	if rows == nil {
		return nil, nil
	}
	res := make([]Row, len(rows))
	for i, row := range rows {
		res[i] = Row{Attr: row.Attr, Cells: make([]Cell, len(row.Cells))}
		for j, cell := range row.Cells {
			bs, err := walkList(cell.Blocks, f)
			if err != nil {
				return nil, err
			}
			cell.Blocks = bs
			res[i].Cells[j] = cell
		}
	}
	return res, nil
}

// WalkTableBodies walks the rows of t's bodies only, leaving the caption,
// head and foot untouched.
func WalkTableBodies(t *Table, f Func) (*Table, error) {
	res := *t
	res.Bodies = make([]TableBody, len(t.Bodies))
	for i, body := range t.Bodies {
		var err error
		if body.Head, err = walkRows(body.Head, f); err != nil {
			return nil, err
		}
		if body.Body, err = walkRows(body.Body, f); err != nil {
			return nil, err
		}
		res.Bodies[i] = body
	}
	return &res, nil
}

// Children returns a shallow copy of n whose child lists have been walked
// with f. Leaf nodes are returned unchanged.
func Children(n Node, f Func) (Node, error) {
	var err error
	switch x := n.(type) {
	case *Plain:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Para:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *LineBlock:
		res := *x
		res.Lines, err = walkLists(x.Lines, f)
		return &res, err
	case *BlockQuote:
		res := *x
		res.Blocks, err = walkList(x.Blocks, f)
		return &res, err
	case *OrderedList:
		res := *x
		res.Items, err = walkLists(x.Items, f)
		return &res, err
	case *BulletList:
		res := *x
		res.Items, err = walkLists(x.Items, f)
		return &res, err
	case *DefinitionList:
		res := &DefinitionList{Items: make([]DefinitionItem, len(x.Items))}
		for i, item := range x.Items {
			term, err := walkList(item.Term, f)
			if err != nil {
				return nil, err
			}
			defs, err := walkLists(item.Definitions, f)
			if err != nil {
				return nil, err
			}
			res.Items[i] = DefinitionItem{Term: term, Definitions: defs}
		}
		return res, nil
	case *Header:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Table:
		res := *x
		if res.Caption, err = walkCaption(x.Caption, f); err != nil {
			return nil, err
		}
		if res.Head.Rows, err = walkRows(x.Head.Rows, f); err != nil {
			return nil, err
		}
		bodies, err := WalkTableBodies(x, f)
		if err != nil {
			return nil, err
		}
		res.Bodies = bodies.Bodies
		res.Foot.Rows, err = walkRows(x.Foot.Rows, f)
		return &res, err
	case *Figure:
		res := *x
		if res.Caption, err = walkCaption(x.Caption, f); err != nil {
			return nil, err
		}
		res.Blocks, err = walkList(x.Blocks, f)
		return &res, err
	case *Div:
		res := *x
		res.Blocks, err = walkList(x.Blocks, f)
		return &res, err
	case *Emph:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Underline:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Strong:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Strikeout:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Superscript:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Subscript:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *SmallCaps:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Quoted:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Cite:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Link:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Image:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	case *Note:
		res := *x
		res.Blocks, err = walkList(x.Blocks, f)
		return &res, err
	case *Span:
		res := *x
		res.Inlines, err = walkList(x.Inlines, f)
		return &res, err
	}
	return n, nil
}

// Visit calls f on the descendants of n in document order, going below a
// node only when f returns true for it. It never changes the tree.
func Visit(n Node, f func(n Node) bool) {
	Children(n, func(c Node) ([]Node, Result, error) {
		if f(c) {
			return nil, Continue, nil
		}
		return nil, Skip, nil
	})
}

// VisitAll is Visit over each node of ns, including the nodes themselves.
func VisitAll[N Node](ns []N, f func(n Node) bool) {
	for _, n := range ns {
		if f(n) {
			Visit(n, f)
		}
	}
}

// Stringify flattens the text of ns the way pandoc filters do: strings,
// code and math text verbatim, spaces and breaks as a single space, all
// other markup dropped.
func Stringify[N Node](ns ...N) string {
	b := &strings.Builder{}
	VisitAll(ns, func(n Node) bool {
		switch x := n.(type) {
		case *Str:
			b.WriteString(x.Text)
		case *Code:
			b.WriteString(x.Text)
		case *Math:
			b.WriteString(x.Text)
		case *Space, *SoftBreak, *LineBreak:
			b.WriteByte(' ')
		}
		return true
	})
	return b.String()
}
