package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MinAPIVersion is the oldest pandoc-api-version whose table layout
// matches this package.
var MinAPIVersion = []int{1, 22}

type element struct {
	T string          `json:"t"`
	C json.RawMessage `json:"c,omitempty"`
}

type outElement struct {
	T string `json:"t"`
	C any    `json:"c,omitempty"`
}

type docBase struct {
	APIVersion []int           `json:"pandoc-api-version"`
	Meta       json.RawMessage `json:"meta"`
	Blocks     []any           `json:"blocks"`
}

func (d *Document) MarshalJSON() ([]byte, error) {
	blocks, err := blocksValue(d.Blocks)
	if err != nil {
		return nil, err
	}
	meta := d.Meta
	if len(meta) == 0 {
		meta = json.RawMessage("{}")
	}
	return json.Marshal(docBase{
		APIVersion: d.APIVersion,
		Meta:       meta,
		Blocks:     blocks,
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	tmp := struct {
		APIVersion []int             `json:"pandoc-api-version"`
		Meta       json.RawMessage   `json:"meta"`
		Blocks     []json.RawMessage `json:"blocks"`
	}{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if !versionOK(tmp.APIVersion) {
		return fmt.Errorf("%w: %v (need >= %v)", ErrVersion, tmp.APIVersion, MinAPIVersion)
	}
	blocks, err := decodeBlockList(tmp.Blocks)
	if err != nil {
		return err
	}
	d.APIVersion = tmp.APIVersion
	d.Meta = tmp.Meta
	d.Blocks = blocks
	return nil
}

func versionOK(v []int) bool {
	if len(v) < len(MinAPIVersion) {
		return false
	}
	for i, want := range MinAPIVersion {
		if v[i] != want {
			return v[i] > want
		}
	}
	return true
}

func (a Attr) MarshalJSON() ([]byte, error) {
	classes := a.Classes
	if classes == nil {
		classes = []string{}
	}
	kvs := make([][2]string, len(a.KVs))
	for i, kv := range a.KVs {
		kvs[i] = [2]string{kv.Key, kv.Value}
	}
	return json.Marshal([]any{a.ID, classes, kvs})
}

func (a *Attr) UnmarshalJSON(d []byte) error {
	parts, err := tuple(d, 3, "attr")
	if err != nil {
		return err
	}
	var (
		id      string
		classes []string
		kvs     [][2]string
	)
	if err := json.Unmarshal(parts[0], &id); err != nil {
		return fmt.Errorf("%w: attr id: %w", ErrMalformed, err)
	}
	if err := json.Unmarshal(parts[1], &classes); err != nil {
		return fmt.Errorf("%w: attr classes: %w", ErrMalformed, err)
	}
	if err := json.Unmarshal(parts[2], &kvs); err != nil {
		return fmt.Errorf("%w: attr properties: %w", ErrMalformed, err)
	}
	a.ID = id
	a.Classes = classes
	a.KVs = nil
	for _, kv := range kvs {
		a.KVs = append(a.KVs, KV{Key: kv[0], Value: kv[1]})
	}
	return nil
}

// MarshalBlock encodes a single block as a pandoc element.
func MarshalBlock(b Block) ([]byte, error) {
	v, err := blockValue(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalBlock decodes a single pandoc block element.
func UnmarshalBlock(d []byte) (Block, error) {
	return decodeBlock(d)
}

func MarshalInline(i Inline) ([]byte, error) {
	v, err := inlineValue(i)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func UnmarshalInline(d []byte) (Inline, error) {
	return decodeInline(d)
}

// decoding

func tuple(c json.RawMessage, n int, what string) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(c, &parts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, what, err)
	}
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %s has %d parts, want %d", ErrMalformed, what, len(parts), n)
	}
	return parts, nil
}

func rawList(c json.RawMessage, what string) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(c, &parts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, what, err)
	}
	return parts, nil
}

func decodeBlockList(raws []json.RawMessage) ([]Block, error) {
	res := make([]Block, 0, len(raws))
	for i, raw := range raws {
		b, err := decodeBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		res = append(res, b)
	}
	return res, nil
}

func decodeBlocks(c json.RawMessage) ([]Block, error) {
	raws, err := rawList(c, "blocks")
	if err != nil {
		return nil, err
	}
	return decodeBlockList(raws)
}

func decodeBlockLists(c json.RawMessage) ([][]Block, error) {
	raws, err := rawList(c, "block lists")
	if err != nil {
		return nil, err
	}
	res := make([][]Block, 0, len(raws))
	for _, raw := range raws {
		bs, err := decodeBlocks(raw)
		if err != nil {
			return nil, err
		}
		res = append(res, bs)
	}
	return res, nil
}

func decodeInlines(c json.RawMessage) ([]Inline, error) {
	raws, err := rawList(c, "inlines")
	if err != nil {
		return nil, err
	}
	res := make([]Inline, 0, len(raws))
	for i, raw := range raws {
		in, err := decodeInline(raw)
		if err != nil {
			return nil, fmt.Errorf("inline %d: %w", i, err)
		}
		res = append(res, in)
	}
	return res, nil
}

func decodeString(c json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(c, &s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return s, nil
}

func decodeAttrText(c json.RawMessage, what string) (Attr, string, error) {
	parts, err := tuple(c, 2, what)
	if err != nil {
		return Attr{}, "", err
	}
	var a Attr
	if err := a.UnmarshalJSON(parts[0]); err != nil {
		return Attr{}, "", err
	}
	s, err := decodeString(parts[1])
	return a, s, err
}

func decodeFormatText(c json.RawMessage, what string) (string, string, error) {
	parts, err := tuple(c, 2, what)
	if err != nil {
		return "", "", err
	}
	f, err := decodeString(parts[0])
	if err != nil {
		return "", "", err
	}
	s, err := decodeString(parts[1])
	return f, s, err
}

func decodeAttrInlines(c json.RawMessage, what string) (Attr, []Inline, error) {
	parts, err := tuple(c, 2, what)
	if err != nil {
		return Attr{}, nil, err
	}
	var a Attr
	if err := a.UnmarshalJSON(parts[0]); err != nil {
		return Attr{}, nil, err
	}
	ins, err := decodeInlines(parts[1])
	return a, ins, err
}

func decodeBlock(d []byte) (Block, error) {
	var e element
	if err := json.Unmarshal(d, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	switch e.T {
	case "Plain":
		ins, err := decodeInlines(e.C)
		return &Plain{Inlines: ins}, err
	case "Para":
		ins, err := decodeInlines(e.C)
		return &Para{Inlines: ins}, err
	case "LineBlock":
		raws, err := rawList(e.C, e.T)
		if err != nil {
			return nil, err
		}
		lb := &LineBlock{Lines: make([][]Inline, 0, len(raws))}
		for _, raw := range raws {
			line, err := decodeInlines(raw)
			if err != nil {
				return nil, err
			}
			lb.Lines = append(lb.Lines, line)
		}
		return lb, nil
	case "CodeBlock":
		a, s, err := decodeAttrText(e.C, e.T)
		return &CodeBlock{Attr: a, Text: s}, err
	case "RawBlock":
		f, s, err := decodeFormatText(e.C, e.T)
		return &RawBlock{Format: f, Text: s}, err
	case "BlockQuote":
		bs, err := decodeBlocks(e.C)
		return &BlockQuote{Blocks: bs}, err
	case "OrderedList":
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		items, err := decodeBlockLists(parts[1])
		return &OrderedList{ListAttrs: parts[0], Items: items}, err
	case "BulletList":
		items, err := decodeBlockLists(e.C)
		return &BulletList{Items: items}, err
	case "DefinitionList":
		raws, err := rawList(e.C, e.T)
		if err != nil {
			return nil, err
		}
		dl := &DefinitionList{Items: make([]DefinitionItem, 0, len(raws))}
		for _, raw := range raws {
			parts, err := tuple(raw, 2, "definition item")
			if err != nil {
				return nil, err
			}
			term, err := decodeInlines(parts[0])
			if err != nil {
				return nil, err
			}
			defs, err := decodeBlockLists(parts[1])
			if err != nil {
				return nil, err
			}
			dl.Items = append(dl.Items, DefinitionItem{Term: term, Definitions: defs})
		}
		return dl, nil
	case "Header":
		parts, err := tuple(e.C, 3, e.T)
		if err != nil {
			return nil, err
		}
		h := &Header{}
		if err := json.Unmarshal(parts[0], &h.Level); err != nil {
			return nil, fmt.Errorf("%w: header level: %w", ErrMalformed, err)
		}
		if err := h.Attr.UnmarshalJSON(parts[1]); err != nil {
			return nil, err
		}
		h.Inlines, err = decodeInlines(parts[2])
		return h, err
	case "HorizontalRule":
		return &HorizontalRule{}, nil
	case "Table":
		return decodeTable(e.C)
	case "Figure":
		parts, err := tuple(e.C, 3, e.T)
		if err != nil {
			return nil, err
		}
		f := &Figure{}
		if err := f.Attr.UnmarshalJSON(parts[0]); err != nil {
			return nil, err
		}
		if f.Caption, err = decodeCaption(parts[1]); err != nil {
			return nil, err
		}
		f.Blocks, err = decodeBlocks(parts[2])
		return f, err
	case "Div":
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		div := &Div{}
		if err := div.Attr.UnmarshalJSON(parts[0]); err != nil {
			return nil, err
		}
		div.Blocks, err = decodeBlocks(parts[1])
		return div, err
	}
	return nil, fmt.Errorf("%w: block %q", ErrUnknownKind, e.T)
}

func decodeCaption(c json.RawMessage) (Caption, error) {
	parts, err := tuple(c, 2, "caption")
	if err != nil {
		return Caption{}, err
	}
	var res Caption
	if !bytes.Equal(bytes.TrimSpace(parts[0]), []byte("null")) {
		if res.Short, err = decodeInlines(parts[0]); err != nil {
			return Caption{}, err
		}
	}
	res.Blocks, err = decodeBlocks(parts[1])
	return res, err
}

func decodeRows(c json.RawMessage) ([]Row, error) {
	raws, err := rawList(c, "rows")
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(raws))
	for _, raw := range raws {
		parts, err := tuple(raw, 2, "row")
		if err != nil {
			return nil, err
		}
		var row Row
		if err := row.Attr.UnmarshalJSON(parts[0]); err != nil {
			return nil, err
		}
		cells, err := rawList(parts[1], "cells")
		if err != nil {
			return nil, err
		}
		for _, rc := range cells {
			cp, err := tuple(rc, 5, "cell")
			if err != nil {
				return nil, err
			}
			var cell Cell
			if err := cell.Attr.UnmarshalJSON(cp[0]); err != nil {
				return nil, err
			}
			cell.Alignment = cp[1]
			if err := json.Unmarshal(cp[2], &cell.RowSpan); err != nil {
				return nil, fmt.Errorf("%w: row span: %w", ErrMalformed, err)
			}
			if err := json.Unmarshal(cp[3], &cell.ColSpan); err != nil {
				return nil, fmt.Errorf("%w: col span: %w", ErrMalformed, err)
			}
			if cell.Blocks, err = decodeBlocks(cp[4]); err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeAttrRows(c json.RawMessage, what string) (Attr, []Row, error) {
	parts, err := tuple(c, 2, what)
	if err != nil {
		return Attr{}, nil, err
	}
	var a Attr
	if err := a.UnmarshalJSON(parts[0]); err != nil {
		return Attr{}, nil, err
	}
	rows, err := decodeRows(parts[1])
	return a, rows, err
}

func decodeTable(c json.RawMessage) (*Table, error) {
	parts, err := tuple(c, 6, "Table")
	if err != nil {
		return nil, err
	}
	t := &Table{ColSpecs: parts[2]}
	if err := t.Attr.UnmarshalJSON(parts[0]); err != nil {
		return nil, err
	}
	if t.Caption, err = decodeCaption(parts[1]); err != nil {
		return nil, err
	}
	if t.Head.Attr, t.Head.Rows, err = decodeAttrRows(parts[3], "table head"); err != nil {
		return nil, err
	}
	bodies, err := rawList(parts[4], "table bodies")
	if err != nil {
		return nil, err
	}
	for _, raw := range bodies {
		bp, err := tuple(raw, 4, "table body")
		if err != nil {
			return nil, err
		}
		var body TableBody
		if err := body.Attr.UnmarshalJSON(bp[0]); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(bp[1], &body.RowHeadColumns); err != nil {
			return nil, fmt.Errorf("%w: row head columns: %w", ErrMalformed, err)
		}
		if body.Head, err = decodeRows(bp[2]); err != nil {
			return nil, err
		}
		if body.Body, err = decodeRows(bp[3]); err != nil {
			return nil, err
		}
		t.Bodies = append(t.Bodies, body)
	}
	if t.Foot.Attr, t.Foot.Rows, err = decodeAttrRows(parts[5], "table foot"); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeInline(d []byte) (Inline, error) {
	var e element
	if err := json.Unmarshal(d, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	switch e.T {
	case "Str":
		s, err := decodeString(e.C)
		return &Str{Text: s}, err
	case "Emph":
		ins, err := decodeInlines(e.C)
		return &Emph{Inlines: ins}, err
	case "Underline":
		ins, err := decodeInlines(e.C)
		return &Underline{Inlines: ins}, err
	case "Strong":
		ins, err := decodeInlines(e.C)
		return &Strong{Inlines: ins}, err
	case "Strikeout":
		ins, err := decodeInlines(e.C)
		return &Strikeout{Inlines: ins}, err
	case "Superscript":
		ins, err := decodeInlines(e.C)
		return &Superscript{Inlines: ins}, err
	case "Subscript":
		ins, err := decodeInlines(e.C)
		return &Subscript{Inlines: ins}, err
	case "SmallCaps":
		ins, err := decodeInlines(e.C)
		return &SmallCaps{Inlines: ins}, err
	case "Quoted":
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		ins, err := decodeInlines(parts[1])
		return &Quoted{QuoteType: parts[0], Inlines: ins}, err
	case "Cite":
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		ins, err := decodeInlines(parts[1])
		return &Cite{Citations: parts[0], Inlines: ins}, err
	case "Code":
		a, s, err := decodeAttrText(e.C, e.T)
		return &Code{Attr: a, Text: s}, err
	case "Space":
		return &Space{}, nil
	case "SoftBreak":
		return &SoftBreak{}, nil
	case "LineBreak":
		return &LineBreak{}, nil
	case "Math":
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		s, err := decodeString(parts[1])
		return &Math{MathType: parts[0], Text: s}, err
	case "RawInline":
		f, s, err := decodeFormatText(e.C, e.T)
		return &RawInline{Format: f, Text: s}, err
	case "Link", "Image":
		parts, err := tuple(e.C, 3, e.T)
		if err != nil {
			return nil, err
		}
		var a Attr
		if err := a.UnmarshalJSON(parts[0]); err != nil {
			return nil, err
		}
		ins, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		var target [2]string
		if err := json.Unmarshal(parts[2], &target); err != nil {
			return nil, fmt.Errorf("%w: target: %w", ErrMalformed, err)
		}
		t := Target{URL: target[0], Title: target[1]}
		if e.T == "Link" {
			return &Link{Attr: a, Inlines: ins, Target: t}, nil
		}
		return &Image{Attr: a, Inlines: ins, Target: t}, nil
	case "Note":
		bs, err := decodeBlocks(e.C)
		return &Note{Blocks: bs}, err
	case "Span":
		a, ins, err := decodeAttrInlines(e.C, e.T)
		return &Span{Attr: a, Inlines: ins}, err
	}
	return nil, fmt.Errorf("%w: inline %q", ErrUnknownKind, e.T)
}

// encoding

var (
	defaultListAttrs = json.RawMessage(`[1,{"t":"DefaultStyle"},{"t":"DefaultDelim"}]`)
	defaultQuote     = json.RawMessage(`{"t":"DoubleQuote"}`)
	defaultMath      = json.RawMessage(`{"t":"InlineMath"}`)
	defaultAlign     = json.RawMessage(`{"t":"AlignDefault"}`)
	emptyList        = json.RawMessage(`[]`)
)

func orDefault(r, def json.RawMessage) json.RawMessage {
	if len(r) == 0 {
		return def
	}
	return r
}

func blocksValue(bs []Block) ([]any, error) {
	res := make([]any, 0, len(bs))
	for _, b := range bs {
		v, err := blockValue(b)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func blockListsValue(bss [][]Block) ([]any, error) {
	res := make([]any, 0, len(bss))
	for _, bs := range bss {
		v, err := blocksValue(bs)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func inlinesValue(ins []Inline) ([]any, error) {
	res := make([]any, 0, len(ins))
	for _, in := range ins {
		v, err := inlineValue(in)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func blockValue(b Block) (any, error) {
	switch x := b.(type) {
	case *Plain:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Plain", C: ins}, err
	case *Para:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Para", C: ins}, err
	case *LineBlock:
		lines := make([]any, 0, len(x.Lines))
		for _, line := range x.Lines {
			ins, err := inlinesValue(line)
			if err != nil {
				return nil, err
			}
			lines = append(lines, ins)
		}
		return outElement{T: "LineBlock", C: lines}, nil
	case *CodeBlock:
		return outElement{T: "CodeBlock", C: []any{x.Attr, x.Text}}, nil
	case *RawBlock:
		return outElement{T: "RawBlock", C: []any{x.Format, x.Text}}, nil
	case *BlockQuote:
		bs, err := blocksValue(x.Blocks)
		return outElement{T: "BlockQuote", C: bs}, err
	case *OrderedList:
		items, err := blockListsValue(x.Items)
		return outElement{T: "OrderedList", C: []any{orDefault(x.ListAttrs, defaultListAttrs), items}}, err
	case *BulletList:
		items, err := blockListsValue(x.Items)
		return outElement{T: "BulletList", C: items}, err
	case *DefinitionList:
		items := make([]any, 0, len(x.Items))
		for _, item := range x.Items {
			term, err := inlinesValue(item.Term)
			if err != nil {
				return nil, err
			}
			defs, err := blockListsValue(item.Definitions)
			if err != nil {
				return nil, err
			}
			items = append(items, []any{term, defs})
		}
		return outElement{T: "DefinitionList", C: items}, nil
	case *Header:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Header", C: []any{x.Level, x.Attr, ins}}, err
	case *HorizontalRule:
		return outElement{T: "HorizontalRule"}, nil
	case *Table:
		return tableValue(x)
	case *Figure:
		caption, err := captionValue(x.Caption)
		if err != nil {
			return nil, err
		}
		bs, err := blocksValue(x.Blocks)
		return outElement{T: "Figure", C: []any{x.Attr, caption, bs}}, err
	case *Div:
		bs, err := blocksValue(x.Blocks)
		return outElement{T: "Div", C: []any{x.Attr, bs}}, err
	}
	return nil, fmt.Errorf("%w: block %T", ErrUnknownKind, b)
}

func captionValue(c Caption) (any, error) {
	var short any
	if c.Short != nil {
		ins, err := inlinesValue(c.Short)
		if err != nil {
			return nil, err
		}
		short = ins
	}
	bs, err := blocksValue(c.Blocks)
	return []any{short, bs}, err
}

func rowsValue(rows []Row) ([]any, error) {
	res := make([]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, 0, len(row.Cells))
		for _, cell := range row.Cells {
			bs, err := blocksValue(cell.Blocks)
			if err != nil {
				return nil, err
			}
			cells = append(cells, []any{cell.Attr, orDefault(cell.Alignment, defaultAlign), cell.RowSpan, cell.ColSpan, bs})
		}
		res = append(res, []any{row.Attr, cells})
	}
	return res, nil
}

func tableValue(t *Table) (any, error) {
	caption, err := captionValue(t.Caption)
	if err != nil {
		return nil, err
	}
	head, err := rowsValue(t.Head.Rows)
	if err != nil {
		return nil, err
	}
	bodies := make([]any, 0, len(t.Bodies))
	for _, body := range t.Bodies {
		bh, err := rowsValue(body.Head)
		if err != nil {
			return nil, err
		}
		bb, err := rowsValue(body.Body)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, []any{body.Attr, body.RowHeadColumns, bh, bb})
	}
	foot, err := rowsValue(t.Foot.Rows)
	if err != nil {
		return nil, err
	}
	return outElement{T: "Table", C: []any{
		t.Attr,
		caption,
		orDefault(t.ColSpecs, emptyList),
		[]any{t.Head.Attr, head},
		bodies,
		[]any{t.Foot.Attr, foot},
	}}, nil
}

func inlineValue(in Inline) (any, error) {
	wrap := func(t string, ins []Inline) (any, error) {
		v, err := inlinesValue(ins)
		return outElement{T: t, C: v}, err
	}
	switch x := in.(type) {
	case *Str:
		return outElement{T: "Str", C: x.Text}, nil
	case *Emph:
		return wrap("Emph", x.Inlines)
	case *Underline:
		return wrap("Underline", x.Inlines)
	case *Strong:
		return wrap("Strong", x.Inlines)
	case *Strikeout:
		return wrap("Strikeout", x.Inlines)
	case *Superscript:
		return wrap("Superscript", x.Inlines)
	case *Subscript:
		return wrap("Subscript", x.Inlines)
	case *SmallCaps:
		return wrap("SmallCaps", x.Inlines)
	case *Quoted:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Quoted", C: []any{orDefault(x.QuoteType, defaultQuote), ins}}, err
	case *Cite:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Cite", C: []any{orDefault(x.Citations, emptyList), ins}}, err
	case *Code:
		return outElement{T: "Code", C: []any{x.Attr, x.Text}}, nil
	case *Space:
		return outElement{T: "Space"}, nil
	case *SoftBreak:
		return outElement{T: "SoftBreak"}, nil
	case *LineBreak:
		return outElement{T: "LineBreak"}, nil
	case *Math:
		return outElement{T: "Math", C: []any{orDefault(x.MathType, defaultMath), x.Text}}, nil
	case *RawInline:
		return outElement{T: "RawInline", C: []any{x.Format, x.Text}}, nil
	case *Link:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Link", C: []any{x.Attr, ins, [2]string{x.Target.URL, x.Target.Title}}}, err
	case *Image:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Image", C: []any{x.Attr, ins, [2]string{x.Target.URL, x.Target.Title}}}, err
	case *Note:
		bs, err := blocksValue(x.Blocks)
		return outElement{T: "Note", C: bs}, err
	case *Span:
		ins, err := inlinesValue(x.Inlines)
		return outElement{T: "Span", C: []any{x.Attr, ins}}, err
	}
	return nil, fmt.Errorf("%w: inline %T", ErrUnknownKind, in)
}
