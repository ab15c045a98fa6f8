// Package ast provides the document tree the filter operates on: the pandoc
// AST as produced by `pandoc -t json`.
//
// # Node Structure
//
// Every element of a document is a Node. Nodes are either blocks (Block) or
// inlines (Inline), one pointer struct per pandoc element:
//
//   - blocks: Plain, Para, LineBlock, CodeBlock, RawBlock, BlockQuote,
//     OrderedList, BulletList, DefinitionList, Header, HorizontalRule,
//     Table, Figure, Div
//   - inlines: Str, Emph, Underline, Strong, Strikeout, Superscript,
//     Subscript, SmallCaps, Quoted, Cite, Code, Space, SoftBreak,
//     LineBreak, Math, RawInline, Link, Image, Note, Span
//
// Kind() returns the element's Kind, whose String() is the pandoc tag.
//
// Header, Div, Span, Code, CodeBlock, Link, Image and the table parts carry
// an Attr: an identifier, an ordered class set and ordered key/value pairs.
//
// Payloads no pass inspects (list numbering, column specs, cell alignment,
// citations, quote and math types, document meta) are kept as raw JSON and
// written back unchanged.
//
// # JSON
//
// Document implements json.Marshaler and json.Unmarshaler for the pandoc
// interchange format:
//
//	{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[{"t":"Para","c":[...]}]}
//
// Documents older than MinAPIVersion are rejected with ErrVersion.
//
// # Walking
//
// WalkBlocks and WalkInlines rebuild a list by calling a Func on every node
// in document order. The Func's Result decides whether the node is kept,
// kept without descending, or replaced by zero or more nodes:
//
//	blocks, err := ast.WalkBlocks(doc.Blocks, func(n ast.Node) ([]ast.Node, ast.Result, error) {
//	    if _, ok := n.(*ast.HorizontalRule); ok {
//	        return nil, ast.Replace, nil // delete
//	    }
//	    return nil, ast.Continue, nil
//	})
//
// Walks never modify visited nodes; containers along the way are shallow
// copies with new child lists.
package ast
