package ast

import "encoding/json"

type Node interface {
	Kind() Kind
}

type Block interface {
	Node
	block()
}

type Inline interface {
	Node
	inline()
}

type Document struct {
	APIVersion []int
	Meta       json.RawMessage
	Blocks     []Block
}

// blocks

type Plain struct{ Inlines []Inline }
type Para struct{ Inlines []Inline }
type LineBlock struct{ Lines [][]Inline }

type CodeBlock struct {
	Attr Attr
	Text string
}

type RawBlock struct {
	Format string
	Text   string
}

type BlockQuote struct{ Blocks []Block }

type OrderedList struct {
	// start number, style and delimiter, untouched
	ListAttrs json.RawMessage
	Items     [][]Block
}

type BulletList struct{ Items [][]Block }

type DefinitionItem struct {
	Term        []Inline
	Definitions [][]Block
}

type DefinitionList struct{ Items []DefinitionItem }

type Header struct {
	Level   int
	Attr    Attr
	Inlines []Inline
}

type HorizontalRule struct{}

type Caption struct {
	// Short is nil when the caption has no short form.
	Short  []Inline
	Blocks []Block
}

type Cell struct {
	Attr      Attr
	Alignment json.RawMessage
	RowSpan   int
	ColSpan   int
	Blocks    []Block
}

type Row struct {
	Attr  Attr
	Cells []Cell
}

type TableHead struct {
	Attr Attr
	Rows []Row
}

type TableBody struct {
	Attr           Attr
	RowHeadColumns int
	Head           []Row
	Body           []Row
}

type TableFoot struct {
	Attr Attr
	Rows []Row
}

type Table struct {
	Attr     Attr
	Caption  Caption
	ColSpecs json.RawMessage
	Head     TableHead
	Bodies   []TableBody
	Foot     TableFoot
}

type Figure struct {
	Attr    Attr
	Caption Caption
	Blocks  []Block
}

type Div struct {
	Attr   Attr
	Blocks []Block
}

func (*Plain) Kind() Kind          { return PlainKind }
func (*Para) Kind() Kind           { return ParaKind }
func (*LineBlock) Kind() Kind      { return LineBlockKind }
func (*CodeBlock) Kind() Kind      { return CodeBlockKind }
func (*RawBlock) Kind() Kind       { return RawBlockKind }
func (*BlockQuote) Kind() Kind     { return BlockQuoteKind }
func (*OrderedList) Kind() Kind    { return OrderedListKind }
func (*BulletList) Kind() Kind     { return BulletListKind }
func (*DefinitionList) Kind() Kind { return DefinitionListKind }
func (*Header) Kind() Kind         { return HeaderKind }
func (*HorizontalRule) Kind() Kind { return HorizontalRuleKind }
func (*Table) Kind() Kind          { return TableKind }
func (*Figure) Kind() Kind         { return FigureKind }
func (*Div) Kind() Kind            { return DivKind }

func (*Plain) block()          {}
func (*Para) block()           {}
func (*LineBlock) block()      {}
func (*CodeBlock) block()      {}
func (*RawBlock) block()       {}
func (*BlockQuote) block()     {}
func (*OrderedList) block()    {}
func (*BulletList) block()     {}
func (*DefinitionList) block() {}
func (*Header) block()         {}
func (*HorizontalRule) block() {}
func (*Table) block()          {}
func (*Figure) block()         {}
func (*Div) block()            {}

// inlines

type Str struct{ Text string }
type Emph struct{ Inlines []Inline }
type Underline struct{ Inlines []Inline }
type Strong struct{ Inlines []Inline }
type Strikeout struct{ Inlines []Inline }
type Superscript struct{ Inlines []Inline }
type Subscript struct{ Inlines []Inline }
type SmallCaps struct{ Inlines []Inline }

type Quoted struct {
	QuoteType json.RawMessage
	Inlines   []Inline
}

type Cite struct {
	Citations json.RawMessage
	Inlines   []Inline
}

type Code struct {
	Attr Attr
	Text string
}

type Space struct{}
type SoftBreak struct{}
type LineBreak struct{}

type Math struct {
	MathType json.RawMessage
	Text     string
}

type RawInline struct {
	Format string
	Text   string
}

type Target struct {
	URL   string
	Title string
}

type Link struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

type Image struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

type Note struct{ Blocks []Block }

type Span struct {
	Attr    Attr
	Inlines []Inline
}

func (*Str) Kind() Kind         { return StrKind }
func (*Emph) Kind() Kind        { return EmphKind }
func (*Underline) Kind() Kind   { return UnderlineKind }
func (*Strong) Kind() Kind      { return StrongKind }
func (*Strikeout) Kind() Kind   { return StrikeoutKind }
func (*Superscript) Kind() Kind { return SuperscriptKind }
func (*Subscript) Kind() Kind   { return SubscriptKind }
func (*SmallCaps) Kind() Kind   { return SmallCapsKind }
func (*Quoted) Kind() Kind      { return QuotedKind }
func (*Cite) Kind() Kind        { return CiteKind }
func (*Code) Kind() Kind        { return CodeKind }
func (*Space) Kind() Kind       { return SpaceKind }
func (*SoftBreak) Kind() Kind   { return SoftBreakKind }
func (*LineBreak) Kind() Kind   { return LineBreakKind }
func (*Math) Kind() Kind        { return MathKind }
func (*RawInline) Kind() Kind   { return RawInlineKind }
func (*Link) Kind() Kind        { return LinkKind }
func (*Image) Kind() Kind       { return ImageKind }
func (*Note) Kind() Kind        { return NoteKind }
func (*Span) Kind() Kind        { return SpanKind }

func (*Str) inline()         {}
func (*Emph) inline()        {}
func (*Underline) inline()   {}
func (*Strong) inline()      {}
func (*Strikeout) inline()   {}
func (*Superscript) inline() {}
func (*Subscript) inline()   {}
func (*SmallCaps) inline()   {}
func (*Quoted) inline()      {}
func (*Cite) inline()        {}
func (*Code) inline()        {}
func (*Space) inline()       {}
func (*SoftBreak) inline()   {}
func (*LineBreak) inline()   {}
func (*Math) inline()        {}
func (*RawInline) inline()   {}
func (*Link) inline()        {}
func (*Image) inline()       {}
func (*Note) inline()        {}
func (*Span) inline()        {}

// constructors used by the filter passes

func FromString(s string) *Str { return &Str{Text: s} }

func FromWords(s string) []Inline {
	var res []Inline
	word := []rune{}
	flush := func() {
		if len(word) > 0 {
			res = append(res, &Str{Text: string(word)})
			word = word[:0]
		}
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			res = append(res, &Space{})
			continue
		}
		word = append(word, r)
	}
	flush()
	return res
}

func NewPara(inlines ...Inline) *Para { return &Para{Inlines: inlines} }

func NewHeader(level int, inlines ...Inline) *Header {
	return &Header{Level: level, Inlines: inlines}
}
