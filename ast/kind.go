package ast

import "fmt"

type Kind int

const (
	// blocks
	PlainKind Kind = iota
	ParaKind
	LineBlockKind
	CodeBlockKind
	RawBlockKind
	BlockQuoteKind
	OrderedListKind
	BulletListKind
	DefinitionListKind
	HeaderKind
	HorizontalRuleKind
	TableKind
	FigureKind
	DivKind

	// inlines
	StrKind
	EmphKind
	UnderlineKind
	StrongKind
	StrikeoutKind
	SuperscriptKind
	SubscriptKind
	SmallCapsKind
	QuotedKind
	CiteKind
	CodeKind
	SpaceKind
	SoftBreakKind
	LineBreakKind
	MathKind
	RawInlineKind
	LinkKind
	ImageKind
	NoteKind
	SpanKind
)

var kindNames = map[Kind]string{
	PlainKind:          "Plain",
	ParaKind:           "Para",
	LineBlockKind:      "LineBlock",
	CodeBlockKind:      "CodeBlock",
	RawBlockKind:       "RawBlock",
	BlockQuoteKind:     "BlockQuote",
	OrderedListKind:    "OrderedList",
	BulletListKind:     "BulletList",
	DefinitionListKind: "DefinitionList",
	HeaderKind:         "Header",
	HorizontalRuleKind: "HorizontalRule",
	TableKind:          "Table",
	FigureKind:         "Figure",
	DivKind:            "Div",
	StrKind:            "Str",
	EmphKind:           "Emph",
	UnderlineKind:      "Underline",
	StrongKind:         "Strong",
	StrikeoutKind:      "Strikeout",
	SuperscriptKind:    "Superscript",
	SubscriptKind:      "Subscript",
	SmallCapsKind:      "SmallCaps",
	QuotedKind:         "Quoted",
	CiteKind:           "Cite",
	CodeKind:           "Code",
	SpaceKind:          "Space",
	SoftBreakKind:      "SoftBreak",
	LineBreakKind:      "LineBreak",
	MathKind:           "Math",
	RawInlineKind:      "RawInline",
	LinkKind:           "Link",
	ImageKind:          "Image",
	NoteKind:           "Note",
	SpanKind:           "Span",
}

var kindsByName = func() map[string]Kind {
	res := make(map[string]Kind, len(kindNames))
	for k, v := range kindNames {
		res[v] = k
	}
	return res
}()

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := kindsByName[string(d)]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKind, d)
	}
	*k = kk
	return nil
}

func (k Kind) IsBlock() bool {
	return k <= DivKind
}

func (k Kind) IsInline() bool {
	return k >= StrKind && k <= SpanKind
}
