// Package render holds the substrate-independent layout every renderer
// realizes: one pure function per section kind returning a Block.
package render

import (
	"strings"

	"resume-builder/internal/model"
)

// LineKind selects how a Line is laid out.
type LineKind int

const (
	// FieldLine is a labeled key/value pair, optionally linked.
	FieldLine LineKind = iota + 1
	// ParagraphLine is bare text.
	ParagraphLine
	// BulletsLine is a bulleted sub-list.
	BulletsLine
	// RecordLine is a record title with right-aligned metadata.
	RecordLine
)

// Span is a piece of inline text, linked when Href is set.
type Span struct {
	Text string
	Href string
}

// Line is one structured line of a Block.
type Line struct {
	Kind  LineKind
	Label string
	Text  string
	Href  string
	Aside []Span
	Items []string
}

func (l Line) IsField() bool     { return l.Kind == FieldLine }
func (l Line) IsParagraph() bool { return l.Kind == ParagraphLine }
func (l Line) IsBullets() bool   { return l.Kind == BulletsLine }
func (l Line) IsRecord() bool    { return l.Kind == RecordLine }

// Block is a rendered, non-suppressed section.
type Block struct {
	Kind  model.SectionKind
	Title string
	Lines []Line
}

// Slug is the CSS-friendly name of the block's kind.
func (b Block) Slug() string { return b.Kind.Slug() }

// IsHeader reports whether the block is the pinned Header block.
func (b Block) IsHeader() bool { return b.Kind == model.KindHeader }

// Content flattens the block into the ordered text a reader sees. Renderers
// are required to display exactly this sequence.
func (b Block) Content() []string {
	out := []string{b.Title}
	for _, l := range b.Lines {
		switch l.Kind {
		case FieldLine:
			out = append(out, l.Label, l.Text)
		case ParagraphLine:
			out = append(out, l.Text)
		case BulletsLine:
			out = append(out, l.Items...)
		case RecordLine:
			out = append(out, l.Text)
			for _, s := range l.Aside {
				out = append(out, s.Text)
			}
		}
	}
	return out
}

func field(label, text string) Line {
	return Line{Kind: FieldLine, Label: label, Text: text}
}

func linkField(label, text, href string) Line {
	return Line{Kind: FieldLine, Label: label, Text: text, Href: href}
}

func paragraph(text string) Line {
	return Line{Kind: ParagraphLine, Text: text}
}

func record(title string, aside ...Span) Line {
	return Line{Kind: RecordLine, Text: title, Aside: aside}
}

// bullets drops blank entries; ok is false when nothing is left.
func bullets(items []string) (Line, bool) {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if s := clean(it); !model.Blank(s) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return Line{}, false
	}
	return Line{Kind: BulletsLine, Items: kept}, true
}

func joinClean(items []string, sep string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if s := clean(it); !model.Blank(s) {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}
