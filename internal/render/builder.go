// Package render produces the markdown documents of the guide tree: entry
// files for accepted places and the generated index documents above them.
// All output is deterministic for a given input so index regeneration is a
// fixed point.
package render

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// Builder wraps the markdown package with an internal buffer.
type Builder struct {
	md     *md.Markdown
	buffer *strings.Builder
}

// NewBuilder creates a buffered markdown builder.
func NewBuilder() *Builder {
	buffer := &strings.Builder{}
	return &Builder{
		md:     md.NewMarkdown(buffer),
		buffer: buffer,
	}
}

// H1 creates a level 1 header.
func (b *Builder) H1(text string) *Builder {
	b.md.H1(text)
	return b
}

// H2 creates a level 2 header.
func (b *Builder) H2(text string) *Builder {
	b.md.H2(text)
	return b
}

// PlainText adds plain text.
func (b *Builder) PlainText(text string) *Builder {
	b.md.PlainText(text)
	return b
}

// PlainTextf adds formatted plain text.
func (b *Builder) PlainTextf(format string, args ...interface{}) *Builder {
	b.md.PlainTextf(format, args...)
	return b
}

// LF adds a blank line.
func (b *Builder) LF() *Builder {
	b.md.LF()
	return b
}

// Italic adds italic text.
func (b *Builder) Italic(text string) *Builder {
	b.md.PlainText(md.Italic(text))
	return b
}

// BulletList adds a bullet list.
func (b *Builder) BulletList(items ...string) *Builder {
	b.md.BulletList(items...)
	return b
}

// HorizontalRule adds a horizontal rule.
func (b *Builder) HorizontalRule() *Builder {
	b.md.HorizontalRule()
	return b
}

// Blockquote adds a blockquote.
func (b *Builder) Blockquote(text string) *Builder {
	b.md.Blockquote(text)
	return b
}

// String finalizes the document and returns its content.
func (b *Builder) String() (string, error) {
	if err := b.md.Build(); err != nil {
		return "", err
	}
	return b.buffer.String(), nil
}

// Bold returns bold text markup.
func Bold(text string) string {
	return md.Bold(text)
}

// Link returns link markup.
func Link(text, url string) string {
	return md.Link(text, url)
}
