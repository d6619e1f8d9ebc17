package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// TabWidth is the fixed tab-stop width applied to source text before
// conversion. The value is part of the assembler's contract.
const TabWidth = 2

// Converter turns Markdown text into HTML.
type Converter interface {
	ToHTML(markdown string, tabWidth int) (string, error)
}

// GoldmarkConverter is the default Converter, backed by goldmark. Raw HTML in
// the source passes through unescaped: email templates routinely mix Markdown
// with literal markup, and the signature munge relies on injected <br />
// tags surviving conversion.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates the default converter. Extenders are passed
// through to goldmark.
func NewGoldmarkConverter(extenders ...goldmark.Extender) *GoldmarkConverter {
	return &GoldmarkConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extenders...),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithUnsafe(),
				goldmarkhtml.WithXHTML(),
			),
		),
	}
}

// ToHTML implements Converter.
func (c *GoldmarkConverter) ToHTML(markdown string, tabWidth int) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(expandTabs(markdown, tabWidth)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConvertFailed, err)
	}
	return buf.String(), nil
}

// expandTabs replaces tabs with spaces up to the next tab stop. goldmark has
// no tab-width option, so the fixed width is applied up front where it
// affects indentation-sensitive constructs.
func expandTabs(s string, width int) string {
	if width <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			for range n {
				b.WriteByte(' ')
			}
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
