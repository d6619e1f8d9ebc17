package markdown

import "github.com/kitforge/mailkit/pkg/render"

// Option configures an Assembler during New.
type Option func(*Assembler)

// WithRenderer sets an explicit renderer instead of lazily resolving the
// kit's default. Passing nil disables rendering entirely: source text and
// scalar header values pass through as literals.
func WithRenderer(r render.Renderer) Option {
	return func(a *Assembler) {
		a.renderer = func() render.Renderer { return r }
	}
}

// WithConverter replaces the default goldmark Markdown converter.
func WithConverter(c Converter) Option {
	return func(a *Assembler) {
		if c != nil {
			a.convert = c
		}
	}
}
