package render

// Stash is the variable map passed to template rendering. It is owned by the
// caller; renderers may read it and, in some assembly modes, the assembler
// writes derived values into it.
type Stash map[string]any

// Renderer turns a template string into output text using the given stash.
// Implementations must be deterministic for the same template and stash.
type Renderer interface {
	Render(template string, stash Stash) (string, error)
}

// Func adapts a plain function to the Renderer interface.
type Func func(template string, stash Stash) (string, error)

// Render implements Renderer.
func (f Func) Render(template string, stash Stash) (string, error) {
	return f(template, stash)
}
