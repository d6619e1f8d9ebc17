// Package render defines the template rendering contract used throughout
// mailkit and provides a default implementation backed by text/template.
//
// Assemblers and kits never depend on a concrete template engine; they accept
// anything implementing Renderer:
//
//	type Renderer interface {
//		Render(template string, stash Stash) (string, error)
//	}
//
// The Stash is a plain map of variables owned by the caller. It is passed to
// every render call within one assembly, so templates rendered for headers
// and body content see the same variables.
//
// # Default engine
//
// NewTextTemplate returns a strict text/template renderer that fails when a
// template references a stash key that is not present:
//
//	r := render.NewTextTemplate()
//	out, err := r.Render("Hello {{.name}}!", render.Stash{"name": "Alice"})
//
// Use NewLenientTextTemplate for text/template's permissive default handling
// of missing keys.
//
// # Custom engines
//
// Wrap any engine with Func:
//
//	r := render.Func(func(tmpl string, stash render.Stash) (string, error) {
//		return myEngine.Expand(tmpl, stash)
//	})
package render
