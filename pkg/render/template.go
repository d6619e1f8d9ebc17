package render

import (
	"bytes"
	"fmt"
	texttemplate "text/template"
)

// TextTemplate renders templates with the standard text/template engine.
// The stash is exposed as the template's dot, so a stash key "name" is
// addressed as {{.name}}.
type TextTemplate struct {
	option string
}

// NewTextTemplate creates a renderer that fails on references to missing
// stash keys. Kits rely on this to surface typos in templates instead of
// silently emitting "<no value>".
func NewTextTemplate() *TextTemplate {
	return &TextTemplate{option: "missingkey=error"}
}

// NewLenientTextTemplate creates a renderer that leaves missing key
// references as zero values, matching text/template's default behavior.
func NewLenientTextTemplate() *TextTemplate {
	return &TextTemplate{option: "missingkey=default"}
}

// Render implements Renderer.
func (r *TextTemplate) Render(template string, stash Stash) (string, error) {
	tmpl, err := texttemplate.New("entry").Option(r.option).Parse(template)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(stash)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return buf.String(), nil
}
