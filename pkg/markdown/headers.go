package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kitforge/mailkit/pkg/kit"
	"github.com/kitforge/mailkit/pkg/mimemsg"
	"github.com/kitforge/mailkit/pkg/render"
)

// rendererDirective is the per-entry key that overrides header rendering.
const rendererDirective = ":renderer"

// prepareHeaders renders and encodes the manifest header list into the flat
// ordered sequence carried by the message. Order and duplicate field names
// are preserved; nothing is merged.
func (a *Assembler) prepareHeaders(stash render.Stash) ([]mimemsg.Header, error) {
	specs := a.kit.Manifest().Header
	headers := make([]mimemsg.Header, 0, len(specs))
	for _, spec := range specs {
		h, err := a.prepareHeader(spec, stash)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

func (a *Assembler) prepareHeader(spec kit.HeaderSpec, stash render.Stash) (mimemsg.Header, error) {
	var (
		field    *kit.HeaderEntry
		names    []string
		override *kit.HeaderValue
	)
	for i, e := range spec.Entries {
		if strings.HasPrefix(e.Key, ":") {
			if e.Key == rendererDirective {
				v := e.Value
				override = &v
			}
			continue
		}
		names = append(names, e.Key)
		field = &spec.Entries[i]
	}

	if len(names) == 0 {
		return mimemsg.Header{}, fmt.Errorf("%w in header entry", ErrNoFieldName)
	}
	if len(names) > 1 {
		return mimemsg.Header{}, fmt.Errorf("%w: %s", ErrAmbiguousFieldName, strings.Join(names, ", "))
	}

	// Structured values carry their parameters verbatim; no rendering.
	if field.Value.Structured {
		return mimemsg.Header{Name: field.Key, Value: formatStructured(field.Value)}, nil
	}

	renderer, err := a.headerRenderer(override)
	if err != nil {
		return mimemsg.Header{}, fmt.Errorf("header %s: %w", field.Key, err)
	}

	value := field.Value.Template
	if renderer != nil {
		value, err = renderer.Render(value, stash)
		if err != nil {
			return mimemsg.Header{}, fmt.Errorf("header %s: %w", field.Key, err)
		}
		if !utf8.ValidString(value) {
			return mimemsg.Header{}, fmt.Errorf("%w: %s", ErrHeaderNotText, field.Key)
		}
	}
	return mimemsg.Header{Name: field.Key, Value: value}, nil
}

// headerRenderer resolves the renderer for one header entry. A null or false
// :renderer directive disables rendering for the entry; naming a renderer is
// deliberately unsupported.
func (a *Assembler) headerRenderer(override *kit.HeaderValue) (render.Renderer, error) {
	if override == nil {
		return a.renderer(), nil
	}
	if override.Null || (!override.Structured && (override.Template == "" || override.Template == "false")) {
		return nil, nil
	}
	return nil, fmt.Errorf("%w (requested %q)", ErrAlternateRenderer, override.Template)
}

func formatStructured(v kit.HeaderValue) string {
	var b strings.Builder
	b.WriteString(v.Template)
	for _, p := range v.Params {
		b.WriteString("; ")
		b.WriteString(p.Name)
		b.WriteString("=")
		b.WriteString(p.Value)
	}
	return b.String()
}
