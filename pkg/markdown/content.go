package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/kitforge/mailkit/pkg/render"
	"github.com/kitforge/mailkit/pkg/sanitizer"
)

// variant identifies one of the two generated content forms.
type variant string

const (
	variantHTML variant = "html"
	variantText variant = "text"
)

// content holds the two final body strings.
type content struct {
	html string
	text string
}

// buildContent runs the transformation pipeline: fetch, render, fork into
// variants, entity-encode and signature-munge the HTML path, convert to HTML,
// then wrap each variant independently.
func (a *Assembler) buildContent(stash render.Stash) (content, error) {
	raw, err := a.kit.Entry(a.cfg.SourcePath)
	if err != nil {
		return content{}, err
	}

	working := raw
	if r := a.renderer(); r != nil {
		working, err = r.Render(raw, stash)
		if err != nil {
			return content{}, fmt.Errorf("source %s: %w", a.cfg.SourcePath, err)
		}
	}

	// The plaintext variant is the post-render, pre-HTML text. Entity
	// encoding and signature munging only harden the HTML path.
	text := working

	htmlInput := working
	if a.cfg.EncodeEntities {
		htmlInput = html.EscapeString(htmlInput)
	}
	if a.cfg.MungeSignature {
		htmlInput = mungeSignature(htmlInput)
	}

	htmlOut, err := a.convert.ToHTML(htmlInput, TabWidth)
	if err != nil {
		return content{}, err
	}
	if a.cfg.SanitizeHTML {
		htmlOut = sanitizer.SanitizeEmailHTML(htmlOut)
	}

	htmlOut, err = a.applyWrapper(variantHTML, a.cfg.HTMLWrapperPath, htmlOut, stash)
	if err != nil {
		return content{}, err
	}
	text, err = a.applyWrapper(variantText, a.cfg.TextWrapperPath, text, stash)
	if err != nil {
		return content{}, err
	}

	return content{html: htmlOut, text: text}, nil
}

// applyWrapper injects body into the wrapper configured for the variant, if
// any. In marker mode the first marker comment is replaced; in template mode
// the wrapper itself is rendered with the body exposed as wrapped_content.
func (a *Assembler) applyWrapper(v variant, path, body string, stash render.Stash) (string, error) {
	if path == "" {
		return body, nil
	}

	wrapper, err := a.kit.Entry(path)
	if err != nil {
		return "", err
	}

	if a.cfg.mode == wrapTemplate {
		r := a.renderer()
		if r == nil {
			return "", ErrNoRenderer
		}
		stash["wrapped_content"] = body
		out, err := r.Render(wrapper, stash)
		if err != nil {
			return "", fmt.Errorf("%s wrapper %s: %w", v, path, err)
		}
		return out, nil
	}

	loc := a.marker.FindStringIndex(wrapper)
	if loc == nil {
		return "", fmt.Errorf("%w: %s wrapper %q has no <!-- %s --> marker", ErrMarkerNotFound, v, path, a.cfg.Marker)
	}
	return wrapper[:loc[0]] + body + wrapper[loc[1]:], nil
}

// signatureDelimiter is the conventional signature separator: a line that is
// exactly "-- " (dash dash space), case-sensitive.
const signatureDelimiter = "-- "

// mungeSignature prefixes every line after the first signature delimiter with
// a <br /> marker so the signature's line structure survives Markdown's
// paragraph folding. The delimiter line itself is dropped and body and
// signature are rejoined with a blank line between. Exact whitespace around
// the join is not part of the contract; the per-line break markers are.
func mungeSignature(s string) string {
	idx := -1
	switch {
	case strings.HasPrefix(s, signatureDelimiter+"\n"):
		idx = 0
	default:
		if i := strings.Index(s, "\n"+signatureDelimiter+"\n"); i >= 0 {
			idx = i + 1
		} else if strings.HasSuffix(s, "\n"+signatureDelimiter) {
			idx = len(s) - len(signatureDelimiter)
		}
	}
	if idx < 0 {
		return s
	}

	body := s[:idx]
	sig := s[idx+len(signatureDelimiter):]
	lines := strings.Split(sig, "\n")
	for i := range lines {
		lines[i] = "<br />" + lines[i]
	}
	return body + "\n\n" + strings.Join(lines, "\n")
}
