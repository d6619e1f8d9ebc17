package markdown

import (
	"regexp"
	"sync"

	"github.com/kitforge/mailkit/pkg/kit"
	"github.com/kitforge/mailkit/pkg/mimemsg"
	"github.com/kitforge/mailkit/pkg/render"
)

// Name is the assembler name used in manifests.
const Name = "markdown"

// Assembler builds a two-part multipart/alternative message from a Markdown
// kit entry. It is immutable after construction and safe for concurrent use;
// see Assemble for the one stash-sharing caveat.
type Assembler struct {
	kit      *kit.Kit
	cfg      Config
	convert  Converter
	marker   *regexp.Regexp
	renderer func() render.Renderer
}

// New validates the kit manifest and constructs the assembler. Manifests
// with non-empty alternatives, attachments, or attributes fail here: this
// assembler produces exactly one text part and one HTML part, nothing else.
func New(k *kit.Kit, opts ...Option) (*Assembler, error) {
	cfg, err := newConfig(k.Manifest())
	if err != nil {
		return nil, err
	}

	a := &Assembler{
		kit:     k,
		cfg:     cfg,
		convert: NewGoldmarkConverter(),
		marker:  markerPattern(cfg.Marker),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		// Resolve the kit's default lazily, once, so construction stays
		// cheap and concurrent first use is safe.
		a.renderer = sync.OnceValue(k.DefaultRenderer)
	}
	return a, nil
}

// Config returns the derived assembler configuration.
func (a *Assembler) Config() Config {
	return a.cfg
}

// Assemble runs one assembly: headers are prepared from the manifest, the
// source entry is transformed into the text and HTML variants, and both are
// packed into a multipart/alternative container.
//
// The stash is read by every render call and, when render_wrapper is active,
// the wrapped_content key is written into it. Callers must pass a fresh or
// exclusively owned stash per call; sharing one stash across concurrent
// Assemble calls is unsafe.
func (a *Assembler) Assemble(stash render.Stash) (*mimemsg.Message, error) {
	if stash == nil {
		stash = render.Stash{}
	}

	headers, err := a.prepareHeaders(stash)
	if err != nil {
		return nil, err
	}

	body, err := a.buildContent(stash)
	if err != nil {
		return nil, err
	}

	parts := []mimemsg.Part{
		mimemsg.NewPart(body.text, "text/plain", "UTF-8", mimemsg.EncodingQuotedPrintable),
		mimemsg.NewPart(body.html, "text/html", "UTF-8", mimemsg.EncodingQuotedPrintable),
	}
	return mimemsg.NewContainer(headers, parts, "multipart/alternative"), nil
}

// markerPattern matches an HTML comment whose trimmed body equals the marker
// name, e.g. <!-- CONTENT --> or <!--CONTENT-->.
func markerPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`<!--\s*` + regexp.QuoteMeta(marker) + `\s*-->`)
}
