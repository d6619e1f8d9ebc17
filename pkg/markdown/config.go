package markdown

import (
	"fmt"

	"github.com/kitforge/mailkit/pkg/kit"
)

// DefaultMarker is the marker name looked up in wrappers when the manifest
// does not set one: <!-- CONTENT -->.
const DefaultMarker = "CONTENT"

// wrapMode is how rendered content is injected into a wrapper. The two modes
// are mutually exclusive and selected once per manifest.
type wrapMode int

const (
	// wrapMarker replaces the first <!-- MARKER --> comment in the wrapper.
	wrapMarker wrapMode = iota
	// wrapTemplate renders the whole wrapper as a template with the content
	// available as the wrapped_content stash variable.
	wrapTemplate
)

// Config is the assembler configuration derived from the manifest. Immutable
// after construction.
type Config struct {
	SourcePath      string
	HTMLWrapperPath string
	TextWrapperPath string
	Marker          string
	MungeSignature  bool
	EncodeEntities  bool
	SanitizeHTML    bool
	mode            wrapMode
}

func newConfig(m *kit.Manifest) (Config, error) {
	if err := validateManifest(m); err != nil {
		return Config{}, err
	}

	cfg := Config{
		SourcePath:      m.Path,
		HTMLWrapperPath: m.HTMLWrapper,
		TextWrapperPath: m.TextWrapper,
		Marker:          m.Marker,
		MungeSignature:  m.MungeSignature,
		EncodeEntities:  m.EncodeEntities,
		SanitizeHTML:    m.SanitizeHTML,
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if m.RenderWrapper {
		cfg.mode = wrapTemplate
	}
	return cfg, nil
}

// validateManifest rejects manifests requesting features this assembler
// guarantees it will never produce: extra alternatives, attachments, or
// custom content attributes. These are configuration errors, not degraded
// modes.
func validateManifest(m *kit.Manifest) error {
	if len(m.Alternatives) > 0 {
		return fmt.Errorf("%w: alternatives", ErrUnsupportedFeature)
	}
	if len(m.Attachments) > 0 {
		return fmt.Errorf("%w: attachments", ErrUnsupportedFeature)
	}
	if len(m.Attributes) > 0 {
		return fmt.Errorf("%w: attributes", ErrUnsupportedFeature)
	}
	if m.Path == "" {
		return ErrNoSourcePath
	}
	return nil
}
