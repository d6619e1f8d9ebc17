package kit

import (
	"log/slog"

	"github.com/kitforge/mailkit/pkg/render"
)

// Option configures a Kit during Open.
type Option func(*Kit)

// WithLogger sets the logger for kit diagnostics. Defaults to a discard
// logger; the kit only logs at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithDefaultRenderer sets the renderer assemblers resolve when no explicit
// renderer is configured. Defaults to render.NewTextTemplate().
func WithDefaultRenderer(r render.Renderer) Option {
	return func(k *Kit) {
		k.defaultRenderer = r
	}
}

// WithManifestPath sets an explicit manifest location inside the kit instead
// of probing the default names.
func WithManifestPath(path string) Option {
	return func(k *Kit) {
		k.manifestPath = path
	}
}
