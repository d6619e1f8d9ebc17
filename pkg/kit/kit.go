package kit

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/kitforge/mailkit/pkg/render"
)

// Default manifest file names, tried in order when no explicit path is set.
// JSON manifests parse through the YAML reader.
var defaultManifestPaths = []string{"manifest.yaml", "manifest.yml", "manifest.json"}

// Kit is an opened template bundle: a filesystem plus its parsed manifest.
// A Kit is immutable and safe for concurrent use.
type Kit struct {
	fsys            fs.FS
	manifest        *Manifest
	logger          *slog.Logger
	defaultRenderer render.Renderer
	manifestPath    string
}

// Open reads and parses the kit manifest from fsys. The filesystem may be an
// embed.FS, a zip archive, or a directory tree; anything satisfying fs.FS.
func Open(fsys fs.FS, opts ...Option) (*Kit, error) {
	k := &Kit{
		fsys:   fsys,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.defaultRenderer == nil {
		k.defaultRenderer = render.NewTextTemplate()
	}

	raw, path, err := readManifest(fsys, k.manifestPath)
	if err != nil {
		return nil, err
	}
	k.manifestPath = path

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestInvalid, path, err)
	}
	k.manifest = &m

	k.logger.Debug("kit opened",
		slog.String("manifest", path),
		slog.String("assembler", m.Assembler),
		slog.Int("headers", len(m.Header)))

	return k, nil
}

func readManifest(fsys fs.FS, explicit string) ([]byte, string, error) {
	if explicit != "" {
		raw, err := fs.ReadFile(fsys, explicit)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrManifestNotFound, explicit, err)
		}
		return raw, explicit, nil
	}
	for _, path := range defaultManifestPaths {
		raw, err := fs.ReadFile(fsys, path)
		if err == nil {
			return raw, path, nil
		}
	}
	return nil, "", fmt.Errorf("%w: tried %s", ErrManifestNotFound, strings.Join(defaultManifestPaths, ", "))
}

// Manifest returns the parsed manifest.
func (k *Kit) Manifest() *Manifest {
	return k.manifest
}

// DefaultRenderer returns the renderer assemblers fall back to when the
// caller did not select one explicitly.
func (k *Kit) DefaultRenderer() render.Renderer {
	return k.defaultRenderer
}

// Entry fetches a kit entry decoded to UTF-8 text. The manifest's charset
// field selects the source encoding; without one, entries must already be
// valid UTF-8.
func (k *Kit) Entry(path string) (string, error) {
	raw, err := fs.ReadFile(k.fsys, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEntryNotFound, path, err)
	}

	if cs := k.manifest.Charset; needsDecode(cs) {
		enc, err := ianaindex.IANA.Encoding(cs)
		if err != nil || enc == nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownCharset, cs)
		}
		raw, _, err = transform.Bytes(enc.NewDecoder(), raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrEntryNotText, path, err)
		}
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8", ErrEntryNotText, path)
	}

	k.logger.Debug("entry fetched", slog.String("path", path), slog.Int("bytes", len(raw)))
	return string(raw), nil
}

func needsDecode(charset string) bool {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return false
	}
	return true
}
