package mailkit

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kitforge/mailkit/pkg/kit"
	"github.com/kitforge/mailkit/pkg/markdown"
	"github.com/kitforge/mailkit/pkg/mimemsg"
	"github.com/kitforge/mailkit/pkg/render"
)

// Assembler is the plugin contract: one call builds one complete message
// from the kit's manifest and the caller's stash.
type Assembler interface {
	Assemble(stash render.Stash) (*mimemsg.Message, error)
}

// ErrUnknownAssembler indicates the manifest names an assembler this module
// does not provide.
var ErrUnknownAssembler = errors.New("unknown assembler")

// Open opens a kit bundle from any fs.FS. Convenience re-export of kit.Open.
func Open(fsys fs.FS, opts ...kit.Option) (*kit.Kit, error) {
	return kit.Open(fsys, opts...)
}

// NewAssembler constructs the assembler named by the kit's manifest. An
// empty assembler field selects the markdown assembler.
func NewAssembler(k *kit.Kit, opts ...markdown.Option) (Assembler, error) {
	switch name := k.Manifest().Assembler; name {
	case "", markdown.Name:
		return markdown.New(k, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssembler, name)
	}
}

// Assemble opens fsys as a kit and assembles a single message with it. It is
// shorthand for Open, NewAssembler, and Assemble for hosts that build one
// message per kit.
func Assemble(fsys fs.FS, stash render.Stash, opts ...kit.Option) (*mimemsg.Message, error) {
	k, err := Open(fsys, opts...)
	if err != nil {
		return nil, err
	}
	a, err := NewAssembler(k)
	if err != nil {
		return nil, err
	}
	return a.Assemble(stash)
}
