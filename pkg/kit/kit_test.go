package kit

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func newKitFS(manifest string) fstest.MapFS {
	return fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte(manifest)},
		"body.mkdn":     &fstest.MapFile{Data: []byte("Hello **world**\n")},
	}
}

func TestOpen_ParsesManifest(t *testing.T) {
	t.Parallel()

	fsys := newKitFS(`
assembler: markdown
path: body.mkdn
header:
  - From: sender@example.com
  - Subject: Welcome
html_wrapper: wrapper.html
marker: BODY
munge_signature: true
`)

	k, err := Open(fsys)
	require.NoError(t, err)

	m := k.Manifest()
	require.Equal(t, "markdown", m.Assembler)
	require.Equal(t, "body.mkdn", m.Path)
	require.Equal(t, "wrapper.html", m.HTMLWrapper)
	require.Equal(t, "BODY", m.Marker)
	require.True(t, m.MungeSignature)
	require.False(t, m.RenderWrapper)
	require.Len(t, m.Header, 2)
}

func TestOpen_JSONManifest(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.json": &fstest.MapFile{Data: []byte(`{"path": "body.mkdn", "header": [{"Subject": "Hi"}]}`)},
		"body.mkdn":     &fstest.MapFile{Data: []byte("hi\n")},
	}

	k, err := Open(fsys)
	require.NoError(t, err)
	require.Equal(t, "body.mkdn", k.Manifest().Path)
	require.Len(t, k.Manifest().Header, 1)
}

func TestOpen_ExplicitManifestPath(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"kit/custom.yaml": &fstest.MapFile{Data: []byte(`path: body.mkdn`)},
	}

	k, err := Open(fsys, WithManifestPath("kit/custom.yaml"))
	require.NoError(t, err)
	require.Equal(t, "body.mkdn", k.Manifest().Path)
}

func TestOpen_MissingManifest(t *testing.T) {
	t.Parallel()

	_, err := Open(fstest.MapFS{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestOpen_MalformedManifest(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte("path: [unclosed")},
	}

	_, err := Open(fsys)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrManifestInvalid)
}

func TestKit_Entry_ReturnsDecodedText(t *testing.T) {
	t.Parallel()

	k, err := Open(newKitFS(`path: body.mkdn`))
	require.NoError(t, err)

	text, err := k.Entry("body.mkdn")
	require.NoError(t, err)
	require.Equal(t, "Hello **world**\n", text)
}

func TestKit_Entry_NotFound(t *testing.T) {
	t.Parallel()

	k, err := Open(newKitFS(`path: body.mkdn`))
	require.NoError(t, err)

	_, err = k.Entry("missing.mkdn")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEntryNotFound)
	require.Contains(t, err.Error(), "missing.mkdn")
}

func TestKit_Entry_DecodesManifestCharset(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte("path: body.mkdn\ncharset: ISO-8859-1\n")},
		// "café" in Latin-1: é is a single 0xE9 byte.
		"body.mkdn": &fstest.MapFile{Data: []byte{'c', 'a', 'f', 0xE9, '\n'}},
	}

	k, err := Open(fsys)
	require.NoError(t, err)

	text, err := k.Entry("body.mkdn")
	require.NoError(t, err)
	require.Equal(t, "café\n", text)
}

func TestKit_Entry_UnknownCharset(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte("path: body.mkdn\ncharset: no-such-charset\n")},
		"body.mkdn":     &fstest.MapFile{Data: []byte("x")},
	}

	k, err := Open(fsys)
	require.NoError(t, err)

	_, err = k.Entry("body.mkdn")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownCharset)
}

func TestKit_Entry_RejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte("path: body.mkdn\n")},
		"body.mkdn":     &fstest.MapFile{Data: []byte{0xFF, 0xFE, 0x01}},
	}

	k, err := Open(fsys)
	require.NoError(t, err)

	_, err = k.Entry("body.mkdn")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEntryNotText)
}

func TestKit_DefaultRenderer(t *testing.T) {
	t.Parallel()

	k, err := Open(newKitFS(`path: body.mkdn`))
	require.NoError(t, err)
	require.NotNil(t, k.DefaultRenderer())
}
