package mailkit_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/kitforge/mailkit"
	"github.com/kitforge/mailkit/pkg/render"
)

func welcomeKit() fstest.MapFS {
	return fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte(`
assembler: markdown
path: body.mkdn
header:
  - From: team@example.com
  - To: "{{.email}}"
  - Subject: "Welcome, {{.name}}!"
html_wrapper: wrapper.html
`)},
		"body.mkdn":    &fstest.MapFile{Data: []byte("Hello **{{.name}}**, welcome aboard.\n")},
		"wrapper.html": &fstest.MapFile{Data: []byte("<html><body><!-- CONTENT --></body></html>\n")},
	}
}

func TestAssemble_EndToEnd(t *testing.T) {
	t.Parallel()

	stash := render.Stash{"name": "Alice", "email": "alice@example.com"}
	msg, err := mailkit.Assemble(welcomeKit(), stash)
	require.NoError(t, err)

	require.Equal(t, "multipart/alternative", msg.ContentType())

	subject, ok := msg.HeaderValue("Subject")
	require.True(t, ok)
	require.Equal(t, "Welcome, Alice!", subject)

	to, ok := msg.HeaderValue("To")
	require.True(t, ok)
	require.Equal(t, "alice@example.com", to)

	parts := msg.Parts()
	require.Len(t, parts, 2)
	require.Equal(t, "Hello **Alice**, welcome aboard.\n", parts[0].Body)
	require.Contains(t, parts[1].Body, "<strong>Alice</strong>")
	require.Contains(t, parts[1].Body, "<html><body>")

	wire, err := msg.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(wire), "Subject: Welcome, Alice!\r\n")
}

func TestNewAssembler_DefaultsToMarkdown(t *testing.T) {
	t.Parallel()

	fsys := welcomeKit()
	fsys["manifest.yaml"] = &fstest.MapFile{Data: []byte("path: body.mkdn\n")}

	k, err := mailkit.Open(fsys)
	require.NoError(t, err)

	a, err := mailkit.NewAssembler(k)
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestNewAssembler_UnknownName(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte("assembler: carrier-pigeon\npath: body.mkdn\n")},
		"body.mkdn":     &fstest.MapFile{Data: []byte("hi\n")},
	}

	k, err := mailkit.Open(fsys)
	require.NoError(t, err)

	_, err = mailkit.NewAssembler(k)
	require.Error(t, err)
	require.ErrorIs(t, err, mailkit.ErrUnknownAssembler)
	require.Contains(t, err.Error(), "carrier-pigeon")
}
