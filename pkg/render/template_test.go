package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextTemplate_Render(t *testing.T) {
	t.Parallel()

	r := NewTextTemplate()

	out, err := r.Render("Hello {{.name}}!", Stash{"name": "Alice"})
	require.NoError(t, err)
	require.Equal(t, "Hello Alice!", out)
}

func TestTextTemplate_Render_NoPlaceholders(t *testing.T) {
	t.Parallel()

	r := NewTextTemplate()

	out, err := r.Render("static text", Stash{"unused": "x"})
	require.NoError(t, err)
	require.Equal(t, "static text", out)
}

func TestTextTemplate_Render_MissingKeyFails(t *testing.T) {
	t.Parallel()

	r := NewTextTemplate()

	_, err := r.Render("Hello {{.missing}}!", Stash{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestTextTemplate_Render_LenientAllowsMissingKey(t *testing.T) {
	t.Parallel()

	r := NewLenientTextTemplate()

	out, err := r.Render("Hello {{.missing}}!", Stash{})
	require.NoError(t, err)
	require.Equal(t, "Hello <no value>!", out)
}

func TestTextTemplate_Render_ParseError(t *testing.T) {
	t.Parallel()

	r := NewTextTemplate()

	_, err := r.Render("{{.unclosed", Stash{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParseFailed)
}

func TestFunc_AdaptsFunction(t *testing.T) {
	t.Parallel()

	r := Func(func(tmpl string, stash Stash) (string, error) {
		return tmpl + "!", nil
	})

	out, err := r.Render("hi", nil)
	require.NoError(t, err)
	require.Equal(t, "hi!", out)
}
