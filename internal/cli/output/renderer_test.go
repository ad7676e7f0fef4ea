package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty is auto", "", false, ModeMarkdown},
		{"unknown is auto", Mode("xml"), true, ModeText},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit markdown", ModeMarkdown, true, ModeMarkdown},
		{"json", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newBuffered(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeAuto, r.Mode())
}

func TestRenderer_PlainWhenPiped(t *testing.T) {
	r, out, errOut := newBuffered(ModeText, false)

	r.Success("all good")
	r.Header(1, "Rules")
	r.StatusLine("commitlint.config.toml", "success", "created")
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "✓ all good\nRules\n  ✓ commitlint.config.toml  created\n", out.String())
	assert.Equal(t, "! careful\n✗ broken\n", errOut.String())
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRenderer_MarkdownHeader(t *testing.T) {
	r, out, _ := newBuffered(ModeMarkdown, false)
	r.Header(1, "Lint Rules")
	r.Header(2, "Scope")
	assert.Equal(t, "# Lint Rules\n## Scope\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newBuffered(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"errors": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["errors"])
}
