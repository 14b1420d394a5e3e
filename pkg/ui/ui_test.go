package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplmerge/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{"auto format", ui.FormatAuto, "auto"},
		{"terminal format", ui.FormatTerminal, "term"},
		{"text format", ui.FormatText, "text"},
		{"unknown format", ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(nil))
}

func TestPrinter_PlainText(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatAuto)
	assert.Equal(t, ui.FormatText, p.Format(), "non-file writers are never terminals")

	p.Errorf("Failed to compile template: %s", "boom")

	assert.Equal(t,
		"Error: Failed to compile template: boom\n",
		buf.String())
}

func TestPrinter_TerminalKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatTerminal)

	p.Errorf("something broke")

	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "something broke")
}

func TestLoadStylesFromData(t *testing.T) {
	require.NoError(t, ui.LoadStylesFromData([]byte(`
colors:
  blue: {light: "#0000AA", dark: "#5F5FFF"}
styles:
  Custom:
    bold: true
    foreground: blue
`)))
	assert.True(t, ui.Style("Custom").GetBold())
	assert.False(t, ui.Style("Missing").GetBold())

	assert.Error(t, ui.LoadStylesFromData([]byte("styles: [")))
}
