package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/render"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// isolate points the user config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TMPLMERGE_CONFIG_DIR", dir)
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		isolate(t)

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, "strict", cfg.Engine.Undefined)
		assert.False(t, cfg.Engine.TrimBlocks)
		assert.False(t, cfg.Engine.LstripBlocks)
		assert.True(t, cfg.Engine.KeepTrailingNewline)
		assert.Equal(t, "auto", cfg.Values.Format)
		assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
	})

	t.Run("user_config_overrides_defaults", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[engine]
undefined = "lenient"
trim_blocks = true
`), 0644))

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, render.UndefinedLenient, cfg.RenderOptions().Undefined)
		assert.True(t, cfg.Engine.TrimBlocks)
		assert.True(t, cfg.Engine.KeepTrailingNewline, "unset keys keep their defaults")
	})

	t.Run("explicit_config_file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[values]\nformat = \"yaml\"\n"), 0644))

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, values.FormatYAML, cfg.ValuesFormat())
	})

	t.Run("missing_explicit_config_file", func(t *testing.T) {
		isolate(t)

		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[engine]\nundefined = \"lenient\"\n"), 0644))
		t.Setenv("TMPLMERGE_ENGINE_UNDEFINED", "chainable")
		t.Setenv("TMPLMERGE_ENGINE_KEEP_TRAILING_NEWLINE", "false")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "chainable", cfg.Engine.Undefined)
		assert.False(t, cfg.Engine.KeepTrailingNewline)
		assert.True(t, cfg.RenderOptions().StripTrailingNewline)
	})

	t.Run("invalid_value_is_rejected", func(t *testing.T) {
		isolate(t)
		t.Setenv("TMPLMERGE_VALUES_FORMAT", "xml")

		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "values.format")
	})

	t.Run("malformed_toml", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[engine\n"), 0644))

		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestDefaultConfigContent(t *testing.T) {
	content := DefaultConfigContent()
	assert.Contains(t, content, "[engine]")
	assert.Contains(t, content, "[values]")
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TMPLMERGE_ENGINE_UNDEFINED", "engine.undefined"},
		{"TMPLMERGE_ENGINE_KEEP_TRAILING_NEWLINE", "engine.keep_trailing_newline"},
		{"TMPLMERGE_VALUES_FORMAT", "values.format"},
		{"TMPLMERGE_CONFIG_DIR", ""},
		{"TMPLMERGE_STATE_DIR", ""},
		{"TMPLMERGE_ENGINE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}
