package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TMPLMERGE_CONFIG_DIR", t.TempDir())
	t.Setenv("TMPLMERGE_STATE_DIR", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompileCmd(t *testing.T) {
	dir := t.TempDir()
	common := writeFile(t, dir, "common.json", `{"common": {"cluster_prefix": "test-", "root_size": 8192}}`)
	node := writeFile(t, dir, "node.yaml", "node:\n  name: node\n")
	hostname := writeFile(t, dir, "hostname.j2", `inline: "{{ common.cluster_prefix }}{{ node.name }}"`)
	tmpl := writeFile(t, dir, "main.j2", "size_mib: {{ common.root_size }}\n{% include \"hostname_file\" %}\n")

	t.Run("renders_to_stdout", func(t *testing.T) {
		out, err := run(t, "", "-a", common, "-a", node, "-i", "hostname_file="+hostname, tmpl)
		require.NoError(t, err)
		assert.Equal(t, "size_mib: 8192\ninline: \"test-node\"\n", out)
	})

	t.Run("reads_template_from_stdin", func(t *testing.T) {
		out, err := run(t, "{{ node.name }}", "--values", node)
		require.NoError(t, err)
		assert.Equal(t, "node", out)
	})

	t.Run("writes_output_file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "out.yaml")
		out, err := run(t, "", "-a", common, "-a", node, "-i", "hostname_file="+hostname, "-o", target, tmpl)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "size_mib: 8192\ninline: \"test-node\"\n", string(data))
	})

	t.Run("later_values_override", func(t *testing.T) {
		override := writeFile(t, t.TempDir(), "override.toml", "[common]\nroot_size = 4096\n")
		out, err := run(t, "{{ common.root_size }}", "-a", common, "-a", override)
		require.NoError(t, err)
		assert.Equal(t, "4096", out)
	})

	t.Run("format_flag_overrides_extension", func(t *testing.T) {
		yamlFile := writeFile(t, t.TempDir(), "values.txt", "x: from-yaml\n")
		out, err := run(t, "{{ x }}", "-f", "yaml", "-a", yamlFile)
		require.NoError(t, err)
		assert.Equal(t, "from-yaml", out)
	})

	t.Run("undefined_flag", func(t *testing.T) {
		_, err := run(t, "[{{ missing }}]")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))

		out, err := run(t, "[{{ missing }}]", "--undefined", "lenient")
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})
}

func TestCompileCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "main.j2", "{{ a }}")
	broken := writeFile(t, dir, "broken.j2", "{% if %}")
	badValues := writeFile(t, dir, "bad.json", "{")

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"bad_include_spec", []string{"-i", "nameonly", tmpl}, errors.ErrInvalidInput},
		{"missing_template", []string{filepath.Join(dir, "missing.j2")}, errors.ErrTemplateRead},
		{"missing_include_file", []string{"-i", "x=" + filepath.Join(dir, "nope"), tmpl}, errors.ErrTemplateRead},
		{"bad_values", []string{"-a", badValues, tmpl}, errors.ErrValuesLoad},
		{"broken_include", []string{"-i", "broken=" + broken, tmpl}, errors.ErrTemplateLoad},
		{"reserved_include_name", []string{"-i", "main=" + tmpl, tmpl}, errors.ErrNameCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "out")
			out, err := run(t, "", append([]string{"-o", target}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Empty(t, out)

			_, statErr := os.Stat(target)
			assert.True(t, os.IsNotExist(statErr), "no output file on failure")
		})
	}

	t.Run("unknown_format", func(t *testing.T) {
		_, err := run(t, "x", "-f", "xml")
		assert.Error(t, err)
	})

	t.Run("unknown_undefined_mode", func(t *testing.T) {
		_, err := run(t, "x", "--undefined", "sloppy")
		assert.Error(t, err)
	})

	t.Run("too_many_args", func(t *testing.T) {
		_, err := run(t, "", tmpl, tmpl)
		assert.Error(t, err)
	})
}

func TestMergeCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"a": 1, "b": 1, "c": 1}`)
	b := writeFile(t, dir, "b.json", `{"b": 2, "c": null, "d": 2}`)

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "", "merge", "-a", a, "-a", b)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 1, "b": 2, "d": 2}`, out)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "", "merge", "-a", a, "-a", b, "--output-format", "yaml")
		require.NoError(t, err)
		assert.YAMLEq(t, "a: 1\nb: 2\nd: 2\n", out)
	})

	t.Run("no_values_is_empty_mapping", func(t *testing.T) {
		out, err := run(t, "", "merge")
		require.NoError(t, err)
		assert.Equal(t, "{}\n", out)
	})

	t.Run("unknown_output_format", func(t *testing.T) {
		_, err := run(t, "", "merge", "-a", a, "--output-format", "xml")
		assert.Error(t, err)
	})
}

func TestConfigFileFlag(t *testing.T) {
	cfgFile := writeFile(t, t.TempDir(), "tmplmerge.toml", "[engine]\nundefined = \"lenient\"\n")

	out, err := run(t, "[{{ missing }}]", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	_, err = run(t, "x", "--config", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tmplmerge version dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "", "help", "topics")
	require.NoError(t, err)
	for _, name := range []string{"merge", "templates", "values", "config", "--undefined", "--include"} {
		assert.Contains(t, out, "  "+name+"\n")
	}

	out, err = run(t, "", "help", "merge")
	require.NoError(t, err)
	assert.Contains(t, out, "Merging values")
}
