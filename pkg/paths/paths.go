package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for tmplmerge
	EnvConfigDir = "TMPLMERGE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for tmplmerge
	EnvStateDir = "TMPLMERGE_STATE_DIR"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "tmplmerge"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "tmplmerge.log"
)

// Paths holds the resolved directories for one process.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves directories from the environment.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(configHome(), AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(stateHome(), AppDirName)
	}

	return p
}

// ConfigDir returns the tmplmerge config directory
func (p *Paths) ConfigDir() string { return p.configDir }

// StateDir returns the tmplmerge state directory
func (p *Paths) StateDir() string { return p.stateDir }

// ConfigFilePath returns the path of the user configuration file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// xdg caches the base directories at init, so the environment is consulted
// again here to honour changes made after start-up (tests use t.Setenv).
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	return xdg.StateHome
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
