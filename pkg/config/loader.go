package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/paths"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "TMPLMERGE_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file. When set it must exist and the
	// user config file is not consulted.
	ConfigFile string
}

// Load builds the configuration from defaults, the user file and the
// environment, in that order of increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Explicit or user config file
	path, required := opts.ConfigFile, true
	if path == "" {
		path, required = paths.New().ConfigFilePath(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid configuration")
	}

	return &cfg, nil
}

// envKey maps TMPLMERGE_ENGINE_TRIM_BLOCKS to engine.trim_blocks. Only the
// engine and values sections are configurable from the environment.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || (section != "engine" && section != "values") {
		return ""
	}
	return section + "." + rest
}
