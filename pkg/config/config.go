package config

import (
	"fmt"

	"github.com/arthur-debert/tmplmerge/pkg/render"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// Config is the complete tmplmerge configuration
type Config struct {
	Engine EngineConfig `koanf:"engine"`
	Values ValuesConfig `koanf:"values"`
}

// EngineConfig configures the template engine
type EngineConfig struct {
	Undefined           string `koanf:"undefined"`
	TrimBlocks          bool   `koanf:"trim_blocks"`
	LstripBlocks        bool   `koanf:"lstrip_blocks"`
	KeepTrailingNewline bool   `koanf:"keep_trailing_newline"`
}

// ValuesConfig configures value document parsing
type ValuesConfig struct {
	Format string `koanf:"format"`
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := render.ParseUndefinedMode(c.Engine.Undefined); err != nil {
		return fmt.Errorf("engine.undefined: %w", err)
	}
	if _, err := values.ParseFormat(c.Values.Format); err != nil {
		return fmt.Errorf("values.format: %w", err)
	}
	return nil
}

// RenderOptions converts the engine section into render options.
func (c *Config) RenderOptions() render.Options {
	mode, err := render.ParseUndefinedMode(c.Engine.Undefined)
	if err != nil {
		mode = render.UndefinedStrict
	}
	return render.Options{
		Undefined:            mode,
		TrimBlocks:           c.Engine.TrimBlocks,
		LstripBlocks:         c.Engine.LstripBlocks,
		StripTrailingNewline: !c.Engine.KeepTrailingNewline,
	}
}

// ValuesFormat returns the configured value format.
func (c *Config) ValuesFormat() values.Format {
	format, err := values.ParseFormat(c.Values.Format)
	if err != nil {
		return values.FormatAuto
	}
	return format
}
