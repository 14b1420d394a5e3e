package values

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the syntax of a value document
type Format int

const (
	// FormatAuto picks the format from the file extension
	FormatAuto Format = iota
	FormatJSON
	FormatJSONC
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// FormatFromPath infers the format from a file extension. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Resolve returns f, or the format inferred from path when f is FormatAuto.
func (f Format) Resolve(path string) Format {
	if f == FormatAuto {
		return FormatFromPath(path)
	}
	return f
}
