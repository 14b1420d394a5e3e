package render

import (
	"fmt"
	"strings"

	"github.com/mitsuhiko/minijinja/minijinja-go/v2/value"
)

// UndefinedMode selects how the engine treats variables missing from the
// context.
type UndefinedMode string

const (
	// UndefinedStrict fails the render on any use of a missing variable
	UndefinedStrict UndefinedMode = "strict"
	// UndefinedSemiStrict is strict except in boolean tests
	UndefinedSemiStrict UndefinedMode = "semi-strict"
	// UndefinedLenient renders missing variables as empty strings
	UndefinedLenient UndefinedMode = "lenient"
	// UndefinedChainable is lenient and also allows attribute access on
	// missing variables
	UndefinedChainable UndefinedMode = "chainable"
)

// ParseUndefinedMode parses a mode name, case-insensitively.
func ParseUndefinedMode(s string) (UndefinedMode, error) {
	switch mode := UndefinedMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case UndefinedStrict, UndefinedSemiStrict, UndefinedLenient, UndefinedChainable:
		return mode, nil
	case "":
		return UndefinedStrict, nil
	default:
		return "", fmt.Errorf("unknown undefined mode: %s", s)
	}
}

func (m UndefinedMode) behavior() value.UndefinedBehavior {
	switch m {
	case UndefinedSemiStrict:
		return value.UndefinedSemiStrict
	case UndefinedLenient:
		return value.UndefinedLenient
	case UndefinedChainable:
		return value.UndefinedChainable
	default:
		return value.UndefinedStrict
	}
}

// Options configures the template engine for each compile. The zero value
// is the same as DefaultOptions.
type Options struct {
	// Undefined defaults to UndefinedStrict when empty
	Undefined UndefinedMode

	TrimBlocks   bool
	LstripBlocks bool

	// StripTrailingNewline drops a single newline at the end of a template
	StripTrailingNewline bool
}

// DefaultOptions fails on missing variables and leaves template
// whitespace untouched.
func DefaultOptions() Options {
	return Options{Undefined: UndefinedStrict}
}
