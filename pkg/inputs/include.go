package inputs

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
)

// IncludeSpec names a template file to register as an include
type IncludeSpec struct {
	Name string
	Path string
}

// String formats the spec the way it is given on the command line
func (s IncludeSpec) String() string {
	return fmt.Sprintf("%s=%s", s.Name, s.Path)
}

// ParseIncludeSpec parses "name=path". The name ends at the first '=', so
// paths may contain '='.
func ParseIncludeSpec(s string) (IncludeSpec, error) {
	name, path, ok := strings.Cut(s, "=")
	if !ok || name == "" || path == "" {
		return IncludeSpec{}, errors.Newf(errors.ErrInvalidInput,
			"cannot determine name and path for included template: %s", s)
	}
	return IncludeSpec{Name: name, Path: path}, nil
}

// ParseIncludeSpecs parses every spec, stopping at the first invalid one.
func ParseIncludeSpecs(specs []string) ([]IncludeSpec, error) {
	parsed := make([]IncludeSpec, 0, len(specs))
	for _, s := range specs {
		spec, err := ParseIncludeSpec(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, spec)
	}
	return parsed, nil
}

// ReadIncludes reads every include file into a name to body map. When a
// name is given more than once the last spec wins.
func ReadIncludes(specs []IncludeSpec) (map[string]string, error) {
	logger := logging.GetLogger("inputs")
	includes := make(map[string]string, len(specs))

	for _, spec := range specs {
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateRead,
				"failed to load included template %s", spec.Name).
				WithDetail(errors.DetailTemplate, spec.Name)
		}

		if _, dup := includes[spec.Name]; dup {
			logger.Warn().Str("name", spec.Name).Str("path", spec.Path).
				Msg("included template given more than once, using the last one")
		}
		includes[spec.Name] = string(data)

		logger.Debug().Str("name", spec.Name).Str("path", spec.Path).Int("bytes", len(data)).
			Msg("loaded included template")
	}

	return includes, nil
}
