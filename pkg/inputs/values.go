package inputs

import (
	"os"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// ReadValueFiles parses each file as one value document, keeping command
// line order. format overrides extension detection unless it is
// values.FormatAuto.
func ReadValueFiles(paths []string, format values.Format) ([]values.Tree, error) {
	logger := logging.GetLogger("inputs")
	docs := make([]values.Tree, 0, len(paths))

	for _, path := range paths {
		doc, err := ReadValueFile(path, format)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		logger.Debug().Str("path", path).Msg("loaded values")
	}

	return docs, nil
}

// ReadValueFile reads and parses a single value document.
func ReadValueFile(path string, format values.Format) (values.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValuesLoad, "failed to load values from %s", path).
			WithDetail("path", path)
	}

	doc, err := values.Parse(data, format.Resolve(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValuesLoad, "failed to load values from %s", path).
			WithDetail("path", path)
	}

	return doc, nil
}
