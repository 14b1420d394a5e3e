package inputs

import (
	"io"
	"os"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
)

// WriteOutput writes output to path, or to stdout when path is empty or
// "-". An existing file is truncated.
func WriteOutput(path string, stdout io.Writer, output string) error {
	if path == "" || path == "-" {
		if _, err := io.WriteString(stdout, output); err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write output to %s", path)
	}

	if _, err := io.WriteString(f, output); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write output to %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write output to %s", path)
	}
	return nil
}
