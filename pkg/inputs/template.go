package inputs

import (
	"io"
	"os"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
)

// ReadTemplate returns the contents of path, or of stdin when path is
// empty or "-".
func ReadTemplate(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateRead, "failed to load template")
	}

	return string(data), nil
}
