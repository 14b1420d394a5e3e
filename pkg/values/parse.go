package values

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
)

// Parse decodes one value document. FormatAuto is treated as JSON; callers
// that know the file name should Resolve the format first.
func Parse(data []byte, format Format) (Tree, error) {
	var (
		tree Tree
		err  error
	)

	switch format {
	case FormatAuto, FormatJSON:
		tree, err = parseJSON(data)
	case FormatJSONC:
		tree, err = parseJSON(jsonc.ToJSON(data))
	case FormatYAML:
		tree, err = parseYAML(data)
	case FormatTOML:
		tree, err = parseTOML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown value format %d", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValuesParse, "cannot parse %s document", format)
	}
	return tree, nil
}

func parseJSON(data []byte) (Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return tree, nil
}

func parseYAML(data []byte) (Tree, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return EmptyMapping(), nil
		}
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("multiple YAML documents in one file")
	}
	return Normalize(doc)
}

func parseTOML(data []byte) (Tree, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return EmptyMapping(), nil
	}
	return Normalize(doc)
}
