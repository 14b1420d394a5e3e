package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mitsuhiko/minijinja/minijinja-go/v2/value"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

var zeroValue value.Value

// BuildContext converts a Value Tree into the engine's value model. The
// top level must be a mapping, since its keys become the template
// variables. Whole numbers become engine integers so that 8192 renders as
// "8192" rather than as a float.
func BuildContext(tree values.Tree) (value.Value, error) {
	kind, err := values.KindOf(tree)
	if err == nil && kind != values.KindMapping {
		return zeroValue, errors.Newf(errors.ErrContextBuild,
			"cannot create context from values: context must be a mapping, got %s", kind)
	}

	v, err := toValue(tree, "$")
	if err != nil {
		return zeroValue, errors.Wrap(err, errors.ErrContextBuild, "cannot create context from values")
	}
	return v, nil
}

func toValue(tree values.Tree, path string) (value.Value, error) {
	kind, err := values.KindOf(tree)
	if err != nil {
		return zeroValue, fmt.Errorf("%s: %w", path, err)
	}

	switch kind {
	case values.KindNull:
		return value.FromAny(nil), nil
	case values.KindBool:
		return value.FromBool(tree.(bool)), nil
	case values.KindNumber:
		return numberValue(tree, path)
	case values.KindString:
		return value.FromString(tree.(string)), nil
	case values.KindSequence:
		seq := tree.([]any)
		items := make([]value.Value, len(seq))
		for i, child := range seq {
			item, err := toValue(child, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return zeroValue, err
			}
			items[i] = item
		}
		return value.FromSlice(items), nil
	case values.KindMapping:
		m := tree.(map[string]any)
		// sorted so the first offending key reported is stable
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make(map[string]value.Value, len(m))
		for _, k := range keys {
			entry, err := toValue(m[k], path+"."+k)
			if err != nil {
				return zeroValue, err
			}
			entries[k] = entry
		}
		return value.FromMap(entries), nil
	}

	return zeroValue, fmt.Errorf("%s: unhandled value kind %s", path, kind)
}

func numberValue(tree values.Tree, path string) (value.Value, error) {
	switch n := tree.(type) {
	case int:
		return value.FromAny(int64(n)), nil
	case int64:
		return value.FromAny(n), nil
	case float64:
		return value.FromAny(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return value.FromAny(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return zeroValue, fmt.Errorf("%s: invalid number %q: %w", path, n.String(), err)
		}
		return value.FromAny(f), nil
	}
	return zeroValue, fmt.Errorf("%s: unsupported number of type %T", path, tree)
}
