package values

import (
	"encoding/json"
	"fmt"
)

// Tree is a Value Tree node. See the package documentation for the set of
// dynamic types it may hold.
type Tree = any

// Kind identifies which case of the Value Tree a node belongs to.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// KindOf classifies v. It only looks at the top-level node and returns an
// error when v is not one of the Value Tree types.
func KindOf(v Tree) (Kind, error) {
	switch v.(type) {
	case nil:
		return KindNull, nil
	case bool:
		return KindBool, nil
	case json.Number, int, int64, float64:
		return KindNumber, nil
	case string:
		return KindString, nil
	case []any:
		return KindSequence, nil
	case map[string]any:
		return KindMapping, nil
	default:
		return KindNull, fmt.Errorf("unsupported value of type %T", v)
	}
}

// IsMapping reports whether v is a mapping node.
func IsMapping(v Tree) bool {
	_, ok := v.(map[string]any)
	return ok
}

// DeepCopy returns a copy of v that shares no mappings or sequences with it.
func DeepCopy(v Tree) Tree {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = DeepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = DeepCopy(child)
		}
		return out
	default:
		return v
	}
}

// EmptyMapping returns a new mapping with no keys.
func EmptyMapping() Tree {
	return map[string]any{}
}

// ResolveNumbers returns a copy of v with every json.Number replaced by an
// int64 when it is integral and a float64 otherwise. Encoders that do not
// know json.Number would otherwise emit numbers as strings.
func ResolveNumbers(v Tree) Tree {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = ResolveNumbers(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = ResolveNumbers(child)
		}
		return out
	default:
		return v
	}
}
