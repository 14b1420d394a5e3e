package values

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Normalize converts decoder output into a Tree. Integer types collapse to
// int64, floats to float64, timestamps to RFC 3339 strings, and any map
// or slice type to map[string]any or []any. Map keys that are scalars are
// formatted as strings; other key types are an error.
func Normalize(v any) (Tree, error) {
	return normalize(v, "$")
}

func normalize(v any, path string) (Tree, error) {
	switch t := v.(type) {
	case nil, bool, string, json.Number, int64, float64:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint:
		return normalizeUint(uint64(t)), nil
	case uint64:
		return normalizeUint(t), nil
	case float32:
		return float64(t), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case toml.LocalDate:
		return t.String(), nil
	case toml.LocalTime:
		return t.String(), nil
	case toml.LocalDateTime:
		return t.String(), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			n, err := normalize(child, path+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			key, err := mapKey(k, path)
			if err != nil {
				return nil, err
			}
			n, err := normalize(child, path+"."+key)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			n, err := normalize(child, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}

	return normalizeReflect(reflect.ValueOf(v), path)
}

// normalizeReflect handles typed maps and slices such as []map[string]any.
func normalizeReflect(rv reflect.Value, path string) (Tree, error) {
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := mapKey(iter.Key().Interface(), path)
			if err != nil {
				return nil, err
			}
			n, err := normalize(iter.Value().Interface(), path+"."+key)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := normalize(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface(), path)
	default:
		if !rv.IsValid() {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: unsupported value of type %s", path, rv.Type())
	}
}

func normalizeUint(u uint64) Tree {
	if u > math.MaxInt64 {
		return json.Number(strconv.FormatUint(u, 10))
	}
	return int64(u)
}

func mapKey(k any, path string) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t), nil
	default:
		return "", fmt.Errorf("%s: unsupported mapping key of type %T", path, k)
	}
}
