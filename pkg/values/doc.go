// Package values defines the Value Tree: the JSON-shaped data that value
// documents are parsed into, merged by package merge, and rendered
// against by package render.
//
// A Tree is one of:
//
//	nil                               null
//	bool                              boolean
//	json.Number, int, int64, float64  number
//	string                            string
//	[]any                             sequence
//	map[string]any                    mapping
//
// Decoders for other formats (YAML, TOML) produce richer Go types; Normalize
// folds them into this closed set. Functions in this package never mutate
// their arguments.
package values
