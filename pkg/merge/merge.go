// Package merge reduces an ordered list of value documents into a single
// tree using RFC 7396 JSON Merge Patch.
//
//	define MergePatch(Target, Patch):
//	    if Patch is an Object:
//	        if Target is not an Object:
//	            Target = {}
//	        for each Name/Value pair in Patch:
//	            if Value is null:
//	                if Name exists in Target:
//	                    remove the Name/Value pair from Target
//	            else:
//	                Target[Name] = MergePatch(Target[Name], Value)
//	        return Target
//	    else:
//	        return Patch
package merge

import (
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// Merge folds documents left to right with Patch, so later documents take
// precedence. An empty list yields an empty mapping.
func Merge(documents []values.Tree) values.Tree {
	if len(documents) == 0 {
		return values.EmptyMapping()
	}

	logger := logging.GetLogger("merge")

	result := values.DeepCopy(documents[0])
	for i, doc := range documents[1:] {
		result = Patch(result, doc)
		logger.Trace().Int("document", i+1).Msg("applied merge patch")
	}
	return result
}

// Patch applies patch to target and returns the result. Neither argument
// is modified and the result shares no mappings or sequences with them.
func Patch(target, patch values.Tree) values.Tree {
	patchMap, ok := patch.(map[string]any)
	if !ok {
		return values.DeepCopy(patch)
	}

	targetMap, _ := target.(map[string]any)
	result := make(map[string]any, len(targetMap)+len(patchMap))
	for k, v := range targetMap {
		result[k] = values.DeepCopy(v)
	}

	for key, patchValue := range patchMap {
		if patchValue == nil {
			delete(result, key)
			continue
		}

		existing, found := result[key]
		if found && values.IsMapping(existing) && values.IsMapping(patchValue) {
			result[key] = Patch(existing, patchValue)
			continue
		}

		result[key] = values.DeepCopy(patchValue)
	}

	return result
}
