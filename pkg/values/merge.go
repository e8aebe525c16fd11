/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/k3scfg/chartgen/pkg/errors"
)

// String constants for scalar coercion.
const (
	strTrue  = "true"
	strFalse = "false"
)

// Merge combines pre-parsed value blocks and inline key=value assignments into
// a single nested mapping.
//
// Blocks are deep-merged in the order given, each block over the accumulated
// result. Inline assignments are merged last and therefore win over any
// block-provided value at the same path. The result is independent of the
// inputs; neither blocks nor assignments are mutated.
func Merge(assignments []string, blocks []any) (map[string]any, error) {
	merged := make(map[string]any)

	for i, block := range blocks {
		m, ok := block.(map[string]any)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidValueSource,
				"values source must be a mapping at the top level",
				map[string]any{"index": i, "type": fmt.Sprintf("%T", block)})
		}
		mergeMaps(merged, m)
	}

	inline, err := ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}
	mergeMaps(merged, inline)

	return merged, nil
}

// ParseAssignments parses inline key=value assignments into a nested mapping.
// Each argument may hold several comma-separated pairs (key1=v1,key2=v2), and
// each key may be a dotted path (a.b.c=1) denoting a nested location. Later
// assignments of the same key override earlier ones.
func ParseAssignments(assignments []string) (map[string]any, error) {
	out := make(map[string]any)

	for _, raw := range assignments {
		for _, pair := range strings.Split(raw, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}

			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return nil, errors.NewWithContext(errors.ErrCodeMalformedAssignment,
					"assignment must be in key=value form",
					map[string]any{"assignment": pair})
			}

			if err := setValueByPath(out, key, convertValue(value)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// setValueByPath sets a value in a nested map using a dot-notation path,
// creating intermediate maps as needed.
func setValueByPath(target map[string]any, path string, value any) error {
	parts := strings.Split(path, ".")
	current := target

	// Traverse/create the path up to the last segment
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part]; ok {
			// If the value exists, it must be a map
			nextMap, ok := next.(map[string]any)
			if !ok {
				return errors.NewWithContext(errors.ErrCodeMalformedAssignment,
					"assignment path collides with an earlier scalar value",
					map[string]any{"path": path, "segment": part})
			}
			current = nextMap
		} else {
			// Create a new nested map
			newMap := make(map[string]any)
			current[part] = newMap
			current = newMap
		}
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// convertValue converts a string value to an appropriate Go type.
// Handles bools ("true"/"false") and numbers; everything else stays a string.
func convertValue(value string) any {
	if value == strTrue {
		return true
	}
	if value == strFalse {
		return false
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return value
}

// mergeMaps recursively merges src into dst.
// When both sides hold a map for the same key, nested keys are merged
// recursively. For any other type pairing, src overwrites dst.
func mergeMaps(dst, src map[string]any) {
	for key, srcVal := range src {
		if dstVal, exists := dst[key]; exists {
			if dstMap, dstOK := dstVal.(map[string]any); dstOK {
				if srcMap, srcOK := srcVal.(map[string]any); srcOK {
					mergeMaps(dstMap, srcMap)
					continue
				}
			}
		}
		if srcMap, ok := srcVal.(map[string]any); ok {
			// Copy nested maps so the result does not alias the source block.
			cp := make(map[string]any, len(srcMap))
			mergeMaps(cp, srcMap)
			dst[key] = cp
			continue
		}
		dst[key] = srcVal
	}
}
