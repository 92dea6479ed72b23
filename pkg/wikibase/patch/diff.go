package patch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Diff computes the operations that transform the JSON form of from
// into the JSON form of to. Object keys are compared by presence and
// value, arrays positionally. Output is deterministic: object keys
// are visited in sorted order and trailing array removals are emitted
// highest index first.
func Diff(from, to any) ([]Entry, error) {
	fromTree, err := canonicalize(from)
	if err != nil {
		return nil, fmt.Errorf("failed to encode diff source: %w", err)
	}

	toTree, err := canonicalize(to)
	if err != nil {
		return nil, fmt.Errorf("failed to encode diff target: %w", err)
	}

	var entries []Entry
	diffValues("", fromTree, toTree, &entries)
	return entries, nil
}

// canonicalize round-trips a value through encoding/json so that the
// diff operates on plain maps, slices and scalars regardless of the
// input's Go type.
func canonicalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func diffValues(path string, from, to any, entries *[]Entry) {
	fromObj, fromIsObj := from.(map[string]any)
	toObj, toIsObj := to.(map[string]any)
	if fromIsObj && toIsObj {
		diffObjects(path, fromObj, toObj, entries)
		return
	}

	fromArr, fromIsArr := from.([]any)
	toArr, toIsArr := to.([]any)
	if fromIsArr && toIsArr {
		diffArrays(path, fromArr, toArr, entries)
		return
	}

	if !reflect.DeepEqual(from, to) {
		*entries = append(*entries, NewEntry(OpReplace, path, to))
	}
}

func diffObjects(path string, from, to map[string]any, entries *[]Entry) {
	keys := make([]string, 0, len(from)+len(to))
	for key := range from {
		keys = append(keys, key)
	}
	for key := range to {
		if _, ok := from[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		keyPath := path + "/" + escapePointer(key)
		fromValue, inFrom := from[key]
		toValue, inTo := to[key]

		switch {
		case inFrom && inTo:
			diffValues(keyPath, fromValue, toValue, entries)
		case inFrom:
			*entries = append(*entries, NewEntry(OpRemove, keyPath, nil))
		default:
			*entries = append(*entries, NewEntry(OpAdd, keyPath, toValue))
		}
	}
}

func diffArrays(path string, from, to []any, entries *[]Entry) {
	common := len(from)
	if len(to) < common {
		common = len(to)
	}

	for i := 0; i < common; i++ {
		diffValues(fmt.Sprintf("%s/%d", path, i), from[i], to[i], entries)
	}

	for i := common; i < len(to); i++ {
		*entries = append(*entries, NewEntry(OpAdd, fmt.Sprintf("%s/%d", path, i), to[i]))
	}

	// trailing removals highest index first, so earlier removals do
	// not shift the later ones
	for i := len(from) - 1; i >= common; i-- {
		*entries = append(*entries, NewEntry(OpRemove, fmt.Sprintf("%s/%d", path, i), nil))
	}
}

// escapePointer escapes a key per the JSON Pointer rules.
func escapePointer(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}
