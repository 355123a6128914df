package scaffold

import (
	"sort"
	"strings"
)

// ReplacePlaceholders replaces every "{{ key }}" token in text with its value.
// Keys match exactly, with one space inside each pair of braces.
func ReplacePlaceholders(text string, values map[string]string) string {
	for _, key := range sortedKeys(values) {
		text = strings.ReplaceAll(text, "{{ "+key+" }}", values[key])
	}
	return text
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
