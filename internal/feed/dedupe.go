package feed

import "strings"

// Dedupe removes repeated items by case-insensitive exact title match.
// Single pass, stable: the first occurrence of each title is retained.
// Intentionally exact-match: near-duplicate headlines covering the same
// story from different outlets are kept. That is a known limitation.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
