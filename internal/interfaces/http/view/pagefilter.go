package view

import "strings"

// PageFilter narrows an already fetched page to the items whose display
// fields contain the filter term, matching case-insensitively. The term
// applies after pagination, so the pagination block keeps the server-side
// counts. An empty term returns the page unchanged.
func PageFilter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
