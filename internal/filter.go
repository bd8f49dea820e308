package internal

import (
	mapset "github.com/deckarep/golang-set/v2"
)

func SetFromList[T comparable](items []T) mapset.Set[T] {
	set := mapset.NewSet[T]()
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// Unique drops repeated items, keeping the first occurrence of each.
func Unique[T comparable](items []T) []T {
	seen := mapset.NewSet[T]()
	var out []T
	for _, item := range items {
		if seen.Contains(item) {
			continue
		}
		seen.Add(item)
		out = append(out, item)
	}

	return out
}
