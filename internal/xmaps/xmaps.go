// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package xmaps

import (
	"cmp"
	"maps"
	"slices"
)

// Contains reports whether key is present in m.
func Contains[Map ~map[K]V, K cmp.Ordered, V any](m Map, key K) bool {
	return slices.Contains(slices.Sorted(maps.Keys(m)), key)
}

// SortedKeys returns the keys of m in ascending order.
//
// Registries and providers list their contents through this so that output
// ordering never depends on map iteration order.
func SortedKeys[Map ~map[K]V, K cmp.Ordered, V any](m Map) []K {
	return slices.Sorted(maps.Keys(m))
}
