// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmaps provides extended utility functions for working with maps, complementing the standard maps package.
//
// The package currently provides:
//
//   - Contains: Check if a key exists in a map using ordered comparison
//   - SortedKeys: List map keys in ascending order for deterministic output
//
// Both work with any map type whose key implements cmp.Ordered:
//
//	builders := map[string]BuilderFunc{
//		"gigaword":        newGigaword,
//		"rotten_tomatoes": newRottenTomatoes,
//	}
//
//	xmaps.Contains(builders, "gigaword") // true
//	xmaps.SortedKeys(builders)           // ["gigaword", "rotten_tomatoes"]
//
// Deterministic ordering matters here: dataset listings and registry contents
// are part of reproducible evaluation runs, so they must never depend on map
// iteration order.
package xmaps
