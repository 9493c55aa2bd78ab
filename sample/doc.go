// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample draws in-context examples from a training pool,
// deterministically and without replacement.
//
// Few-shot prompt assembly picks k training records to prepend to each
// evaluation query. Which records get picked must be a pure function of the
// evaluation record's position, or a re-run of the same evaluation silently
// scores different prompts. This package pins that down to a single entry
// point:
//
//	indices, err := sample.Indices(pool.Len(), k, int64(position))
//
// # Determinism
//
// Indices seeds a [math/rand/v2] PCG generator with the supplied seed and
// nothing else. The PCG stream is specified by the Go standard library and
// does not vary across processes, platforms, or GOARCH, so a (poolSize, k,
// seed) triple identifies one selection forever.
//
// # Selection order
//
// The returned indices are in the order the generator produced them, not
// sorted. Prompt assembly concatenates fragments in exactly this order, so
// reordering here would change prompt bytes.
package sample
