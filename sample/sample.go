// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	rand "math/rand/v2"

	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Indices draws k distinct indices from the half-open range [0, poolSize)
// without replacement.
//
// The draw is fully determined by its arguments: equal (poolSize, k, seed)
// triples produce equal index sequences on every call, every process, and
// every platform. Callers seed with the position of the evaluation record a
// prompt is being assembled for, which makes every prompt of a run
// reproducible from the dataset alone.
//
// The returned indices keep generator selection order; they are never
// re-sorted. k = 0 yields an empty selection. A negative k, or a k larger
// than poolSize, fails with a [*types.SampleSizeError] before any work is
// done.
func Indices(poolSize, k int, seed int64) ([]int, error) {
	if k < 0 || k > poolSize {
		return nil, &types.SampleSizeError{Requested: k, PoolSize: poolSize}
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	// Partial Fisher-Yates over the virtual array [0, poolSize). Only the
	// first k draws run, and displaced holds the entries swaps have moved,
	// so the working set stays proportional to k rather than poolSize.
	out := make([]int, k)
	displaced := make(map[int]int, k)
	for i := range k {
		j := i + rng.IntN(poolSize-i)

		vj, ok := displaced[j]
		if !ok {
			vj = j
		}
		vi, ok := displaced[i]
		if !ok {
			vi = i
		}

		out[i] = vj
		displaced[j] = vi
	}

	return out, nil
}
