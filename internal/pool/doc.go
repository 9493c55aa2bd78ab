// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package pool provides strongly-typed object pooling with generic support and predefined pools for common types.
//
// The core Pool[T] type wraps [sync.Pool] while keeping compile-time type
// safety. Prompt assembly builds one string per evaluation record and each
// record renders several fragments, so the hot path reuses pooled
// [strings.Builder] values instead of allocating fresh ones:
//
//	sb := pool.String.Get()
//	sb.Reset()
//	defer pool.String.Put(sb)
//
//	sb.WriteString(header)
//	sb.WriteString(fragment)
//	out := sb.String()
//
// Custom pools are created with a constructor function:
//
//	recPool := pool.New(func() []types.Record {
//		return make([]types.Record, 0, 64)
//	})
//
// [Buffer] serves the JSONL encoders the same way [String] serves rendering.
package pool
