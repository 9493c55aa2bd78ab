// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types provides the core data model and contracts for in-context prompt construction.
//
// The types package defines the fundamental structures that all components of
// the prompt pipeline share: dataset records and pools, conversation turns,
// the dataset provider boundary, and the error types the pipeline fails with.
//
// # Data Model
//
// A [Record] is one labeled dataset example, a mapping from field name to
// value (strings, integers, or short lists of strings). Records are never
// mutated in place; transforms clone and return new ones.
//
// A [Pool] is an ordered, immutable sequence of Records: either the training
// pool in-context examples are sampled from, or the evaluation pool prompts
// are built for. Pools are fully materialized at construction and safe to
// share across concurrent prompt builds.
//
// A [Turn] is one role-tagged message of a turn-structured prompt:
//
//	types.User("Please summarize the following article.\narticle: ...")
//	types.Assistant("the summary")
//
// # Provider Boundary
//
// [DatasetProvider] is the external collaborator that supplies the three
// named splits (train/validation/test) of each dataset as flat tables. The
// core depends only on row count, indexable row access, and the documented
// field names; storage and caching stay on the provider side.
//
// # Errors
//
// The pipeline fails fast with typed errors: [UnknownDatasetError] for
// unregistered dataset keys, [MissingFieldError] for provider schema drift,
// and [SampleSizeError] when an in-context example count cannot be drawn
// without replacement. All of them surface synchronously at the call that
// triggered them.
package types
