// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"
)

// Split names one of the three dataset splits a provider serves.
type Split string

const (
	// SplitTrain is the pool in-context examples are sampled from.
	SplitTrain Split = "train"

	// SplitValidation is loaded for completeness but unused by prompt assembly.
	SplitValidation Split = "validation"

	// SplitTest is the pool prompts are built for.
	SplitTest Split = "test"
)

// DatasetProvider supplies row-oriented dataset splits by upstream dataset name.
//
// This type is the boundary to dataset acquisition: implementations own
// storage and caching, while adapters depend only on row count, indexable row
// access, and the documented field names of each split.
type DatasetProvider interface {
	// Rows returns every record of one split of the named dataset, in a
	// stable order. The returned slice is owned by the caller.
	Rows(ctx context.Context, dataset string, split Split) ([]Record, error)
}
