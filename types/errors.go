// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
)

// UnknownDatasetError reports a dataset name that no adapter is registered for.
type UnknownDatasetError struct {
	// Name is the unsupported dataset key.
	Name string
}

// Error returns a string representation of the [UnknownDatasetError].
func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Name)
}

// MissingFieldError reports a record that lacks an expected field, or carries
// it with an unexpected type or value.
//
// It signals that the dataset provider's schema drifted from the documented
// one, so it is surfaced at adapter construction and never recovered from.
type MissingFieldError struct {
	// Field is the expected field name.
	Field string

	// Reason optionally refines the failure, e.g. "has type int, want string".
	Reason string
}

// Error returns a string representation of the [MissingFieldError].
func (e *MissingFieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("record field %q missing", e.Field)
	}
	return fmt.Sprintf("record field %q %s", e.Field, e.Reason)
}

// SampleSizeError reports an in-context example count that cannot be drawn
// from a pool without replacement.
type SampleSizeError struct {
	// Requested is the number of examples asked for.
	Requested int

	// PoolSize is the number of records available.
	PoolSize int
}

// Error returns a string representation of the [SampleSizeError].
func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("cannot sample %d examples from a pool of %d without replacement", e.Requested, e.PoolSize)
}
