// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"iter"
)

// Pool is an ordered, immutable, index-addressable sequence of Records.
//
// Pools are fully materialized at adapter construction and read-only
// afterwards, so they may be shared across concurrent prompt builds without
// synchronization.
type Pool struct {
	records []Record
}

// NewPool wraps records in a Pool. The pool owns the slice afterwards;
// callers must not retain or modify it.
func NewPool(records []Record) *Pool {
	return &Pool{records: records}
}

// Len returns the number of records in the pool.
func (p *Pool) Len() int {
	return len(p.records)
}

// At returns the record at index i.
func (p *Pool) At(i int) Record {
	return p.records[i]
}

// All returns an iterator over (index, record) pairs in pool order.
func (p *Pool) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, rec := range p.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Field extracts the named string field from every record, in pool order.
func (p *Pool) Field(name string) ([]string, error) {
	out := make([]string, len(p.records))
	for i, rec := range p.records {
		s, err := rec.String(name)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
