// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// InMemory is an in-memory implementation of [types.DatasetProvider].
//
// Splits are registered programmatically, which makes it the natural
// provider for tests and for callers that already hold their rows.
type InMemory struct {
	// splits is a map from dataset name to a map from split name to rows.
	splits map[string]map[types.Split][]types.Record

	logger *slog.Logger
	mu     sync.RWMutex
}

var _ types.DatasetProvider = (*InMemory)(nil)

// NewInMemory creates a new empty [InMemory] provider.
func NewInMemory(opts ...Option) *InMemory {
	config := newConfig()
	for _, opt := range opts {
		config = opt.apply(config)
	}

	return &InMemory{
		splits: make(map[string]map[types.Split][]types.Record),
		logger: config.logger,
	}
}

// SetSplit registers records as one split of dataset, replacing any split
// registered under the same names. The provider owns the slice afterwards.
func (p *InMemory) SetSplit(dataset string, split types.Split, records []types.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ds, ok := p.splits[dataset]
	if !ok {
		ds = make(map[types.Split][]types.Record)
		p.splits[dataset] = ds
	}
	ds[split] = records
}

// Rows implements [types.DatasetProvider].
func (p *InMemory) Rows(ctx context.Context, dataset string, split types.Split) ([]types.Record, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	p.logger.DebugContext(ctx, "Serving rows",
		slog.String("dataset", dataset),
		slog.String("split", string(split)),
	)

	ds, ok := p.splits[dataset]
	if !ok {
		return nil, fmt.Errorf("dataset %q not registered", dataset)
	}
	rows, ok := ds[split]
	if !ok {
		return nil, fmt.Errorf("dataset %q has no %s split", dataset, split)
	}

	return slices.Clone(rows), nil
}
