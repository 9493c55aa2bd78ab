// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"context"
	"sync"

	"github.com/ivaxi0s/llm-in-context-bias/internal/xmaps"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// init registers the built-in dataset adapters.
func init() {
	registry := DefaultRegistry()
	for _, def := range builtins {
		registry.Register(def.Key, def.Builder())
	}
}

// BuilderFunc is a function type that constructs a dataset adapter bound to
// the given provider.
type BuilderFunc func(ctx context.Context, provider types.DatasetProvider) (*Dataset, error)

// Builder returns the BuilderFunc constructing this definition's adapter.
func (def Definition) Builder() BuilderFunc {
	return func(ctx context.Context, provider types.DatasetProvider) (*Dataset, error) {
		return New(ctx, def, provider)
	}
}

// Registry resolves dataset names to adapter builders.
//
// Dataset names are exact keys, so resolution is a plain map lookup.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the singleton registry instance the builtins
// register with.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register registers a builder under name. Registering an existing name
// replaces its builder.
func (r *Registry) Register(name string, fn BuilderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builders[name] = fn
}

// Resolve returns the builder registered under name, or a
// [*types.UnknownDatasetError] naming the unsupported key.
func (r *Registry) Resolve(name string) (BuilderFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.builders[name]
	if !ok {
		return nil, &types.UnknownDatasetError{Name: name}
	}
	return fn, nil
}

// Build resolves name and constructs its adapter against provider.
func (r *Registry) Build(ctx context.Context, name string, provider types.DatasetProvider) (*Dataset, error) {
	fn, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return fn(ctx, provider)
}

// Names returns the registered dataset names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return xmaps.SortedKeys(r.builders)
}

// Register is a convenience function to register a builder with the default
// registry.
func Register(name string, fn BuilderFunc) {
	DefaultRegistry().Register(name, fn)
}

// Build is a convenience function to construct a named adapter from the
// default registry.
func Build(ctx context.Context, name string, provider types.DatasetProvider) (*Dataset, error) {
	return DefaultRegistry().Build(ctx, name, provider)
}

// Names is a convenience function listing the default registry's datasets.
func Names() []string {
	return DefaultRegistry().Names()
}
