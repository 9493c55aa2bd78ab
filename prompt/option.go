// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"log/slog"

	"github.com/ivaxi0s/llm-in-context-bias/dataset"
)

// Config represents the configuration of a [Loader].
type Config struct {
	// registry resolves dataset names to adapter builders.
	registry *dataset.Registry

	// logger is the logger used for logging.
	logger *slog.Logger

	// limit caps the number of evaluation records prompts build for.
	limit int
}

func newConfig() Config {
	return Config{
		registry: dataset.DefaultRegistry(),
		logger:   slog.Default(),
	}
}

// Option is a function that modifies the [Config] of a [Loader].
type Option interface {
	apply(base Config) Config
}

type registryOption struct{ *dataset.Registry }

func (o registryOption) apply(base Config) Config {
	base.registry = o.Registry
	return base
}

// WithRegistry resolves dataset names against registry instead of the
// default registry.
func WithRegistry(registry *dataset.Registry) Option {
	return registryOption{registry}
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the [Loader] and the adapters it builds.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}

type limitOption int

func (o limitOption) apply(base Config) Config {
	base.limit = int(o)
	return base
}

// WithLimit caps evaluation to the first n records of the evaluation pool.
// The truncation is deterministic, so limited runs stay reproducible and
// positionally aligned with references. n <= 0 disables the cap.
func WithLimit(n int) Option {
	return limitOption(n)
}
