// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"log/slog"
)

// Config represents the shared configuration of the providers in this
// package.
type Config struct {
	// logger is the logger used for logging.
	logger *slog.Logger
}

func newConfig() Config {
	return Config{
		logger: slog.Default(),
	}
}

// Option is a function that modifies the provider [Config].
type Option interface {
	apply(base Config) Config
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the provider.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}
