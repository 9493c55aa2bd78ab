// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// The logging package implements a context-based logging pattern that allows loggers to be stored
// in and retrieved from context.Context values. This enables consistent logging throughout the
// prompt pipeline with automatic logger propagation.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelInfo,
//	}))
//
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving the logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.InfoContext(ctx, "dataset adapter ready", "dataset", name, "train_records", n)
//
// # Propagation Through Construction
//
// Components that take a logger option seed the context themselves, so the
// construction work they trigger logs through the caller's logger:
//
//	loader, err := prompt.NewLoader(ctx, provider, incontext, eval,
//		prompt.WithLogger(logger))
//
// Adapter construction inside NewLoader retrieves that logger with
// FromContext and reports pool sizes under it.
//
// # Default Behavior
//
// When no logger is found in the context, FromContext returns a logger
// backed by [slog.DiscardHandler]. Library code can always log without nil
// checks, and silence stays the default for callers that configured
// nothing.
//
// # Thread Safety
//
// The logging package is safe for concurrent use. Multiple goroutines can safely
// access loggers from context without additional synchronization.
package logging
