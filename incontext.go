// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package incontext builds few-shot evaluation prompts for language models across text datasets.
//
// Each supported dataset (sentiment classification, summarization, tweet
// question-answering) is bound behind one uniform adapter, and prompts are
// assembled either as a single concatenated string or as a role-tagged
// conversation. In-context examples are drawn from the training pool with a
// deterministic, position-seeded sampler so that every run of an evaluation is
// reproducible byte for byte.
package incontext

// Version is the version of the in-context prompt toolkit.
var Version = "v0.0.0"
