// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt assembles few-shot evaluation prompts.
//
// A [Loader] pairs two dataset adapters: in-context examples come from one,
// evaluation queries from the other. Mixing the two is the point of the
// design; prompting a summarization evaluation with sentiment examples, or
// any other cross-dataset combination, measures how the in-context examples
// bias the model under test.
//
//	loader, err := prompt.NewLoader(ctx, provider, "rotten_tomatoes", "gigaword")
//	if err != nil {
//		return err
//	}
//	prompts, err := loader.LoadPrompts(ctx, 4)
//	refs, err := loader.LoadReferences(ctx)
//
// # Prompt shapes
//
// [Loader.LoadPrompts] builds one string per evaluation record:
//
//	<header>
//	<fragment 1>
//	...
//	<fragment k>
//	<instruction>
//	<evaluation input>
//
// [Loader.LoadPromptTurns] builds the same content as a chat conversation:
// a user/assistant pair per example, then a trailing user turn with the
// query. The chatconv package converts the turn form into provider SDK
// message types.
//
// # Reproducibility
//
// Examples for the evaluation record at position i are always drawn with
// seed i, independently for every position. Two Loaders over the same data
// produce byte-identical prompts, in either shape, on any platform.
//
// # Errors
//
// Construction fails with [*types.UnknownDatasetError] for unregistered
// names. Load calls fail with [*types.SampleSizeError] when the training
// pool cannot serve the requested example count; nothing partial is ever
// returned.
package prompt
