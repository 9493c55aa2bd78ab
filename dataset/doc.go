// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package dataset adapts heterogeneous text datasets to one uniform
// prompt-rendering interface.
//
// Every supported dataset reduces to the same shape: records with input
// text and a ground-truth target, rendered as "label: value" lines. What
// varies per dataset is captured declaratively by a [Definition]:
//
//   - the registry key and the upstream source id it loads from,
//   - a [Template] holding the header, instruction, field labels, and the
//     separator between input and target,
//   - a Normalize function reshaping provider records (renaming fields,
//     mapping label enumerations to words, joining paragraph lists).
//
// # Builtins
//
// Five adapters register with the default registry at package load:
// rotten_tomatoes (sentiment classification), gigaword, dailymail, and
// wikicat (summarization), and tweetqa (tweet question answering). The
// dailymail key loads the cnn_dailymail source and wikicat loads
// GEM/wiki_cat_sum; keys and upstream names are distinct namespaces.
//
// # Construction
//
// Adapters build eagerly through a [types.DatasetProvider]:
//
//	ds, err := dataset.Build(ctx, "rotten_tomatoes", provider)
//	if err != nil {
//		// *types.UnknownDatasetError for an unregistered key,
//		// *types.MissingFieldError when the provider schema drifted.
//	}
//	fragment, err := ds.Fragment(0) // "review: ...\nsentiment: ..."
//	query, err := ds.Query(0)       // instruction + evaluation input
//
// Both pools are loaded and normalized before Build returns. A constructed
// [Dataset] is immutable: it may serve as the in-context source and the
// evaluation side of the same run, or be shared across goroutines, without
// synchronization.
//
// # Custom datasets
//
// Out-of-tree datasets register a [Definition.Builder] (or any
// [BuilderFunc]) under a new key:
//
//	dataset.Register("my_reviews", dataset.Definition{
//		Key:    "my_reviews",
//		Source: "my_reviews",
//		Template: dataset.Template{
//			Header:      "Please read the following pairs of movie reviews and sentiment:\n",
//			Instruction: "Classify the sentiment of the review.\n",
//			Inputs:      []dataset.Field{{Label: "review: ", Name: "text"}},
//			Target:      dataset.Field{Label: "\nsentiment: ", Name: "sentiment"},
//			BareQuery:   true,
//		},
//	}.Builder())
package dataset
