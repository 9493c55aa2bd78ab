// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package hub provides [types.DatasetProvider] implementations.
//
// The provider boundary keeps dataset acquisition out of prompt assembly:
// adapters ask for rows by upstream dataset name and split, and never see
// where the rows came from.
//
// [InMemory] serves programmatically registered splits and is the usual
// provider in tests. [Dir] serves JSONL files exported to a local directory
// tree, one directory per upstream dataset:
//
//	data/
//	  rotten_tomatoes/
//	    train.jsonl
//	    test.jsonl
//	  cnn_dailymail/
//	    train.jsonl
//	    validation.jsonl
//	    test.jsonl
//
// Neither provider reaches the network. Exporting upstream datasets into the
// JSONL layout is a separate, offline step.
package hub
