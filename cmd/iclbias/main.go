// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package main provides the iclbias CLI tool.
//
// Usage:
//
//	iclbias [flags] <command> [args]
//
// Commands:
//
//	build    - Assemble few-shot prompts and write them as JSONL
//	datasets - List the registered dataset adapters
package main

import (
	"fmt"
	"os"

	"github.com/ivaxi0s/llm-in-context-bias/cmd/iclbias/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
