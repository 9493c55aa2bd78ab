// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivaxi0s/llm-in-context-bias/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the registered dataset adapters",
	Long: `List the dataset names the build command accepts.

Names print one per line, sorted. Custom adapters registered through the
dataset package appear alongside the builtins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range dataset.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
