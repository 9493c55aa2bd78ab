// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// Config carries file-based defaults so recurring runs do not repeat flags.
// Flags given on the command line win over config values.
type Config struct {
	// DataDir is the dataset hub directory, one subdirectory per source id.
	DataDir string `yaml:"data_dir"`

	// OutputDir is joined in front of relative --out paths.
	OutputDir string `yaml:"output_dir"`

	// Examples is the default in-context example count for build.
	Examples int `yaml:"examples"`
}

var (
	// Global flags
	cfgFile string
	dataDir string
	verbose bool

	// Global configuration
	globalConfig Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iclbias",
	Short: "Few-shot prompt assembly for cross-dataset bias evaluation",
	Long: `iclbias - assemble few-shot evaluation prompts from text datasets.

Prompts pair in-context examples, sampled from one dataset's training
split, with evaluation queries from another (or the same) dataset. The
sampler is seeded by evaluation position, so every run is reproducible
byte for byte.

Datasets are read from a hub directory holding one subdirectory per
source id with train.jsonl / validation.jsonl / test.jsonl files.

Examples:
  # Four sentiment examples in front of every sentiment query
  iclbias build --incontext rotten_tomatoes --eval rotten_tomatoes -k 4 \
    --data-dir ./hub --out prompts.jsonl

  # Cross-dataset: summarization examples, sentiment queries
  iclbias build --incontext gigaword --eval rotten_tomatoes -k 2 \
    --data-dir ./hub --out mixed.jsonl --turns

  # List the registered adapters
  iclbias datasets
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogging()
		if cfgFile == "" {
			return nil
		}
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		globalConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with flag defaults (YAML)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", `dataset hub directory (default ".")`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func initLogging() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// resolveDataDir applies flag, then config file, then the current directory.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if globalConfig.DataDir != "" {
		return globalConfig.DataDir
	}
	return "."
}
