// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ivaxi0s/llm-in-context-bias/hub"
	"github.com/ivaxi0s/llm-in-context-bias/internal/pool"
	"github.com/ivaxi0s/llm-in-context-bias/prompt"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

var (
	buildIncontext  string
	buildEval       string
	buildExamples   int
	buildOut        string
	buildTurns      bool
	buildReferences bool
	buildLimit      int
)

// promptLine is one JSONL output row: the prompt built for the evaluation
// record at Index, as a flat string or a role-tagged message list.
type promptLine struct {
	Index     int          `json:"index"`
	Prompt    string       `json:"prompt,omitempty"`
	Turns     []types.Turn `json:"turns,omitempty"`
	Reference *string      `json:"reference,omitempty"`
}

// runManifest records the inputs of one build run next to its output, so a
// prompt file can always be traced back to the datasets that produced it.
type runManifest struct {
	RunID            string    `json:"run_id"`
	CreatedAt        time.Time `json:"created_at"`
	IncontextDataset string    `json:"incontext_dataset"`
	EvalDataset      string    `json:"eval_dataset"`
	NumExamples      int       `json:"num_examples"`
	Prompts          int       `json:"prompts"`
	Turns            bool      `json:"turns"`
	WithReferences   bool      `json:"with_references"`
	Output           string    `json:"output"`
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble few-shot prompts and write them as JSONL",
	Long: `Assemble one prompt per evaluation record and write them as JSONL.

Each output row holds the evaluation record's index and either a flat
prompt string or, with --turns, a role-tagged message list. In-context
examples come from the --incontext dataset's training split; queries come
from the --eval dataset's test split. A run manifest lands next to the
output file.

Example:
  iclbias build --incontext gigaword --eval rotten_tomatoes -k 2 \
    --data-dir ./hub --out mixed.jsonl --with-references
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		numExamples := buildExamples
		if !cmd.Flags().Changed("examples") && globalConfig.Examples > 0 {
			numExamples = globalConfig.Examples
		}
		return runBuild(cmd, numExamples)
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildIncontext, "incontext", "", "dataset in-context examples are drawn from")
	buildCmd.Flags().StringVar(&buildEval, "eval", "", "dataset evaluation queries are built for")
	buildCmd.Flags().IntVarP(&buildExamples, "examples", "k", 0, "in-context examples per prompt")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "output JSONL file")
	buildCmd.Flags().BoolVar(&buildTurns, "turns", false, "emit role-tagged message lists instead of flat prompts")
	buildCmd.Flags().BoolVar(&buildReferences, "with-references", false, "include each evaluation record's ground-truth target")
	buildCmd.Flags().IntVar(&buildLimit, "limit", 0, "cap the number of evaluation records (0 = all)")

	_ = buildCmd.MarkFlagRequired("incontext")
	_ = buildCmd.MarkFlagRequired("eval")
	_ = buildCmd.MarkFlagRequired("out")
}

func runBuild(cmd *cobra.Command, numExamples int) error {
	ctx := cmd.Context()
	logger := slog.Default()

	provider := hub.NewDir(resolveDataDir(), hub.WithLogger(logger))

	opts := []prompt.Option{prompt.WithLogger(logger)}
	if buildLimit > 0 {
		opts = append(opts, prompt.WithLimit(buildLimit))
	}
	loader, err := prompt.NewLoader(ctx, provider, buildIncontext, buildEval, opts...)
	if err != nil {
		return err
	}

	var (
		prompts []string
		turns   [][]types.Turn
	)
	if buildTurns {
		turns, err = loader.LoadPromptTurns(ctx, numExamples)
	} else {
		prompts, err = loader.LoadPrompts(ctx, numExamples)
	}
	if err != nil {
		return err
	}

	var refs []string
	if buildReferences {
		refs, err = loader.LoadReferences(ctx)
		if err != nil {
			return err
		}
	}

	n := len(prompts)
	if buildTurns {
		n = len(turns)
	}

	buf := pool.Buffer.Get()
	buf.Reset()
	defer pool.Buffer.Put(buf)

	for i := range n {
		line := promptLine{Index: i}
		if buildTurns {
			line.Turns = turns[i]
		} else {
			line.Prompt = prompts[i]
		}
		if buildReferences {
			line.Reference = &refs[i]
		}
		data, err := sonic.ConfigFastest.Marshal(line)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	outPath := resolveOutPath(buildOut)
	if err := writeFile(outPath, buf.Bytes()); err != nil {
		return err
	}

	manifest := runManifest{
		RunID:            uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		IncontextDataset: buildIncontext,
		EvalDataset:      buildEval,
		NumExamples:      numExamples,
		Prompts:          n,
		Turns:            buildTurns,
		WithReferences:   buildReferences,
		Output:           filepath.Base(outPath),
	}
	data, err := sonic.ConfigFastest.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := writeFile(outPath+".manifest.json", data); err != nil {
		return err
	}

	logger.InfoContext(ctx, "build complete",
		slog.String("run_id", manifest.RunID),
		slog.String("output", outPath),
		slog.Int("prompts", n),
	)
	return nil
}

// resolveOutPath joins the configured output directory in front of
// relative output paths.
func resolveOutPath(out string) string {
	if filepath.IsAbs(out) || globalConfig.OutputDir == "" {
		return out
	}
	return filepath.Join(globalConfig.OutputDir, out)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
