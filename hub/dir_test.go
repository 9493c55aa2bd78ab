// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package hub_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivaxi0s/llm-in-context-bias/hub"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// writeSplit lays out <root>/<dataset>/<split>.jsonl with the given body.
func writeSplit(t *testing.T, root, dataset string, split types.Split, body string) {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(dataset))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, string(split)+".jsonl"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirRows(t *testing.T) {
	root := t.TempDir()
	writeSplit(t, root, "rotten_tomatoes", types.SplitTrain, `{"text":"great movie","label":1}
{"text":"terrible plot","label":0}
`)
	writeSplit(t, root, "rotten_tomatoes", types.SplitTest, `{"text":"watchable","label":1}
`)

	provider := hub.NewDir(root)
	ctx := t.Context()

	train, err := provider.Rows(ctx, "rotten_tomatoes", types.SplitTrain)
	if err != nil {
		t.Fatalf("Rows(train) unexpected error: %v", err)
	}
	want := []types.Record{
		{"text": "great movie", "label": float64(1)},
		{"text": "terrible plot", "label": float64(0)},
	}
	if diff := cmp.Diff(want, train); diff != "" {
		t.Errorf("Rows(train) mismatch (-want +got):\n%s", diff)
	}

	label, err := train[0].Int("label")
	if err != nil {
		t.Fatalf("Int(label) unexpected error: %v", err)
	}
	if label != 1 {
		t.Errorf("Int(label) = %d, want 1", label)
	}

	test, err := provider.Rows(ctx, "rotten_tomatoes", types.SplitTest)
	if err != nil {
		t.Fatalf("Rows(test) unexpected error: %v", err)
	}
	if len(test) != 1 {
		t.Errorf("Rows(test) returned %d records, want 1", len(test))
	}
}

func TestDirRowsNestedSourceID(t *testing.T) {
	root := t.TempDir()
	writeSplit(t, root, "GEM/wiki_cat_sum", types.SplitTrain, `{"paragraphs":["one","two"],"summary":{"text":["short"]}}
`)

	provider := hub.NewDir(root)

	rows, err := provider.Rows(t.Context(), "GEM/wiki_cat_sum", types.SplitTrain)
	if err != nil {
		t.Fatalf("Rows() unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d records, want 1", len(rows))
	}

	paragraphs, err := rows[0].Strings("paragraphs")
	if err != nil {
		t.Fatalf("Strings(paragraphs) unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two"}, paragraphs); diff != "" {
		t.Errorf("Strings(paragraphs) mismatch (-want +got):\n%s", diff)
	}
}

func TestDirRowsMissing(t *testing.T) {
	root := t.TempDir()
	writeSplit(t, root, "gigaword", types.SplitTrain, `{"document":"a","summary":"b"}
`)

	provider := hub.NewDir(root)
	ctx := t.Context()

	if _, err := provider.Rows(ctx, "gigaword", types.SplitTest); err == nil {
		t.Error("Rows() with absent split file succeeded, want error")
	}
	if _, err := provider.Rows(ctx, "tweet_qa", types.SplitTrain); err == nil {
		t.Error("Rows() with absent dataset directory succeeded, want error")
	}
}

func TestDirRowsMalformed(t *testing.T) {
	root := t.TempDir()
	writeSplit(t, root, "gigaword", types.SplitTrain, `{"document":"a","summary":"b"}
{"document": truncated
`)

	provider := hub.NewDir(root)

	if _, err := provider.Rows(t.Context(), "gigaword", types.SplitTrain); err == nil {
		t.Error("Rows() with malformed JSONL succeeded, want error")
	}
}

func TestDirRowsCallerOwnsSlice(t *testing.T) {
	root := t.TempDir()
	writeSplit(t, root, "gigaword", types.SplitTrain, `{"document":"first","summary":"a"}
{"document":"second","summary":"b"}
`)

	provider := hub.NewDir(root)
	ctx := t.Context()

	rows, err := provider.Rows(ctx, "gigaword", types.SplitTrain)
	if err != nil {
		t.Fatalf("Rows() unexpected error: %v", err)
	}
	rows[0] = types.Record{"document": "clobbered"}

	again, err := provider.Rows(ctx, "gigaword", types.SplitTrain)
	if err != nil {
		t.Fatalf("Rows() unexpected error: %v", err)
	}
	if got, _ := again[0].String("document"); got != "first" {
		t.Errorf("cached rows changed through returned slice: document = %q, want %q", got, "first")
	}
}
