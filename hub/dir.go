// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/sync/errgroup"

	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// splitFiles are the split files a dataset directory may carry.
var splitFiles = []types.Split{
	types.SplitTrain,
	types.SplitValidation,
	types.SplitTest,
}

// Dir is a [types.DatasetProvider] serving JSONL files from a local
// directory tree laid out as <root>/<source-id>/<split>.jsonl, one JSON
// object per line. A source id may contain slashes (GEM/wiki_cat_sum maps
// to <root>/GEM/wiki_cat_sum/).
//
// Dataset acquisition happens out of band; Dir never touches the network.
// The first request for a dataset reads all of its split files, so repeated
// Rows calls and the shared in-context/evaluation case pay the decode cost
// once.
type Dir struct {
	root   string
	logger *slog.Logger

	// cache is a map from source id to its decoded splits.
	cache map[string]map[types.Split][]types.Record
	mu    sync.Mutex
}

var _ types.DatasetProvider = (*Dir)(nil)

// NewDir creates a new [Dir] provider rooted at root.
func NewDir(root string, opts ...Option) *Dir {
	config := newConfig()
	for _, opt := range opts {
		config = opt.apply(config)
	}

	return &Dir{
		root:   root,
		logger: config.logger,
		cache:  make(map[string]map[types.Split][]types.Record),
	}
}

// Rows implements [types.DatasetProvider].
func (p *Dir) Rows(ctx context.Context, dataset string, split types.Split) ([]types.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ds, ok := p.cache[dataset]
	if !ok {
		loaded, err := p.loadDataset(ctx, dataset)
		if err != nil {
			return nil, err
		}
		p.cache[dataset] = loaded
		ds = loaded
	}

	rows, ok := ds[split]
	if !ok {
		return nil, fmt.Errorf("dataset %q has no %s split under %s", dataset, split, p.root)
	}

	return slices.Clone(rows), nil
}

// loadDataset decodes every split file present for dataset. The split files
// are independent, so they decode concurrently.
func (p *Dir) loadDataset(ctx context.Context, dataset string) (map[types.Split][]types.Record, error) {
	dir := filepath.Join(p.root, filepath.FromSlash(dataset))
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("dataset %q: %w", dataset, err)
	}

	loaded := make([][]types.Record, len(splitFiles))
	found := make([]bool, len(splitFiles))

	eg, ctx := errgroup.WithContext(ctx)
	for i, split := range splitFiles {
		eg.Go(func() error {
			path := filepath.Join(dir, string(split)+".jsonl")
			rows, err := readJSONL(ctx, path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("dataset %q: %w", dataset, err)
			}
			loaded[i] = rows
			found[i] = true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ds := make(map[types.Split][]types.Record, len(splitFiles))
	for i, split := range splitFiles {
		if found[i] {
			ds[split] = loaded[i]
			p.logger.InfoContext(ctx, "Loaded dataset split",
				slog.String("dataset", dataset),
				slog.String("split", string(split)),
				slog.Int("records", len(loaded[i])),
			)
		}
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("dataset %q: no split files under %s", dataset, dir)
	}
	return ds, nil
}

// readJSONL decodes a stream of JSON objects from path. Records may span
// many lines or share one; any whitespace-separated value stream decodes.
func readJSONL(ctx context.Context, path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []types.Record
	dec := jsontext.NewDecoder(f)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rec types.Record
		if err := json.UnmarshalDecode(dec, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode %s: record %d: %w", path, len(records), err)
		}
		records = append(records, rec)
	}

	return records, nil
}
