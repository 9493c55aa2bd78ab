// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ivaxi0s/llm-in-context-bias/pkg/logging"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Definition declares one dataset adapter: its registry key, the upstream
// source it loads from, the Template its records render through, and the
// normalization every record passes before rendering.
type Definition struct {
	// Key is the name the adapter registers under and is resolved by.
	Key string

	// Source is the upstream dataset id the provider is queried with. It
	// differs from Key when the upstream names differ, e.g. the dailymail
	// key loads the cnn_dailymail source.
	Source string

	// Template renders records of this dataset.
	Template Template

	// Normalize rewrites one provider record into template-ready shape.
	// A nil Normalize uses provider records as-is.
	Normalize func(types.Record) (types.Record, error)
}

// Dataset is a constructed adapter: a Template bound to the materialized,
// normalized training and evaluation pools of one dataset.
//
// Construction is eager. Both pools are loaded and normalized before New
// returns, so provider failures and schema drift surface here rather than
// mid-evaluation, and a Dataset is immutable and safe to share afterwards.
type Dataset struct {
	name     string
	source   string
	template Template
	train    *types.Pool
	eval     *types.Pool
}

// New constructs the adapter declared by def, loading the train and test
// splits through provider.
func New(ctx context.Context, def Definition, provider types.DatasetProvider) (*Dataset, error) {
	train, err := loadSplit(ctx, def, provider, types.SplitTrain)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: load train split: %w", def.Key, err)
	}
	eval, err := loadSplit(ctx, def, provider, types.SplitTest)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: load test split: %w", def.Key, err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "dataset adapter ready",
		slog.String("dataset", def.Key),
		slog.String("source", def.Source),
		slog.Int("train_records", train.Len()),
		slog.Int("eval_records", eval.Len()),
	)

	return &Dataset{
		name:     def.Key,
		source:   def.Source,
		template: def.Template,
		train:    train,
		eval:     eval,
	}, nil
}

// loadSplit pulls one split from the provider and normalizes every record.
func loadSplit(ctx context.Context, def Definition, provider types.DatasetProvider, split types.Split) (*types.Pool, error) {
	rows, err := provider.Rows(ctx, def.Source, split)
	if err != nil {
		return nil, err
	}
	if def.Normalize == nil {
		return types.NewPool(rows), nil
	}

	out := make([]types.Record, len(rows))
	for i, rec := range rows {
		normalized, err := def.Normalize(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = normalized
	}
	return types.NewPool(out), nil
}

// Name returns the registry key the adapter was built for.
func (d *Dataset) Name() string {
	return d.name
}

// Source returns the upstream dataset id the pools were loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Template returns the rendering template.
func (d *Dataset) Template() Template {
	return d.template
}

// Train returns the pool in-context examples are sampled from.
func (d *Dataset) Train() *types.Pool {
	return d.train
}

// Eval returns the pool prompts are built for.
func (d *Dataset) Eval() *types.Pool {
	return d.eval
}

// Fragment renders training record i as an in-context example.
func (d *Dataset) Fragment(i int) (string, error) {
	return d.template.RenderFragment(d.train.At(i))
}

// Query renders evaluation record i as its final query.
func (d *Dataset) Query(i int) (string, error) {
	return d.template.RenderQuery(d.eval.At(i))
}

// References returns the ground-truth target of every evaluation record, in
// pool order. Index i is the reference for the prompt built for position i.
func (d *Dataset) References() ([]string, error) {
	refs, err := d.eval.Field(d.template.Target.Name)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: references: %w", d.name, err)
	}
	return refs, nil
}
