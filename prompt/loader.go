// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ivaxi0s/llm-in-context-bias/dataset"
	"github.com/ivaxi0s/llm-in-context-bias/internal/pool"
	"github.com/ivaxi0s/llm-in-context-bias/pkg/logging"
	"github.com/ivaxi0s/llm-in-context-bias/sample"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Loader assembles evaluation prompts: in-context examples drawn from one
// dataset prepended to evaluation queries from another, or from the same
// one.
//
// Both adapters are built eagerly by [NewLoader], so every load call
// afterwards is pure computation over immutable pools. A Loader is safe for
// concurrent use.
type Loader struct {
	incontext *dataset.Dataset
	eval      *dataset.Dataset
	logger    *slog.Logger
	limit     int
}

// NewLoader resolves both dataset names through the registry and constructs
// their adapters against provider.
//
// When the two names are equal the single constructed adapter serves both
// roles, so the shared dataset is loaded once. An unregistered name fails
// with a [*types.UnknownDatasetError]; the evaluation dataset resolves
// first.
func NewLoader(ctx context.Context, provider types.DatasetProvider, incontextName, evalName string, opts ...Option) (*Loader, error) {
	config := newConfig()
	for _, opt := range opts {
		config = opt.apply(config)
	}

	// Adapters constructed below log through the loader's logger.
	ctx = logging.NewContext(ctx, config.logger)

	eval, err := config.registry.Build(ctx, evalName, provider)
	if err != nil {
		return nil, fmt.Errorf("evaluation dataset: %w", err)
	}

	incontext := eval
	if incontextName != evalName {
		incontext, err = config.registry.Build(ctx, incontextName, provider)
		if err != nil {
			return nil, fmt.Errorf("in-context dataset: %w", err)
		}
	}

	config.logger.InfoContext(ctx, "prompt loader ready",
		slog.String("incontext", incontext.Name()),
		slog.String("eval", eval.Name()),
		slog.Bool("shared", incontext == eval),
	)

	return &Loader{
		incontext: incontext,
		eval:      eval,
		logger:    config.logger,
		limit:     config.limit,
	}, nil
}

// Incontext returns the adapter in-context examples are drawn from.
func (l *Loader) Incontext() *dataset.Dataset {
	return l.incontext
}

// Eval returns the adapter evaluation prompts are built for.
func (l *Loader) Eval() *dataset.Dataset {
	return l.eval
}

// LoadPrompts builds one flat prompt per evaluation record: the in-context
// block for that record's position, then the record's query.
//
// The in-context examples for position i are sampled with seed i, so the
// returned slice is identical across calls, processes, and platforms.
// numExamples = 0 yields exactly the queries. A numExamples the training
// pool cannot serve fails with a [*types.SampleSizeError] before any prompt
// is assembled.
func (l *Loader) LoadPrompts(ctx context.Context, numExamples int) ([]string, error) {
	if err := l.checkRequest(numExamples); err != nil {
		return nil, err
	}

	n := l.evalLen()
	prompts := make([]string, n)
	for i := range n {
		prefix, err := l.incontextPrefix(numExamples, int64(i))
		if err != nil {
			return nil, err
		}
		query, err := l.eval.Query(i)
		if err != nil {
			return nil, err
		}
		prompts[i] = prefix + query
	}

	l.logger.DebugContext(ctx, "assembled flat prompts",
		slog.Int("prompts", n),
		slog.Int("num_examples", numExamples),
	)
	return prompts, nil
}

// LoadPromptTurns builds one turn-structured prompt per evaluation record:
// a user/assistant pair per in-context example, then a trailing user turn
// holding the record's query.
//
// Example selection matches [Loader.LoadPrompts] position for position, so
// the two representations render the same example sets. numExamples = 0
// yields a single user turn per record.
func (l *Loader) LoadPromptTurns(ctx context.Context, numExamples int) ([][]types.Turn, error) {
	if err := l.checkRequest(numExamples); err != nil {
		return nil, err
	}

	n := l.evalLen()
	prompts := make([][]types.Turn, n)
	for i := range n {
		turns, err := l.incontextTurns(numExamples, int64(i))
		if err != nil {
			return nil, err
		}
		query, err := l.eval.Query(i)
		if err != nil {
			return nil, err
		}
		prompts[i] = append(turns, types.User(query))
	}

	l.logger.DebugContext(ctx, "assembled turn prompts",
		slog.Int("prompts", n),
		slog.Int("num_examples", numExamples),
	)
	return prompts, nil
}

// LoadReferences returns the ground-truth target of every evaluation
// record, in pool order: index i holds the reference the prompt at index i
// should be scored against.
func (l *Loader) LoadReferences(ctx context.Context) ([]string, error) {
	refs, err := l.eval.References()
	if err != nil {
		return nil, err
	}
	refs = refs[:l.evalLen()]

	l.logger.DebugContext(ctx, "loaded references", slog.Int("references", len(refs)))
	return refs, nil
}

// checkRequest rejects an example count the training pool cannot serve
// without replacement.
func (l *Loader) checkRequest(numExamples int) error {
	trainLen := l.incontext.Train().Len()
	if numExamples < 0 || numExamples > trainLen {
		return &types.SampleSizeError{Requested: numExamples, PoolSize: trainLen}
	}
	return nil
}

// evalLen returns the number of evaluation records prompts build for.
func (l *Loader) evalLen() int {
	n := l.eval.Eval().Len()
	if l.limit > 0 && l.limit < n {
		return l.limit
	}
	return n
}

// incontextPrefix renders the header and the sampled fragments for one
// evaluation position. Zero examples render an empty prefix; the header
// never appears without examples under it.
func (l *Loader) incontextPrefix(numExamples int, seed int64) (string, error) {
	if numExamples == 0 {
		return "", nil
	}

	idxs, err := sample.Indices(l.incontext.Train().Len(), numExamples, seed)
	if err != nil {
		return "", err
	}

	sb := pool.String.Get()
	sb.Reset()
	defer pool.String.Put(sb)

	sb.WriteString(l.incontext.Template().Header)
	for i, idx := range idxs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fragment, err := l.incontext.Fragment(idx)
		if err != nil {
			return "", err
		}
		sb.WriteString(fragment)
	}
	sb.WriteString("\n")

	return sb.String(), nil
}

// incontextTurns renders the sampled fragments for one evaluation position
// as user/assistant pairs. The user half carries the instruction and the
// fragment's input part; the assistant half carries the target part.
func (l *Loader) incontextTurns(numExamples int, seed int64) ([]types.Turn, error) {
	if numExamples == 0 {
		return nil, nil
	}

	idxs, err := sample.Indices(l.incontext.Train().Len(), numExamples, seed)
	if err != nil {
		return nil, err
	}

	template := l.incontext.Template()
	turns := make([]types.Turn, 0, 2*numExamples+1)
	for _, idx := range idxs {
		fragment, err := l.incontext.Fragment(idx)
		if err != nil {
			return nil, err
		}
		input, target, err := template.SplitFragment(fragment)
		if err != nil {
			return nil, err
		}
		turns = append(turns,
			types.User(template.Instruction+input),
			types.Assistant(target),
		)
	}

	return turns, nil
}
