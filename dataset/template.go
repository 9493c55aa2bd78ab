// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"fmt"
	"strings"

	"github.com/ivaxi0s/llm-in-context-bias/internal/pool"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Field binds a record field to the literal label text that precedes its
// value in rendered output.
type Field struct {
	// Label is written verbatim before the value. It may embed newlines,
	// e.g. "review: " or "\nsentiment: ".
	Label string

	// Name is the record field the value is read from.
	Name string
}

// Template renders the records of one dataset into prompt text.
//
// Each builtin dataset differs only in these strings and flags, so the
// rendering control flow lives here once and a Template value per dataset
// supplies the text. Templates are immutable after construction and safe to
// share across goroutines.
type Template struct {
	// Header opens a flat prompt when at least one in-context example is
	// present. It carries its own trailing newline.
	Header string

	// Instruction opens every evaluation query. It carries its own
	// trailing newline.
	Instruction string

	// Inputs name the record fields a fragment renders before the target,
	// in fixed order.
	Inputs []Field

	// Target is the ground-truth field. Its Label doubles as the
	// separator token fragments are cut at for turn assembly.
	Target Field

	// BareQuery renders query input values without their labels.
	BareQuery bool
}

// RenderFragment renders one training record as an in-context example: every
// input field as label plus value, then the target field. Values pass
// through untouched; there is no truncation or sanitization.
func (t Template) RenderFragment(rec types.Record) (string, error) {
	sb := pool.String.Get()
	sb.Reset()
	defer pool.String.Put(sb)

	for _, f := range t.Inputs {
		v, err := rec.String(f.Name)
		if err != nil {
			return "", err
		}
		sb.WriteString(f.Label)
		sb.WriteString(v)
	}

	v, err := rec.String(t.Target.Name)
	if err != nil {
		return "", err
	}
	sb.WriteString(t.Target.Label)
	sb.WriteString(v)

	return sb.String(), nil
}

// RenderQuery renders one evaluation record as its final query: the
// instruction, then the input fields. The target value never appears.
//
// Inputs keep their labels unless BareQuery is set, in which case raw values
// join with a newline.
func (t Template) RenderQuery(rec types.Record) (string, error) {
	sb := pool.String.Get()
	sb.Reset()
	defer pool.String.Put(sb)

	sb.WriteString(t.Instruction)
	for i, f := range t.Inputs {
		v, err := rec.String(f.Name)
		if err != nil {
			return "", err
		}
		if t.BareQuery {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(v)
			continue
		}
		sb.WriteString(f.Label)
		sb.WriteString(v)
	}

	return sb.String(), nil
}

// SplitFragment cuts a rendered fragment at the first occurrence of the
// target separator, returning the input part and the target part. Turn
// assembly maps the two halves onto a user and an assistant message.
func (t Template) SplitFragment(fragment string) (input, target string, err error) {
	input, target, ok := strings.Cut(fragment, t.Target.Label)
	if !ok {
		return "", "", fmt.Errorf("fragment missing separator %q", t.Target.Label)
	}
	return input, target, nil
}
