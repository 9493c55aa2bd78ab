// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset_test

import (
	"errors"
	"testing"

	"github.com/ivaxi0s/llm-in-context-bias/dataset"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// sentimentTemplate mirrors the single-input, bare-query shape of the
// sentiment adapters.
var sentimentTemplate = dataset.Template{
	Header:      "Please read the following pairs of movie reviews and sentiment:\n",
	Instruction: "Classify the following movie review.\n",
	Inputs:      []dataset.Field{{Label: "review: ", Name: "text"}},
	Target:      dataset.Field{Label: "\nsentiment: ", Name: "sentiment"},
	BareQuery:   true,
}

// tripletTemplate mirrors the multi-input, labeled-query shape of the
// question-answering adapter.
var tripletTemplate = dataset.Template{
	Header:      "Please read the following triplet of contexts, questions and answers and summaries:\n",
	Instruction: "Read the given tweet and answer the corresponding question.\n",
	Inputs: []dataset.Field{
		{Label: "tweet: ", Name: "tweet"},
		{Label: "\nquestion: ", Name: "question"},
	},
	Target: dataset.Field{Label: "\nanswer: ", Name: "answer"},
}

func TestRenderFragment(t *testing.T) {
	tests := []struct {
		name     string
		template dataset.Template
		rec      types.Record
		want     string
	}{
		{
			name:     "single input",
			template: sentimentTemplate,
			rec:      types.Record{"text": "an engrossing film", "sentiment": "positive"},
			want:     "review: an engrossing film\nsentiment: positive",
		},
		{
			name:     "multiple inputs keep declaration order",
			template: tripletTemplate,
			rec:      types.Record{"tweet": "the game is on", "question": "what is on?", "answer": "the game"},
			want:     "tweet: the game is on\nquestion: what is on?\nanswer: the game",
		},
		{
			name:     "values pass through untouched",
			template: sentimentTemplate,
			rec:      types.Record{"text": "  spaced\nand newlined  ", "sentiment": "negative"},
			want:     "review:   spaced\nand newlined  \nsentiment: negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.template.RenderFragment(tt.rec)
			if err != nil {
				t.Fatalf("RenderFragment() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderFragment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFragmentMissingField(t *testing.T) {
	rec := types.Record{"text": "no label here"}

	_, err := sentimentTemplate.RenderFragment(rec)
	if err == nil {
		t.Fatal("RenderFragment() with missing target succeeded, want error")
	}

	var missingErr *types.MissingFieldError
	if !errors.As(err, &missingErr) {
		t.Fatalf("RenderFragment() error = %T, want *types.MissingFieldError", err)
	}
	if missingErr.Field != "sentiment" {
		t.Errorf("MissingFieldError.Field = %q, want %q", missingErr.Field, "sentiment")
	}
}

func TestRenderQuery(t *testing.T) {
	tests := []struct {
		name     string
		template dataset.Template
		rec      types.Record
		want     string
	}{
		{
			name:     "bare query drops the input label",
			template: sentimentTemplate,
			rec:      types.Record{"text": "an engrossing film", "sentiment": "positive"},
			want:     "Classify the following movie review.\nan engrossing film",
		},
		{
			name:     "labeled query keeps every input label",
			template: tripletTemplate,
			rec:      types.Record{"tweet": "the game is on", "question": "what is on?", "answer": "the game"},
			want:     "Read the given tweet and answer the corresponding question.\ntweet: the game is on\nquestion: what is on?",
		},
		{
			name: "bare query joins multiple inputs with a newline",
			template: dataset.Template{
				Instruction: "Summarize both passages.\n",
				Inputs: []dataset.Field{
					{Label: "first: ", Name: "first"},
					{Label: "\nsecond: ", Name: "second"},
				},
				Target:    dataset.Field{Label: "\nsummary: ", Name: "summary"},
				BareQuery: true,
			},
			rec:  types.Record{"first": "alpha", "second": "beta", "summary": "both"},
			want: "Summarize both passages.\nalpha\nbeta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.template.RenderQuery(tt.rec)
			if err != nil {
				t.Fatalf("RenderQuery() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderQueryNeverLeaksTarget(t *testing.T) {
	rec := types.Record{"text": "fine", "sentiment": "positive"}

	got, err := sentimentTemplate.RenderQuery(rec)
	if err != nil {
		t.Fatalf("RenderQuery() unexpected error: %v", err)
	}
	if want := "Classify the following movie review.\nfine"; got != want {
		t.Errorf("RenderQuery() = %q, want %q", got, want)
	}
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		name       string
		template   dataset.Template
		fragment   string
		wantInput  string
		wantTarget string
	}{
		{
			name:       "single separator",
			template:   sentimentTemplate,
			fragment:   "review: an engrossing film\nsentiment: positive",
			wantInput:  "review: an engrossing film",
			wantTarget: "positive",
		},
		{
			name:       "multi input separator",
			template:   tripletTemplate,
			fragment:   "tweet: the game is on\nquestion: what is on?\nanswer: the game",
			wantInput:  "tweet: the game is on\nquestion: what is on?",
			wantTarget: "the game",
		},
		{
			name:       "separator token inside the input cuts at first occurrence",
			template:   sentimentTemplate,
			fragment:   "review: they wrote\nsentiment: twice\nsentiment: positive",
			wantInput:  "review: they wrote",
			wantTarget: "twice\nsentiment: positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, target, err := tt.template.SplitFragment(tt.fragment)
			if err != nil {
				t.Fatalf("SplitFragment() unexpected error: %v", err)
			}
			if input != tt.wantInput {
				t.Errorf("SplitFragment() input = %q, want %q", input, tt.wantInput)
			}
			if target != tt.wantTarget {
				t.Errorf("SplitFragment() target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}

func TestSplitFragmentMissingSeparator(t *testing.T) {
	if _, _, err := sentimentTemplate.SplitFragment("no separator here"); err == nil {
		t.Error("SplitFragment() without separator succeeded, want error")
	}
}

func TestSplitFragmentRoundTrip(t *testing.T) {
	rec := types.Record{"text": "a film", "sentiment": "negative"}

	fragment, err := sentimentTemplate.RenderFragment(rec)
	if err != nil {
		t.Fatalf("RenderFragment() unexpected error: %v", err)
	}
	input, target, err := sentimentTemplate.SplitFragment(fragment)
	if err != nil {
		t.Fatalf("SplitFragment() unexpected error: %v", err)
	}

	if got := input + sentimentTemplate.Target.Label + target; got != fragment {
		t.Errorf("rejoined fragment = %q, want %q", got, fragment)
	}
}
