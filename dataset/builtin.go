// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Constant parts of the prompt text. Headers and instructions carry their
// own trailing newline; downstream assembly concatenates them verbatim.
const (
	SentimentHeader = "Please read the following pairs of movie reviews and sentiment:\n"
	SummaryHeader   = "Please read the following pairs of texts and summaries:\n"
	TweetQAHeader   = "Please read the following triplet of contexts, questions and answers and summaries:\n"

	SentimentInstruction = "Please perform a Sentiment Classification task. " +
		"Given the following movie review, assign a sentiment label from ['negative', 'positive']. " +
		"Return only the sentiment label without any other text.\n"
	SummaryInstruction = "Please summarize the following article.\n"
	TweetQAInstruction = "Read the given tweet and answer the corresponding question.\n"
)

// sentimentByLabel is the documented label enumeration of rotten_tomatoes.
var sentimentByLabel = map[int64]string{
	0: "negative",
	1: "positive",
}

// builtins declares the dataset adapters registered with the default
// registry. Key order here is cosmetic; the registry sorts on listing.
var builtins = []Definition{
	{
		Key:    "rotten_tomatoes",
		Source: "rotten_tomatoes",
		Template: Template{
			Header:      SentimentHeader,
			Instruction: SentimentInstruction,
			Inputs:      []Field{{Label: "review: ", Name: "text"}},
			Target:      Field{Label: "\nsentiment: ", Name: "sentiment"},
			BareQuery:   true,
		},
		Normalize: normalizeRottenTomatoes,
	},
	{
		Key:    "gigaword",
		Source: "gigaword",
		Template: Template{
			Header:      SummaryHeader,
			Instruction: SummaryInstruction,
			Inputs:      []Field{{Label: "article: ", Name: "document"}},
			Target:      Field{Label: "\nsummary: ", Name: "summary"},
			BareQuery:   true,
		},
	},
	{
		Key:    "dailymail",
		Source: "cnn_dailymail",
		Template: Template{
			Header:      SummaryHeader,
			Instruction: SummaryInstruction,
			Inputs:      []Field{{Label: "article: ", Name: "article"}},
			Target:      Field{Label: "\nsummary: ", Name: "highlights"},
			BareQuery:   true,
		},
	},
	{
		Key:    "wikicat",
		Source: "GEM/wiki_cat_sum",
		Template: Template{
			Header:      SummaryHeader,
			Instruction: SummaryInstruction,
			Inputs:      []Field{{Label: "article: ", Name: "article"}},
			Target:      Field{Label: "\nsummary: ", Name: "summary"},
			BareQuery:   true,
		},
		Normalize: normalizeWikicat,
	},
	{
		Key:    "tweetqa",
		Source: "tweet_qa",
		Template: Template{
			Header:      TweetQAHeader,
			Instruction: TweetQAInstruction,
			Inputs: []Field{
				{Label: "tweet: ", Name: "tweet"},
				{Label: "\nquestion: ", Name: "question"},
			},
			Target: Field{Label: "\nanswer: ", Name: "answer"},
		},
		Normalize: normalizeTweetQA,
	},
}

// normalizeRottenTomatoes maps the integer label onto its sentiment word.
// The label field is kept alongside the derived sentiment.
func normalizeRottenTomatoes(rec types.Record) (types.Record, error) {
	return MapField(rec, "label", "sentiment", sentimentByLabel)
}

// normalizeWikicat flattens the GEM schema: the paragraphs list joins into a
// single article string, and the nested summary.text list joins into a
// single summary string.
func normalizeWikicat(rec types.Record) (types.Record, error) {
	rec, err := ExtractStrings(rec, "summary", "text", "summary")
	if err != nil {
		return nil, err
	}
	rec, err = JoinStrings(rec, "summary", "summary", " ")
	if err != nil {
		return nil, err
	}
	return JoinStrings(rec, "paragraphs", "article", " ")
}

// normalizeTweetQA lowercases the upstream field names and keeps the first
// of the crowd-sourced answers as the target.
func normalizeTweetQA(rec types.Record) (types.Record, error) {
	rec, err := RenameField(rec, "Tweet", "tweet")
	if err != nil {
		return nil, err
	}
	rec, err = RenameField(rec, "Question", "question")
	if err != nil {
		return nil, err
	}
	return FirstString(rec, "Answer", "answer")
}
