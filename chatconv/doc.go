// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package chatconv converts turn-structured prompts into the request
// message types of the Gemini, Anthropic and OpenAI SDKs.
//
// The converters are pure functions over [types.Turn] slices, so a prompt
// assembled once can be sent to several providers without re-rendering:
//
//	turns, err := loader.LoadPromptTurns(ctx, 4)
//	if err != nil {
//		return err
//	}
//	contents := chatconv.ToGenAI(turns)
//	messages := chatconv.ToAnthropic(turns)
//
// Each turn becomes one message with a single text part. Roles other than
// assistant convert as user turns, matching how providers treat unknown
// roles in chat transcripts.
package chatconv
