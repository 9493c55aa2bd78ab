// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package chatconv

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"google.golang.org/genai"

	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// ToGenAI converts a turn-structured prompt to Gemini API contents. The
// assistant role maps to [genai.RoleModel]; every other role maps to
// [genai.RoleUser].
func ToGenAI(turns []types.Turn) []*genai.Content {
	contents := make([]*genai.Content, len(turns))
	for i, turn := range turns {
		role := genai.RoleUser
		if turn.Role == types.RoleAssistant {
			role = genai.RoleModel
		}
		contents[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(turn.Content)},
		}
	}
	return contents
}

// ToAnthropic converts a turn-structured prompt to Anthropic Messages API
// params. The assistant role maps to [anthropic.MessageParamRoleAssistant];
// every other role maps to [anthropic.MessageParamRoleUser].
func ToAnthropic(turns []types.Turn) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, len(turns))
	for i, turn := range turns {
		role := anthropic.MessageParamRoleUser
		if turn.Role == types.RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		messages[i] = anthropic.MessageParam{
			Role:    role,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(turn.Content)},
		}
	}
	return messages
}

// ToOpenAI converts a turn-structured prompt to Chat Completions message
// params. The assistant role maps to the assistant message variant; every
// other role maps to the user variant.
func ToOpenAI(turns []types.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(turns))
	for i, turn := range turns {
		if turn.Role == types.RoleAssistant {
			messages[i] = openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Content: openai.ChatCompletionAssistantMessageParamContentUnion{
						OfString: param.NewOpt(turn.Content),
					},
				},
			}
			continue
		}
		messages[i] = openai.ChatCompletionMessageParamUnion{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: param.NewOpt(turn.Content),
				},
			},
		}
	}
	return messages
}
