// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package chatconv_test

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"google.golang.org/genai"

	"github.com/ivaxi0s/llm-in-context-bias/chatconv"
	"github.com/ivaxi0s/llm-in-context-bias/types"
)

var conversationTurns = []types.Turn{
	types.User("Please perform a Sentiment Classification task. Given the following movie review, assign a sentiment label from ['negative', 'positive']. Return only the sentiment label without any other text.\nreview: an engrossing film"),
	types.Assistant("positive"),
	types.User("worth a watch"),
}

func TestToGenAI(t *testing.T) {
	t.Parallel()

	contents := chatconv.ToGenAI(conversationTurns)
	if len(contents) != len(conversationTurns) {
		t.Fatalf("ToGenAI returned %d contents, want %d", len(contents), len(conversationTurns))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser}
	for i, content := range contents {
		if content.Role != string(wantRoles[i]) {
			t.Errorf("contents[%d].Role = %q, want %q", i, content.Role, wantRoles[i])
		}
		if len(content.Parts) != 1 {
			t.Fatalf("contents[%d] has %d parts, want 1", i, len(content.Parts))
		}
		if got, want := content.Parts[0].Text, conversationTurns[i].Content; got != want {
			t.Errorf("contents[%d] text = %q, want %q", i, got, want)
		}
	}
}

func TestToAnthropic(t *testing.T) {
	t.Parallel()

	messages := chatconv.ToAnthropic(conversationTurns)
	if len(messages) != len(conversationTurns) {
		t.Fatalf("ToAnthropic returned %d messages, want %d", len(messages), len(conversationTurns))
	}

	wantRoles := []anthropic.MessageParamRole{
		anthropic.MessageParamRoleUser,
		anthropic.MessageParamRoleAssistant,
		anthropic.MessageParamRoleUser,
	}
	for i, message := range messages {
		if message.Role != wantRoles[i] {
			t.Errorf("messages[%d].Role = %q, want %q", i, message.Role, wantRoles[i])
		}
		if len(message.Content) != 1 {
			t.Fatalf("messages[%d] has %d content blocks, want 1", i, len(message.Content))
		}
		block := message.Content[0].OfText
		if block == nil {
			t.Fatalf("messages[%d] content is not a text block", i)
		}
		if got, want := block.Text, conversationTurns[i].Content; got != want {
			t.Errorf("messages[%d] text = %q, want %q", i, got, want)
		}
	}
}

func TestToOpenAI(t *testing.T) {
	t.Parallel()

	messages := chatconv.ToOpenAI(conversationTurns)
	if len(messages) != len(conversationTurns) {
		t.Fatalf("ToOpenAI returned %d messages, want %d", len(messages), len(conversationTurns))
	}

	for i, message := range messages {
		assistant := conversationTurns[i].Role == types.RoleAssistant
		switch {
		case assistant && message.OfAssistant == nil:
			t.Fatalf("messages[%d] is not an assistant message", i)
		case !assistant && message.OfUser == nil:
			t.Fatalf("messages[%d] is not a user message", i)
		}

		var got string
		if assistant {
			got = message.OfAssistant.Content.OfString.Value
		} else {
			got = message.OfUser.Content.OfString.Value
		}
		if want := conversationTurns[i].Content; got != want {
			t.Errorf("messages[%d] text = %q, want %q", i, got, want)
		}
	}
}

func TestUnknownRoleConvertsAsUser(t *testing.T) {
	t.Parallel()

	turns := []types.Turn{{Role: "system", Content: "You are a critic."}}

	if got := chatconv.ToGenAI(turns)[0].Role; got != string(genai.RoleUser) {
		t.Errorf("ToGenAI role = %q, want %q", got, genai.RoleUser)
	}
	if got := chatconv.ToAnthropic(turns)[0].Role; got != anthropic.MessageParamRoleUser {
		t.Errorf("ToAnthropic role = %q, want %q", got, anthropic.MessageParamRoleUser)
	}
	if got := chatconv.ToOpenAI(turns)[0]; got.OfUser == nil {
		t.Error("ToOpenAI did not produce a user message")
	}
}

func TestEmptyConversation(t *testing.T) {
	t.Parallel()

	if got := chatconv.ToGenAI(nil); len(got) != 0 {
		t.Errorf("ToGenAI(nil) returned %d contents, want 0", len(got))
	}
	if got := chatconv.ToAnthropic(nil); len(got) != 0 {
		t.Errorf("ToAnthropic(nil) returned %d messages, want 0", len(got))
	}
	if got := chatconv.ToOpenAI(nil); len(got) != 0 {
		t.Errorf("ToOpenAI(nil) returned %d messages, want 0", len(got))
	}
}
