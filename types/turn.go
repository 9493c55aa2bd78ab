// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/ivaxi0s/llm-in-context-bias/internal/pool"
)

// Role identifies the speaker of a conversation turn.
type Role = string

const (
	// RoleUser is the role of the user.
	RoleUser Role = "user"

	// RoleAssistant is the role of the assistant.
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a turn-structured prompt.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// User returns a user turn with the given content.
func User(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// Assistant returns an assistant turn with the given content.
func Assistant(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// TurnsToJSON renders the turn list as a JSON array, in the chat-message
// shape ({"role": ..., "content": ...}) consumed by chat completion APIs.
func TurnsToJSON(turns []Turn) (string, error) {
	sb := pool.String.Get()
	sb.Reset()
	defer pool.String.Put(sb)

	if err := json.MarshalWrite(sb, turns); err != nil {
		return "", fmt.Errorf("failed to marshal turns to JSON: %w", err)
	}
	return sb.String(), nil
}
