// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ai holds the clients for the opaque request/response AI
// capabilities the assistant consumes: classification, field
// extraction, briefing generation and transcription. None of the
// capability calls are retried; a failed call fails the operation.
package ai

import "context"

// Client bundles the Anthropic text capabilities with Whisper
// transcription behind the Capability interface.
type Client struct {
	*AnthropicClient
	whisper *WhisperClient
}

// NewClient wires up the full capability set.
func NewClient(anthropicKey, anthropicModel, openaiKey, whisperModel string) *Client {
	return &Client{
		AnthropicClient: NewAnthropicClient(anthropicKey, anthropicModel),
		whisper:         NewWhisperClient(openaiKey, whisperModel),
	}
}

// Transcribe delegates to the Whisper client.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return c.whisper.Transcribe(ctx, audio)
}

var _ Capability = (*Client)(nil)
