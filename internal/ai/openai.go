// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// WhisperClient transcribes voice captures via the OpenAI audio API.
type WhisperClient struct {
	client *openai.Client
	model  string
}

// NewWhisperClient creates a transcription client.
func NewWhisperClient(apiKey, model string) *WhisperClient {
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Transcribe turns raw audio bytes into a plain-text transcript.
func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: "audio.ogg",
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	return resp.Text, nil
}
