// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/liushuangls/go-anthropic/v2"
)

// Token budgets per operation, matching the shape of each response.
const (
	classifyMaxTokens = 256
	extractMaxTokens  = 512
	briefingMaxTokens = 1024
)

// AnthropicClient implements classification, extraction and briefing
// against the Anthropic messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicClient creates a client for the given model.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *AnthropicClient) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return "", fmt.Errorf("no response content")
	}
	return *resp.Content[0].Text, nil
}

// Classify assigns a capture to a category. An unparsable response is
// a hard *ParseError; missing fields fall back to documented defaults
// (Ideas, 0.5, Untitled).
func (c *AnthropicClient) Classify(ctx context.Context, text string) (*Classification, error) {
	response, err := c.complete(ctx, fmt.Sprintf(classifyPrompt, text), classifyMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}

	var raw struct {
		Category   string   `json:"category"`
		Confidence *float64 `json:"confidence"`
		Name       string   `json:"name"`
		Reasoning  string   `json:"reasoning"`
	}
	if !decodeJSON(response, &raw) {
		return nil, &ParseError{Operation: "classification", Response: response}
	}

	classification := &Classification{
		Category:   raw.Category,
		Confidence: 0.5,
		Name:       raw.Name,
		Reasoning:  raw.Reasoning,
	}
	if raw.Confidence != nil {
		classification.Confidence = *raw.Confidence
	}
	if classification.Category == "" {
		classification.Category = "Ideas"
	}
	if classification.Name == "" {
		classification.Name = "Untitled"
	}
	return classification, nil
}

// ExtractFields pulls structured fields out of a capture. Parse
// failures degrade to a notes-only record carrying the original text.
func (c *AnthropicClient) ExtractFields(ctx context.Context, text, category string) (*Fields, error) {
	response, err := c.complete(ctx, fmt.Sprintf(extractPrompt, category, text), extractMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	var fields Fields
	if !decodeJSON(response, &fields) {
		log.Printf("Extraction response unparsable, falling back to notes-only record")
		return &Fields{Notes: text}, nil
	}
	return &fields, nil
}

// GenerateBriefing summarizes the vault contents as a daily briefing
// or weekly review. The summary is surfaced verbatim.
func (c *AnthropicClient) GenerateBriefing(ctx context.Context, vaultContents string, weekly bool) (string, error) {
	prompt := briefingPrompt
	if weekly {
		prompt = weeklyPrompt
	}
	response, err := c.complete(ctx, fmt.Sprintf(prompt, vaultContents), briefingMaxTokens)
	if err != nil {
		return "", fmt.Errorf("briefing request failed: %w", err)
	}
	return response, nil
}
