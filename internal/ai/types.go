// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ai

import (
	"context"
	"fmt"
)

// Classification is the transient result of classifying one capture.
// Reasoning is advisory only and unused downstream.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Name       string  `json:"name"`
	Reasoning  string  `json:"reasoning"`
}

// Fields holds the structured data extracted from a capture. Which
// keys are populated depends on the category; absent keys are simply
// omitted from the rendered note.
type Fields struct {
	Name       string   `json:"name,omitempty"`
	Status     string   `json:"status,omitempty"`
	Tasks      []string `json:"tasks,omitempty"`
	NextAction string   `json:"next_action,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Context    string   `json:"context,omitempty"`
	Area       string   `json:"area,omitempty"`
	Due        string   `json:"due,omitempty"`
}

// Classifier assigns a capture to a category.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Classification, error)
}

// Extractor pulls structured fields out of a capture for a known
// category.
type Extractor interface {
	ExtractFields(ctx context.Context, text, category string) (*Fields, error)
}

// Briefer summarizes the vault contents.
type Briefer interface {
	GenerateBriefing(ctx context.Context, vaultContents string, weekly bool) (string, error)
}

// Transcriber turns raw audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Capability bundles every AI capability the assistant consumes.
type Capability interface {
	Classifier
	Extractor
	Briefer
	Transcriber
}

// ParseError reports a capability response that was not valid
// structured data even after brace-delimited extraction. For
// classification this is a hard failure, never a silent default.
type ParseError struct {
	Operation string
	Response  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s response: %s", e.Operation, e.Response)
}
