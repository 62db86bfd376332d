// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command classifies inbound text into the small fixed set of
// command shapes the assistant understands. Parsing is total: every
// input maps to exactly one Command, with free text falling through to
// PlainCapture. Transport-level commands (leading "/") never reach
// this parser.
package command

import (
	"fmt"
	"strings"
)

// Command is the tagged union produced by Parse.
type Command interface {
	isCommand()
}

// Done marks a task or note as completed. The hint may be empty; the
// caller reports usage in that case.
type Done struct {
	Hint string
}

// Fix moves a note to a different category. Hint is empty in the
// reply-to-confirmation form and required standalone.
type Fix struct {
	CategoryToken string
	Hint          string
}

// CategoryAnswer is a bare category name, answering a clarification
// prompt.
type CategoryAnswer struct {
	Category string
}

// PlainCapture is everything else: free text entering the capture
// pipeline.
type PlainCapture struct {
	Text string
}

func (Done) isCommand()           {}
func (Fix) isCommand()            {}
func (CategoryAnswer) isCommand() {}
func (PlainCapture) isCommand()   {}

// UnknownCategoryError reports a category token that matched zero or
// several categories. It is always surfaced, never guessed around.
type UnknownCategoryError struct {
	Token      string
	Categories []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q, use one of: %s", e.Token, strings.Join(e.Categories, ", "))
}

// Parse classifies one line of inbound text. Recognition order is
// significant: done: first, then fix:, then a bare category answer,
// then plain capture.
func Parse(text string, categories []string) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if strings.HasPrefix(lower, "done:") {
		return Done{Hint: strings.TrimSpace(trimmed[len("done:"):])}
	}

	if strings.HasPrefix(lower, "fix:") {
		rest := strings.TrimSpace(trimmed[len("fix:"):])
		token, hint, _ := strings.Cut(rest, " ")
		return Fix{CategoryToken: token, Hint: strings.TrimSpace(hint)}
	}

	if category, err := MatchCategory(trimmed, categories); err == nil {
		return CategoryAnswer{Category: category}
	}

	return PlainCapture{Text: trimmed}
}

// MatchCategory resolves a token to a category: exact case-insensitive
// match first, then a unique case-insensitive prefix. Ambiguous or
// unmatched tokens are an error for the caller to report.
func MatchCategory(token string, categories []string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if needle == "" {
		return "", &UnknownCategoryError{Token: token, Categories: categories}
	}

	for _, category := range categories {
		if strings.ToLower(category) == needle {
			return category, nil
		}
	}

	var match string
	for _, category := range categories {
		if strings.HasPrefix(strings.ToLower(category), needle) {
			if match != "" {
				return "", &UnknownCategoryError{Token: token, Categories: categories}
			}
			match = category
		}
	}
	if match == "" {
		return "", &UnknownCategoryError{Token: token, Categories: categories}
	}
	return match, nil
}
