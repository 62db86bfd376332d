// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package resolver locates an existing note or task from a partial,
// case-insensitive text hint and mutates it in place. All searches are
// linear scans of the current note set in category order, then
// filesystem listing order within a category; the first match wins.
package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tejzpr/munin-mcp/internal/command"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

const (
	uncheckedMark = "- [ ] "
	checkedMark   = "- [x] "
)

// confirmationRegex recovers category and name from a prior
// "Filed as CATEGORY: 'name' (NN%)" confirmation message.
var confirmationRegex = regexp.MustCompile(`Filed as (\w+): '([^']+)'`)

// ErrUnparsableConfirmation reports a reply-based fix whose referenced
// message did not match the filing confirmation pattern.
var ErrUnparsableConfirmation = errors.New("can't parse original filing, please refile manually")

// NotFoundError reports a hint that matched nothing after every search
// strategy was exhausted.
type NotFoundError struct {
	Hint      string
	TaskLevel bool
}

func (e *NotFoundError) Error() string {
	if e.TaskLevel {
		return fmt.Sprintf("no task or note found matching: %s", e.Hint)
	}
	return fmt.Sprintf("no note found matching: %s", e.Hint)
}

// Resolver runs the done: and fix: mutations against the note store.
type Resolver struct {
	Vault *vault.Store
}

// CompletionResult reports what a done: resolution touched.
type CompletionResult struct {
	Task      string
	Note      string
	NoteLevel bool
}

// MoveResult reports a completed recategorization.
type MoveResult struct {
	Name string
	From string
	To   string
}

// CompleteTask resolves a done: hint in two passes. Pass 1 checks the
// first unchecked checkbox line whose text contains the hint; pass 2
// falls back to marking a whole note done by filename, heading or body
// match. Task-level matches always win over note-level ones, so a hint
// that only matches an already-checked task falls through to pass 2.
func (r *Resolver) CompleteTask(hint string) (*CompletionResult, error) {
	needle := strings.ToLower(strings.TrimSpace(hint))

	if result, err := r.completeCheckbox(needle); err != nil || result != nil {
		return result, err
	}
	if result, err := r.completeNote(needle); err != nil || result != nil {
		return result, err
	}
	return nil, &NotFoundError{Hint: needle, TaskLevel: true}
}

// completeCheckbox is pass 1: scan every note's checkbox lines in
// order and check the first unchecked one containing the hint.
func (r *Resolver) completeCheckbox(needle string) (*CompletionResult, error) {
	for _, category := range r.Vault.Categories() {
		paths, err := r.Vault.ListNotes(category)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			content, err := r.Vault.ReadFile(path)
			if err != nil {
				continue
			}
			task, ok := findUncheckedTask(content, needle)
			if !ok {
				continue
			}
			updated := strings.Replace(content, uncheckedMark+task, checkedMark+task, 1)
			if err := r.Vault.WriteFile(path, updated); err != nil {
				return nil, err
			}
			return &CompletionResult{
				Task: task,
				Note: vault.SlugToName(noteStem(path)),
			}, nil
		}
	}
	return nil, nil
}

// completeNote is pass 2: match a whole note by filename, heading or
// raw text and rewrite its status metadata to done.
func (r *Resolver) completeNote(needle string) (*CompletionResult, error) {
	for _, category := range r.Vault.Categories() {
		paths, err := r.Vault.ListNotes(category)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			content, err := r.Vault.ReadFile(path)
			if err != nil {
				continue
			}
			name, ok := matchNote(path, content, needle, true)
			if !ok {
				continue
			}

			note, err := vault.ParseNote(content)
			if err != nil {
				return nil, fmt.Errorf("failed to parse note %s: %w", filepath.Base(path), err)
			}
			note.Meta.Set(vault.KeyStatus, vault.StatusDone)
			rendered, err := note.Render()
			if err != nil {
				return nil, err
			}
			if err := r.Vault.WriteFile(path, rendered); err != nil {
				return nil, err
			}
			return &CompletionResult{Note: name, NoteLevel: true}, nil
		}
	}
	return nil, nil
}

// Move recategorizes the first note whose filename or heading contains
// the hint. The note's current category is whichever directory it was
// found in; the target category must already be canonical.
func (r *Resolver) Move(newCategory, hint string) (*MoveResult, error) {
	needle := strings.ToLower(strings.TrimSpace(hint))

	for _, category := range r.Vault.Categories() {
		paths, err := r.Vault.ListNotes(category)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			content, err := r.Vault.ReadFile(path)
			if err != nil {
				continue
			}
			if _, ok := matchNote(path, content, needle, false); !ok {
				continue
			}
			if _, err := r.Vault.Move(path, newCategory); err != nil {
				return nil, err
			}
			return &MoveResult{Name: noteStem(path), From: category, To: newCategory}, nil
		}
	}
	return nil, &NotFoundError{Hint: needle}
}

// MoveFromConfirmation recategorizes the note named by a prior filing
// confirmation message.
func (r *Resolver) MoveFromConfirmation(newCategory, confirmationText string) (*MoveResult, error) {
	match := confirmationRegex.FindStringSubmatch(confirmationText)
	if match == nil {
		return nil, ErrUnparsableConfirmation
	}

	oldCategory, err := command.MatchCategory(match[1], r.Vault.Categories())
	if err != nil {
		return nil, ErrUnparsableConfirmation
	}
	name := match[2]

	oldPath := r.Vault.NotePath(oldCategory, name)
	if _, err := r.Vault.ReadFile(oldPath); err != nil {
		return nil, fmt.Errorf("file not found: %s", filepath.Base(oldPath))
	}

	if _, err := r.Vault.Move(oldPath, newCategory); err != nil {
		return nil, err
	}
	return &MoveResult{Name: name, From: oldCategory, To: newCategory}, nil
}

// findUncheckedTask returns the first unchecked checkbox line whose
// task text contains the needle.
func findUncheckedTask(content, needle string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		idx := strings.Index(line, uncheckedMark)
		if idx == -1 {
			continue
		}
		task := line[idx+len(uncheckedMark):]
		if strings.Contains(strings.ToLower(task), needle) {
			return task, true
		}
	}
	return "", false
}

// matchNote applies the note-level match strategies in order: filename
// with hyphens read as spaces, then first heading, then (when
// includeBody is set) anywhere in the raw text. It returns the
// human-facing name of the matched note.
func matchNote(path, content, needle string, includeBody bool) (string, bool) {
	stem := noteStem(path)
	if strings.Contains(strings.ToLower(strings.ReplaceAll(stem, "-", " ")), needle) {
		return stem, true
	}

	heading := vault.FirstHeading(content)
	if heading != "" && strings.Contains(strings.ToLower(heading), needle) {
		return heading, true
	}

	if includeBody && strings.Contains(strings.ToLower(content), needle) {
		if heading != "" {
			return heading, true
		}
		return stem, true
	}
	return "", false
}

func noteStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}
