// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package engine is the serialized facade over the capture pipeline
// and the note resolver. A single mutex guarantees the one-worker
// model: every operation, including the capability calls it makes,
// runs to completion before the next inbound event begins. Scheduled
// briefings go through the same path, so they never interleave with a
// message-handling operation.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tejzpr/munin-mcp/internal/ai"
	"github.com/tejzpr/munin-mcp/internal/briefing"
	"github.com/tejzpr/munin-mcp/internal/capture"
	"github.com/tejzpr/munin-mcp/internal/command"
	"github.com/tejzpr/munin-mcp/internal/resolver"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

// Reply is the user-facing outcome of one inbound event.
type Reply struct {
	Text string
	// PromptID identifies a clarification prompt awaiting a category
	// answer. Empty unless the capture entered the clarification path.
	PromptID string
}

// Engine routes parsed commands to the gate and the resolver.
type Engine struct {
	mu       sync.Mutex
	vault    *vault.Store
	ai       ai.Capability
	gate     *capture.Gate
	resolver *resolver.Resolver
	briefing *briefing.Generator
}

// New assembles the engine from its store and capability clients.
func New(store *vault.Store, capability ai.Capability, threshold float64, pendingTTL time.Duration) *Engine {
	return &Engine{
		vault: store,
		ai:    capability,
		gate: &capture.Gate{
			Vault:      store,
			Classifier: capability,
			Extractor:  capability,
			Pending:    capture.NewPendingStore(pendingTTL),
			Threshold:  threshold,
		},
		resolver: &resolver.Resolver{Vault: store},
		briefing: &briefing.Generator{Vault: store, Briefer: capability},
	}
}

// HandleMessage processes a standalone inbound message: done: and
// fix: are routed to the resolver, everything else enters the capture
// pipeline. A bare category name with no prompt to answer is ordinary
// capture text.
func (e *Engine) HandleMessage(ctx context.Context, text string) (*Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch cmd := command.Parse(text, e.vault.Categories()).(type) {
	case command.Done:
		return e.done(cmd.Hint)
	case command.Fix:
		if cmd.Hint == "" {
			return nil, fmt.Errorf("usage: fix: <category> <note hint>")
		}
		category, err := command.MatchCategory(cmd.CategoryToken, e.vault.Categories())
		if err != nil {
			return nil, err
		}
		result, err := e.resolver.Move(category, cmd.Hint)
		if err != nil {
			return nil, err
		}
		return moveReply(result), nil
	default:
		return e.capture(ctx, text)
	}
}

// HandleReply processes a message sent in reply to an earlier prompt.
// promptID keys the pending-clarification lookup; promptText is the
// replied-to message's text, needed by the reply form of fix:.
func (e *Engine) HandleReply(ctx context.Context, text, promptID, promptText string) (*Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch cmd := command.Parse(text, e.vault.Categories()).(type) {
	case command.Done:
		return e.done(cmd.Hint)
	case command.Fix:
		category, err := command.MatchCategory(cmd.CategoryToken, e.vault.Categories())
		if err != nil {
			return nil, err
		}
		result, err := e.resolver.MoveFromConfirmation(category, promptText)
		if err != nil {
			return nil, err
		}
		return moveReply(result), nil
	case command.CategoryAnswer:
		outcome, err := e.gate.ResolvePending(ctx, promptID, cmd.Category)
		if err != nil {
			return nil, err
		}
		return &Reply{Text: fmt.Sprintf("Filed as %s: '%s'", strings.ToUpper(outcome.Category), outcome.Name)}, nil
	default:
		return &Reply{Text: fmt.Sprintf("Reply with a category (%s) or 'fix: <category>'",
			strings.Join(e.vault.Categories(), "/"))}, nil
	}
}

// CaptureVoice transcribes raw audio and runs the transcript through
// the capture pipeline as if it had been typed. The transcript is
// returned so the caller can echo a preview.
func (e *Engine) CaptureVoice(ctx context.Context, audio []byte) (string, *Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	transcript, err := e.ai.Transcribe(ctx, audio)
	if err != nil {
		return "", nil, err
	}

	reply, err := e.capture(ctx, transcript)
	if err != nil {
		return transcript, nil, err
	}
	return transcript, reply, nil
}

// Briefing generates a daily briefing or weekly review from the
// current note set.
func (e *Engine) Briefing(ctx context.Context, weekly bool) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.briefing.Generate(ctx, weekly)
}

// FileBriefing generates a briefing and writes it under Briefings/ in
// the vault. Used by the scheduler.
func (e *Engine) FileBriefing(ctx context.Context, weekly bool) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	text, err := e.briefing.Generate(ctx, weekly)
	if err != nil {
		return "", err
	}
	mode := briefing.ModeDaily
	if weekly {
		mode = briefing.ModeWeekly
	}
	if _, err := e.briefing.File(mode, text); err != nil {
		return "", err
	}
	return text, nil
}

// Status reports note counts per category.
func (e *Engine) Status() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	counts, err := e.vault.CountNotes()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Vault Status\n\n")
	total := 0
	for _, category := range e.vault.Categories() {
		b.WriteString(fmt.Sprintf("- %s: %d\n", category, counts[category]))
		total += counts[category]
	}
	b.WriteString(fmt.Sprintf("\nTotal: %d notes", total))
	return b.String(), nil
}

func (e *Engine) capture(ctx context.Context, text string) (*Reply, error) {
	outcome, err := e.gate.Capture(ctx, text)
	if err != nil {
		return nil, err
	}

	if outcome.Filed {
		return &Reply{Text: fmt.Sprintf("Filed as %s: '%s' (%.0f%%)",
			strings.ToUpper(outcome.Category), outcome.Name, outcome.Confidence*100)}, nil
	}
	return &Reply{Text: outcome.Prompt, PromptID: outcome.PendingID}, nil
}

func (e *Engine) done(hint string) (*Reply, error) {
	if strings.TrimSpace(hint) == "" {
		return nil, fmt.Errorf("usage: done: <task or note hint>")
	}

	result, err := e.resolver.CompleteTask(hint)
	if err != nil {
		return nil, err
	}
	if result.NoteLevel {
		return &Reply{Text: fmt.Sprintf("Marked note '%s' as done (no checkbox found)", result.Note)}, nil
	}
	return &Reply{Text: fmt.Sprintf("✓ '%s' in '%s'", result.Task, result.Note)}, nil
}

func moveReply(result *resolver.MoveResult) *Reply {
	return &Reply{Text: fmt.Sprintf("Moved '%s' from %s to %s", result.Name, result.From, result.To)}
}
