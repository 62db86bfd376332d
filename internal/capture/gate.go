// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package capture implements the classification gate: free text is
// classified, then either filed immediately or parked as a pending
// clarification depending on the confidence threshold.
package capture

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tejzpr/munin-mcp/internal/ai"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

// Gate decides, per capture, between immediate filing and human
// disambiguation. The threshold is a fixed per-deployment parameter.
type Gate struct {
	Vault      *vault.Store
	Classifier ai.Classifier
	Extractor  ai.Extractor
	Pending    *PendingStore
	Threshold  float64
}

// Outcome reports what the gate did with a capture.
type Outcome struct {
	Filed      bool
	Category   string
	Name       string
	Confidence float64
	NotePath   string

	// Set on the clarification path.
	PendingID string
	Prompt    string
}

// Capture runs one capture through the gate. Classification failures
// are hard errors. Side effects are strictly ordered: capability calls
// first, then the note write, then the journal append.
func (g *Gate) Capture(ctx context.Context, text string) (*Outcome, error) {
	classification, err := g.Classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	if classification.Confidence >= g.Threshold {
		return g.file(ctx, text, classification.Category, classification.Name, classification.Confidence)
	}
	return g.clarify(text, classification)
}

// ResolvePending consumes a pending clarification with the confirmed
// category. Extraction is re-run against the confirmed category, not
// the model's original guess.
func (g *Gate) ResolvePending(ctx context.Context, promptID, category string) (*Outcome, error) {
	pending, err := g.Pending.Take(promptID)
	if err != nil {
		return nil, err
	}

	outcome, err := g.file(ctx, pending.OriginalText, category, pending.NameGuess, pending.ConfidenceGuess)
	if err != nil {
		// Filing failed; the entry stays consumed. Surface the error.
		return nil, err
	}
	return outcome, nil
}

func (g *Gate) file(ctx context.Context, text, category, name string, confidence float64) (*Outcome, error) {
	fields, err := g.Extractor.ExtractFields(ctx, text, category)
	if err != nil {
		// Extraction trouble degrades to a notes-only record; only
		// classification failures abort the capture.
		log.Printf("Extraction failed, degrading to notes-only record: %v", err)
		fields = &ai.Fields{Notes: text}
	}

	note := BuildNote(category, name, fields)
	path, err := g.Vault.WriteNote(category, name, note)
	if err != nil {
		return nil, err
	}

	if err := g.Vault.LogCapture(text, category, name, confidence, false); err != nil {
		return nil, err
	}

	return &Outcome{
		Filed:      true,
		Category:   category,
		Name:       name,
		Confidence: confidence,
		NotePath:   path,
	}, nil
}

func (g *Gate) clarify(text string, classification *ai.Classification) (*Outcome, error) {
	if err := g.Vault.LogCapture(text, classification.Category, classification.Name, classification.Confidence, true); err != nil {
		return nil, err
	}

	promptID := uuid.NewString()
	g.Pending.Add(promptID, &PendingClarification{
		OriginalText:    text,
		CategoryGuess:   classification.Category,
		NameGuess:       classification.Name,
		ConfidenceGuess: classification.Confidence,
	})

	prompt := fmt.Sprintf("Unsure (%.0f%%). Which category?\n\nReply with: %s\nOr: fix: <category> to correct later",
		classification.Confidence*100, strings.Join(g.Vault.Categories(), " / "))

	return &Outcome{
		Category:   classification.Category,
		Name:       classification.Name,
		Confidence: classification.Confidence,
		PendingID:  promptID,
		Prompt:     prompt,
	}, nil
}

// BuildNote assembles the note for a filed capture: the standard
// metadata header extended with the extracted fields, and the body
// sections in fixed order.
func BuildNote(category, name string, fields *ai.Fields) *vault.Note {
	note := &vault.Note{}

	status := fields.Status
	if status == "" {
		status = vault.StatusActive
	}
	note.Meta.Set(vault.KeyType, strings.ToLower(category))
	note.Meta.Set(vault.KeyStatus, status)
	note.Meta.Set(vault.KeyCreated, time.Now().Format("2006-01-02"))
	if fields.Name != "" {
		note.Meta.Set("name", fields.Name)
	}
	if len(fields.Tasks) > 0 {
		note.Meta.Set("tasks", fields.Tasks)
	}
	if fields.Notes != "" {
		note.Meta.Set("notes", fields.Notes)
	}
	if fields.Context != "" {
		note.Meta.Set("context", fields.Context)
	}
	if fields.Area != "" {
		note.Meta.Set("area", fields.Area)
	}
	if fields.Due != "" {
		note.Meta.Set("due", fields.Due)
	}

	note.Content = fmt.Sprintf("\n# %s\n\n%s\n", name, FormatBody(fields))
	return note
}

// FormatBody renders extracted fields as markdown body sections in
// fixed order: Tasks, Notes, Context, Area, Due. A legacy single
// next_action is wrapped as a one-item task list.
func FormatBody(fields *ai.Fields) string {
	var b strings.Builder

	if len(fields.Tasks) > 0 {
		b.WriteString("## Tasks\n")
		for _, task := range fields.Tasks {
			b.WriteString(fmt.Sprintf("- [ ] %s\n", task))
		}
		b.WriteString("\n")
	} else if fields.NextAction != "" {
		b.WriteString(fmt.Sprintf("## Tasks\n- [ ] %s\n\n", fields.NextAction))
	}
	if fields.Notes != "" {
		b.WriteString(fmt.Sprintf("## Notes\n%s\n\n", fields.Notes))
	}
	if fields.Context != "" {
		b.WriteString(fmt.Sprintf("## Context\n%s\n\n", fields.Context))
	}
	if fields.Area != "" {
		b.WriteString(fmt.Sprintf("## Area\n%s\n\n", fields.Area))
	}
	if fields.Due != "" {
		b.WriteString(fmt.Sprintf("## Due\n%s\n\n", fields.Due))
	}

	return strings.TrimSpace(b.String())
}
