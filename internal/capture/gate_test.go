// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package capture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejzpr/munin-mcp/internal/ai"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

var testCategories = []string{"People", "Projects", "Ideas", "Admin"}

type fakeClassifier struct {
	result *ai.Classification
	err    error
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (*ai.Classification, error) {
	return f.result, f.err
}

type fakeExtractor struct {
	fields     *ai.Fields
	err        error
	categories []string
}

func (f *fakeExtractor) ExtractFields(ctx context.Context, text, category string) (*ai.Fields, error) {
	f.categories = append(f.categories, category)
	if f.err != nil {
		return nil, f.err
	}
	return f.fields, nil
}

func newTestGate(t *testing.T, classifier ai.Classifier, extractor ai.Extractor) *Gate {
	t.Helper()
	store, err := vault.NewStore(t.TempDir(), testCategories)
	require.NoError(t, err)
	return &Gate{
		Vault:      store,
		Classifier: classifier,
		Extractor:  extractor,
		Pending:    NewPendingStore(0),
		Threshold:  0.6,
	}
}

func TestGate_Capture_FilesAboveThreshold(t *testing.T) {
	classifier := &fakeClassifier{result: &ai.Classification{
		Category: "Projects", Confidence: 0.9, Name: "Garage Cleanup",
	}}
	extractor := &fakeExtractor{fields: &ai.Fields{
		Name:  "Garage Cleanup",
		Tasks: []string{"sort boxes"},
		Notes: "weekend project",
	}}
	gate := newTestGate(t, classifier, extractor)

	outcome, err := gate.Capture(context.Background(), "clean out the garage this weekend")
	require.NoError(t, err)
	assert.True(t, outcome.Filed)
	assert.Equal(t, "Projects", outcome.Category)
	assert.Equal(t, "Garage Cleanup", outcome.Name)
	assert.Empty(t, outcome.PendingID)
	assert.Equal(t, 0, gate.Pending.Len())

	raw, err := gate.Vault.ReadFile(outcome.NotePath)
	require.NoError(t, err)
	note, err := vault.ParseNote(raw)
	require.NoError(t, err)
	assert.Equal(t, "projects", note.Meta.GetString(vault.KeyType))
	assert.Equal(t, vault.StatusActive, note.Meta.GetString(vault.KeyStatus))
	assert.Contains(t, note.Content, "# Garage Cleanup")
	assert.Contains(t, note.Content, "- [ ] sort boxes")

	journal, err := gate.Vault.ReadFile(filepath.Join(gate.Vault.Root(), vault.JournalFile))
	require.NoError(t, err)
	assert.Contains(t, journal, "FILED")
}

func TestGate_Capture_ExactThresholdFiles(t *testing.T) {
	classifier := &fakeClassifier{result: &ai.Classification{
		Category: "Ideas", Confidence: 0.6, Name: "App Concept",
	}}
	gate := newTestGate(t, classifier, &fakeExtractor{fields: &ai.Fields{}})

	outcome, err := gate.Capture(context.Background(), "an app that tracks plants")
	require.NoError(t, err)
	assert.True(t, outcome.Filed)
}

func TestGate_Capture_ClarifiesBelowThreshold(t *testing.T) {
	classifier := &fakeClassifier{result: &ai.Classification{
		Category: "Ideas", Confidence: 0.4, Name: "Untitled",
	}}
	extractor := &fakeExtractor{fields: &ai.Fields{}}
	gate := newTestGate(t, classifier, extractor)

	outcome, err := gate.Capture(context.Background(), "hmm that thing from earlier")
	require.NoError(t, err)
	assert.False(t, outcome.Filed)
	assert.NotEmpty(t, outcome.PendingID)
	assert.Contains(t, outcome.Prompt, "Unsure (40%)")
	assert.Contains(t, outcome.Prompt, "People / Projects / Ideas / Admin")
	assert.Equal(t, 1, gate.Pending.Len())

	// No note written anywhere
	for _, category := range testCategories {
		paths, err := gate.Vault.ListNotes(category)
		require.NoError(t, err)
		assert.Empty(t, paths)
	}

	// Extraction never ran
	assert.Empty(t, extractor.categories)

	journal, err := gate.Vault.ReadFile(filepath.Join(gate.Vault.Root(), vault.JournalFile))
	require.NoError(t, err)
	assert.Contains(t, journal, "REVIEW")
}

func TestGate_Capture_ClassificationErrorAborts(t *testing.T) {
	classifier := &fakeClassifier{err: &ai.ParseError{Operation: "classification", Response: "not json"}}
	gate := newTestGate(t, classifier, &fakeExtractor{})

	_, err := gate.Capture(context.Background(), "anything")
	require.Error(t, err)
	var parseErr *ai.ParseError
	assert.ErrorAs(t, err, &parseErr)

	// Nothing filed, nothing pending
	assert.Equal(t, 0, gate.Pending.Len())
}

func TestGate_Capture_ExtractionErrorDegrades(t *testing.T) {
	classifier := &fakeClassifier{result: &ai.Classification{
		Category: "Admin", Confidence: 0.8, Name: "Renew Passport",
	}}
	extractor := &fakeExtractor{err: errors.New("capability down")}
	gate := newTestGate(t, classifier, extractor)

	outcome, err := gate.Capture(context.Background(), "renew passport before june")
	require.NoError(t, err)
	assert.True(t, outcome.Filed)

	raw, err := gate.Vault.ReadFile(outcome.NotePath)
	require.NoError(t, err)
	note, err := vault.ParseNote(raw)
	require.NoError(t, err)
	assert.Contains(t, note.Content, "## Notes\nrenew passport before june")
}

func TestGate_ResolvePending(t *testing.T) {
	classifier := &fakeClassifier{result: &ai.Classification{
		Category: "Ideas", Confidence: 0.3, Name: "Plant Tracker",
	}}
	extractor := &fakeExtractor{fields: &ai.Fields{Notes: "track watering"}}
	gate := newTestGate(t, classifier, extractor)

	outcome, err := gate.Capture(context.Background(), "app to track watering plants")
	require.NoError(t, err)
	require.False(t, outcome.Filed)

	resolved, err := gate.ResolvePending(context.Background(), outcome.PendingID, "Projects")
	require.NoError(t, err)
	assert.True(t, resolved.Filed)
	assert.Equal(t, "Projects", resolved.Category)
	assert.Equal(t, "Plant Tracker", resolved.Name)

	// Extraction ran against the confirmed category, not the guess
	assert.Equal(t, []string{"Projects"}, extractor.categories)

	_, err = os.Stat(resolved.NotePath)
	require.NoError(t, err)

	// Consume-once: the same prompt is now inert
	_, err = gate.ResolvePending(context.Background(), outcome.PendingID, "Projects")
	assert.ErrorIs(t, err, ErrNoPendingClarification)
}

func TestGate_ResolvePending_UnknownPrompt(t *testing.T) {
	gate := newTestGate(t, &fakeClassifier{}, &fakeExtractor{})

	_, err := gate.ResolvePending(context.Background(), "no-such-prompt", "Ideas")
	assert.ErrorIs(t, err, ErrNoPendingClarification)
}

func TestFormatBody(t *testing.T) {
	t.Run("all sections in order", func(t *testing.T) {
		body := FormatBody(&ai.Fields{
			Tasks:   []string{"one", "two"},
			Notes:   "some notes",
			Context: "from standup",
			Area:    "home",
			Due:     "2025-06-01",
		})
		assert.Equal(t, "## Tasks\n- [ ] one\n- [ ] two\n\n## Notes\nsome notes\n\n## Context\nfrom standup\n\n## Area\nhome\n\n## Due\n2025-06-01", body)
	})

	t.Run("next_action fallback", func(t *testing.T) {
		body := FormatBody(&ai.Fields{NextAction: "call back"})
		assert.Equal(t, "## Tasks\n- [ ] call back", body)
	})

	t.Run("tasks win over next_action", func(t *testing.T) {
		body := FormatBody(&ai.Fields{Tasks: []string{"real task"}, NextAction: "ignored"})
		assert.NotContains(t, body, "ignored")
	})

	t.Run("empty fields", func(t *testing.T) {
		assert.Empty(t, FormatBody(&ai.Fields{}))
	})
}
