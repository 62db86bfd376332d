// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package briefing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

type fakeBriefer struct {
	contents string
	weekly   bool
}

func (f *fakeBriefer) GenerateBriefing(ctx context.Context, vaultContents string, weekly bool) (string, error) {
	f.contents = vaultContents
	f.weekly = weekly
	return "Summary of the day.", nil
}

func newTestGenerator(t *testing.T) (*Generator, *fakeBriefer) {
	t.Helper()
	store, err := vault.NewStore(t.TempDir(), []string{"People", "Projects", "Ideas", "Admin"})
	require.NoError(t, err)
	briefer := &fakeBriefer{}
	return &Generator{Vault: store, Briefer: briefer}, briefer
}

func TestGenerate_EmptyVault(t *testing.T) {
	g, briefer := newTestGenerator(t)

	text, err := g.Generate(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "No notes in vault yet. Start capturing!", text)
	assert.Empty(t, briefer.contents)
}

func TestGenerate_PassesActiveNotes(t *testing.T) {
	g, briefer := newTestGenerator(t)

	var note vault.Note
	note.Meta.Set(vault.KeyType, "projects")
	note.Meta.Set(vault.KeyStatus, vault.StatusActive)
	note.Content = "\n# Garage Cleanup\n"
	_, err := g.Vault.WriteNote("Projects", "Garage Cleanup", &note)
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Summary of the day.", text)
	assert.True(t, briefer.weekly)
	assert.Contains(t, briefer.contents, "=== Projects/Garage-Cleanup.md ===")
}

func TestFile_WritesDatedBriefing(t *testing.T) {
	g, _ := newTestGenerator(t)

	path, err := g.File(ModeWeekly, "The week in review.")
	require.NoError(t, err)

	date := time.Now().Format("2006-01-02")
	assert.Equal(t, filepath.Join(g.Vault.Root(), BriefingsDir, "weekly-"+date+".md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Weekly Review "+date)
	assert.Contains(t, string(content), "The week in review.")
}
