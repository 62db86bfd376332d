// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package briefing assembles vault contents for the briefing
// capability and files scheduled briefings back into the vault.
package briefing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tejzpr/munin-mcp/internal/ai"
	"github.com/tejzpr/munin-mcp/internal/vault"
)

// Briefing modes.
const (
	ModeDaily  = "daily"
	ModeWeekly = "weekly"
)

// BriefingsDir holds scheduled briefing output under the vault root.
const BriefingsDir = "Briefings"

const emptyVaultMessage = "No notes in vault yet. Start capturing!"

// Generator produces briefings from the live note set.
type Generator struct {
	Vault   *vault.Store
	Briefer ai.Briefer
}

// Generate builds the briefing input from every non-done note and asks
// the capability for a daily briefing or weekly review. The summary is
// returned verbatim.
func (g *Generator) Generate(ctx context.Context, weekly bool) (string, error) {
	contents, err := g.Vault.ReadAllActive()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(contents) == "" {
		return emptyVaultMessage, nil
	}
	return g.Briefer.GenerateBriefing(ctx, contents, weekly)
}

// File writes a generated briefing under Briefings/ in the vault root,
// one file per mode per day, and returns its path.
func (g *Generator) File(mode, text string) (string, error) {
	dir := filepath.Join(g.Vault.Root(), BriefingsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create briefings directory: %w", err)
	}

	date := time.Now().Format("2006-01-02")
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", mode, date))

	title := "Morning Briefing"
	if mode == ModeWeekly {
		title = "Weekly Review"
	}
	content := fmt.Sprintf("# %s %s\n\n%s\n", title, date, text)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write briefing: %w", err)
	}
	return path, nil
}
