// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote_WithFrontmatter(t *testing.T) {
	raw := `---
type: projects
status: active
created: "2025-03-01"
---

# Garage Cleanup

## Tasks
- [ ] Sort boxes
- [ ] Donate tools
`

	note, err := ParseNote(raw)
	require.NoError(t, err)
	assert.Equal(t, "projects", note.Meta.GetString("type"))
	assert.Equal(t, "active", note.Meta.GetString("status"))
	assert.Equal(t, "Garage Cleanup", note.Heading())
	assert.Contains(t, note.Content, "- [ ] Sort boxes")
}

func TestParseNote_NoFrontmatter(t *testing.T) {
	raw := "# Just Content\n\nNo header here.\n"

	note, err := ParseNote(raw)
	require.NoError(t, err)
	assert.Zero(t, note.Meta.Len())
	assert.Equal(t, raw, note.Content)
}

func TestParseNote_UnclosedFrontmatter(t *testing.T) {
	raw := "---\ntype: ideas\nstatus: active\n\n# Dangling\n"

	_, err := ParseNote(raw)
	assert.Error(t, err)
}

func TestNote_RenderRoundTrip(t *testing.T) {
	raw := `---
type: ideas
status: active
created: "2025-03-01"
---

# App Concept

Notes with trailing whitespace
and a blank line below.

`

	note, err := ParseNote(raw)
	require.NoError(t, err)

	rendered, err := note.Render()
	require.NoError(t, err)

	// Content after the closing delimiter is byte-identical
	reparsed, err := ParseNote(rendered)
	require.NoError(t, err)
	assert.Equal(t, note.Content, reparsed.Content)
	assert.Equal(t, note.Meta.Keys(), reparsed.Meta.Keys())
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"simple", "# Title\n\nBody\n", "Title"},
		{"not first line", "intro\n\n# Real Title\n", "Real Title"},
		{"ignores subheadings", "## Section\n\n# Title\n", "Title"},
		{"none", "no headings at all\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstHeading(tt.content))
		})
	}
}
