// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata keys every note carries.
const (
	KeyType    = "type"
	KeyStatus  = "status"
	KeyCreated = "created"
)

// Note statuses.
const (
	StatusActive = "active"
	StatusDone   = "done"
)

// Note is one on-disk unit: an ordered frontmatter block followed by
// the raw markdown content (heading plus body). Content is preserved
// byte for byte across parse/render so mutations that only touch the
// frontmatter never disturb the body.
type Note struct {
	Meta    Metadata
	Content string
}

// ParseNote splits a note file into frontmatter and content.
func ParseNote(raw string) (*Note, error) {
	frontmatter, content, err := splitFrontmatter(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to split frontmatter: %w", err)
	}

	var note Note
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &note.Meta); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
	}
	note.Content = content
	return &note, nil
}

// Render serializes the note back to file form.
func (n *Note) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	meta, err := yaml.Marshal(n.Meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	buf.Write(meta)
	buf.WriteString("---\n")
	buf.WriteString(n.Content)

	return buf.String(), nil
}

// Heading returns the first top-level markdown heading in the content,
// or "" when the note has none.
func (n *Note) Heading() string {
	return FirstHeading(n.Content)
}

// FirstHeading scans markdown text for the first "# " heading.
func FirstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

// splitFrontmatter splits a note file into the frontmatter text and
// everything after the closing delimiter line. The content half is
// returned untrimmed so Render can reproduce the file exactly.
func splitFrontmatter(raw string) (string, string, error) {
	if !strings.HasPrefix(raw, "---") {
		return "", raw, nil
	}

	lines := strings.SplitAfter(raw, "\n")
	if len(lines) < 3 {
		return "", raw, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return "", raw, fmt.Errorf("frontmatter not properly closed")
	}

	frontmatter := strings.Join(lines[1:closing], "")
	content := strings.Join(lines[closing+1:], "")
	return frontmatter, content, nil
}
