// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// JournalFile is the append-only capture journal at the vault root.
const JournalFile = "Inbox-Log.md"

const journalHeader = "# Inbox Log\n\nCapture history and review items.\n\n"

// Store is the note store: one directory per category under a root,
// each note a markdown file with a frontmatter header, plus the
// append-only capture journal. Category order is significant: it is
// the search precedence used by the resolver.
type Store struct {
	root       string
	categories []string
}

// NewStore creates a store rooted at path and ensures the category
// directories and the journal file exist.
func NewStore(root string, categories []string) (*Store, error) {
	s := &Store{root: root, categories: categories}
	if err := s.ensureStructure(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureStructure() error {
	for _, category := range s.categories {
		if err := os.MkdirAll(filepath.Join(s.root, category), 0755); err != nil {
			return fmt.Errorf("failed to create category directory %s: %w", category, err)
		}
	}
	journalPath := filepath.Join(s.root, JournalFile)
	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		if err := os.WriteFile(journalPath, []byte(journalHeader), 0644); err != nil {
			return fmt.Errorf("failed to create journal: %w", err)
		}
	}
	return nil
}

// Root returns the vault root path.
func (s *Store) Root() string {
	return s.root
}

// Categories returns the fixed category list in search order.
func (s *Store) Categories() []string {
	return s.categories
}

// CategoryDir returns the directory holding a category's notes.
func (s *Store) CategoryDir(category string) string {
	return filepath.Join(s.root, category)
}

// NotePath returns the on-disk path a note with the given name would
// occupy in a category. Colliding slugs overwrite each other; that is
// accepted, not guarded against.
func (s *Store) NotePath(category, name string) string {
	return filepath.Join(s.root, category, SanitizeFilename(name)+".md")
}

// WriteNote renders and persists a note, returning its path.
func (s *Store) WriteNote(category, name string, note *Note) (string, error) {
	path := s.NotePath(category, name)
	rendered, err := note.Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}
	return path, nil
}

// ListNotes returns the markdown files in a category, sorted by name.
// A missing category directory yields an empty list.
func (s *Store) ListNotes(category string) ([]string, error) {
	entries, err := os.ReadDir(s.CategoryDir(category))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list category %s: %w", category, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(s.CategoryDir(category), entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile reads a note file's full text.
func (s *Store) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(data), nil
}

// WriteFile persists a note file's full text.
func (s *Store) WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// Move relocates a note to a new category: the frontmatter type field
// is rewritten, the file is written under the new category directory
// with its existing filename, and only then is the original deleted.
// The two filesystem operations are deliberately not atomic; a failure
// between them leaves a duplicate rather than losing the note.
func (s *Store) Move(oldPath, newCategory string) (string, error) {
	raw, err := s.ReadFile(oldPath)
	if err != nil {
		return "", err
	}

	note, err := ParseNote(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse note for move: %w", err)
	}
	note.Meta.Set(KeyType, strings.ToLower(newCategory))

	rendered, err := note.Render()
	if err != nil {
		return "", err
	}

	newPath := filepath.Join(s.CategoryDir(newCategory), filepath.Base(oldPath))
	if err := os.WriteFile(newPath, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("failed to write moved note: %w", err)
	}
	if err := os.Remove(oldPath); err != nil {
		return "", fmt.Errorf("failed to remove original note: %w", err)
	}
	return newPath, nil
}

// ReadAllActive concatenates every non-done note, each delimited by a
// category/filename header. Used as briefing input.
func (s *Store) ReadAllActive() (string, error) {
	var sections []string
	for _, category := range s.categories {
		paths, err := s.ListNotes(category)
		if err != nil {
			return "", err
		}
		for _, path := range paths {
			text, err := s.ReadFile(path)
			if err != nil {
				continue
			}
			if strings.Contains(text, "status: done") {
				continue
			}
			sections = append(sections, fmt.Sprintf("=== %s/%s ===\n%s", category, filepath.Base(path), text))
		}
	}
	return strings.Join(sections, "\n\n"), nil
}

// CountNotes returns the number of notes per category.
func (s *Store) CountNotes() (map[string]int, error) {
	counts := make(map[string]int, len(s.categories))
	for _, category := range s.categories {
		paths, err := s.ListNotes(category)
		if err != nil {
			return nil, err
		}
		counts[category] = len(paths)
	}
	return counts, nil
}

// LogCapture appends a capture record to the journal. Entries are
// never mutated or deleted.
func (s *Store) LogCapture(message, category, name string, confidence float64, needsReview bool) error {
	status := "FILED"
	if needsReview {
		status = "REVIEW"
	}

	preview := message
	if len([]rune(preview)) > 100 {
		preview = string([]rune(preview)[:100]) + "..."
	}

	entry := fmt.Sprintf("\n## [%s] %s\n", time.Now().Format("2006-01-02 15:04"), status)
	entry += fmt.Sprintf("- **Category:** %s\n", category)
	entry += fmt.Sprintf("- **Name:** %s\n", name)
	entry += fmt.Sprintf("- **Confidence:** %.0f%%\n", confidence*100)
	entry += fmt.Sprintf("- **Message:** %s\n", preview)

	f, err := os.OpenFile(filepath.Join(s.root, JournalFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}
