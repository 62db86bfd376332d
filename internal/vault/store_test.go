// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"People", "Projects", "Ideas", "Admin"}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), testCategories)
	require.NoError(t, err)
	return store
}

func TestNewStore_CreatesStructure(t *testing.T) {
	root := t.TempDir()
	_, err := NewStore(root, testCategories)
	require.NoError(t, err)

	for _, category := range testCategories {
		info, err := os.Stat(filepath.Join(root, category))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	journal, err := os.ReadFile(filepath.Join(root, JournalFile))
	require.NoError(t, err)
	assert.Contains(t, string(journal), "# Inbox Log")

	// Re-opening an existing vault leaves the journal alone
	require.NoError(t, os.WriteFile(filepath.Join(root, JournalFile), []byte("existing"), 0644))
	_, err = NewStore(root, testCategories)
	require.NoError(t, err)
	journal, err = os.ReadFile(filepath.Join(root, JournalFile))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(journal))
}

func TestStore_WriteAndListNotes(t *testing.T) {
	store := newTestStore(t)

	var note Note
	note.Meta.Set(KeyType, "projects")
	note.Meta.Set(KeyStatus, StatusActive)
	note.Content = "\n# Garage Cleanup\n"

	path, err := store.WriteNote("Projects", "Garage Cleanup", &note)
	require.NoError(t, err)
	assert.Equal(t, store.NotePath("Projects", "Garage Cleanup"), path)
	assert.Equal(t, "Garage-Cleanup.md", filepath.Base(path))

	paths, err := store.ListNotes("Projects")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)

	empty, err := store.ListNotes("Ideas")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_ListNotes_MissingDirectory(t *testing.T) {
	store := newTestStore(t)
	paths, err := store.ListNotes("Nonexistent")
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestStore_Move_PreservesBody(t *testing.T) {
	store := newTestStore(t)

	body := "\n# App Concept\n\n## Notes\nOdd   spacing preserved.\n\n- [ ] sketch UI\n"
	var note Note
	note.Meta.Set(KeyType, "ideas")
	note.Meta.Set(KeyStatus, StatusActive)
	note.Content = body

	oldPath, err := store.WriteNote("Ideas", "App Concept", &note)
	require.NoError(t, err)

	newPath, err := store.Move(oldPath, "Projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.CategoryDir("Projects"), "App-Concept.md"), newPath)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))

	raw, err := store.ReadFile(newPath)
	require.NoError(t, err)
	moved, err := ParseNote(raw)
	require.NoError(t, err)
	assert.Equal(t, "projects", moved.Meta.GetString(KeyType))
	assert.Equal(t, body, moved.Content)
}

func TestStore_Move_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	body := "\n# Garage Cleanup\n\n- [ ] Sort boxes\n\nSome prose.\n"
	var note Note
	note.Meta.Set(KeyType, "ideas")
	note.Meta.Set(KeyStatus, StatusActive)
	note.Content = body

	start, err := store.WriteNote("Ideas", "Garage Cleanup", &note)
	require.NoError(t, err)

	there, err := store.Move(start, "Projects")
	require.NoError(t, err)
	back, err := store.Move(there, "Ideas")
	require.NoError(t, err)
	assert.Equal(t, start, back)

	raw, err := store.ReadFile(back)
	require.NoError(t, err)
	final, err := ParseNote(raw)
	require.NoError(t, err)
	assert.Equal(t, "ideas", final.Meta.GetString(KeyType))
	assert.Equal(t, body, final.Content)
}

func TestStore_ReadAllActive_SkipsDone(t *testing.T) {
	store := newTestStore(t)

	var active Note
	active.Meta.Set(KeyType, "projects")
	active.Meta.Set(KeyStatus, StatusActive)
	active.Content = "\n# Active One\n"
	_, err := store.WriteNote("Projects", "Active One", &active)
	require.NoError(t, err)

	var done Note
	done.Meta.Set(KeyType, "projects")
	done.Meta.Set(KeyStatus, StatusDone)
	done.Content = "\n# Finished One\n"
	_, err = store.WriteNote("Projects", "Finished One", &done)
	require.NoError(t, err)

	all, err := store.ReadAllActive()
	require.NoError(t, err)
	assert.Contains(t, all, "=== Projects/Active-One.md ===")
	assert.Contains(t, all, "# Active One")
	assert.NotContains(t, all, "Finished One")
}

func TestStore_CountNotes(t *testing.T) {
	store := newTestStore(t)

	var note Note
	note.Meta.Set(KeyType, "people")
	note.Content = "\n# Sarah\n"
	_, err := store.WriteNote("People", "Sarah", &note)
	require.NoError(t, err)
	_, err = store.WriteNote("People", "Marcus", &note)
	require.NoError(t, err)

	counts, err := store.CountNotes()
	require.NoError(t, err)
	assert.Equal(t, 2, counts["People"])
	assert.Equal(t, 0, counts["Projects"])
}

func TestStore_LogCapture(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.LogCapture("call sarah about the contract", "People", "Sarah", 0.92, false))
	require.NoError(t, store.LogCapture("something vague", "Ideas", "Untitled", 0.40, true))

	journal, err := store.ReadFile(filepath.Join(store.Root(), JournalFile))
	require.NoError(t, err)
	assert.Contains(t, journal, "FILED")
	assert.Contains(t, journal, "REVIEW")
	assert.Contains(t, journal, "- **Category:** People")
	assert.Contains(t, journal, "- **Confidence:** 92%")
	assert.Contains(t, journal, "- **Message:** call sarah about the contract")
	// Header written at creation is still the prefix
	assert.Contains(t, journal, "# Inbox Log")
}
