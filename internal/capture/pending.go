// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package capture

import (
	"errors"
	"sync"
	"time"
)

// ErrNoPendingClarification reports a reply referencing a prompt with
// no registered entry. The caller reports it; it never falls back to
// starting a new capture.
var ErrNoPendingClarification = errors.New("no pending clarification found")

// PendingClarification correlates a disambiguation prompt with its
// originating capture while the category answer is awaited.
type PendingClarification struct {
	OriginalText    string
	CategoryGuess   string
	NameGuess       string
	ConfidenceGuess float64
	CreatedAt       time.Time
}

// PendingStore is the short-lived keyed store for clarifications.
// Entries are consumed exactly once. With ttl zero, entries never
// expire, matching the historical behavior of the pipeline; a positive
// ttl sweeps stale entries on every access.
type PendingStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*PendingClarification
}

// NewPendingStore creates a store. ttl <= 0 disables expiry.
func NewPendingStore(ttl time.Duration) *PendingStore {
	return &PendingStore{
		ttl:     ttl,
		entries: make(map[string]*PendingClarification),
	}
}

// Add registers a clarification under the prompt identifier.
func (p *PendingStore) Add(promptID string, pending *PendingClarification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sweepLocked()
	if pending.CreatedAt.IsZero() {
		pending.CreatedAt = time.Now()
	}
	p.entries[promptID] = pending
}

// Take removes and returns the entry for a prompt identifier. Once
// taken, the same identifier is inert.
func (p *PendingStore) Take(promptID string) (*PendingClarification, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sweepLocked()
	pending, ok := p.entries[promptID]
	if !ok {
		return nil, ErrNoPendingClarification
	}
	delete(p.entries, promptID)
	return pending, nil
}

// Len returns the number of live entries.
func (p *PendingStore) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sweepLocked()
	return len(p.entries)
}

func (p *PendingStore) sweepLocked() {
	if p.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-p.ttl)
	for id, pending := range p.entries {
		if pending.CreatedAt.Before(cutoff) {
			delete(p.entries, id)
		}
	}
}
