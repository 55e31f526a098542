// internal/app/recorder.go
package app

import (
	"sync"

	"card_notification_service/internal/domain/notification"
)

// RunRecorder accumulates successful-send history entries and permanently
// invalid tokens across one run. It is the only mutable state shared between
// concurrently processed users; appends are mutex-guarded and the contents
// are drained exactly once at run end for the two bulk persistence calls.
type RunRecorder struct {
	mu            sync.Mutex
	history       []*notification.HistoryEntry
	invalidTokens []string
	seenInvalid   map[string]bool
}

func NewRunRecorder() *RunRecorder {
	return &RunRecorder{seenInvalid: make(map[string]bool)}
}

// RecordSent queues a history entry for the end-of-run bulk insert.
func (r *RunRecorder) RecordSent(entry *notification.HistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, entry)
}

// RecordInvalidToken queues a dead token for the end-of-run bulk delete.
// Duplicate reports of the same token collapse to one entry.
func (r *RunRecorder) RecordInvalidToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seenInvalid[token] {
		return
	}
	r.seenInvalid[token] = true
	r.invalidTokens = append(r.invalidTokens, token)
}

// Drain returns everything accumulated so far and resets the recorder.
func (r *RunRecorder) Drain() ([]*notification.HistoryEntry, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	history, tokens := r.history, r.invalidTokens
	r.history = nil
	r.invalidTokens = nil
	r.seenInvalid = make(map[string]bool)
	return history, tokens
}
