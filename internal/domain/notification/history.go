// internal/domain/notification/history.go
package notification

import "time"

// HistoryEntry records one successful delivery of a reminder. The log is
// append-only; the most recent entry per (user, subject, kind) is the only
// state the cadence decision consults.
type HistoryEntry struct {
	ID        int64
	UserID    int64
	SubjectID int64
	Kind      Kind
	SentAt    time.Time
}
