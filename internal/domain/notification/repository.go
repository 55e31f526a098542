// internal/domain/notification/repository.go
package notification

import (
	"context"
	"time"
)

// Repository defines persistence operations for the notification history log.
type Repository interface {
	// LastSentAt returns the timestamp of the most recent history entry for
	// the (user, subject, kind) triple.
	LastSentAt(ctx context.Context, userID, subjectID int64, kind Kind) (*time.Time, error)
	// BulkInsertHistory appends all accumulated entries in a single call.
	BulkInsertHistory(ctx context.Context, entries []*HistoryEntry) error
}
