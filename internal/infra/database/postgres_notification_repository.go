// internal/infra/database/postgres_notification_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"card_notification_service/internal/domain/notification"
)

var ErrNoHistory = fmt.Errorf("no notification history entry")

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// LastSentAt returns the timestamp of the most recent history entry for the
// (user, subject, kind) triple. The history log is append-only; this single
// row is the entire cadence state.
func (r *PostgresNotificationRepository) LastSentAt(ctx context.Context, userID, subjectID int64, kind notification.Kind) (*time.Time, error) {
	query := `SELECT sent_at FROM notification_history
               WHERE user_id = $1 AND subject_id = $2 AND kind = $3
               ORDER BY sent_at DESC LIMIT 1`
	var sentAt time.Time
	err := r.db.QueryRowContext(ctx, query, userID, subjectID, kind).Scan(&sentAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("error getting last notification history entry: %w", err)
	}
	return &sentAt, nil
}

// BulkInsertHistory appends all accumulated entries in one transaction.
func (r *PostgresNotificationRepository) BulkInsertHistory(ctx context.Context, entries []*notification.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk history insert: %w", err)
	}
	defer txn.Rollback() // Rollback if not committed

	stmt, err := txn.PrepareContext(ctx, `INSERT INTO notification_history (user_id, subject_id, kind, sent_at)
                                         VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for bulk history insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.UserID, e.SubjectID, e.Kind, e.SentAt); err != nil {
			return fmt.Errorf("error inserting history entry (U:%d, S:%d, K:%s): %w", e.UserID, e.SubjectID, e.Kind, err)
		}
	}

	return txn.Commit()
}
