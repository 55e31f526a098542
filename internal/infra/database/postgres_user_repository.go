// internal/infra/database/postgres_user_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"card_notification_service/internal/domain/user"
)

var ErrProfileNotFound = fmt.Errorf("notification profile not found")

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// ListIDsDueAt returns users with notifications enabled whose preferred send
// time equals the given "HH:MM" slot.
func (r *PostgresUserRepository) ListIDsDueAt(ctx context.Context, slot string) ([]int64, error) {
	query := `SELECT user_id FROM notification_profiles
               WHERE enabled = TRUE AND send_time = $1
               ORDER BY user_id`
	rows, err := r.db.QueryContext(ctx, query, slot)
	if err != nil {
		return nil, fmt.Errorf("error listing users due at %s: %w", slot, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user id rows: %w", err)
	}
	return ids, nil
}

func (r *PostgresUserRepository) GetProfile(ctx context.Context, userID int64) (*user.Profile, error) {
	query := `SELECT user_id, enabled, send_time, language, currency, alert_threshold
               FROM notification_profiles WHERE user_id = $1`
	p := user.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Enabled, &p.SendTime, &p.Language, &p.Currency, &p.AlertThreshold,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error getting notification profile: %w", err)
	}
	return &p, nil
}
