// internal/infra/database/postgres_card_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"card_notification_service/internal/domain/card"
)

type PostgresCardRepository struct {
	db *sql.DB
}

func NewPostgresCardRepository(db *sql.DB) *PostgresCardRepository {
	return &PostgresCardRepository{db: db}
}

// ListActiveByUser returns the user's non-archived cards.
func (r *PostgresCardRepository) ListActiveByUser(ctx context.Context, userID int64) ([]*card.Card, error) {
	query := `SELECT id, user_id, last4, billing_day, auto_debit, archived, created_at, updated_at
               FROM cards
               WHERE user_id = $1 AND archived = FALSE
               ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying active cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*card.Card, 0)
	for rows.Next() {
		c := card.Card{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Last4, &c.BillingDay, &c.AutoDebit,
			&c.Archived, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning card row: %w", err)
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}
