// internal/infra/database/postgres_payment_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"card_notification_service/internal/domain/payment"
)

type PostgresPaymentRepository struct {
	db *sql.DB
}

func NewPostgresPaymentRepository(db *sql.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// ListUnpaidByUser returns the user's unpaid payments joined with the card
// fields the composer needs. Payments on archived cards are excluded.
func (r *PostgresPaymentRepository) ListUnpaidByUser(ctx context.Context, userID int64) ([]*payment.Payment, error) {
	query := `SELECT p.id, p.user_id, p.card_id, c.last4, c.auto_debit,
                      p.due_date, p.statement_amount, p.paid_amount
               FROM payments p
               JOIN cards c ON c.id = p.card_id
               WHERE p.user_id = $1 AND p.paid = FALSE AND c.archived = FALSE
               ORDER BY p.due_date, p.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying unpaid payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*payment.Payment, 0)
	for rows.Next() {
		p := payment.Payment{}
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CardID, &p.CardLast4, &p.AutoDebit,
			&p.DueDate, &p.StatementAmount, &p.PaidAmount,
		); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
