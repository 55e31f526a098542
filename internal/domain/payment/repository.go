package payment

import (
	"context"
)

// Repository defines read operations for payment entities.
type Repository interface {
	// ListUnpaidByUser returns the user's unpaid payments joined with their
	// card's last-4 and auto-debit flag.
	ListUnpaidByUser(ctx context.Context, userID int64) ([]*Payment, error)
}
