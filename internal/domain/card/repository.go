package card

import (
	"context"
)

// Repository defines read operations for card entities.
type Repository interface {
	// ListActiveByUser returns the user's non-archived cards.
	ListActiveByUser(ctx context.Context, userID int64) ([]*Card, error)
}
