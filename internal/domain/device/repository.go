package device

import (
	"context"
)

// Repository defines operations for device push endpoints.
type Repository interface {
	ListTokensByUser(ctx context.Context, userID int64) ([]string, error)
	// BulkDeleteTokens removes all endpoints whose token is in the list, in a
	// single call.
	BulkDeleteTokens(ctx context.Context, tokens []string) error
}
