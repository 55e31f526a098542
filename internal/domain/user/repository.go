package user

import (
	"context"
)

// Repository defines read operations for user notification profiles.
type Repository interface {
	// ListIDsDueAt returns the IDs of users whose notifications are enabled
	// and whose preferred send time matches the given "HH:MM" slot.
	ListIDsDueAt(ctx context.Context, slot string) ([]int64, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
}
