package device

import "time"

// Endpoint is a registered push target for a user's device. Unique per
// (user, token). Deleted only when the gateway reports the token permanently
// invalid.
type Endpoint struct {
	ID        int64
	UserID    int64
	Token     string
	Platform  string
	CreatedAt time.Time
}
