package card

import "time"

// Card is a read-only input to the reminder engine; rows are owned by the
// card-management functionality outside this service.
type Card struct {
	ID         int64
	UserID     int64
	Last4      string
	BillingDay int // day of month the statement is issued
	AutoDebit  bool
	Archived   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
