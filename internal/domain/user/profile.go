package user

import "github.com/shopspring/decimal"

// Profile holds a user's notification settings. Owned by the user-settings
// functionality; read-only here.
type Profile struct {
	UserID         int64
	Enabled        bool
	SendTime       string // "HH:MM", the run slot the user is notified in
	Language       string
	Currency       string
	AlertThreshold decimal.Decimal
}
