package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an unpaid statement joined with the fields of its card that the
// reminder engine needs. Read-only input.
type Payment struct {
	ID              int64
	UserID          int64
	CardID          int64
	CardLast4       string
	AutoDebit       bool
	DueDate         time.Time
	StatementAmount decimal.Decimal
	PaidAmount      decimal.Decimal
}

// Remaining returns the outstanding balance on the statement.
func (p *Payment) Remaining() decimal.Decimal {
	return p.StatementAmount.Sub(p.PaidAmount)
}

// PartiallyPaid reports whether some, but not all, of the statement has been
// paid.
func (p *Payment) PartiallyPaid() bool {
	return p.PaidAmount.IsPositive() && p.Remaining().IsPositive()
}
