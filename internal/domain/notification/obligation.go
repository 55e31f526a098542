// internal/domain/notification/obligation.go
package notification

import "github.com/shopspring/decimal"

// Obligation is a reminder candidate derived fresh on every run from the
// current card/payment rows. It is never persisted.
type Obligation struct {
	Kind      Kind
	SubjectID int64 // card id for BILLING, payment id otherwise
	DayOffset int   // negative = past, zero = today, positive = future
	Amount    decimal.Decimal
}

// PaymentPhase is the due/overdue variant selected by the sign of the day
// offset. Exactly one phase applies to a payment in a given run.
type PaymentPhase int

const (
	PhaseDueToday PaymentPhase = iota
	PhaseDueLater
	PhaseOverdue
)

// ClassifyPayment routes a payment's day offset to its phase, with offset
// zero treated as due today.
func ClassifyPayment(dayOffset int) PaymentPhase {
	switch {
	case dayOffset == 0:
		return PhaseDueToday
	case dayOffset > 0:
		return PhaseDueLater
	default:
		return PhaseOverdue
	}
}

// PaymentKind returns the reminder kind for a payment's phase.
func (p PaymentPhase) PaymentKind() Kind {
	if p == PhaseOverdue {
		return KindOverdue
	}
	return KindDue
}
