// internal/domain/notification/kind.go
package notification

// Kind identifies the reminder category for an obligation.
type Kind string

const (
	KindBilling Kind = "BILLING"
	KindDue     Kind = "DUE"
	KindOverdue Kind = "OVERDUE"
	KindPartial Kind = "PARTIAL"
)
