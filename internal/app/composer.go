// internal/app/composer.go
package app

import (
	"fmt"
	"strings"

	"card_notification_service/internal/domain/notification"

	"github.com/shopspring/decimal"
)

// ComposedMessage is the renderable result of a reminder decision: a title,
// a body and the deep-link route the client app opens from the notification.
type ComposedMessage struct {
	Title string
	Body  string
	Route string
}

// ComposeParams carries everything a template needs. Amount is the
// outstanding balance for due/overdue/partial reminders and ignored for
// billing.
type ComposeParams struct {
	Language  string
	Currency  string
	CardLast4 string
	SubjectID int64
	DayOffset int
	Amount    decimal.Decimal
	AutoDebit bool
}

// Compose renders the message for a reminder kind. It is total: an unknown
// language falls back to the default locale and an unknown kind renders the
// generic template, so it never fails and never returns an empty message.
func Compose(kind notification.Kind, p ComposeParams) ComposedMessage {
	set, ok := locales[normalizeLanguage(p.Language)]
	if !ok {
		set = locales[defaultLanguage]
	}

	amount := FormatAmount(p.Amount, p.Currency)

	var m localizedText
	switch kind {
	case notification.KindBilling:
		m = set.billing(p.CardLast4, p.DayOffset)
	case notification.KindDue:
		m = set.due(p.CardLast4, amount, p.DayOffset)
	case notification.KindOverdue:
		m = set.overdue(p.CardLast4, amount, -p.DayOffset)
	case notification.KindPartial:
		m = set.partial(p.CardLast4, amount)
	default:
		m = set.generic(p.CardLast4)
	}

	if p.AutoDebit && (kind == notification.KindDue || kind == notification.KindOverdue) {
		m.body += " " + set.autoDebitNote
	}

	return ComposedMessage{
		Title: m.title,
		Body:  m.body,
		Route: deepLink(kind, p.SubjectID),
	}
}

// deepLink builds the stable client route for the reminder's subject.
func deepLink(kind notification.Kind, subjectID int64) string {
	if kind == notification.KindBilling {
		return fmt.Sprintf("/cards/%d", subjectID)
	}
	return fmt.Sprintf("/payments/%d", subjectID)
}

// normalizeLanguage reduces a language tag to its lowercase primary subtag,
// so "en-US" and "EN" both select the English templates.
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
