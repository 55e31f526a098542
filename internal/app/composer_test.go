package app

import (
	"strings"
	"testing"

	"card_notification_service/internal/domain/notification"

	"github.com/shopspring/decimal"
)

func TestCompose_DueContainsAmountAndLast4(t *testing.T) {
	msg := Compose(notification.KindDue, ComposeParams{
		Language:  "en",
		Currency:  "USD",
		CardLast4: "4242",
		SubjectID: 77,
		DayOffset: 3,
		Amount:    decimal.NewFromFloat(1234.5),
	})

	if !strings.Contains(msg.Body, "$1,234.50") {
		t.Errorf("body missing formatted amount: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "4242") {
		t.Errorf("body missing card last-4: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "3 day") {
		t.Errorf("body missing day count: %q", msg.Body)
	}
	if msg.Route != "/payments/77" {
		t.Errorf("got route %q, want /payments/77", msg.Route)
	}
}

func TestCompose_DueTodayWording(t *testing.T) {
	msg := Compose(notification.KindDue, ComposeParams{
		Language:  "en",
		Currency:  "USD",
		CardLast4: "4242",
		SubjectID: 77,
		DayOffset: 0,
		Amount:    decimal.NewFromInt(50),
	})
	if !strings.Contains(msg.Body, "today") {
		t.Errorf("due-today body should mention today: %q", msg.Body)
	}
}

func TestCompose_AutoDebitClause(t *testing.T) {
	params := ComposeParams{
		Language:  "en",
		Currency:  "USD",
		CardLast4: "4242",
		SubjectID: 77,
		DayOffset: -4,
		Amount:    decimal.NewFromInt(100),
		AutoDebit: true,
	}

	withClause := Compose(notification.KindOverdue, params)
	if !strings.Contains(withClause.Body, "Auto-debit") {
		t.Errorf("overdue body missing auto-debit clause: %q", withClause.Body)
	}

	params.AutoDebit = false
	without := Compose(notification.KindOverdue, params)
	if strings.Contains(without.Body, "Auto-debit") {
		t.Errorf("overdue body should not carry auto-debit clause: %q", without.Body)
	}

	// The clause applies to due/overdue only.
	params.AutoDebit = true
	billing := Compose(notification.KindBilling, params)
	if strings.Contains(billing.Body, "Auto-debit") {
		t.Errorf("billing body should never carry auto-debit clause: %q", billing.Body)
	}
}

func TestCompose_BillingRoute(t *testing.T) {
	msg := Compose(notification.KindBilling, ComposeParams{
		Language:  "en",
		CardLast4: "1111",
		SubjectID: 9,
		DayOffset: 0,
	})
	if msg.Route != "/cards/9" {
		t.Errorf("got route %q, want /cards/9", msg.Route)
	}
	if msg.Title == "" || msg.Body == "" {
		t.Error("billing message must not be empty")
	}
}

func TestCompose_UnknownLanguageFallsBack(t *testing.T) {
	params := ComposeParams{
		Language:  "sw",
		Currency:  "USD",
		CardLast4: "4242",
		SubjectID: 1,
		DayOffset: 2,
		Amount:    decimal.NewFromInt(10),
	}
	fallback := Compose(notification.KindDue, params)

	params.Language = "en"
	english := Compose(notification.KindDue, params)

	if fallback != english {
		t.Errorf("unknown language should render the default locale: got %+v, want %+v", fallback, english)
	}
}

func TestCompose_LanguageTagNormalization(t *testing.T) {
	params := ComposeParams{
		Language:  "RU-ru",
		Currency:  "RUB",
		CardLast4: "7001",
		SubjectID: 5,
		DayOffset: 0,
		Amount:    decimal.NewFromInt(300),
	}
	msg := Compose(notification.KindDue, params)
	if !strings.Contains(msg.Body, "сегодня") {
		t.Errorf("expected Russian templates for RU-ru: %q", msg.Body)
	}
}

func TestCompose_UnknownKindIsTotal(t *testing.T) {
	msg := Compose(notification.Kind("SOMETHING_ELSE"), ComposeParams{
		Language:  "en",
		CardLast4: "4242",
		SubjectID: 3,
	})
	if msg.Title == "" || msg.Body == "" {
		t.Error("composer must never return an empty message")
	}
	if msg.Route != "/payments/3" {
		t.Errorf("got route %q, want /payments/3", msg.Route)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{decimal.NewFromFloat(1234.5), "USD", "$1,234.50"},
		{decimal.NewFromInt(42), "EUR", "€42.00"},
		{decimal.NewFromInt(1250000), "KRW", "₩1,250,000"},
		{decimal.NewFromFloat(99.99), "XYZ", "99.99 XYZ"},
		{decimal.NewFromFloat(-1500.25), "USD", "-$1,500.25"},
		{decimal.NewFromFloat(12.3), "usd", "$12.30"},
	}
	for _, tc := range tests {
		if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
