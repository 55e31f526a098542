// internal/app/locales.go
package app

import "fmt"

const defaultLanguage = "en"

type localizedText struct {
	title string
	body  string
}

// templateSet holds one pure formatting function per reminder kind. Locale
// dispatch is a plain map lookup; adding a language means adding an entry.
type templateSet struct {
	billing       func(last4 string, offset int) localizedText
	due           func(last4, amount string, offset int) localizedText
	overdue       func(last4, amount string, daysLate int) localizedText
	partial       func(last4, amount string) localizedText
	generic       func(last4 string) localizedText
	autoDebitNote string
}

var locales = map[string]templateSet{
	"en": {
		billing: func(last4 string, offset int) localizedText {
			switch {
			case offset == 0:
				return localizedText{
					title: "Statement day",
					body:  fmt.Sprintf("Your card ending %s issues its statement today.", last4),
				}
			case offset > 0:
				return localizedText{
					title: "Statement coming up",
					body:  fmt.Sprintf("Your card ending %s issues its statement in %d day(s).", last4, offset),
				}
			default:
				return localizedText{
					title: "Statement issued",
					body:  fmt.Sprintf("Your card ending %s issued its statement %d day(s) ago.", last4, -offset),
				}
			}
		},
		due: func(last4, amount string, offset int) localizedText {
			if offset == 0 {
				return localizedText{
					title: "Payment due today",
					body:  fmt.Sprintf("%s on card ending %s is due today.", amount, last4),
				}
			}
			return localizedText{
				title: "Payment due soon",
				body:  fmt.Sprintf("%s on card ending %s is due in %d day(s).", amount, last4, offset),
			}
		},
		overdue: func(last4, amount string, daysLate int) localizedText {
			return localizedText{
				title: "Payment overdue",
				body:  fmt.Sprintf("%s on card ending %s is %d day(s) overdue.", amount, last4, daysLate),
			}
		},
		partial: func(last4, amount string) localizedText {
			return localizedText{
				title: "Balance remaining",
				body:  fmt.Sprintf("Card ending %s still has %s left to pay on its last statement.", last4, amount),
			}
		},
		generic: func(last4 string) localizedText {
			return localizedText{
				title: "Card reminder",
				body:  fmt.Sprintf("You have a reminder for your card ending %s.", last4),
			}
		},
		autoDebitNote: "Auto-debit is enabled; the amount will be charged automatically.",
	},
	"ru": {
		billing: func(last4 string, offset int) localizedText {
			switch {
			case offset == 0:
				return localizedText{
					title: "День выписки",
					body:  fmt.Sprintf("По карте ••%s сегодня формируется выписка.", last4),
				}
			case offset > 0:
				return localizedText{
					title: "Скоро выписка",
					body:  fmt.Sprintf("По карте ••%s выписка будет сформирована через %d дн.", last4, offset),
				}
			default:
				return localizedText{
					title: "Выписка сформирована",
					body:  fmt.Sprintf("По карте ••%s выписка была сформирована %d дн. назад.", last4, -offset),
				}
			}
		},
		due: func(last4, amount string, offset int) localizedText {
			if offset == 0 {
				return localizedText{
					title: "Платёж сегодня",
					body:  fmt.Sprintf("Платёж %s по карте ••%s нужно внести сегодня.", amount, last4),
				}
			}
			return localizedText{
				title: "Скоро платёж",
				body:  fmt.Sprintf("Платёж %s по карте ••%s нужно внести через %d дн.", amount, last4, offset),
			}
		},
		overdue: func(last4, amount string, daysLate int) localizedText {
			return localizedText{
				title: "Платёж просрочен",
				body:  fmt.Sprintf("Платёж %s по карте ••%s просрочен на %d дн.", amount, last4, daysLate),
			}
		},
		partial: func(last4, amount string) localizedText {
			return localizedText{
				title: "Остаток по выписке",
				body:  fmt.Sprintf("По карте ••%s осталось оплатить %s по последней выписке.", last4, amount),
			}
		},
		generic: func(last4 string) localizedText {
			return localizedText{
				title: "Напоминание",
				body:  fmt.Sprintf("У вас напоминание по карте ••%s.", last4),
			}
		},
		autoDebitNote: "Включено автосписание: сумма будет списана автоматически.",
	},
}
