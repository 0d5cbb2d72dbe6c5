// Package format holds the display formatting and input validation helpers
// shared by the API layer. All functions are pure.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder rendered for absent values.
const Placeholder = "—"

var currencyPrinter = message.NewPrinter(language.Uzbek)

// Phone renders a digits-only 12-digit number starting with 998 as
// +NNN NN NNN NN NN; anything else is returned verbatim. Re-formatting an
// already formatted number yields the same output.
func Phone(phone string) string {
	if phone == "" {
		return Placeholder
	}
	cleaned := digitsOnly(phone)
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "998") {
		return fmt.Sprintf("+%s %s %s %s %s",
			cleaned[0:3], cleaned[3:5], cleaned[5:8], cleaned[8:10], cleaned[10:12])
	}
	return phone
}

// Currency renders an amount with locale digit grouping and the fixed
// currency-unit suffix.
func Currency(amount float64) string {
	return currencyPrinter.Sprintf("%v сўм", number.Decimal(amount,
		number.MinFractionDigits(0), number.MaxFractionDigits(2)))
}

// Date renders a timestamp as DD.MM.YYYY.
func Date(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format("02.01.2006")
}

// UserInitials derives a two-letter avatar label from a display name.
func UserInitials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

var roleNames = map[string]string{
	"owner":    "Директор",
	"admin":    "Бош менежер",
	"manager":  "Савдо менежери",
	"operator": "Оператор",
	"viewer":   "Кузатувчи",
}

// RoleName returns the display name for a role, or the role itself when
// no display name is registered.
func RoleName(role string) string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return role
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
