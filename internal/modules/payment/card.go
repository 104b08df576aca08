package payment

import (
	"strings"
	"time"
	"unicode"
)

// normalizeCardNumber strips spaces and dashes from a card number.
func normalizeCardNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validCardNumber runs the Luhn checksum over a normalized card number.
func validCardNumber(number string) bool {
	if len(number) < 13 || len(number) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		r := rune(number[i])
		if !unicode.IsDigit(r) {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validExpiry accepts a card that expires this month or later. Two-digit
// years are interpreted as 20xx.
func validExpiry(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}
	if year > now.Year() {
		return true
	}
	return year == now.Year() && month >= int(now.Month())
}

func validCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for _, r := range cvv {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// maskedMethod renders a display label like "Credit Card (****1111)".
func maskedMethod(number string) string {
	last := number
	if len(number) > 4 {
		last = number[len(number)-4:]
	}
	return "Credit Card (****" + last + ")"
}
