package booking

import "strings"

// NormalizePhone strips every non-digit and one leading zero, so
// "050-123 4567" and "0501234567" collapse to "501234567".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	return strings.TrimPrefix(digits, "0")
}

// CustomerID derives the grouping label for a phone number. Distinct people
// sharing a normalized phone share the label; it is a hint, not a key.
func CustomerID(phone string) string {
	return "CID-" + NormalizePhone(phone)
}
