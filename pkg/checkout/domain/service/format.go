package service

import "strings"

const (
	cardNumberDigits = 16
	cardExpiryDigits = 4
)

// FormatCardNumber keeps at most 16 digits and groups them by four.
func FormatCardNumber(input string) string {
	digits := onlyDigits(input, cardNumberDigits)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry keeps at most 4 digits and renders them as MM/YY.
func FormatExpiry(input string) string {
	digits := onlyDigits(input, cardExpiryDigits)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

func onlyDigits(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == limit {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
