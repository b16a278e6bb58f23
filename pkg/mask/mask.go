package mask

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// Email masks the local part of an email address, keeping its first character
// visible: "john@example.com" becomes "j***@example.com". The domain is left
// unchanged. It returns ErrInvalidFormat when the input does not contain
// exactly one "@" or the local part is empty.
func Email(email string) (string, error) {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "", fmt.Errorf("%w: expected exactly one @ in %q", ErrInvalidFormat, email)
	}
	if local == "" {
		return "", fmt.Errorf("%w: empty local part in %q", ErrInvalidFormat, email)
	}

	first := []rune(local)[0]
	return string(first) + "***@" + domain, nil
}

// Phone masks all but the last four characters of a phone number:
// "5551234567" becomes "******4567". The input is treated as an opaque
// character sequence, so formatting characters and non-digits are masked like
// anything else. Inputs of four characters or fewer are returned unchanged.
// The output always has the same length as the input.
func Phone(phone string) string {
	runes := []rune(phone)
	if len(runes) <= 4 {
		return phone
	}

	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}

// String masks the middle of a string, keeping up to visibleChars characters
// visible at each end. Strings too short to keep both ends visible are fully
// masked.
func String(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	visible := visibleChars
	if visible > length/2 {
		visible = length / 2
	}

	return string(runes[:visible]) +
		strings.Repeat("*", length-visible*2) +
		string(runes[length-visible:])
}

// CreditCard masks a card number down to its last four digits, PCI style.
// Formatting characters are stripped first, so "4111-1111-1111-1111" becomes
// "************1111".
func CreditCard(cardNumber string) string {
	digits := nonDigitRegex.ReplaceAllString(cardNumber, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
