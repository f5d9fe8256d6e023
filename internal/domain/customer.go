package domain

import (
	"strings"
	"time"
	"unicode"
)

// Customer is a workshop client, identified primarily by a normalized phone
// number (digits only, fixed length)
type Customer struct {
	ID       int64
	FullName string
	Phone    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizePhone strips every non-digit character from a raw phone number.
// "0414-713-1270", "0414 713 1270" and "04147131270" all normalize to the
// same string.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether a normalized phone has exactly PhoneLength digits
func ValidPhone(normalized string) bool {
	if len(normalized) != PhoneLength {
		return false
	}
	for _, r := range normalized {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
