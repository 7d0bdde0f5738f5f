// Package barcode normalizes raw scanner output into a UPC/EAN digit string.
package barcode

import (
	"errors"
	"strings"
)

// MinLength is the shortest digit string accepted as a barcode (EAN-8).
const MinLength = 8

var (
	ErrInvalidBarcode = errors.New("invalid barcode")
)

// Normalize strips every non-digit character from raw and validates the
// remaining length. Scanner artifacts such as dashes, spaces, or symbology
// prefixes are discarded.
func Normalize(raw string) (string, error) {
	digits := Digits(raw)
	if len(digits) < MinLength {
		return "", ErrInvalidBarcode
	}
	return digits, nil
}

// Digits returns only the ASCII decimal digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
