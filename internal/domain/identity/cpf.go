// Package identity validates and normalizes student identity numbers (CPF)
// and the optional free-text contact fields stored next to them.
package identity

import (
	"fmt"
	"strings"

	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
)

const cpfLength = 11

// ValidateCPF strips punctuation from raw and checks the two trailing check digits.
// It returns the 11 bare digits, which is the only form ever persisted or compared.
func ValidateCPF(raw string) (string, error) {
	digits := Digits(raw)
	if len(digits) != cpfLength || allSame(digits) {
		return "", errs.ErrInvalidIdentity
	}
	for _, pos := range []int{9, 10} {
		if checkDigit(digits, pos) != int(digits[pos]-'0') {
			return "", errs.ErrInvalidIdentity
		}
	}
	return digits, nil
}

// IsValidCPF reports whether raw normalizes to a valid CPF.
func IsValidCPF(raw string) bool {
	_, err := ValidateCPF(raw)
	return err == nil
}

// Digits drops every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF renders normalized digits as 000.000.000-00. Anything else is returned as is.
func FormatCPF(digits string) string {
	if len(digits) != cpfLength {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// checkDigit computes the expected digit at pos from the digits before it.
func checkDigit(digits string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}
	return (sum * 10) % 11 % 10
}

func allSame(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}
