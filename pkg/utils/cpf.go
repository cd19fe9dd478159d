package utils

import (
	"fmt"
	"strings"
)

// stripNonDigits removes everything that is not a decimal digit.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF validates a Brazilian CPF number using the two mod-11 check
// digits. Punctuation is ignored; the input may be formatted or raw.
// Malformed input yields false, never an error.
func IsValidCPF(cpf string) bool {
	digits := stripNonDigits(cpf)

	if len(digits) != 11 {
		return false
	}

	// CPFs with all digits identical pass the checksum but are invalid.
	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	// First check digit: weights 10..2 over digits 0..8.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	rest := sum % 11
	first := 0
	if rest >= 2 {
		first = 11 - rest
	}
	if int(digits[9]-'0') != first {
		return false
	}

	// Second check digit: weights 11..2 over digits 0..9.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	rest = sum % 11
	second := 0
	if rest >= 2 {
		second = 11 - rest
	}
	return int(digits[10]-'0') == second
}

// FormatCPF renders a raw CPF as 000.000.000-00. Inputs that do not contain
// exactly 11 digits are returned unchanged.
func FormatCPF(cpf string) string {
	digits := stripNonDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}
