package assistant

import (
	"fmt"
	"strings"
)

// NormalizeTaxID strips everything but ASCII digits and requires exactly 11
// of them, the national tax id length. Digits from other scripts do not
// count.
func NormalizeTaxID(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	digits := b.String()
	if len(digits) != 11 {
		return "", fmt.Errorf("tax id must have exactly 11 digits")
	}
	return digits, nil
}

// MaskTaxID hides all but the middle group of a normalized tax id. Only the
// 4th to 6th digits are revealed; the rest never reaches the model or the
// transcript.
func MaskTaxID(digits string) string {
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return "***." + digits[3:6] + ".***-**"
}
