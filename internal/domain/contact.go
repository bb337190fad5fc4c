package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DigitsOnly strips every non-digit rune (CPF and phone masks)
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks length, repeated digits and both check digits of a CPF.
// Masked input ("529.982.247-25") is accepted.
func ValidCPF(cpf string) bool {
	d := DigitsOnly(cpf)
	if len(d) != 11 {
		return false
	}
	if strings.Count(d, d[:1]) == len(d) {
		return false
	}

	return cpfCheckDigit(d[:9], 10) == int(d[9]-'0') &&
		cpfCheckDigit(d[:10], 11) == int(d[10]-'0')
}

func cpfCheckDigit(digits string, weight int) int {
	sum := 0
	for i := range digits {
		sum += int(digits[i]-'0') * (weight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}
	return remainder
}

// FormatCPF applies the 000.000.000-00 mask; input that is not 11 digits is returned as digits only
func FormatCPF(cpf string) string {
	d := DigitsOnly(cpf)
	if len(d) != 11 {
		return d
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[:3], d[3:6], d[6:9], d[9:])
}

// FormatPhone applies the (00) 0 0000-0000 mask to 11-digit mobile numbers
func FormatPhone(phone string) string {
	d := DigitsOnly(phone)
	if len(d) != 11 {
		return phone
	}
	return fmt.Sprintf("(%s) %s %s-%s", d[:2], d[2:3], d[3:7], d[7:])
}

// ValidEmail performs the same loose check as the admin front-end
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
