package isocode

import (
	"fmt"
	"strconv"
	"strings"
)

// IsAlpha2 reports whether raw is exactly two ASCII letters. Case is ignored.
func IsAlpha2(raw string) bool {
	return isLetters(raw, 2)
}

// IsAlpha3 reports whether raw is exactly three ASCII letters. Case is ignored.
func IsAlpha3(raw string) bool {
	return isLetters(raw, 3)
}

// IsNumeric reports whether raw is one to three ASCII digits.
func IsNumeric(raw string) bool {
	if len(raw) == 0 || len(raw) > NumericWidth {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// Matches reports whether raw has the shape of form.
func Matches(raw string, form Form) bool {
	switch form {
	case FormAlpha2:
		return IsAlpha2(raw)
	case FormAlpha3:
		return IsAlpha3(raw)
	case FormNumeric:
		return IsNumeric(raw)
	}
	return false
}

// Detect guesses the form of raw from its shape alone.
func Detect(raw string) (Form, bool) {
	raw = Normalize(raw)
	switch {
	case IsAlpha2(raw):
		return FormAlpha2, true
	case IsAlpha3(raw):
		return FormAlpha3, true
	case IsNumeric(raw):
		return FormNumeric, true
	}
	return 0, false
}

// Normalize trims surrounding whitespace and upper-cases raw.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FormatNumeric renders n zero-padded to NumericWidth digits.
func FormatNumeric(n uint16) string {
	return fmt.Sprintf("%0*d", NumericWidth, n)
}

// canonical returns the registry key for an already shape-checked value.
func canonical(value string, form Form) string {
	if form != FormNumeric {
		return value
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	return FormatNumeric(uint16(n))
}

func isLetters(raw string, n int) bool {
	if len(raw) != n {
		return false
	}
	for i := 0; i < n; i++ {
		c := raw[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
