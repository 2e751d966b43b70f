// Package amount detects monetary amounts in free-form chat messages.
// Detection is deliberately conservative: a number counts as an amount only
// when it carries currency context (symbol or currency word) or when the
// message is nothing but a number, so counts like "2 perros" are not
// mistaken for donations.
package amount

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "$500", "$ 1.000", "USD 1,000", "ars$300"
	symbolAmount = regexp.MustCompile(`(?i)(?:\$|usd|ars|u\$s)\s*\d[\d.,]*`)

	// "1000 pesos", "50 dólares", "20 dollars", "100 reais"
	wordAmount = regexp.MustCompile(`(?i)\d[\d.,]*\s*(?:pesos?|d[oó]lares?|dollars?|reais|euros?|usd|ars)\b`)

	// a message that is only a number, e.g. "500" in reply to an amount prompt
	bareNumber = regexp.MustCompile(`^\s*\$?\s*\d[\d.,]*\s*$`)

	digits = regexp.MustCompile(`\d[\d.,]*`)
)

// Detect reports whether text states a monetary amount.
func Detect(text string) bool {
	if text == "" {
		return false
	}
	return symbolAmount.MatchString(text) ||
		wordAmount.MatchString(text) ||
		bareNumber.MatchString(text)
}

// Find extracts the first stated amount as an integer value in whole
// currency units. Thousands separators ("." and ",") are stripped; a trailing
// two-digit group after a separator is treated as decimals and truncated.
// ok is false when no amount is present.
func Find(text string) (value int, ok bool) {
	if !Detect(text) {
		return 0, false
	}
	raw := digits.FindString(text)
	if raw == "" {
		return 0, false
	}

	normalized := normalizeNumber(raw)
	v, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeNumber collapses "1.000" / "1,000" / "1.000,50" to "1000".
func normalizeNumber(raw string) string {
	// A final separator followed by exactly two digits is a decimal part.
	if len(raw) > 3 {
		tail := raw[len(raw)-3]
		if tail == '.' || tail == ',' {
			raw = raw[:len(raw)-3]
		}
	}
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", "")
	return raw
}

// InAny reports whether any of the given texts states an amount.
func InAny(texts []string) bool {
	for _, t := range texts {
		if Detect(t) {
			return true
		}
	}
	return false
}
