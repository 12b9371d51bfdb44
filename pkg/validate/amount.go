package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount bounds in cents. The closed range [0.01, 10000.00] applies to
// every amount-accepting operation.
const (
	minAmountCents int64 = 1
	maxAmountCents int64 = 1000000
)

// AmountVerdict extends Verdict with the fixed-point cent count callers
// must use for balance arithmetic. Normalized carries the zero-padded
// two-decimal string form of the same value.
type AmountVerdict struct {
	Verdict
	Cents int64
}

func amountFail(code Code, message string) AmountVerdict {
	return AmountVerdict{Verdict: fail(code, message)}
}

// Amount parses and canonicalizes a monetary amount. Only digits and a
// single decimal point are accepted: no currency symbols, no thousands
// separators, no sign. A leading zero is permitted only when the whole
// part is exactly "0", so "0.50" passes while "00.50" and "01" do not.
func Amount(raw string) AmountVerdict {
	s := strings.TrimSpace(raw)
	if s == "" {
		return amountFail(CodeRequired, "amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return amountFail(CodeRange, "amount cannot be negative")
	}

	whole, frac, valid := splitAmount(s)
	if !valid {
		return amountFail(CodeFormat, "amount may contain only digits and a single decimal point")
	}
	if whole == "" || (strings.Contains(s, ".") && frac == "") {
		return amountFail(CodeFormat, "amount must have digits on both sides of the decimal point")
	}
	if len(frac) > 2 {
		return amountFail(CodeFormat, "amount cannot have more than two digits after the decimal point")
	}
	if len(whole) > 1 && whole[0] == '0' {
		return amountFail(CodeLeadingZero, "amount cannot have unnecessary leading zeros")
	}
	if len(whole) > 5 {
		return amountFail(CodeRange, "amount cannot exceed 10000.00")
	}

	// Both parts are short digit-only strings at this point, so ParseInt
	// cannot fail or overflow.
	wholeVal, _ := strconv.ParseInt(whole, 10, 64)
	cents := wholeVal * 100
	switch len(frac) {
	case 1:
		fracVal, _ := strconv.ParseInt(frac, 10, 64)
		cents += fracVal * 10
	case 2:
		fracVal, _ := strconv.ParseInt(frac, 10, 64)
		cents += fracVal
	}

	if cents < minAmountCents {
		return amountFail(CodeRange, "amount must be at least 0.01")
	}
	if cents > maxAmountCents {
		return amountFail(CodeRange, "amount cannot exceed 10000.00")
	}

	return AmountVerdict{
		Verdict: ok(FormatCents(cents)),
		Cents:   cents,
	}
}

// FormatCents renders a cent count as the canonical two-decimal string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// splitAmount separates the whole and fractional parts, rejecting any
// character other than digits and a single decimal point.
func splitAmount(s string) (whole, frac string, valid bool) {
	dots := 0
	dotAt := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '.':
			dots++
			dotAt = i
		default:
			return "", "", false
		}
	}
	if dots > 1 {
		return "", "", false
	}
	if dots == 0 {
		return s, "", true
	}
	return s[:dotAt], s[dotAt+1:], true
}
