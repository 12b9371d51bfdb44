package validate

import "strings"

var (
	// tollFreeAreaCodes cannot receive signup verification calls and are
	// rejected as contact numbers.
	tollFreeAreaCodes = map[string]bool{
		"800": true, "833": true, "844": true, "855": true,
		"866": true, "877": true, "888": true,
	}

	// degeneratePhones are repdigit strings that pass no carrier's
	// numbering plan despite having ten digits.
	degeneratePhones = map[string]bool{
		"0000000000": true,
		"1111111111": true,
	}
)

// Phone validates a North American (NANP) phone number supplied in any
// common presentation — raw digits, dashes, dots, parentheses, spaces,
// leading 1 or leading +1 — and normalizes it to the canonical
// "+1" + 10 digits form. Every accepted presentation of the same number
// produces an identical canonical form.
func Phone(raw string) Verdict {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fail(CodeRequired, "phone number is required")
	}

	// An explicit international prefix with a country code other than 1
	// is a recognizable non-NANP number, not a formatting mistake.
	if strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "+1") {
		return fail(CodeUnsupported, "only North American (+1) phone numbers are accepted")
	}

	digits := stripNonDigits(s)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) < 10 {
		return fail(CodeFormat, "phone number has too few digits")
	}
	if len(digits) > 10 {
		return fail(CodeFormat, "phone number has too many digits")
	}

	if degeneratePhones[digits] {
		return fail(CodeFormat, "phone number is not a real number")
	}

	area := digits[:3]
	exchange := digits[3:6]

	if area[0] == '0' || area[0] == '1' {
		return fail(CodeUnsupported, "area code cannot start with 0 or 1")
	}
	if isN11(area) {
		return fail(CodeUnsupported, "area code cannot be an N11 service code")
	}
	if tollFreeAreaCodes[area] {
		return fail(CodeUnsupported, "toll-free numbers are not accepted")
	}
	if area == "900" {
		return fail(CodeUnsupported, "premium-rate numbers are not accepted")
	}

	if exchange[0] == '0' || exchange[0] == '1' {
		return fail(CodeUnsupported, "exchange code cannot start with 0 or 1")
	}
	// 555 is reserved for fictional use and deliberately allowed.
	if exchange != "555" && isN11(exchange) {
		return fail(CodeUnsupported, "exchange code cannot be an N11 service code")
	}

	return ok("+1" + digits)
}

// isN11 reports whether a 3-digit code has the reserved N11 shape
// (211, 311, ... 911).
func isN11(code string) bool {
	return code[1] == '1' && code[2] == '1'
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
