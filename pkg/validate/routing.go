package validate

import "strings"

// abaWeights are the positional weights of the ABA routing checksum.
var abaWeights = [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}

// RoutingNumber validates a 9-digit ABA routing number. Normalization is
// limited to trimming surrounding whitespace; the digit string itself is
// never reshaped. The checksum-degenerate values 000000000 and 999999999
// satisfy the arithmetic but correspond to no real institution and are
// rejected explicitly.
func RoutingNumber(raw string) Verdict {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fail(CodeRequired, "routing number is required")
	}
	if len(s) != 9 {
		return fail(CodeFormat, "routing number must be exactly 9 digits")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fail(CodeFormat, "routing number must be exactly 9 digits")
		}
	}

	if s == "000000000" || s == "999999999" {
		return fail(CodeRange, "routing number does not identify a real institution")
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(s[i]-'0') * abaWeights[i]
	}
	if sum%10 != 0 {
		return fail(CodeChecksum, "routing number failed checksum validation")
	}

	return ok(s)
}
