package validate

import "strings"

// stateCodes is the fixed whitelist of 55 postal codes: 50 states, the
// federal district, and 5 territories. Membership is decided by lookup,
// never by shape alone — a regex cannot tell "CA" from "XX".
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"DC": true,
	"AS": true, "GU": true, "MP": true, "PR": true, "VI": true,
}

// StateCode validates a US state, district or territory postal code and
// normalizes it to two uppercase letters.
func StateCode(raw string) Verdict {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return fail(CodeRequired, "state is required")
	}
	if len(s) != 2 || !isAlpha(s) {
		return fail(CodeFormat, "state must be a two-letter code")
	}
	if !stateCodes[s] {
		return fail(CodeUnsupported, "state code is not a US state or territory")
	}
	return ok(s)
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
