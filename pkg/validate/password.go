package validate

import (
	"regexp"
	"strings"
)

const passwordMinLength = 8

var (
	passwordUppercaseRegex = regexp.MustCompile(`[A-Z]`)
	passwordLowercaseRegex = regexp.MustCompile(`[a-z]`)
	passwordDigitRegex     = regexp.MustCompile(`[0-9]`)
	passwordSpecialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	// 4-digit runs in ascending (0123 through 7890) and descending
	// (9876 through 3210) order. Telephone-keypad habits make these the
	// most common filler sequences in rejected passwords.
	ascendingDigitRuns = []string{
		"0123", "1234", "2345", "3456", "4567", "5678", "6789", "7890",
	}
	descendingDigitRuns = []string{
		"9876", "8765", "7654", "6543", "5432", "4321", "3210",
	}

	// keyboardRuns holds every 5-character window of the three QWERTY
	// letter rows. The blocklist is tuned to a QWERTY, English-alphabet
	// layout; other layouts are not covered.
	keyboardRuns = keyboardRowFragments()
)

func keyboardRowFragments() []string {
	rows := []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	var fragments []string
	for _, row := range rows {
		for i := 0; i+5 <= len(row); i++ {
			fragments = append(fragments, row[i:i+5])
		}
	}
	return fragments
}

// Password checks a password against the full policy. The input is never
// transformed or echoed back; the verdict carries no normalized form since
// only a derived hash may ever be persisted. The first failing predicate
// determines the reported message; every failure uses the POLICY code.
func Password(raw string) Verdict {
	if raw == "" {
		return fail(CodeRequired, "password is required")
	}
	if len(raw) < passwordMinLength {
		return fail(CodePolicy, "password must be at least 8 characters long")
	}
	if !passwordUppercaseRegex.MatchString(raw) {
		return fail(CodePolicy, "password must contain at least one uppercase letter")
	}
	if !passwordLowercaseRegex.MatchString(raw) {
		return fail(CodePolicy, "password must contain at least one lowercase letter")
	}
	if !passwordDigitRegex.MatchString(raw) {
		return fail(CodePolicy, "password must contain at least one digit")
	}
	if !passwordSpecialRegex.MatchString(raw) {
		return fail(CodePolicy, "password must contain at least one special character")
	}

	lowered := strings.ToLower(raw)

	for _, run := range ascendingDigitRuns {
		if strings.Contains(raw, run) {
			return fail(CodePolicy, "password cannot contain sequential digits")
		}
	}
	for _, run := range descendingDigitRuns {
		if strings.Contains(raw, run) {
			return fail(CodePolicy, "password cannot contain sequential digits")
		}
	}

	for _, run := range keyboardRuns {
		if strings.Contains(lowered, run) {
			return fail(CodePolicy, "password cannot contain keyboard patterns")
		}
	}

	if hasAlphabeticRun(lowered, 4) {
		return fail(CodePolicy, "password cannot contain sequential letters")
	}

	if hasRepeatedChar(raw, 4) {
		return fail(CodePolicy, "password cannot repeat the same character 4 or more times")
	}

	return Verdict{Valid: true}
}

// hasAlphabeticRun reports whether s contains n consecutive ascending
// lowercase letters (e.g. "abcd"). Callers lowercase the input first to
// make the check case-insensitive.
func hasAlphabeticRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] >= 'b' && s[i] <= 'z' && s[i] == s[i-1]+1 {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasRepeatedChar reports whether any single character appears n or more
// times consecutively.
func hasRepeatedChar(s string, n int) bool {
	count := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 1
		}
	}
	return false
}
