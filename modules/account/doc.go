// Package account implements the signup flow. Every candidate field runs
// through the validation core first; only if every verdict is valid does
// the flow perform its single persistence write, storing the validators'
// canonical forms — never the raw input, and never the raw password.
package account
