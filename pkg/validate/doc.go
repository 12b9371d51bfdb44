// Package validate provides the deterministic input validation and
// normalization core for onboarding and funding operations: monetary
// amounts, payment card numbers, ABA routing numbers, NANP phone numbers,
// passwords and US state codes.
//
// Every validator is a pure function mapping a raw string to a Verdict — a
// pass/fail flag plus an optional canonical form and a typed error code.
// Validators never return Go errors for malformed user input; a typed
// verdict is produced in every case. The same function backs every call
// site (interactive and programmatic), so the rules cannot drift apart.
//
// # Architecture
//
// Each source file holds one validator (`amount.go`, `card.go`, `phone.go`,
// etc.). There is no shared mutable state, no I/O and no time dependence;
// all validators are safe for concurrent use and complete in time bounded
// by the input length.
//
// # Usage
//
//	v := validate.Phone("(202) 555-1234")
//	if !v.Valid {
//	    // v.Code, v.Message describe the failure
//	}
//	canonical := v.Normalized // "+12025551234"
//
// Flows that validate several fields at once collect verdicts into a
// FieldErrors value, which implements the error interface:
//
//	errs := validate.FieldErrors{}
//	errs.Put("phone", validate.Phone(req.Phone))
//	errs.Put("state", validate.StateCode(req.State))
//	if !errs.IsEmpty() {
//	    return errs
//	}
package validate
