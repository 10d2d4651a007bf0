// Package contract provides composable, immutable validators for function
// parameters.
//
// A Validator checks one property of a (method, parameter, value) triple and
// returns a *Violation when the value does not satisfy it. Validators are
// combined into a Chain: an ordered AND-composition that stops at the first
// failure. Chains are assembled once, at definition time, and never change
// afterwards, so they are safe to share between goroutines.
//
// # Building blocks
//
//   - Root            – always passes; terminates every chain
//   - Type / TypeOf   – runtime type checks (Integer, Float, String built in)
//   - Positive        – numbers greater than zero
//   - Negative        – numbers less than zero
//   - NonEmpty        – strings, slices, arrays, maps and channels with elements
//   - Membership      – String followed by a check against a legal value set
//   - Range           – Integer or Float followed by an inclusive bounds check
//
// Composite contracts place the type check first and the value-shape check
// second. PositiveInteger, for example, rejects 3.0 with a type violation
// before the sign is ever examined.
//
// # Usage
//
//	level := contract.MustRange("log level", 0, 7)
//	color := contract.MustMembership("color", "red", "green", "blue")
//
//	if err := level.Check("SetLevel", "level", 9); err != nil {
//	    // [SetLevel]: '9' is not in legal log level range of [0, 7]
//	}
//
// # Error Handling
//
// Every failure is a *Violation. It matches ErrContractViolation with
// errors.Is and carries a TranslationKey ("contract.<constraint>") with
// TranslationValues for localized rendering.
//
// Positive, Negative and NonEmpty guard their own preconditions: a value that
// cannot be ordered or measured fails with an "orderable" or "sized"
// violation instead of panicking.
package contract
