package rulekit

import "fmt"

// BuildFailureLabel is the reserved outcome label for errors raised while the
// rule list itself was being built, before any rule ran.
const BuildFailureLabel = "_rules"

// ValidationFailure is returned by Guard when the outcome is not valid. It
// wraps the full outcome so callers can inspect per-field messages with
// errors.As.
type ValidationFailure struct {
	Outcome *Outcome
}

func (e *ValidationFailure) Error() string {
	return "data did not validate: " + e.Outcome.String()
}

// SpecError reports a malformed rule specification in a Group. It signals a
// programming mistake in rule wiring, not a data problem, so it is raised as
// a panic at resolution time and is never absorbed into an Outcome.
type SpecError struct {
	Reason string
}

func (e *SpecError) Error() string { return "invalid rule spec: " + e.Reason }

func specErrorf(format string, args ...any) *SpecError {
	return &SpecError{Reason: fmt.Sprintf(format, args...)}
}
