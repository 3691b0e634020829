package rulekit

import "fmt"

// RuleSource supplies the ordered rule list for one validation pass. It is
// implemented by the data model under validation (or by a closure over it via
// RuleSourceFunc). Building the list may read fields of not-yet-validated
// data and fail; the Validator records such a failure under BuildFailureLabel
// and runs no rules.
type RuleSource interface {
	Rules() ([]Rule, error)
}

// RuleSourceFunc adapts a plain function to RuleSource.
type RuleSourceFunc func() ([]Rule, error)

func (f RuleSourceFunc) Rules() ([]Rule, error) { return f() }

// Validator runs an ordered sequence of rules against one data model and
// aggregates every violation into an Outcome. Each Validate call builds a
// fresh rule list and a fresh outcome, so distinct validators (and repeated
// passes on the same one) are independent.
type Validator struct {
	source RuleSource
}

// New creates a validator over the given rule source. A nil source is a
// programming mistake and panics immediately.
func New(source RuleSource) *Validator {
	if source == nil {
		panic("rulekit: nil rule source")
	}
	return &Validator{source: source}
}

// NewFunc is shorthand for New(RuleSourceFunc(fn)).
func NewFunc(fn func() ([]Rule, error)) *Validator {
	return New(RuleSourceFunc(fn))
}

// Validate builds the rule list and applies each rule in order.
//
// Failure containment is two-tier. The rule list is built behind its own
// boundary: an error or panic there ends the pass with a single message under
// BuildFailureLabel. Each rule then runs behind a per-rule boundary: a panic
// during Apply is recorded under that rule's label as a failure of that one
// rule, and the pass moves on. A failed (or panicked) rule that halts ends
// the pass early. Only *SpecError panics propagate, because they indicate
// broken rule wiring rather than bad data.
func (v *Validator) Validate() *Outcome {
	outcome := NewOutcome()

	rules, err := buildRules(v.source)
	if err != nil {
		outcome.RecordError(err, nil)
		return outcome
	}

	for _, rule := range rules {
		ok, err := applyRule(rule)
		switch {
		case err != nil:
			outcome.RecordError(err, rule)
		case !ok:
			outcome.RecordFailure(rule)
		}
		if !ok && rule.Halts() {
			break
		}
	}

	return outcome
}

// Guard validates and runs fn only over a valid outcome. When validation
// fails, Guard returns a *ValidationFailure wrapping the outcome and fn never
// runs, so code inside fn can rely on the data being valid.
func (v *Validator) Guard(fn func() error) error {
	if outcome := v.Validate(); !outcome.Valid() {
		return &ValidationFailure{Outcome: outcome}
	}
	return fn()
}

// buildRules invokes the source behind the outer containment boundary.
func buildRules(source RuleSource) (rules []Rule, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if spec, ok := rec.(*SpecError); ok {
				panic(spec)
			}
			rules, err = nil, recoveredError(rec)
		}
	}()
	return source.Rules()
}

// applyRule runs r.Apply behind the per-rule containment boundary. A panic
// counts as a failure of that rule and is returned as an error; *SpecError
// panics are re-raised.
func applyRule(r Rule) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if spec, isSpec := rec.(*SpecError); isSpec {
				panic(spec)
			}
			ok, err = false, recoveredError(rec)
		}
	}()
	return r.Apply(), nil
}

func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
