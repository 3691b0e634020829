// Package rulekit is a declarative, composable data-validation engine: given
// a data model and an ordered list of rules, it determines whether the model
// is valid and, if not, produces a structured per-field report of every
// violation.
//
// # Architecture
//
// The engine is built from four pieces:
//
//   - Rule              – a single checkable condition bound to one target
//     value and one field label
//   - Group             – a composite Rule applying child rule specifications
//     to a shared target, short-circuiting on first failure
//   - Outcome           – per-label error messages aggregated across one pass
//   - Validator         – the orchestrator running the rule sequence and
//     applying the stop/continue and failure-containment policies
//
// Data flows one way, target to rule to outcome, with no shared mutable
// state between rules. Each Validate call builds its own rule list and its
// own Outcome, so the package has no hidden global state and concurrent
// callers validating different models need no coordination.
//
// # Usage
//
//	v := rulekit.NewFunc(func() ([]rulekit.Rule, error) {
//		return []rulekit.Rule{
//			rulekit.NonEmptyString(rulekit.Value(user.Name), "name"),
//			rulekit.Min(18)(rulekit.Value(user.Age), "age"),
//			rulekit.ValidEmail(rulekit.Deferred(func() any { return user.Contact.Email }), "email"),
//		}, nil
//	})
//
//	outcome := v.Validate()
//	if !outcome.Valid() {
//		for _, label := range outcome.Labels() {
//			fmt.Println(label, outcome.Messages(label))
//		}
//	}
//
// Rules over one field can be grouped; a Group satisfies Rule, so groups
// nest and negate like leaves:
//
//	rulekit.NewGroup(rulekit.Value(user.Name), "name",
//		rulekit.Use(rulekit.NonEmptyString),
//		rulekit.UseWith(rulekit.MinLen(3), rulekit.Options{"message": "name is too short"}),
//	)
//
// # Error Handling
//
// Failure containment is two-tier. An error (or panic) while building the
// rule list ends the pass immediately with a single message under
// BuildFailureLabel. A panic inside one rule's Apply is recorded under that
// rule's label and the pass continues with the next rule. The only panic
// allowed through is *SpecError, raised for malformed Group specifications:
// that is a programming mistake in rule wiring, not a data problem.
//
// Guard converts an invalid outcome into a *ValidationFailure error so
// dependent code runs only over valid data:
//
//	err := v.Guard(func() error {
//		return store.Save(user) // runs only when the outcome is valid
//	})
//
// # Performance Considerations
//
// Rules are plain closures over already-typed parameters; evaluation is
// strictly sequential and allocation-light. Expensive checks (database
// lookups, network calls) should live outside this package and be adapted
// into a Rule where appropriate.
package rulekit
