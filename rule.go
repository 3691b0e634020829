package rulekit

// Rule is a single checkable condition bound to one target value and one
// field label. Implementations must keep Apply pure with respect to their
// own configuration: it may resolve the target (which can itself be a
// deferred computation) but must not reconfigure the rule.
type Rule interface {
	// Apply evaluates the condition and reports whether it is respected.
	Apply() bool

	// ErrorMessage returns the message recorded when Apply reported false.
	ErrorMessage() string

	// Label identifies the validated field in the outcome.
	Label() string

	// Halts reports whether a failure of this rule should stop the
	// enclosing rule sequence.
	Halts() bool
}

// Target holds the value under test, supplied either eagerly or as a
// zero-argument accessor resolved at check time. Deferred targets keep
// late-bound or currently-invalid attribute paths untouched until a rule
// actually needs the value.
type Target struct {
	value    any
	fn       func() any
	deferred bool
}

// Value wraps an already-computed value.
func Value(v any) Target { return Target{value: v} }

// Deferred wraps an accessor invoked on every Resolve call.
func Deferred(fn func() any) Target { return Target{fn: fn, deferred: true} }

// Resolve returns the eager value or invokes the deferred accessor.
func (t Target) Resolve() any {
	if t.deferred {
		return t.fn()
	}
	return t.value
}

// Default messages used by Check when no custom text is configured.
const (
	defaultMessage     = "data is invalid"
	defaultTypeMessage = "value is not of the expected type"
)

// Check is the leaf rule: a predicate over the resolved target. Every rule
// constructor in this package returns a Check; custom one-off conditions can
// build one directly.
//
// Guard, when set, is consulted before Test: a rejected value fails the
// check and switches the reported message to TypeMessage, so a wrong input
// type reads differently from a domain violation.
type Check struct {
	Target      Target
	Field       string
	Test        func(value any) bool
	Guard       func(value any) bool
	Message     string
	TypeMessage string
	Halt        bool

	typeMismatch bool
}

// Apply resolves the target and runs the guard and the test against it.
func (c *Check) Apply() bool {
	if c.Test == nil {
		panic(specErrorf("check %q has no test function", c.Field))
	}
	c.typeMismatch = false
	v := c.Target.Resolve()
	if c.Guard != nil && !c.Guard(v) {
		c.typeMismatch = true
		return false
	}
	return c.Test(v)
}

// ErrorMessage returns the type-mismatch text when the last failure was a
// guard rejection, and the domain text otherwise.
func (c *Check) ErrorMessage() string {
	if c.typeMismatch {
		if c.TypeMessage != "" {
			return c.TypeMessage
		}
		return defaultTypeMessage
	}
	if c.Message != "" {
		return c.Message
	}
	return defaultMessage
}

func (c *Check) Label() string { return c.Field }

func (c *Check) Halts() bool { return c.Halt }

// Negate inverts the evaluation result of r without altering its error
// message, label, or halting policy. It composes with any Rule, groups
// included.
func Negate(r Rule) Rule { return &negated{rule: r} }

type negated struct{ rule Rule }

func (n *negated) Apply() bool          { return !n.rule.Apply() }
func (n *negated) ErrorMessage() string { return n.rule.ErrorMessage() }
func (n *negated) Label() string        { return n.rule.Label() }
func (n *negated) Halts() bool          { return n.rule.Halts() }

// WithMessage replaces the message of r unconditionally: the custom text wins
// over both the domain default and the type-mismatch default.
func WithMessage(r Rule, message string) Rule {
	return &reworded{rule: r, message: message}
}

type reworded struct {
	rule    Rule
	message string
}

func (w *reworded) Apply() bool          { return w.rule.Apply() }
func (w *reworded) ErrorMessage() string { return w.message }
func (w *reworded) Label() string        { return w.rule.Label() }
func (w *reworded) Halts() bool          { return w.rule.Halts() }

// Halting marks r as short-circuiting: once it fails, no later rule in the
// enclosing pass is evaluated.
func Halting(r Rule) Rule { return &halting{rule: r} }

type halting struct{ rule Rule }

func (h *halting) Apply() bool          { return h.rule.Apply() }
func (h *halting) ErrorMessage() string { return h.rule.ErrorMessage() }
func (h *halting) Label() string        { return h.rule.Label() }
func (h *halting) Halts() bool          { return true }
