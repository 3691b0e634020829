package rulekit

// Builder constructs a rule bound to a target and a label. Parameterless
// checks such as NonEmptyString are Builders themselves; parameterized checks
// such as MinLen return one.
type Builder func(target Target, label string) Rule

// Options carries per-child overrides for a configured Spec. Supported keys:
//
//   - "message" (string): replaces the child's failure message
//   - "halt" (bool): marks the child as short-circuiting
//
// An unknown key or a mistyped value is a wiring mistake and panics with
// *SpecError when the group is applied.
type Options map[string]any

// Spec names one child rule of a Group: either a bare constructor or a
// constructor paired with option overrides. Specs are resolved lazily, each
// time the group is applied, against the group's own target and label.
type Spec struct {
	build      Builder
	opts       Options
	configured bool
}

// Use declares a child built with the group's target and label as-is.
func Use(build Builder) Spec { return Spec{build: build} }

// UseWith declares a child with per-child option overrides merged in.
func UseWith(build Builder, opts Options) Spec {
	return Spec{build: build, opts: opts, configured: true}
}

// Group applies an ordered list of child rule specifications to one shared
// target as if they were a single rule, short-circuiting at the first failing
// or panicking child. It satisfies Rule, so groups nest inside other groups
// and negate like leaves.
type Group struct {
	target Target
	label  string
	specs  []Spec

	failed Rule
}

func NewGroup(target Target, label string, specs ...Spec) *Group {
	return &Group{target: target, label: label, specs: specs}
}

// Apply resolves and evaluates each child in order. A child that returns
// false or panics fails the whole group immediately; the group remembers it
// so ErrorMessage can delegate. Malformed specs surface as *SpecError panics
// at resolution time, independent of the target value.
func (g *Group) Apply() bool {
	g.failed = nil
	for i := range g.specs {
		child := g.resolve(i)
		if ok, _ := applyRule(child); !ok {
			g.failed = child
			return false
		}
	}
	return true
}

// ErrorMessage delegates to the child that caused the last failure.
func (g *Group) ErrorMessage() string {
	if g.failed != nil {
		return g.failed.ErrorMessage()
	}
	return defaultMessage
}

func (g *Group) Label() string { return g.label }

func (g *Group) Halts() bool { return false }

func (g *Group) resolve(i int) Rule {
	spec := g.specs[i]
	if spec.build == nil {
		panic(specErrorf("spec %d of group %q has no constructor", i, g.label))
	}
	child := spec.build(g.target, g.label)
	if child == nil {
		panic(specErrorf("spec %d of group %q built a nil rule", i, g.label))
	}
	if !spec.configured {
		return child
	}
	for key, value := range spec.opts {
		switch key {
		case "message":
			msg, ok := value.(string)
			if !ok {
				panic(specErrorf("spec %d of group %q: option %q wants a string, got %T", i, g.label, key, value))
			}
			child = WithMessage(child, msg)
		case "halt":
			flag, ok := value.(bool)
			if !ok {
				panic(specErrorf("spec %d of group %q: option %q wants a bool, got %T", i, g.label, key, value))
			}
			if flag {
				child = Halting(child)
			}
		default:
			panic(specErrorf("spec %d of group %q: unknown option %q", i, g.label, key))
		}
	}
	return child
}
