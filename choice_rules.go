package rulekit

import "fmt"

// OneOf builds a membership check against the allowed choices. Comparison
// uses ==, so uncomparable choice or target types panic at evaluation time
// and are contained by the enclosing pass like any other evaluation error.
func OneOf(choices ...any) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Test: func(v any) bool {
				for _, choice := range choices {
					if v == choice {
						return true
					}
				}
				return false
			},
			Message: fmt.Sprintf("must be one of: %v", choices),
		}
	}
}

// NoneOf builds the complement of OneOf: the target must not equal any of
// the forbidden values.
func NoneOf(forbidden ...any) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Test: func(v any) bool {
				for _, f := range forbidden {
					if v == f {
						return false
					}
				}
				return true
			},
			Message: fmt.Sprintf("must not be one of: %v", forbidden),
		}
	}
}
