package rulekit

import (
	"fmt"
	"reflect"
	"strings"
)

// NonEmptyString passes when the target is a string with at least one
// non-whitespace character.
func NonEmptyString(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isString,
		Test: func(v any) bool {
			return strings.TrimSpace(v.(string)) != ""
		},
		Message:     "invalid or empty string",
		TypeMessage: "value is not a string",
	}
}

// MinLen builds a check that the target's length is at least min. Length is
// measured over strings, slices, arrays, and maps.
func MinLen(min int) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  hasLength,
			Test: func(v any) bool {
				return lengthOf(v) >= min
			},
			Message:     fmt.Sprintf("must have a length of at least %d", min),
			TypeMessage: "value has no length",
		}
	}
}

// MaxLen builds a check that the target's length is at most max.
func MaxLen(max int) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  hasLength,
			Test: func(v any) bool {
				return lengthOf(v) <= max
			},
			Message:     fmt.Sprintf("must have a length of at most %d", max),
			TypeMessage: "value has no length",
		}
	}
}

// LenBetween builds a check that the target's length falls within the
// inclusive [min, max] range.
func LenBetween(min, max int) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  hasLength,
			Test: func(v any) bool {
				n := lengthOf(v)
				return n >= min && n <= max
			},
			Message:     fmt.Sprintf("must have a length between %d and %d", min, max),
			TypeMessage: "value has no length",
		}
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func hasLength(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

func lengthOf(v any) int {
	return reflect.ValueOf(v).Len()
}
