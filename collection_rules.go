package rulekit

import "reflect"

// NonEmptySlice passes when the target is a slice or array with at least one
// element.
func NonEmptySlice(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isSequence,
		Test: func(v any) bool {
			return reflect.ValueOf(v).Len() > 0
		},
		Message:     "must not be empty",
		TypeMessage: "value is not a slice",
	}
}

// UniqueElements passes when no two elements of the target slice or array are
// equal. Elements must be usable as map keys; an uncomparable element type
// panics at evaluation time and is contained by the enclosing pass.
func UniqueElements(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isSequence,
		Test: func(v any) bool {
			rv := reflect.ValueOf(v)
			seen := make(map[any]struct{}, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				e := rv.Index(i).Interface()
				if _, dup := seen[e]; dup {
					return false
				}
				seen[e] = struct{}{}
			}
			return true
		},
		Message:     "elements must be unique",
		TypeMessage: "value is not a slice",
	}
}

func isSequence(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
