package rulekit

import (
	"fmt"
	"reflect"
)

// OfType builds a check that the target's dynamic type is assignable to T.
// The type assertion is the whole condition here, so a mismatch reports the
// rule's own message rather than the generic type-mismatch text.
func OfType[T any]() Builder {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Test: func(v any) bool {
				_, ok := v.(T)
				return ok
			},
			Message: fmt.Sprintf("value is not of type %s", name),
		}
	}
}

// NotNil passes when the target is neither a nil interface nor a typed nil
// pointer, map, slice, channel, or function.
func NotNil(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Test: func(v any) bool {
			if v == nil {
				return false
			}
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
				return !rv.IsNil()
			default:
				return true
			}
		},
		Message: "value must not be nil",
	}
}
