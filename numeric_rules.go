package rulekit

import "fmt"

// Numeric constrains the bound parameters of the numeric rule builders.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min builds a check that the target is a number greater than or equal to min.
func Min[T Numeric](min T) Builder {
	bound := float64(min)
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isNumber,
			Test: func(v any) bool {
				n, _ := numberOf(v)
				return n >= bound
			},
			Message:     fmt.Sprintf("must be at least %v", min),
			TypeMessage: "value is not a number",
		}
	}
}

// Max builds a check that the target is a number less than or equal to max.
func Max[T Numeric](max T) Builder {
	bound := float64(max)
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isNumber,
			Test: func(v any) bool {
				n, _ := numberOf(v)
				return n <= bound
			},
			Message:     fmt.Sprintf("must be at most %v", max),
			TypeMessage: "value is not a number",
		}
	}
}

// Between builds a check that the target falls within the inclusive
// [min, max] range.
func Between[T Numeric](min, max T) Builder {
	lo, hi := float64(min), float64(max)
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isNumber,
			Test: func(v any) bool {
				n, _ := numberOf(v)
				return n >= lo && n <= hi
			},
			Message:     fmt.Sprintf("must be between %v and %v", min, max),
			TypeMessage: "value is not a number",
		}
	}
}

// numberOf coerces any built-in numeric kind to float64 for comparison.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func isNumber(v any) bool {
	_, ok := numberOf(v)
	return ok
}
