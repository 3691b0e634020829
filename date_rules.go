package rulekit

import (
	"fmt"
	"time"
)

// TimeBefore builds a check that the target time is strictly before t.
func TimeBefore(t time.Time) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isTime,
			Test: func(v any) bool {
				return v.(time.Time).Before(t)
			},
			Message:     fmt.Sprintf("date must be before %s", t.Format("2006-01-02")),
			TypeMessage: "value is not a time",
		}
	}
}

// TimeAfter builds a check that the target time is strictly after t.
func TimeAfter(t time.Time) Builder {
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isTime,
			Test: func(v any) bool {
				return v.(time.Time).After(t)
			},
			Message:     fmt.Sprintf("date must be after %s", t.Format("2006-01-02")),
			TypeMessage: "value is not a time",
		}
	}
}

// PastTime passes when the target time is in the past at evaluation time.
func PastTime(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isTime,
		Test: func(v any) bool {
			return v.(time.Time).Before(time.Now())
		},
		Message:     "date must be in the past",
		TypeMessage: "value is not a time",
	}
}

// FutureTime passes when the target time is in the future at evaluation time.
func FutureTime(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isTime,
		Test: func(v any) bool {
			return v.(time.Time).After(time.Now())
		},
		Message:     "date must be in the future",
		TypeMessage: "value is not a time",
	}
}

func isTime(v any) bool {
	_, ok := v.(time.Time)
	return ok
}
