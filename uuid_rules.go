package rulekit

import (
	"github.com/google/uuid"
)

// ValidUUID passes when the target is a string in canonical UUID form. Length
// and hyphen positions are checked before parsing to keep the common
// rejection path cheap.
func ValidUUID(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isString,
		Test: func(v any) bool {
			s := v.(string)
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		Message:     "must be a valid UUID",
		TypeMessage: "value is not a string",
	}
}

// NonNilUUID passes when the target is a uuid.UUID different from uuid.Nil.
func NonNilUUID(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard: func(v any) bool {
			_, ok := v.(uuid.UUID)
			return ok
		},
		Test: func(v any) bool {
			return v.(uuid.UUID) != uuid.Nil
		},
		Message:     "UUID cannot be nil",
		TypeMessage: "value is not a UUID",
	}
}
