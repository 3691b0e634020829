package rulekit

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Match builds a check that the target string matches pattern. The pattern is
// compiled once when the builder is created; an invalid pattern panics, the
// same contract as regexp.MustCompile.
func Match(pattern string) Builder {
	re := regexp.MustCompile(pattern)
	return func(target Target, label string) Rule {
		return &Check{
			Target: target,
			Field:  label,
			Guard:  isString,
			Test: func(v any) bool {
				return re.MatchString(v.(string))
			},
			Message:     "value does not match expected pattern",
			TypeMessage: "value is not a string",
		}
	}
}

// ValidEmail passes when the target is a single well-formed email address.
func ValidEmail(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isString,
		Test: func(v any) bool {
			s := v.(string)
			if strings.TrimSpace(s) == "" {
				return false
			}
			addr, err := mail.ParseAddress(s)
			// Reject the "Name <addr>" form: only a bare address counts.
			return err == nil && addr.Address == s
		},
		Message:     "must be a valid email address",
		TypeMessage: "value is not a string",
	}
}

// ValidURL passes when the target is an absolute URL with a scheme and host.
func ValidURL(target Target, label string) Rule {
	return &Check{
		Target: target,
		Field:  label,
		Guard:  isString,
		Test: func(v any) bool {
			u, err := url.Parse(v.(string))
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Message:     "must be a valid URL",
		TypeMessage: "value is not a string",
	}
}
