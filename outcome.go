package rulekit

import (
	"strconv"
	"strings"
)

// Outcome accumulates labeled failure messages for one validation pass. A
// label collects multiple messages when several rules target it. Labels keep
// first-failure order and messages within a label keep evaluation order, so
// reports are deterministic.
//
// An Outcome is owned by the Validate call that produced it and must not be
// shared across passes.
type Outcome struct {
	labels   []string
	messages map[string][]string
}

func NewOutcome() *Outcome {
	return &Outcome{messages: make(map[string][]string)}
}

// RecordFailure appends r's error message under r's label.
func (o *Outcome) RecordFailure(r Rule) {
	o.append(r.Label(), r.ErrorMessage())
}

// RecordError appends err's text under r's label, or under BuildFailureLabel
// when no rule is associated with the error.
func (o *Outcome) RecordError(err error, r Rule) {
	label := BuildFailureLabel
	if r != nil {
		label = r.Label()
	}
	o.append(label, err.Error())
}

func (o *Outcome) append(label, message string) {
	if _, ok := o.messages[label]; !ok {
		o.labels = append(o.labels, label)
	}
	o.messages[label] = append(o.messages[label], message)
}

// Valid reports whether the pass recorded no failures at all.
func (o *Outcome) Valid() bool { return len(o.labels) == 0 }

// Labels returns the failed labels in first-failure order.
func (o *Outcome) Labels() []string {
	out := make([]string, len(o.labels))
	copy(out, o.labels)
	return out
}

// Messages returns the messages recorded under label, in evaluation order.
func (o *Outcome) Messages(label string) []string {
	msgs, ok := o.messages[label]
	if !ok {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Errors returns a copy of the whole label to messages mapping.
func (o *Outcome) Errors() map[string][]string {
	out := make(map[string][]string, len(o.messages))
	for label, msgs := range o.messages {
		out[label] = append([]string(nil), msgs...)
	}
	return out
}

// String renders the outcome as {"errors": {label: [messages...]}} with
// labels in first-failure order and messages in evaluation order. The
// encoding/json package cannot be used here: it sorts map keys and would lose
// the failure ordering.
func (o *Outcome) String() string {
	var b strings.Builder
	b.WriteString(`{"errors": {`)
	for i, label := range o.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(label))
		b.WriteString(": [")
		for j, msg := range o.messages[label] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(msg))
		}
		b.WriteByte(']')
	}
	b.WriteString("}}")
	return b.String()
}
