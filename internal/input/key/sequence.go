package key

import (
	"strings"
)

// Sequence represents an ordered series of key events awaiting resolution
// into an editing operation. Examples: "C-x C-c" (quit), "C-w n" (next
// window).
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Events: make([]Event, 0, 4), // Most sequences are short
	}
}

// NewSequenceFrom creates a sequence from the given events.
func NewSequenceFrom(events ...Event) *Sequence {
	return &Sequence{
		Events: events,
	}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// Clear removes all events from the sequence.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// String returns a human-readable representation with events separated
// by spaces. Examples: "C-x C-c", "C-w n", "g".
func (s *Sequence) String() string {
	if len(s.Events) == 0 {
		return ""
	}

	parts := make([]string, len(s.Events))
	for i, e := range s.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if e != other.Events[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Events) > len(s.Events) {
		return false
	}
	for i, e := range prefix.Events {
		if e != s.Events[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return &Sequence{Events: events}
}

// ParseSequence parses a space-separated key sequence specification.
// Examples: "C-x C-c", "C-w n", "g", "A-g".
func ParseSequence(spec string) (*Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return NewSequence(), nil
	}

	seq := NewSequence()
	for _, part := range strings.Fields(spec) {
		event, err := Parse(part)
		if err != nil {
			return nil, err
		}
		seq.Add(event)
	}
	return seq, nil
}

// MustParseSequence parses a sequence spec and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(spec string) *Sequence {
	seq, err := ParseSequence(spec)
	if err != nil {
		panic("invalid key sequence: " + spec + ": " + err.Error())
	}
	return seq
}
