package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press event.
//
// Events are plain values compared with ==: two events are the same
// keystroke when key, rune, and modifiers all match.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// None is the idle sentinel event produced when no input arrives within
// the keyboard's poll interval.
var None = Event{Key: KeyNone}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// Ctrl creates a control-chord event such as Ctrl-G.
func Ctrl(r rune) Event {
	return NewRuneEvent(r, ModCtrl)
}

// Alt creates an alt-chord event such as Alt-G.
func Alt(r rune) Event {
	return NewRuneEvent(r, ModAlt)
}

// IsNone returns true if this is the idle sentinel.
func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a plain printable character: a rune
// event carrying no Ctrl or Alt chord. These are the events eligible for
// the controller's direct-insert fast path.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if a chording modifier is pressed. For
// character events, Shift alone is not considered modified since Shift
// changes the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// String returns a canonical representation.
// Examples: "a", "A", "C-s", "A-g", "Enter", "C-Home".
func (e Event) String() string {
	mods := e.Modifiers
	if e.IsRune() {
		// Shift is part of the character itself.
		mods = mods.Without(ModShift)
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	default:
		keyName = e.Key.String()
	}

	if mods.IsEmpty() {
		return keyName
	}
	return mods.String() + "-" + keyName
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e == parsed
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
