package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - Chord notation: "C-s", "A-g", "C-Home", "C-S-p"
//   - Modifier+key: "Ctrl+S", "Alt+G", "Ctrl+Shift+P"
//   - Bracketed chords: "<C-s>", "<CR>", "<Esc>"
//
// Shift is never attached to character events; the shifted rune itself
// carries the distinction ("A" is simply the rune 'A').
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Bracketed <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseChord(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}

	// Chord format (C-s, A-Left); a lone "-" is the rune itself
	if strings.Contains(spec, "-") && len(spec) > 1 {
		return parseChord(spec)
	}

	return parseSingle(spec)
}

// parseChord parses hyphenated chord notation like "C-s", "A-Left", "CR".
func parseChord(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// Trailing hyphen means the key is the '-' rune ("C--").
		keyPart = "-"
	}

	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		// Trailing plus means the key is the '+' rune ("Ctrl++").
		keyPart = "+"
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	return parseKeyWithModifiers(spec, ModNone)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	// Spelled-out aliases for runes that collide with the spec syntax.
	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods.Without(ModShift)), nil
	case "lt":
		return NewRuneEvent('<', mods.Without(ModShift)), nil
	case "gt":
		return NewRuneEvent('>', mods.Without(ModShift)), nil
	case "bar":
		return NewRuneEvent('|', mods.Without(ModShift)), nil
	case "bslash":
		return NewRuneEvent('\\', mods.Without(ModShift)), nil
	}

	if len([]rune(keyPart)) > 1 {
		if k := KeyFromName(keyPart); k != KeyNone {
			return NewSpecialEvent(k, mods), nil
		}
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r := []rune(keyPart)[0]
	if mods.HasCtrl() {
		// Ctrl chords are canonically lowercase: C-S and C-s are the
		// same keystroke.
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods.Without(ModShift)), nil
}
