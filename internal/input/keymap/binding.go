// Package keymap maps key sequences to named editing operations.
//
// A set of Binding declarations is compiled against an operation
// registry into a Table. The table answers the two questions the
// dispatch loop asks about a pending sequence: is it bound to an
// operation, and if not, is it a proper prefix of a longer binding.
package keymap

import "github.com/dshills/ped/internal/input/key"

// Binding associates a key sequence spec with a canonical operation
// name. Keys uses the textual form accepted by key.ParseSequence, for
// example "C-x C-c" or "Enter".
type Binding struct {
	Keys string
	Op   string
}

// Defaults returns the built-in binding set. User configuration
// overrides entries per operation name; an override replaces every
// default binding for that operation.
func Defaults() []Binding {
	return []Binding{
		{Keys: "Enter", Op: "insert-line"},
		{Keys: "Backspace", Op: "delete-char-left"},
		{Keys: "Delete", Op: "delete-char-right"},

		{Keys: "Up", Op: "move-up"},
		{Keys: "C-p", Op: "move-up"},
		{Keys: "Down", Op: "move-down"},
		{Keys: "C-n", Op: "move-down"},
		{Keys: "Left", Op: "move-left"},
		{Keys: "C-b", Op: "move-left"},
		{Keys: "Right", Op: "move-right"},
		{Keys: "C-f", Op: "move-right"},

		{Keys: "PageUp", Op: "move-page-up"},
		{Keys: "A-v", Op: "move-page-up"},
		{Keys: "PageDown", Op: "move-page-down"},
		{Keys: "C-v", Op: "move-page-down"},

		{Keys: "Home", Op: "move-begin-line"},
		{Keys: "C-a", Op: "move-begin-line"},
		{Keys: "End", Op: "move-end-line"},
		{Keys: "C-e", Op: "move-end-line"},

		{Keys: "C-Home", Op: "move-top"},
		{Keys: "A-<", Op: "move-top"},
		{Keys: "C-End", Op: "move-bottom"},
		{Keys: "A->", Op: "move-bottom"},

		{Keys: "C-Up", Op: "scroll-up"},
		{Keys: "C-Down", Op: "scroll-down"},

		{Keys: "C-l", Op: "redraw-and-center"},
		{Keys: "C-x r", Op: "redraw"},

		{Keys: "A-g", Op: "goto-line"},

		{Keys: "C-q", Op: "quit"},
		{Keys: "C-x C-c", Op: "quit"},

		{Keys: "C-w /", Op: "window-above"},
		{Keys: "C-w bslash", Op: "window-below"},
		{Keys: "C-w [", Op: "window-top"},
		{Keys: "C-w ]", Op: "window-bottom"},
		{Keys: "C-w k", Op: "window-kill"},
		{Keys: "C-w p", Op: "window-prev"},
		{Keys: "C-w n", Op: "window-next"},
	}
}

// Merge layers overrides on top of defaults. An override for an
// operation name drops all default bindings to that operation before
// its own bindings are appended.
func Merge(defaults, overrides []Binding) []Binding {
	overridden := make(map[string]bool, len(overrides))
	for _, b := range overrides {
		overridden[b.Op] = true
	}

	merged := make([]Binding, 0, len(defaults)+len(overrides))
	for _, b := range defaults {
		if !overridden[b.Op] {
			merged = append(merged, b)
		}
	}
	merged = append(merged, overrides...)
	return merged
}

// sequenceKey is the canonical map key for a sequence: its space-joined
// textual form. Two sequences with equal events always render the same
// key.
func sequenceKey(seq *key.Sequence) string {
	return seq.String()
}
