// Package prompt implements the one-line editor used by question
// prompts. It renders into the workspace's shared bottom line and
// reports each processed key as a directive: keep editing, accept the
// input, or cancel.
package prompt

import (
	"github.com/dshills/ped/internal/input/key"
	"github.com/dshills/ped/internal/term"
)

// Directive is the outcome of processing one key.
type Directive uint8

const (
	// Continue means the prompt is still editing.
	Continue Directive = iota

	// Accept means the user committed the input (Enter).
	Accept

	// Cancel means the user aborted the prompt (Escape). The universal
	// Ctrl-G abort is handled by the controller, one level up.
	Cancel
)

// Editor is a single-line input editor.
type Editor struct {
	dev    term.Device
	x      int
	y      int
	width  int
	prompt string
	runes  []rune
	cursor int
}

// NewEditor creates a prompt editor rendering at the given origin and
// width, seeded with the prompt text.
func NewEditor(dev term.Device, x, y, width int, prompt string) *Editor {
	e := &Editor{
		dev:    dev,
		x:      x,
		y:      y,
		width:  width,
		prompt: prompt,
	}
	e.Draw()
	return e
}

// SetRegion moves the prompt to a new origin and width and redraws,
// used after the terminal is resized while the prompt is open.
func (e *Editor) SetRegion(x, y, width int) {
	e.x = x
	e.y = y
	e.width = width
	e.Draw()
}

// Buffer returns the text entered so far.
func (e *Editor) Buffer() string {
	return string(e.runes)
}

// ProcessKey handles one key event and reports the resulting directive.
// The committed text is read with Buffer after an Accept.
func (e *Editor) ProcessKey(ev key.Event) Directive {
	switch {
	case ev.Key == key.KeyEnter:
		return Accept
	case ev.Key == key.KeyEscape:
		return Cancel
	case ev.Key == key.KeyBackspace:
		if e.cursor > 0 {
			e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
			e.cursor--
		}
	case ev.Key == key.KeyDelete:
		if e.cursor < len(e.runes) {
			e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
		}
	case ev.Key == key.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
	case ev.Key == key.KeyRight:
		if e.cursor < len(e.runes) {
			e.cursor++
		}
	case ev.Key == key.KeyHome:
		e.cursor = 0
	case ev.Key == key.KeyEnd:
		e.cursor = len(e.runes)
	case ev.IsChar():
		e.runes = append(e.runes, 0)
		copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
		e.runes[e.cursor] = ev.Rune
		e.cursor++
	default:
		// Chords and unhandled named keys are ignored.
	}
	e.Draw()
	return Continue
}

// Draw renders the prompt, the entered text, and the cursor.
func (e *Editor) Draw() {
	promptRunes := []rune(e.prompt)
	for i := 0; i < e.width; i++ {
		r := ' '
		switch {
		case i < len(promptRunes):
			r = promptRunes[i]
		case i-len(promptRunes) < len(e.runes):
			r = e.runes[i-len(promptRunes)]
		}
		e.dev.SetCell(e.x+i, e.y, r, term.StyleDefault)
	}

	cursorX := e.x + len(promptRunes) + e.cursor
	if max := e.x + e.width - 1; cursorX > max {
		cursorX = max
	}
	e.dev.ShowCursor(cursorX, e.y)
	e.dev.Show()
}
