package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ped/internal/input/key"
)

const (
	// pollInterval bounds how long Read blocks before emitting the
	// key.None idle sentinel. Idle ticks drive resize detection, so the
	// interval must stay well under the controller's debounce delay.
	pollInterval = 50 * time.Millisecond

	// pollStep is the sleep granularity while waiting for input.
	pollStep = 5 * time.Millisecond
)

// Terminal is the tcell-backed Device. It also serves as the
// controller's key source and terminal size oracle.
type Terminal struct {
	screen tcell.Screen
	lastW  int
	lastH  int
}

// NewTerminal creates a terminal device. Init must be called before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode and takes over the screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.lastW, t.lastH = t.screen.Size()
	return nil
}

// Fini restores the terminal to its previous state. Safe to call after
// a failed Init.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the current screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell places a rune at the given cell.
func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

// ShowCursor moves the hardware cursor and makes it visible.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor makes the hardware cursor invisible.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// Clear erases the whole screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending output to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Read blocks until a key event arrives or the poll interval elapses,
// in which case it returns the key.None sentinel. Resize notifications
// are consumed here and surfaced through SizeChanged rather than as key
// events.
func (t *Terminal) Read() (key.Event, error) {
	deadline := time.Now().Add(pollInterval)
	for {
		for t.screen.HasPendingEvent() {
			switch ev := t.screen.PollEvent().(type) {
			case *tcell.EventKey:
				if translated, ok := translateKey(ev); ok {
					return translated, nil
				}
			case *tcell.EventResize:
				// Size queries reflect the new geometry; nothing to do.
			case *tcell.EventError:
				return key.None, fmt.Errorf("reading terminal event: %w", ev)
			}
		}
		if !time.Now().Before(deadline) {
			return key.None, nil
		}
		time.Sleep(pollStep)
	}
}

// SizeChanged reports whether the terminal size differs from the last
// time it was queried, updating the recorded size as a side effect.
func (t *Terminal) SizeChanged() bool {
	w, h := t.screen.Size()
	if w != t.lastW || h != t.lastH {
		t.lastW, t.lastH = w, h
		return true
	}
	return false
}

// convertStyle converts a Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s == StyleReverse {
		style = style.Reverse(true)
	}
	return style
}

// namedKeys maps tcell named keys to ours.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyEsc:        key.KeyEscape,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// ctrlPunct maps the control codes that do not correspond to letters.
var ctrlPunct = map[tcell.Key]rune{
	tcell.KeyCtrlSpace:      ' ',
	tcell.KeyCtrlBackslash:  '\\',
	tcell.KeyCtrlRightSq:    ']',
	tcell.KeyCtrlCarat:      '^',
	tcell.KeyCtrlUnderscore: '_',
}

// translateKey converts a tcell key event into a key.Event. Events that
// have no representation (unknown function keys and the like) report
// ok=false and are dropped.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	if k, ok := namedKeys[ev.Key()]; ok {
		// Enter, Tab, Backspace and Escape are control codes on the
		// wire; the implied Ctrl is not a chord the user typed.
		switch k {
		case key.KeyEnter, key.KeyTab, key.KeyBackspace, key.KeyEscape:
			mods = mods.Without(key.ModCtrl)
		}
		return key.NewSpecialEvent(k, mods), true
	}

	switch {
	case ev.Key() == tcell.KeyRune:
		// Shift is already encoded in the rune itself.
		return key.NewRuneEvent(ev.Rune(), mods.Without(key.ModShift)), true
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	if r, ok := ctrlPunct[ev.Key()]; ok {
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	return key.None, false
}

// translateMods converts tcell modifiers to ours.
func translateMods(mods tcell.ModMask) key.Modifier {
	var result key.Modifier
	if mods&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if mods&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	return result
}
