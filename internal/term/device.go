// Package term provides the terminal device boundary: screen cell
// output, cursor control, blocking keyboard reads with an idle poll
// sentinel, and terminal size-change detection.
//
// Terminal is the tcell-backed implementation used by the editor;
// Memory is an in-process implementation used by tests.
package term

// Style selects the visual treatment of a cell.
type Style uint8

const (
	// StyleDefault is the terminal's default rendition.
	StyleDefault Style = iota

	// StyleReverse swaps foreground and background, used for window
	// banners.
	StyleReverse
)

// Device is the write-only display surface the editor draws on.
type Device interface {
	// Size returns the current width and height in cells.
	Size() (width, height int)

	// SetCell places a rune at the given cell.
	SetCell(x, y int, r rune, style Style)

	// ShowCursor moves the hardware cursor to the given cell and makes
	// it visible.
	ShowCursor(x, y int)

	// HideCursor makes the hardware cursor invisible.
	HideCursor()

	// Clear erases the whole screen.
	Clear()

	// Show flushes pending output to the terminal.
	Show()
}
