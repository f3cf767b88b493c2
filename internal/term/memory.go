package term

import "strings"

// Memory is an in-process Device for tests. It records cell contents,
// cursor position and visibility, and can be resized directly to
// exercise re-layout paths.
type Memory struct {
	width   int
	height  int
	cells   []rune
	styles  []Style
	cursorX int
	cursorY int
	visible bool
	shows   int
}

// NewMemory creates a memory device with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{}
	m.Resize(width, height)
	return m
}

// Resize changes the device dimensions and clears the contents.
func (m *Memory) Resize(width, height int) {
	m.width = width
	m.height = height
	m.cells = make([]rune, width*height)
	m.styles = make([]Style, width*height)
	m.Clear()
}

// Size returns the device dimensions.
func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

// SetCell places a rune at the given cell. Out-of-range cells are
// ignored.
func (m *Memory) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = r
	m.styles[y*m.width+x] = style
}

// ShowCursor moves the cursor and makes it visible.
func (m *Memory) ShowCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
	m.visible = true
}

// HideCursor makes the cursor invisible.
func (m *Memory) HideCursor() {
	m.visible = false
}

// Clear fills the screen with spaces.
func (m *Memory) Clear() {
	for i := range m.cells {
		m.cells[i] = ' '
		m.styles[i] = StyleDefault
	}
}

// Show counts flushes; memory devices have nothing to flush.
func (m *Memory) Show() {
	m.shows++
}

// Line returns the contents of row y with trailing spaces trimmed.
func (m *Memory) Line(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	row := make([]rune, m.width)
	copy(row, m.cells[y*m.width:(y+1)*m.width])
	return strings.TrimRight(string(row), " ")
}

// StyleAt returns the style of the given cell.
func (m *Memory) StyleAt(x, y int) Style {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return StyleDefault
	}
	return m.styles[y*m.width+x]
}

// Cursor returns the cursor position and visibility.
func (m *Memory) Cursor() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.visible
}

// Shows returns the number of Show calls, for tests asserting that
// drawing flushed at all.
func (m *Memory) Shows() int {
	return m.shows
}
