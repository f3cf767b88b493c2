// Package editor implements the editing surface: a cursor and viewport
// over a text buffer, drawn into a workspace view's region.
//
// Operations that move the cursor or change text redraw the surface
// before returning, so callers never deal with dirty state. Long lines
// are clipped at the view edge; the editor does not scroll
// horizontally.
package editor

import (
	"fmt"

	"github.com/dshills/ped/internal/buffer"
	"github.com/dshills/ped/internal/term"
)

// Align selects where AlignCursor positions the cursor line in the
// viewport.
type Align uint8

const (
	// AlignCenter centers the cursor line.
	AlignCenter Align = iota

	// AlignTop scrolls the cursor line to the top of the viewport.
	AlignTop
)

// Editor is one editing surface over a buffer.
type Editor struct {
	dev  term.Device
	buf  *buffer.Buffer
	name string

	// Region on the device, including the banner row.
	x, y, width, height int

	top     int // first visible buffer line
	pos     int // cursor rune offset
	wantCol int // preferred column for vertical movement
}

// New creates an editor over the given buffer. SetRegion must be called
// before the first draw.
func New(dev term.Device, buf *buffer.Buffer, name string) *Editor {
	return &Editor{dev: dev, buf: buf, name: name}
}

// Buffer returns the underlying text buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Name returns the buffer's display name.
func (e *Editor) Name() string {
	return e.name
}

// Pos returns the cursor position as a rune offset.
func (e *Editor) Pos() int {
	return e.pos
}

// SetPos moves the cursor to the given rune offset, clamped to the
// buffer.
func (e *Editor) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := e.buf.Len(); pos > n {
		pos = n
	}
	e.pos = pos
	e.wantCol = e.col()
}

// SetRegion assigns the device region the editor draws into, including
// the banner row.
func (e *Editor) SetRegion(x, y, width, height int) {
	e.x = x
	e.y = y
	e.width = width
	e.height = height
}

// textHeight returns the number of text rows in the region.
func (e *Editor) textHeight() int {
	h := e.height - 1
	if h < 0 {
		h = 0
	}
	return h
}

// InsertChar inserts a character at the cursor.
func (e *Editor) InsertChar(r rune) {
	e.buf.Insert(e.pos, r)
	e.pos++
	e.wantCol = e.col()
	e.Draw()
}

// DeleteLeft removes the character before the cursor.
func (e *Editor) DeleteLeft() (rune, bool) {
	if e.pos == 0 {
		return 0, false
	}
	r, ok := e.buf.Delete(e.pos - 1)
	if ok {
		e.pos--
		e.wantCol = e.col()
	}
	e.Draw()
	return r, ok
}

// DeleteRight removes the character under the cursor.
func (e *Editor) DeleteRight() (rune, bool) {
	r, ok := e.buf.Delete(e.pos)
	e.Draw()
	return r, ok
}

// MoveLeft moves the cursor one character back.
func (e *Editor) MoveLeft() {
	if e.pos > 0 {
		e.pos--
		e.wantCol = e.col()
	}
	e.Draw()
}

// MoveRight moves the cursor one character forward.
func (e *Editor) MoveRight() {
	if e.pos < e.buf.Len() {
		e.pos++
		e.wantCol = e.col()
	}
	e.Draw()
}

// MoveUp moves the cursor one line up, keeping the preferred column.
func (e *Editor) MoveUp() {
	e.moveVert(-1)
	e.Draw()
}

// MoveDown moves the cursor one line down, keeping the preferred
// column.
func (e *Editor) MoveDown() {
	e.moveVert(1)
	e.Draw()
}

// MovePageUp moves the cursor up by one viewport of lines.
func (e *Editor) MovePageUp() {
	e.moveVert(-e.textHeight())
	e.Draw()
}

// MovePageDown moves the cursor down by one viewport of lines.
func (e *Editor) MovePageDown() {
	e.moveVert(e.textHeight())
	e.Draw()
}

// MoveTop moves the cursor to the start of the buffer.
func (e *Editor) MoveTop() {
	e.pos = 0
	e.wantCol = 0
	e.Draw()
}

// MoveBottom moves the cursor to the end of the buffer.
func (e *Editor) MoveBottom() {
	e.pos = e.buf.Len()
	e.wantCol = e.col()
	e.Draw()
}

// MoveLineStart moves the cursor to the start of the current line.
func (e *Editor) MoveLineStart() {
	e.pos = e.buf.LineStart(e.pos)
	e.wantCol = 0
	e.Draw()
}

// MoveLineEnd moves the cursor to the end of the current line.
func (e *Editor) MoveLineEnd() {
	e.pos = e.buf.LineEnd(e.pos)
	e.wantCol = e.col()
	e.Draw()
}

// MoveToLine moves the cursor to the start of the given zero-based
// line, clamped to the buffer.
func (e *Editor) MoveToLine(line int) {
	e.pos = e.buf.PosOfLine(line)
	e.wantCol = 0
	e.Draw()
}

// ScrollUp scrolls the viewport one line towards the start, dragging
// the cursor along if it would leave the viewport.
func (e *Editor) ScrollUp() {
	if e.top > 0 {
		e.top--
		e.dragCursorIntoView()
	}
	e.Draw()
}

// ScrollDown scrolls the viewport one line towards the end, dragging
// the cursor along if it would leave the viewport.
func (e *Editor) ScrollDown() {
	if e.top < e.buf.LineCount()-1 {
		e.top++
		e.dragCursorIntoView()
	}
	e.Draw()
}

// AlignCursor scrolls the viewport so the cursor line sits at the given
// alignment.
func (e *Editor) AlignCursor(align Align) {
	line := e.buf.LineIndex(e.pos)
	switch align {
	case AlignCenter:
		e.top = line - e.textHeight()/2
	case AlignTop:
		e.top = line
	}
	if e.top < 0 {
		e.top = 0
	}
}

// Draw renders the visible text, the banner, and the cursor.
func (e *Editor) Draw() {
	if e.width == 0 || e.height == 0 {
		return
	}
	e.scrollToCursor()

	lineCount := e.buf.LineCount()
	for row := 0; row < e.textHeight(); row++ {
		line := e.top + row
		var runes []rune
		if line < lineCount {
			start := e.buf.PosOfLine(line)
			end := e.buf.LineEnd(start)
			for i := start; i < end && i-start < e.width; i++ {
				runes = append(runes, e.buf.Rune(i))
			}
		}
		for col := 0; col < e.width; col++ {
			r := ' '
			if col < len(runes) {
				r = runes[col]
			}
			e.dev.SetCell(e.x+col, e.y+row, r, term.StyleDefault)
		}
	}

	e.drawBanner()
	e.placeCursor()
	e.dev.Show()
}

// ShowCursor re-asserts cursor position and visibility, used after an
// overlay may have moved or hidden it.
func (e *Editor) ShowCursor() {
	e.placeCursor()
	e.dev.Show()
}

// drawBanner renders the reverse-video status row at the bottom of the
// region.
func (e *Editor) drawBanner() {
	row := e.y + e.height - 1
	mark := ""
	if e.buf.Modified() {
		mark = "*"
	}
	line := e.buf.LineIndex(e.pos)
	left := fmt.Sprintf(" %s%s", e.name, mark)
	right := fmt.Sprintf("L%d,C%d ", line+1, e.col()+1)

	runes := make([]rune, e.width)
	for i := range runes {
		runes[i] = ' '
	}
	copy(runes, []rune(left))
	rr := []rune(right)
	if len(rr) <= e.width {
		copy(runes[e.width-len(rr):], rr)
	}
	for i, r := range runes {
		e.dev.SetCell(e.x+i, row, r, term.StyleReverse)
	}
}

// placeCursor positions the hardware cursor at the cursor cell, clipped
// to the region.
func (e *Editor) placeCursor() {
	line := e.buf.LineIndex(e.pos)
	row := line - e.top
	if row < 0 || row >= e.textHeight() {
		e.dev.HideCursor()
		return
	}
	col := e.col()
	if col > e.width-1 {
		col = e.width - 1
	}
	e.dev.ShowCursor(e.x+col, e.y+row)
}

// col returns the cursor's column within its line.
func (e *Editor) col() int {
	return e.pos - e.buf.LineStart(e.pos)
}

// moveVert moves the cursor n lines (negative is up), keeping the
// preferred column.
func (e *Editor) moveVert(n int) {
	for ; n < 0; n++ {
		start := e.buf.LineStart(e.pos)
		if start == 0 {
			e.pos = 0
			break
		}
		prevEnd := start - 1
		prevStart := e.buf.LineStart(prevEnd)
		e.pos = prevStart + min(e.wantCol, prevEnd-prevStart)
	}
	for ; n > 0; n-- {
		end := e.buf.LineEnd(e.pos)
		if end == e.buf.Len() {
			e.pos = end
			break
		}
		nextStart := end + 1
		nextEnd := e.buf.LineEnd(nextStart)
		e.pos = nextStart + min(e.wantCol, nextEnd-nextStart)
	}
}

// scrollToCursor adjusts top so the cursor line is visible.
func (e *Editor) scrollToCursor() {
	line := e.buf.LineIndex(e.pos)
	if line < e.top {
		e.top = line
	}
	if h := e.textHeight(); h > 0 && line >= e.top+h {
		e.top = line - h + 1
	}
	if e.top < 0 {
		e.top = 0
	}
}

// dragCursorIntoView moves the cursor to the nearest visible line after
// an explicit scroll.
func (e *Editor) dragCursorIntoView() {
	line := e.buf.LineIndex(e.pos)
	if line < e.top {
		e.pos = e.buf.PosOfLine(e.top)
		e.pos += min(e.wantCol, e.buf.LineEnd(e.pos)-e.pos)
	} else if last := e.top + e.textHeight() - 1; line > last {
		e.pos = e.buf.PosOfLine(last)
		e.pos += min(e.wantCol, e.buf.LineEnd(e.pos)-e.pos)
	}
}
