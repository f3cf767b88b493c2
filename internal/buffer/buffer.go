// Package buffer provides gap-buffer text storage for editing surfaces.
//
// A Buffer stores runes with a movable gap so that runs of insertions and
// deletions at the same position cost amortized constant time. Positions
// are rune offsets from the start of the text; line helpers scan on
// demand, which keeps the structure simple and is fast enough for the
// file sizes a terminal editor works with.
package buffer

import "strings"

const minGap = 64

// Buffer is a gap buffer of runes.
type Buffer struct {
	data     []rune
	gapStart int
	gapEnd   int
	modified bool
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		data:   make([]rune, minGap),
		gapEnd: minGap,
	}
}

// FromString creates a buffer holding the given text.
func FromString(s string) *Buffer {
	runes := []rune(s)
	data := make([]rune, len(runes)+minGap)
	copy(data, runes)
	return &Buffer{
		data:     data,
		gapStart: len(runes),
		gapEnd:   len(runes) + minGap,
	}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Rune returns the rune at the given position.
// Positions outside the buffer return 0.
func (b *Buffer) Rune(pos int) rune {
	if pos < 0 || pos >= b.Len() {
		return 0
	}
	if pos < b.gapStart {
		return b.data[pos]
	}
	return b.data[pos+(b.gapEnd-b.gapStart)]
}

// Insert inserts a rune at the given position. Positions are clamped to
// the buffer bounds.
func (b *Buffer) Insert(pos int, r rune) {
	pos = b.clamp(pos)
	b.moveGap(pos)
	if b.gapStart == b.gapEnd {
		b.grow()
	}
	b.data[b.gapStart] = r
	b.gapStart++
	b.modified = true
}

// InsertString inserts a string at the given position.
func (b *Buffer) InsertString(pos int, s string) {
	for _, r := range s {
		b.Insert(pos, r)
		pos++
	}
}

// Delete removes and returns the rune at the given position.
// Returns false if the position is out of range.
func (b *Buffer) Delete(pos int) (rune, bool) {
	if pos < 0 || pos >= b.Len() {
		return 0, false
	}
	b.moveGap(pos)
	r := b.data[b.gapEnd]
	b.gapEnd++
	b.modified = true
	return r, true
}

// Text returns the buffer contents as a string.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, r := range b.data[:b.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range b.data[b.gapEnd:] {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Modified reports whether the buffer has changed since the flag was
// last cleared.
func (b *Buffer) Modified() bool {
	return b.modified
}

// SetModified sets the modified flag.
func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

// LineStart returns the position of the first rune of the line
// containing pos.
func (b *Buffer) LineStart(pos int) int {
	pos = b.clamp(pos)
	for pos > 0 && b.Rune(pos-1) != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the position of the newline terminating the line
// containing pos, or Len() for the final line.
func (b *Buffer) LineEnd(pos int) int {
	pos = b.clamp(pos)
	for pos < b.Len() && b.Rune(pos) != '\n' {
		pos++
	}
	return pos
}

// LineIndex returns the zero-based line number containing pos.
func (b *Buffer) LineIndex(pos int) int {
	pos = b.clamp(pos)
	line := 0
	for i := 0; i < pos; i++ {
		if b.Rune(i) == '\n' {
			line++
		}
	}
	return line
}

// LineCount returns the number of lines in the buffer. An empty buffer
// has one (empty) line.
func (b *Buffer) LineCount() int {
	return b.LineIndex(b.Len()) + 1
}

// PosOfLine returns the position of the first rune of the given
// zero-based line, clamped to the last line.
func (b *Buffer) PosOfLine(line int) int {
	if line <= 0 {
		return 0
	}
	count := 0
	for i := 0; i < b.Len(); i++ {
		if b.Rune(i) == '\n' {
			count++
			if count == line {
				return i + 1
			}
		}
	}
	return b.LineStart(b.Len())
}

// clamp restricts pos to [0, Len()].
func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if n := b.Len(); pos > n {
		return n
	}
	return pos
}

// moveGap positions the gap so that gapStart == pos.
func (b *Buffer) moveGap(pos int) {
	for b.gapStart > pos {
		b.gapStart--
		b.gapEnd--
		b.data[b.gapEnd] = b.data[b.gapStart]
	}
	for b.gapStart < pos {
		b.data[b.gapStart] = b.data[b.gapEnd]
		b.gapStart++
		b.gapEnd++
	}
}

// grow doubles the gap capacity.
func (b *Buffer) grow() {
	gap := len(b.data)
	if gap < minGap {
		gap = minGap
	}
	data := make([]rune, len(b.data)+gap)
	copy(data, b.data[:b.gapStart])
	copy(data[b.gapStart+gap:], b.data[b.gapEnd:])
	b.data = data
	b.gapEnd = b.gapStart + gap
}
