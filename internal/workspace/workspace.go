// Package workspace manages the screen-level layout of a terminal
// editing session: a vertical stack of views, each hosting one editing
// surface, plus the bottom shared line used for alerts and question
// prompts.
package workspace

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/ped/internal/term"
)

// minViewRows is the smallest useful view: one text row plus the banner.
const minViewRows = 2

// Workspace errors.
var (
	// ErrNoRoom indicates the screen cannot fit another view.
	ErrNoRoom = errors.New("no room for another window")

	// ErrLastView indicates the only remaining view cannot be removed.
	ErrLastView = errors.New("cannot remove last window")

	// ErrViewNotFound indicates an unknown view id.
	ErrViewNotFound = errors.New("window not found")
)

// Placement selects where a new view is inserted in the vertical stack.
type Placement struct {
	kind placementKind
	ref  uuid.UUID
}

type placementKind uint8

const (
	placeTop placementKind = iota
	placeBottom
	placeAbove
	placeBelow
)

// PlaceTop inserts the new view at the top of the stack.
func PlaceTop() Placement {
	return Placement{kind: placeTop}
}

// PlaceBottom inserts the new view at the bottom of the stack.
func PlaceBottom() Placement {
	return Placement{kind: placeBottom}
}

// PlaceAbove inserts the new view directly above the referenced view.
func PlaceAbove(ref uuid.UUID) Placement {
	return Placement{kind: placeAbove, ref: ref}
}

// PlaceBelow inserts the new view directly below the referenced view.
func PlaceBelow(ref uuid.UUID) Placement {
	return Placement{kind: placeBelow, ref: ref}
}

// Workspace owns the vertical view stack and the shared bottom line.
type Workspace struct {
	dev   term.Device
	views []*View
}

// New creates a workspace covering the whole device.
func New(dev term.Device) *Workspace {
	return &Workspace{dev: dev}
}

// Device returns the display device the workspace draws on.
func (w *Workspace) Device() term.Device {
	return w.dev
}

// Views returns the views in top-to-bottom order.
func (w *Workspace) Views() []*View {
	return w.views
}

// View returns the view with the given id.
func (w *Workspace) View(id uuid.UUID) (*View, bool) {
	for _, v := range w.views {
		if v.id == id {
			return v, true
		}
	}
	return nil, false
}

// AddView inserts a new view per the placement and recomputes the
// layout. Fails with ErrNoRoom when the screen cannot fit another view.
func (w *Workspace) AddView(p Placement) (*View, error) {
	if w.stackRows()/(len(w.views)+1) < minViewRows {
		return nil, ErrNoRoom
	}

	index := 0
	switch p.kind {
	case placeTop:
		index = 0
	case placeBottom:
		index = len(w.views)
	case placeAbove, placeBelow:
		found := -1
		for i, v := range w.views {
			if v.id == p.ref {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, ErrViewNotFound
		}
		index = found
		if p.kind == placeBelow {
			index++
		}
	}

	view := &View{id: uuid.New()}
	w.views = append(w.views, nil)
	copy(w.views[index+1:], w.views[index:])
	w.views[index] = view
	w.layout()
	return view, nil
}

// RemoveView removes the view with the given id and recomputes the
// layout. The last view cannot be removed.
func (w *Workspace) RemoveView(id uuid.UUID) error {
	if len(w.views) == 1 {
		return ErrLastView
	}
	for i, v := range w.views {
		if v.id == id {
			w.views = append(w.views[:i], w.views[i+1:]...)
			w.layout()
			return nil
		}
	}
	return ErrViewNotFound
}

// Resize recomputes the layout for the current device size. Views that
// no longer fit are dropped bottom-up; their ids are returned so the
// session can discard the matching editing surfaces.
func (w *Workspace) Resize() []uuid.UUID {
	var dropped []uuid.UUID
	for len(w.views) > 1 && w.stackRows()/len(w.views) < minViewRows {
		last := w.views[len(w.views)-1]
		w.views = w.views[:len(w.views)-1]
		dropped = append(dropped, last.id)
	}
	w.dev.Clear()
	w.layout()
	return dropped
}

// SetAlert writes transient status text on the shared bottom line.
func (w *Workspace) SetAlert(text string) {
	w.drawShared(text)
}

// ClearAlert erases the shared bottom line.
func (w *Workspace) ClearAlert() {
	w.drawShared("")
}

// SharedRegion returns the origin and width of the shared bottom line,
// the region a question prompt renders into.
func (w *Workspace) SharedRegion() (x, y, width int) {
	width, height := w.dev.Size()
	return 0, height - 1, width
}

// ClearShared erases the shared bottom line after a prompt is torn
// down.
func (w *Workspace) ClearShared() {
	w.drawShared("")
}

// drawShared paints the bottom line with the given text, clipped and
// padded to the device width.
func (w *Workspace) drawShared(text string) {
	x, y, width := w.SharedRegion()
	runes := []rune(text)
	for i := 0; i < width; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		w.dev.SetCell(x+i, y, r, term.StyleDefault)
	}
	w.dev.Show()
}

// stackRows returns the rows available to views: everything above the
// shared bottom line.
func (w *Workspace) stackRows() int {
	_, height := w.dev.Size()
	rows := height - 1
	if rows < 0 {
		rows = 0
	}
	return rows
}

// layout assigns regions to views top to bottom, spreading any
// remainder one row at a time from the top.
func (w *Workspace) layout() {
	n := len(w.views)
	if n == 0 {
		return
	}
	width, _ := w.dev.Size()
	rows := w.stackRows()
	base := rows / n
	rem := rows % n

	y := 0
	for i, v := range w.views {
		h := base
		if i < rem {
			h++
		}
		v.x = 0
		v.y = y
		v.width = width
		v.height = h
		y += h
	}
}
