// Package session ties the workspace layout to editing surfaces and
// exposes the environment handle that editing operations act on.
//
// The session owns one editor per workspace view. Splitting opens a new
// view onto the active editor's buffer; each editor keeps its own
// cursor.
package session

import (
	"github.com/google/uuid"

	"github.com/dshills/ped/internal/buffer"
	"github.com/dshills/ped/internal/editor"
	"github.com/dshills/ped/internal/workspace"
)

// Session is the environment handle shared by editing operations and
// the controller.
type Session struct {
	ws      *workspace.Workspace
	editors map[uuid.UUID]*editor.Editor
	active  uuid.UUID
}

// New creates a session with a single view over the given buffer.
func New(ws *workspace.Workspace, buf *buffer.Buffer, name string) (*Session, error) {
	s := &Session{
		ws:      ws,
		editors: make(map[uuid.UUID]*editor.Editor),
	}

	view, err := ws.AddView(workspace.PlaceTop())
	if err != nil {
		return nil, err
	}
	ed := editor.New(ws.Device(), buf, name)
	s.editors[view.ID()] = ed
	s.active = view.ID()
	s.applyLayout()
	return s, nil
}

// Workspace returns the workspace.
func (s *Session) Workspace() *workspace.Workspace {
	return s.ws
}

// ActiveID returns the id of the active view.
func (s *Session) ActiveID() uuid.UUID {
	return s.active
}

// ActiveEditor returns the editing surface with input focus.
func (s *Session) ActiveEditor() *editor.Editor {
	return s.editors[s.active]
}

// Modified reports whether any open buffer has unsaved changes.
func (s *Session) Modified() bool {
	for _, ed := range s.editors {
		if ed.Buffer().Modified() {
			return true
		}
	}
	return false
}

// AddView opens a new view onto the active editor's buffer and gives it
// focus.
func (s *Session) AddView(p workspace.Placement) error {
	current := s.ActiveEditor()
	view, err := s.ws.AddView(p)
	if err != nil {
		return err
	}

	ed := editor.New(s.ws.Device(), current.Buffer(), current.Name())
	ed.SetPos(current.Pos())
	s.editors[view.ID()] = ed
	s.active = view.ID()
	s.applyLayout()
	return nil
}

// RemoveView closes the view with the given id. When the active view is
// closed, focus moves to the first remaining view.
func (s *Session) RemoveView(id uuid.UUID) error {
	if err := s.ws.RemoveView(id); err != nil {
		return err
	}
	delete(s.editors, id)
	if s.active == id {
		s.active = s.ws.Views()[0].ID()
	}
	s.applyLayout()
	return nil
}

// NextView moves focus to the view below the active one, wrapping.
func (s *Session) NextView() {
	s.cycle(1)
}

// PrevView moves focus to the view above the active one, wrapping.
func (s *Session) PrevView() {
	s.cycle(-1)
}

// Resize re-fits the layout to the device after a terminal size change.
// Views that no longer fit are closed along with their editors.
func (s *Session) Resize() {
	for _, id := range s.ws.Resize() {
		delete(s.editors, id)
		if s.active == id {
			s.active = s.ws.Views()[0].ID()
		}
	}
	s.applyLayout()
}

// cycle moves focus by delta through the view stack.
func (s *Session) cycle(delta int) {
	views := s.ws.Views()
	if len(views) < 2 {
		return
	}
	index := 0
	for i, v := range views {
		if v.ID() == s.active {
			index = i
			break
		}
	}
	index = (index + delta + len(views)) % len(views)
	s.active = views[index].ID()
	s.ActiveEditor().ShowCursor()
}

// applyLayout pushes view regions to their editors and redraws
// everything, finishing with the active editor so its cursor wins.
func (s *Session) applyLayout() {
	var activeEd *editor.Editor
	for _, v := range s.ws.Views() {
		ed, ok := s.editors[v.ID()]
		if !ok {
			continue
		}
		x, y := v.Origin()
		w, h := v.Size()
		ed.SetRegion(x, y, w, h)
		if v.ID() == s.active {
			activeEd = ed
			continue
		}
		ed.Draw()
	}
	if activeEd != nil {
		activeEd.Draw()
	}
}
