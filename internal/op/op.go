// Package op defines the action protocol between editing operations
// and the controller, and implements the standard operation set.
//
// Operations are the glue between a resolved key binding and its effect
// on the editing session. They report back through an Action: nothing,
// quit, a transient alert, or a modal question paired with an answer
// callback.
package op

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/ped/internal/editor"
	"github.com/dshills/ped/internal/session"
	"github.com/dshills/ped/internal/workspace"
)

// standardOps maps canonical operation names to implementations.
var standardOps = map[string]Fn{
	"insert-line":       insertLine,
	"delete-char-left":  deleteCharLeft,
	"delete-char-right": deleteCharRight,
	"move-up":           moveUp,
	"move-down":         moveDown,
	"move-left":         moveLeft,
	"move-right":        moveRight,
	"move-page-up":      movePageUp,
	"move-page-down":    movePageDown,
	"move-top":          moveTop,
	"move-bottom":       moveBottom,
	"move-begin-line":   moveBeginLine,
	"move-end-line":     moveEndLine,
	"scroll-up":         scrollUp,
	"scroll-down":       scrollDown,
	"redraw":            redraw,
	"redraw-and-center": redrawAndCenter,
	"goto-line":         gotoLine,
	"quit":              quit,
	"window-top":        windowTop,
	"window-bottom":     windowBottom,
	"window-above":      windowAbove,
	"window-below":      windowBelow,
	"window-kill":       windowKill,
	"window-prev":       windowPrev,
	"window-next":       windowNext,
}

// Canonical name: insert-line
func insertLine(s *session.Session) (Action, error) {
	s.ActiveEditor().InsertChar('\n')
	return NoOp(), nil
}

// Canonical name: delete-char-left
func deleteCharLeft(s *session.Session) (Action, error) {
	s.ActiveEditor().DeleteLeft()
	return NoOp(), nil
}

// Canonical name: delete-char-right
func deleteCharRight(s *session.Session) (Action, error) {
	s.ActiveEditor().DeleteRight()
	return NoOp(), nil
}

// Canonical name: move-up
func moveUp(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveUp()
	return NoOp(), nil
}

// Canonical name: move-down
func moveDown(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveDown()
	return NoOp(), nil
}

// Canonical name: move-left
func moveLeft(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveLeft()
	return NoOp(), nil
}

// Canonical name: move-right
func moveRight(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveRight()
	return NoOp(), nil
}

// Canonical name: move-page-up
func movePageUp(s *session.Session) (Action, error) {
	s.ActiveEditor().MovePageUp()
	return NoOp(), nil
}

// Canonical name: move-page-down
func movePageDown(s *session.Session) (Action, error) {
	s.ActiveEditor().MovePageDown()
	return NoOp(), nil
}

// Canonical name: move-top
func moveTop(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveTop()
	return NoOp(), nil
}

// Canonical name: move-bottom
func moveBottom(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveBottom()
	return NoOp(), nil
}

// Canonical name: move-begin-line
func moveBeginLine(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveLineStart()
	return NoOp(), nil
}

// Canonical name: move-end-line
func moveEndLine(s *session.Session) (Action, error) {
	s.ActiveEditor().MoveLineEnd()
	return NoOp(), nil
}

// Canonical name: scroll-up
func scrollUp(s *session.Session) (Action, error) {
	s.ActiveEditor().ScrollUp()
	return NoOp(), nil
}

// Canonical name: scroll-down
func scrollDown(s *session.Session) (Action, error) {
	s.ActiveEditor().ScrollDown()
	return NoOp(), nil
}

// Canonical name: redraw
func redraw(s *session.Session) (Action, error) {
	s.ActiveEditor().Draw()
	return NoOp(), nil
}

// Canonical name: redraw-and-center
func redrawAndCenter(s *session.Session) (Action, error) {
	ed := s.ActiveEditor()
	ed.AlignCursor(editor.AlignCenter)
	ed.Draw()
	return NoOp(), nil
}

// Canonical name: goto-line
func gotoLine(*session.Session) (Action, error) {
	return Question("Go to line: ", func(s *session.Session, answer string, accepted bool) (Action, error) {
		if !accepted {
			return NoOp(), nil
		}
		answer = strings.TrimSpace(answer)
		line, err := strconv.Atoi(answer)
		if err != nil || line < 1 {
			return Alert(fmt.Sprintf("%s: invalid line number", answer)), nil
		}
		s.ActiveEditor().MoveToLine(line - 1)
		return NoOp(), nil
	}), nil
}

// Canonical name: quit
func quit(s *session.Session) (Action, error) {
	if !s.Modified() {
		return Quit(), nil
	}
	return Question("Buffer modified. Quit anyway (y/n)? ", func(_ *session.Session, answer string, accepted bool) (Action, error) {
		if accepted && strings.EqualFold(strings.TrimSpace(answer), "y") {
			return Quit(), nil
		}
		return NoOp(), nil
	}), nil
}

// Canonical name: window-top
func windowTop(s *session.Session) (Action, error) {
	return viewAction(s.AddView(workspace.PlaceTop()))
}

// Canonical name: window-bottom
func windowBottom(s *session.Session) (Action, error) {
	return viewAction(s.AddView(workspace.PlaceBottom()))
}

// Canonical name: window-above
func windowAbove(s *session.Session) (Action, error) {
	return viewAction(s.AddView(workspace.PlaceAbove(s.ActiveID())))
}

// Canonical name: window-below
func windowBelow(s *session.Session) (Action, error) {
	return viewAction(s.AddView(workspace.PlaceBelow(s.ActiveID())))
}

// Canonical name: window-kill
func windowKill(s *session.Session) (Action, error) {
	return viewAction(s.RemoveView(s.ActiveID()))
}

// Canonical name: window-prev
func windowPrev(s *session.Session) (Action, error) {
	s.PrevView()
	return NoOp(), nil
}

// Canonical name: window-next
func windowNext(s *session.Session) (Action, error) {
	s.NextView()
	return NoOp(), nil
}

// viewAction folds a window-management error into a user-visible alert;
// failing to split is a user mistake, not a fault.
func viewAction(err error) (Action, error) {
	if err != nil {
		return Alert(err.Error()), nil
	}
	return NoOp(), nil
}
