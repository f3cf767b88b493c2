// Package control implements the input dispatch loop: the state
// machine that turns key events into editing operations.
//
// The loop runs in one of two states. In the normal state, keys
// accumulate into a pending sequence resolved against the binding
// table, with a fast path for plain printable characters. When an
// operation asks a question, the loop enters the question state and
// routes keys to a one-line prompt until the answer is committed or
// the prompt is cancelled.
//
// Ctrl-G aborts from anywhere: it discards the pending sequence and
// any alert in the normal state, and cancels the prompt in the
// question state.
package control

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/ped/internal/input/key"
	"github.com/dshills/ped/internal/input/keymap"
	"github.com/dshills/ped/internal/op"
	"github.com/dshills/ped/internal/prompt"
	"github.com/dshills/ped/internal/session"
)

// resizeDelay is how long the terminal size must hold still before the
// layout is re-fitted. Terminals report a burst of size changes during
// an interactive drag; committing each one causes visible thrash.
const resizeDelay = 100 * time.Millisecond

// abortKey resets the dispatch state from anywhere.
var abortKey = key.Ctrl('g')

// KeySource delivers key events. A source with nothing to deliver
// returns key.None so the loop can run its idle work; a read error is
// fatal to the loop.
type KeySource interface {
	Read() (key.Event, error)
}

// SizeOracle reports whether the terminal size has changed since the
// last call.
type SizeOracle interface {
	SizeChanged() bool
}

// question is the state carried while a prompt is open.
type question struct {
	editor *prompt.Editor
	answer op.AnswerFn
}

// Controller owns the dispatch loop and its state.
type Controller struct {
	keys   KeySource
	oracle SizeOracle
	table  *keymap.Table
	sess   *session.Session
	logger *log.Logger
	now    func() time.Time

	keySeq   key.Sequence
	alertAt  time.Time
	resizeAt time.Time
	question *question
}

// New creates a controller dispatching keys from source against the
// binding table.
func New(keys KeySource, oracle SizeOracle, table *keymap.Table, sess *session.Session, logger *log.Logger) *Controller {
	return &Controller{
		keys:   keys,
		oracle: oracle,
		table:  table,
		sess:   sess,
		logger: logger,
		now:    time.Now,
	}
}

// Run dispatches key events until an operation quits or a read or
// operation error occurs. It returns nil on a clean quit.
func (c *Controller) Run() error {
	for {
		ev, err := c.keys.Read()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		// Idle ticks are the only resize-detection opportunity; a
		// stream of real keystrokes never advances the debounce.
		if ev == key.None {
			c.checkResize()
			continue
		}

		var quit bool
		if c.question != nil {
			quit, err = c.questionKey(ev)
		} else {
			quit, err = c.normalKey(ev)
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// normalKey dispatches one key in the normal state.
func (c *Controller) normalKey(ev key.Event) (bool, error) {
	// Fast path: a plain printable character with no pending sequence
	// is self-inserting and never consults the binding table.
	if c.keySeq.IsEmpty() && ev.IsChar() {
		c.clearAlert()
		c.sess.ActiveEditor().InsertChar(ev.Rune)
		return false, nil
	}

	if ev == abortKey {
		c.keySeq.Clear()
		c.clearAlert()
		return false, nil
	}

	c.keySeq.Add(ev)
	if fn, ok := c.table.Find(&c.keySeq); ok {
		c.logger.Debug("resolved key sequence", "keys", c.keySeq.String())
		c.keySeq.Clear()
		action, err := fn(c.sess)
		if err != nil {
			return false, err
		}
		return c.apply(action)
	}

	if c.table.IsPrefix(&c.keySeq) {
		// Echo the pending keys while waiting for the rest.
		c.setAlert(c.keySeq.String())
		return false, nil
	}

	c.showUndefined()
	return false, nil
}

// questionKey dispatches one key while a prompt is open.
func (c *Controller) questionKey(ev key.Event) (bool, error) {
	q := c.question
	if ev == abortKey {
		c.closeQuestion()
		return c.deliver(q.answer, "", false)
	}

	switch q.editor.ProcessKey(ev) {
	case prompt.Accept:
		text := q.editor.Buffer()
		c.closeQuestion()
		return c.deliver(q.answer, text, true)
	case prompt.Cancel:
		c.closeQuestion()
		return c.deliver(q.answer, "", false)
	default:
		return false, nil
	}
}

// deliver invokes an answer callback and applies its action.
func (c *Controller) deliver(fn op.AnswerFn, text string, accepted bool) (bool, error) {
	action, err := fn(c.sess, text, accepted)
	if err != nil {
		return false, err
	}
	return c.apply(action)
}

// apply consumes an operation's action and reports whether the loop
// should end.
func (c *Controller) apply(a op.Action) (bool, error) {
	switch {
	case a.IsQuit():
		c.logger.Info("quit")
		return true, nil
	case a.IsAlert():
		c.setAlert(a.Text())
	case a.IsQuestion():
		c.openQuestion(a.Prompt(), a.Answer())
	default:
		c.clearAlert()
	}
	return false, nil
}

// checkResize debounces terminal size changes. A change records a
// timestamp; the layout is re-fitted only after the size has held
// still strictly longer than resizeDelay.
func (c *Controller) checkResize() {
	if c.oracle.SizeChanged() {
		c.resizeAt = c.now()
		return
	}
	if c.resizeAt.IsZero() || c.now().Sub(c.resizeAt) <= resizeDelay {
		return
	}
	c.resizeAt = time.Time{}

	c.logger.Debug("resize committed")
	c.sess.Resize()
	if c.question != nil {
		x, y, width := c.sess.Workspace().SharedRegion()
		c.question.editor.SetRegion(x, y, width)
	}
}

// setAlert shows transient status text on the shared line, keeping the
// caret in the active editor.
func (c *Controller) setAlert(text string) {
	c.alertAt = c.now()
	c.sess.Workspace().SetAlert(text)
	c.sess.ActiveEditor().ShowCursor()
}

// clearAlert erases the shared line if an alert is showing.
func (c *Controller) clearAlert() {
	if c.alertAt.IsZero() {
		return
	}
	c.alertAt = time.Time{}
	c.sess.Workspace().ClearAlert()
	c.sess.ActiveEditor().ShowCursor()
}

// openQuestion replaces any alert with a prompt on the shared line.
func (c *Controller) openQuestion(promptText string, answer op.AnswerFn) {
	c.clearAlert()
	ws := c.sess.Workspace()
	x, y, width := ws.SharedRegion()
	c.question = &question{
		editor: prompt.NewEditor(ws.Device(), x, y, width, promptText),
		answer: answer,
	}
}

// closeQuestion tears the prompt down and puts the cursor back in the
// active editor.
func (c *Controller) closeQuestion() {
	c.question = nil
	c.sess.Workspace().ClearShared()
	c.sess.ActiveEditor().ShowCursor()
}

// showUndefined reports an unbound sequence and discards it.
func (c *Controller) showUndefined() {
	noun := "key"
	if c.keySeq.Len() > 1 {
		noun = "key sequence"
	}
	c.setAlert(fmt.Sprintf("%s: undefined %s", c.keySeq.String(), noun))
	c.keySeq.Clear()
}
