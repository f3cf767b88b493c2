package op

import "github.com/dshills/ped/internal/session"

// Fn implements an editing operation. Operations act on the session and
// tell the controller what happened through the returned Action. A
// non-nil error is a programming or I/O failure and terminates the
// editing loop.
type Fn func(*session.Session) (Action, error)

// AnswerFn is the single-use callback paired with a question prompt.
// It is invoked with accepted=true and the committed text when the
// prompt is accepted, or accepted=false on cancellation.
type AnswerFn func(s *session.Session, answer string, accepted bool) (Action, error)

// Action is the tagged result of an operation or answer callback,
// consumed uniformly by the controller.
type Action struct {
	kind   actionKind
	text   string
	prompt string
	answer AnswerFn
}

type actionKind uint8

const (
	actionNoOp actionKind = iota
	actionQuit
	actionAlert
	actionQuestion
)

// NoOp reports that nothing further happens. The controller clears any
// stale alert.
func NoOp() Action {
	return Action{kind: actionNoOp}
}

// Quit terminates the editing loop.
func Quit() Action {
	return Action{kind: actionQuit}
}

// Alert displays transient status text.
func Alert(text string) Action {
	return Action{kind: actionAlert, text: text}
}

// Question opens a modal line prompt and arranges for answer to be
// invoked exactly once with the outcome.
func Question(prompt string, answer AnswerFn) Action {
	return Action{kind: actionQuestion, prompt: prompt, answer: answer}
}

// IsNoOp reports whether this is the NoOp action.
func (a Action) IsNoOp() bool {
	return a.kind == actionNoOp
}

// IsQuit reports whether this action terminates the loop.
func (a Action) IsQuit() bool {
	return a.kind == actionQuit
}

// IsAlert reports whether this action displays an alert.
func (a Action) IsAlert() bool {
	return a.kind == actionAlert
}

// IsQuestion reports whether this action opens a prompt.
func (a Action) IsQuestion() bool {
	return a.kind == actionQuestion
}

// Text returns the alert text.
func (a Action) Text() string {
	return a.text
}

// Prompt returns the question prompt text.
func (a Action) Prompt() string {
	return a.prompt
}

// Answer returns the question's answer callback.
func (a Action) Answer() AnswerFn {
	return a.answer
}
