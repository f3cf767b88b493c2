package prompt

import (
	"testing"

	"github.com/dshills/ped/internal/input/key"
	"github.com/dshills/ped/internal/term"
)

func newTestPrompt(t *testing.T) (*Editor, *term.Memory) {
	t.Helper()
	dev := term.NewMemory(40, 5)
	return NewEditor(dev, 0, 4, 40, "Find: "), dev
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.ProcessKey(key.NewRuneEvent(r, key.ModNone))
	}
}

func TestPromptRendersSeedText(t *testing.T) {
	_, dev := newTestPrompt(t)
	if got := dev.Line(4); got != "Find:" {
		t.Errorf("prompt line = %q", got)
	}
	x, y, visible := dev.Cursor()
	if x != 6 || y != 4 || !visible {
		t.Errorf("cursor = %d,%d,%v, want 6,4,true", x, y, visible)
	}
}

func TestTypingAccumulates(t *testing.T) {
	e, dev := newTestPrompt(t)
	typeString(e, "abc")

	if got := e.Buffer(); got != "abc" {
		t.Errorf("Buffer() = %q", got)
	}
	if got := dev.Line(4); got != "Find: abc" {
		t.Errorf("line = %q", got)
	}
}

func TestDirectives(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		want Directive
	}{
		{"rune continues", key.NewRuneEvent('a', key.ModNone), Continue},
		{"enter accepts", key.NewSpecialEvent(key.KeyEnter, key.ModNone), Accept},
		{"escape cancels", key.NewSpecialEvent(key.KeyEscape, key.ModNone), Cancel},
		{"arrow continues", key.NewSpecialEvent(key.KeyLeft, key.ModNone), Continue},
		{"ctrl chord ignored", key.Ctrl('x'), Continue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestPrompt(t)
			if got := e.ProcessKey(tt.ev); got != tt.want {
				t.Errorf("ProcessKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAcceptPreservesBuffer(t *testing.T) {
	e, _ := newTestPrompt(t)
	typeString(e, "42")
	if d := e.ProcessKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone)); d != Accept {
		t.Fatalf("directive = %v, want Accept", d)
	}
	if got := e.Buffer(); got != "42" {
		t.Errorf("Buffer() after accept = %q", got)
	}
}

func TestEditingKeys(t *testing.T) {
	e, _ := newTestPrompt(t)
	typeString(e, "hello")

	left := key.NewSpecialEvent(key.KeyLeft, key.ModNone)
	backspace := key.NewSpecialEvent(key.KeyBackspace, key.ModNone)
	del := key.NewSpecialEvent(key.KeyDelete, key.ModNone)
	home := key.NewSpecialEvent(key.KeyHome, key.ModNone)
	end := key.NewSpecialEvent(key.KeyEnd, key.ModNone)

	e.ProcessKey(left)
	e.ProcessKey(left)
	e.ProcessKey(backspace) // "helo", cursor before 'l'
	if got := e.Buffer(); got != "helo" {
		t.Fatalf("Buffer() = %q, want %q", got, "helo")
	}

	e.ProcessKey(del) // "heo"
	if got := e.Buffer(); got != "heo" {
		t.Fatalf("Buffer() = %q, want %q", got, "heo")
	}

	e.ProcessKey(home)
	typeString(e, "t")
	if got := e.Buffer(); got != "theo" {
		t.Fatalf("Buffer() = %q, want %q", got, "theo")
	}

	e.ProcessKey(end)
	typeString(e, "!")
	if got := e.Buffer(); got != "theo!" {
		t.Fatalf("Buffer() = %q, want %q", got, "theo!")
	}
}

func TestBackspaceAtStart(t *testing.T) {
	e, _ := newTestPrompt(t)
	if d := e.ProcessKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)); d != Continue {
		t.Errorf("directive = %v, want Continue", d)
	}
	if e.Buffer() != "" {
		t.Error("backspace on empty prompt should be a no-op")
	}
}
