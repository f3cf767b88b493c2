package session

import (
	"testing"

	"github.com/dshills/ped/internal/buffer"
	"github.com/dshills/ped/internal/term"
	"github.com/dshills/ped/internal/workspace"
)

func newTestSession(t *testing.T, text string) (*Session, *term.Memory) {
	t.Helper()
	dev := term.NewMemory(80, 24)
	sess, err := New(workspace.New(dev), buffer.FromString(text), "scratch")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sess, dev
}

func TestNewSingleView(t *testing.T) {
	sess, _ := newTestSession(t, "hello")
	if got := len(sess.Workspace().Views()); got != 1 {
		t.Fatalf("views = %d, want 1", got)
	}
	if sess.ActiveEditor() == nil {
		t.Fatal("active editor missing")
	}
	if got := sess.ActiveEditor().Name(); got != "scratch" {
		t.Errorf("name = %q", got)
	}
}

func TestSplitSharesBuffer(t *testing.T) {
	sess, _ := newTestSession(t, "shared text")
	first := sess.ActiveEditor()
	first.MoveRight()
	first.MoveRight()

	if err := sess.AddView(workspace.PlaceBelow(sess.ActiveID())); err != nil {
		t.Fatalf("AddView: %v", err)
	}

	second := sess.ActiveEditor()
	if second == first {
		t.Fatal("split should focus a new editor")
	}
	if second.Buffer() != first.Buffer() {
		t.Error("split editors should share one buffer")
	}
	if second.Pos() != first.Pos() {
		t.Errorf("new editor pos = %d, want %d", second.Pos(), first.Pos())
	}

	// Text typed in one view is visible through the other.
	second.InsertChar('!')
	if first.Buffer().Text() != second.Buffer().Text() {
		t.Error("buffer edits should be shared across views")
	}
}

func TestModified(t *testing.T) {
	sess, _ := newTestSession(t, "abc")
	if sess.Modified() {
		t.Error("fresh session should be unmodified")
	}
	sess.ActiveEditor().InsertChar('x')
	if !sess.Modified() {
		t.Error("session should report buffer edits")
	}
}

func TestRemoveViewRefocuses(t *testing.T) {
	sess, _ := newTestSession(t, "")
	if err := sess.AddView(workspace.PlaceBottom()); err != nil {
		t.Fatalf("AddView: %v", err)
	}
	active := sess.ActiveID()

	if err := sess.RemoveView(active); err != nil {
		t.Fatalf("RemoveView: %v", err)
	}
	if got := len(sess.Workspace().Views()); got != 1 {
		t.Fatalf("views = %d, want 1", got)
	}
	if sess.ActiveID() == active {
		t.Error("focus should leave the removed view")
	}
	if sess.ActiveEditor() == nil {
		t.Error("remaining view should have an editor")
	}
}

func TestCycleWraps(t *testing.T) {
	sess, _ := newTestSession(t, "")
	if err := sess.AddView(workspace.PlaceBottom()); err != nil {
		t.Fatalf("AddView: %v", err)
	}

	start := sess.ActiveID()
	sess.NextView()
	mid := sess.ActiveID()
	if mid == start {
		t.Fatal("NextView should move focus")
	}
	sess.NextView()
	if sess.ActiveID() != start {
		t.Error("NextView should wrap around the stack")
	}
	sess.PrevView()
	if sess.ActiveID() != mid {
		t.Error("PrevView should wrap backwards")
	}
}

func TestResizeDropsCrowdedViews(t *testing.T) {
	sess, dev := newTestSession(t, "")
	for i := 0; i < 5; i++ {
		if err := sess.AddView(workspace.PlaceBottom()); err != nil {
			t.Fatalf("AddView %d: %v", i, err)
		}
	}
	if got := len(sess.Workspace().Views()); got != 6 {
		t.Fatalf("views = %d, want 6", got)
	}

	// 8 rows leaves one shared line and 7 stack rows: room for 3 views.
	dev.Resize(80, 8)
	sess.Resize()

	views := sess.Workspace().Views()
	if got := len(views); got != 3 {
		t.Fatalf("views after shrink = %d, want 3", got)
	}
	for _, v := range views {
		if sess.editors[v.ID()] == nil {
			t.Errorf("view %s lost its editor", v.ID())
		}
	}
	if sess.ActiveEditor() == nil {
		t.Error("active editor missing after resize")
	}
}
