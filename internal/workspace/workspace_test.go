package workspace

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/ped/internal/term"
)

func newTestWorkspace(t *testing.T, width, height int) (*Workspace, *term.Memory) {
	t.Helper()
	dev := term.NewMemory(width, height)
	return New(dev), dev
}

func TestAddViewPlacements(t *testing.T) {
	ws, _ := newTestWorkspace(t, 80, 24)

	first, err := ws.AddView(PlaceTop())
	if err != nil {
		t.Fatalf("AddView(top) error = %v", err)
	}
	bottom, err := ws.AddView(PlaceBottom())
	if err != nil {
		t.Fatalf("AddView(bottom) error = %v", err)
	}
	above, err := ws.AddView(PlaceAbove(bottom.ID()))
	if err != nil {
		t.Fatalf("AddView(above) error = %v", err)
	}
	below, err := ws.AddView(PlaceBelow(first.ID()))
	if err != nil {
		t.Fatalf("AddView(below) error = %v", err)
	}

	want := []uuid.UUID{first.ID(), below.ID(), above.ID(), bottom.ID()}
	views := ws.Views()
	if len(views) != len(want) {
		t.Fatalf("len(Views()) = %d, want %d", len(views), len(want))
	}
	for i, v := range views {
		if v.ID() != want[i] {
			t.Errorf("view %d = %v, want %v", i, v.ID(), want[i])
		}
	}
}

func TestAddViewUnknownRef(t *testing.T) {
	ws, _ := newTestWorkspace(t, 80, 24)
	if _, err := ws.AddView(PlaceTop()); err != nil {
		t.Fatal(err)
	}
	if _, err := ws.AddView(PlaceAbove(uuid.New())); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("error = %v, want ErrViewNotFound", err)
	}
}

func TestLayoutCoversStack(t *testing.T) {
	ws, _ := newTestWorkspace(t, 80, 24)
	for i := 0; i < 3; i++ {
		if _, err := ws.AddView(PlaceBottom()); err != nil {
			t.Fatalf("AddView %d error = %v", i, err)
		}
	}

	// 23 stack rows over 3 views: 8, 8, 7, contiguous from row 0.
	y := 0
	total := 0
	for i, v := range ws.Views() {
		vx, vy := v.Origin()
		vw, vh := v.Size()
		if vx != 0 || vy != y {
			t.Errorf("view %d origin = %d,%d, want 0,%d", i, vx, vy, y)
		}
		if vw != 80 {
			t.Errorf("view %d width = %d, want 80", i, vw)
		}
		if vh < minViewRows {
			t.Errorf("view %d height = %d, below minimum", i, vh)
		}
		if v.BannerRow() != vy+vh-1 {
			t.Errorf("view %d banner row = %d", i, v.BannerRow())
		}
		y += vh
		total += vh
	}
	if total != 23 {
		t.Errorf("views cover %d rows, want 23", total)
	}
}

func TestAddViewNoRoom(t *testing.T) {
	ws, _ := newTestWorkspace(t, 80, 7) // 6 stack rows: room for 3 views
	for i := 0; i < 3; i++ {
		if _, err := ws.AddView(PlaceBottom()); err != nil {
			t.Fatalf("AddView %d error = %v", i, err)
		}
	}
	if _, err := ws.AddView(PlaceBottom()); !errors.Is(err, ErrNoRoom) {
		t.Errorf("error = %v, want ErrNoRoom", err)
	}
}

func TestRemoveView(t *testing.T) {
	ws, _ := newTestWorkspace(t, 80, 24)
	a, _ := ws.AddView(PlaceBottom())
	b, _ := ws.AddView(PlaceBottom())

	if err := ws.RemoveView(a.ID()); err != nil {
		t.Fatalf("RemoveView error = %v", err)
	}
	if len(ws.Views()) != 1 || ws.Views()[0].ID() != b.ID() {
		t.Error("remaining view should be b")
	}

	if err := ws.RemoveView(b.ID()); !errors.Is(err, ErrLastView) {
		t.Errorf("removing last view: error = %v, want ErrLastView", err)
	}
	if err := ws.RemoveView(uuid.New()); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("removing unknown view: error = %v, want ErrViewNotFound", err)
	}
}

func TestResizeDropsViews(t *testing.T) {
	ws, dev := newTestWorkspace(t, 80, 24)
	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		v, err := ws.AddView(PlaceBottom())
		if err != nil {
			t.Fatalf("AddView %d error = %v", i, err)
		}
		ids = append(ids, v.ID())
	}

	dev.Resize(80, 6) // 5 stack rows: only 2 views fit
	dropped := ws.Resize()

	if len(ws.Views()) != 2 {
		t.Fatalf("len(Views()) = %d, want 2", len(ws.Views()))
	}
	if len(dropped) != 2 {
		t.Fatalf("len(dropped) = %d, want 2", len(dropped))
	}
	// Views are dropped bottom-up.
	if dropped[0] != ids[3] || dropped[1] != ids[2] {
		t.Error("dropped wrong views")
	}
}

func TestAlert(t *testing.T) {
	ws, dev := newTestWorkspace(t, 20, 5)

	ws.SetAlert("hello")
	if got := dev.Line(4); got != "hello" {
		t.Errorf("alert line = %q, want %q", got, "hello")
	}

	ws.SetAlert("this alert text is longer than the screen")
	if got := dev.Line(4); got != "this alert text is l" {
		t.Errorf("clipped alert = %q", got)
	}

	ws.ClearAlert()
	if got := dev.Line(4); got != "" {
		t.Errorf("after ClearAlert, line = %q", got)
	}
}

func TestSharedRegion(t *testing.T) {
	ws, _ := newTestWorkspace(t, 42, 10)
	x, y, width := ws.SharedRegion()
	if x != 0 || y != 9 || width != 42 {
		t.Errorf("SharedRegion() = %d,%d,%d, want 0,9,42", x, y, width)
	}
}
