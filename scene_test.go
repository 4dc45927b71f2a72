package reorder

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestScene_HitTestPrefersOverlay(t *testing.T) {
	s := NewScene(Vec2{X: 200, Y: 200})
	under := NewNode("under")
	under.SetRect(Rect{W: 100, H: 100})
	s.Root.AddChild(under)
	over := NewNode("over")
	over.SetRect(Rect{W: 50, H: 50})
	s.Overlay.AddChild(over)

	if hit := s.HitTest(Vec2{X: 10, Y: 10}); hit != over {
		t.Errorf("hit = %v, want overlay node", hit)
	}
	if hit := s.HitTest(Vec2{X: 80, Y: 80}); hit != under {
		t.Errorf("hit = %v, want root node", hit)
	}
	if hit := s.HitTest(Vec2{X: 150, Y: 150}); hit != nil {
		t.Errorf("hit = %v, want nil over bare surface", hit)
	}
}

func TestScene_DrawOrder(t *testing.T) {
	s := NewScene(Vec2{X: 200, Y: 200})
	list := NewList("list", Rect{W: 100, H: 100})
	list.Color = ColorDarkGray
	s.Root.AddChild(list)
	row := newRow("row", 20)
	row.Color = ColorWhite
	list.AddChild(row)
	plain := newRow("plain", 20)
	list.AddChild(plain)
	lifted := newRow("lifted", 20)
	lifted.Color = ColorGray
	s.Overlay.AddChild(lifted)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	s.Draw(dl)

	if got := len(dl.VtxBuffer); got != 12 {
		t.Fatalf("vertices = %d, want 3 rects", got)
	}
	colors := []uint32{dl.VtxBuffer[0].Color, dl.VtxBuffer[4].Color, dl.VtxBuffer[8].Color}
	want := []uint32{ColorDarkGray, ColorWhite, ColorGray}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("rect %d color = %#x, want %#x", i, colors[i], want[i])
		}
	}
}

func TestScene_ResizeReflowsSurfaces(t *testing.T) {
	s := NewScene(Vec2{X: 100, Y: 100})
	s.Resize(Vec2{X: 640, Y: 480})
	if got := s.Root.Rect(); got != (Rect{W: 640, H: 480}) {
		t.Errorf("root = %+v", got)
	}
	if got := s.Overlay.Rect(); got != (Rect{W: 640, H: 480}) {
		t.Errorf("overlay = %+v", got)
	}
}

func TestScene_WarnsOffOwningGoroutine(t *testing.T) {
	var buf bytes.Buffer
	orig := pkgLogger.Load()
	SetLogger(debugLogger(&buf))
	t.Cleanup(func() { SetLogger(orig) })

	s := NewScene(Vec2{X: 100, Y: 100})
	s.Tick(0.016)
	if buf.Len() != 0 {
		t.Fatalf("unexpected warning on owning goroutine: %q", buf.String())
	}

	var wg sync.WaitGroup
	wg.Go(func() { s.Tick(0.016) })
	wg.Wait()

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "op=tick") {
		t.Errorf("log = %q, want goroutine warning", out)
	}
}

func TestDrawList_AddRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	if !dl.Empty() {
		t.Error("transparent rect should be skipped")
	}

	dl.AddRect(1, 2, 3, 4, RGBA(255, 0, 0, 255))
	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("buffers = %d/%d, want 4/6", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{4, 6} {
		t.Errorf("bottom-right = %v, want [4 6]", got)
	}
	if got := dl.VtxBuffer[0].Color; got != 0xFF0000FF {
		t.Errorf("color = %#x, want 0xff0000ff", got)
	}

	dl.Clear()
	if !dl.Empty() {
		t.Error("Clear should empty the list")
	}
}
