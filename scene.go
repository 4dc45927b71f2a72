package reorder

import (
	"log/slog"

	"github.com/petermattis/goid"
)

// Scene owns the node tree, the overlay surface and the frame animator.
//
// Root holds the regular UI. Overlay is a separate top-level surface that is
// drawn and hit-tested after Root, so anything moved there renders above all
// list content. Both surfaces span the display.
//
// A Scene is single-threaded: it remembers the goroutine that created it and
// logs a warning when frame entry points run elsewhere.
type Scene struct {
	Root    *Node
	Overlay *Node

	anim   *Animator
	owner  int64
	logger *slog.Logger
}

// NewScene creates a scene whose surfaces cover a display of the given size.
func NewScene(displaySize Vec2) *Scene {
	display := Rect{W: displaySize.X, H: displaySize.Y}

	root := NewNode("root")
	root.rect = display
	overlay := NewNode("overlay")
	overlay.rect = display

	return &Scene{
		Root:    root,
		Overlay: overlay,
		anim:    NewAnimator(),
		owner:   goid.Get(),
		logger:  componentLogger("scene"),
	}
}

// Animator returns the frame animator driven by Tick.
func (s *Scene) Animator() *Animator {
	return s.anim
}

// Resize updates both surfaces to a new display size.
func (s *Scene) Resize(displaySize Vec2) {
	display := Rect{W: displaySize.X, H: displaySize.Y}
	s.Root.SetRect(display)
	s.Overlay.SetRect(display)
}

// Tick advances all animations by dt seconds. Completion callbacks run
// before Tick returns.
func (s *Scene) Tick(dt float32) {
	s.checkGoroutine("tick")
	s.anim.Tick(dt)
}

// HitTest returns the deepest input-blocking node under p, checking the
// overlay first. The surfaces themselves are never returned.
func (s *Scene) HitTest(p Vec2) *Node {
	for _, surface := range []*Node{s.Overlay, s.Root} {
		if !surface.blocksInput {
			continue
		}
		for i := len(surface.children) - 1; i >= 0; i-- {
			if hit := surface.children[i].hitTest(p); hit != nil {
				return hit
			}
		}
	}
	return nil
}

// Draw emits a filled rectangle for every visible colored node, Root first
// and Overlay last, parents before children.
func (s *Scene) Draw(dl *DrawList) {
	for _, surface := range []*Node{s.Root, s.Overlay} {
		surface.Walk(func(n *Node) bool {
			if n.destroyed {
				return false
			}
			if n.Color&0xFF000000 != 0 {
				dl.AddRect(n.rect.X, n.rect.Y, n.rect.W, n.rect.H, n.Color)
			}
			return true
		})
	}
}

// checkGoroutine logs when op runs off the goroutine that created the scene.
func (s *Scene) checkGoroutine(op string) {
	if id := goid.Get(); id != s.owner {
		s.logger.Warn("scene accessed off its owning goroutine",
			slog.String("op", op),
			slog.Int64("owner", s.owner),
			slog.Int64("goroutine", id))
	}
}
