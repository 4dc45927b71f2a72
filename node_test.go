package reorder

import (
	"slices"
	"testing"
)

func newRow(name string, h float32) *Node {
	n := NewNode(name)
	n.SetRect(Rect{W: 50, H: h})
	return n
}

func TestNode_MoveToWithinParent(t *testing.T) {
	list := NewList("list", Rect{W: 100, H: 200})
	a, b, c := newRow("a", 10), newRow("b", 10), newRow("c", 10)
	list.AddChild(a)
	list.AddChild(b)
	list.AddChild(c)

	a.SetSiblingIndex(2)
	if got := childNames(list); !slices.Equal(got, []string{"b", "c", "a"}) {
		t.Errorf("after moving a to 2: %v", got)
	}

	c.SetSiblingIndex(-5)
	if got := childNames(list); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("after moving c to -5: %v", got)
	}

	b.SetSiblingIndex(99)
	if got := childNames(list); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("after moving b to 99: %v", got)
	}
}

func TestNode_MoveToOtherParent(t *testing.T) {
	src := NewList("src", Rect{W: 100, H: 200})
	dst := NewList("dst", Rect{X: 200, W: 100, H: 200})
	a, b := newRow("a", 10), newRow("b", 10)
	src.AddChild(a)
	dst.AddChild(b)

	a.MoveTo(dst, 0)

	if a.Parent() != dst {
		t.Fatal("a should belong to dst")
	}
	if src.ChildCount() != 0 {
		t.Errorf("src children = %d, want 0", src.ChildCount())
	}
	if got := childNames(dst); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("dst = %v", got)
	}
	if got := a.Position(); got != (Vec2{X: 200, Y: 0}) {
		t.Errorf("a position = %+v, want laid out in dst", got)
	}
	if got := b.Position(); got != (Vec2{X: 200, Y: 10}) {
		t.Errorf("b position = %+v, want pushed down", got)
	}
}

func TestNode_MoveToRejectsCyclesAndDestroyed(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	root.MoveTo(child, 0)
	if root.Parent() != nil {
		t.Error("moving a node under its descendant should be ignored")
	}
	child.MoveTo(child, 0)
	if child.Parent() != root {
		t.Error("moving a node under itself should be ignored")
	}

	gone := NewNode("gone")
	gone.Destroy()
	gone.MoveTo(root, 0)
	if gone.Parent() != nil {
		t.Error("destroyed node should not be reparented")
	}
	child.MoveTo(gone, 0)
	if child.Parent() != root {
		t.Error("moving under a destroyed node should be ignored")
	}
}

func TestNode_DetachAndDestroy(t *testing.T) {
	list := NewList("list", Rect{W: 100, H: 200})
	a, b := newRow("a", 10), newRow("b", 10)
	list.AddChild(a)
	list.AddChild(b)
	grand := NewNode("grand")
	a.AddChild(grand)

	a.Destroy()

	if !a.Destroyed() || !grand.Destroyed() {
		t.Error("Destroy should mark the subtree")
	}
	if a.SiblingIndex() != -1 {
		t.Errorf("destroyed node index = %d, want -1", a.SiblingIndex())
	}
	if got := b.Position(); got != (Vec2{}) {
		t.Errorf("b position = %+v, want reflowed to top", got)
	}

	b.MoveTo(nil, 0)
	if b.Parent() != nil || list.ChildCount() != 0 {
		t.Error("MoveTo(nil) should detach")
	}
}

func TestLayout_VerticalList(t *testing.T) {
	list := NewList("list", Rect{X: 10, Y: 20, W: 100, H: 300}, Gap(4), Padding(6))
	a, b := newRow("a", 10), newRow("b", 20)
	b.SetFlexibleWidth(true)
	list.AddChild(a)
	list.AddChild(b)

	if got, want := a.Rect(), (Rect{X: 16, Y: 26, W: 50, H: 10}); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := b.Rect(), (Rect{X: 16, Y: 40, W: 88, H: 20}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}

	a.SetPreferredHeight(30)
	if got := b.Position().Y; got != 60 {
		t.Errorf("b.Y after a grows = %g, want 60", got)
	}

	list.SetPosition(Vec2{X: 0, Y: 0})
	if got, want := a.Rect(), (Rect{X: 6, Y: 6, W: 50, H: 30}); got != want {
		t.Errorf("a after list moved = %+v, want %+v", got, want)
	}
}

func TestLayout_PreferredHeightOutsideList(t *testing.T) {
	n := newRow("n", 10)
	n.SetPreferredHeight(25)
	if n.Rect().H != 25 {
		t.Errorf("height = %g, want 25", n.Rect().H)
	}
	n.SetPreferredHeight(-3)
	if n.PreferredHeight() != 0 {
		t.Errorf("negative preferred height = %g, want clamped to 0", n.PreferredHeight())
	}
}

func TestNode_TranslatesDescendants(t *testing.T) {
	row := newRow("row", 30)
	handle := NewNode("handle")
	handle.SetRect(Rect{X: 2, Y: 3, W: 10, H: 10})
	row.AddChild(handle)

	row.SetPosition(Vec2{X: 100, Y: 50})
	if got := handle.Position(); got != (Vec2{X: 102, Y: 53}) {
		t.Errorf("handle = %+v, want moved with row", got)
	}

	row.SetPoint(PivotBottomLeft, Vec2{X: 0, Y: 30})
	if got := row.Position(); got != (Vec2{}) {
		t.Errorf("row = %+v, want bottom-left at (0,30)", got)
	}
	if got := handle.Position(); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("handle = %+v, want (2,3)", got)
	}
}

func TestNode_HitTest(t *testing.T) {
	root := NewNode("root")
	root.SetRect(Rect{W: 100, H: 100})
	back := NewNode("back")
	back.SetRect(Rect{W: 50, H: 50})
	front := NewNode("front")
	front.SetRect(Rect{X: 25, Y: 25, W: 50, H: 50})
	root.AddChild(back)
	root.AddChild(front)

	if hit := root.hitTest(Vec2{X: 30, Y: 30}); hit != front {
		t.Errorf("overlap hit = %v, want front", hit)
	}
	if hit := root.hitTest(Vec2{X: 5, Y: 5}); hit != back {
		t.Errorf("hit = %v, want back", hit)
	}

	front.SetBlocksInput(false)
	if hit := root.hitTest(Vec2{X: 30, Y: 30}); hit != back {
		t.Errorf("hit through non-blocking = %v, want back", hit)
	}
	if hit := root.hitTest(Vec2{X: 200, Y: 200}); hit != nil {
		t.Errorf("outside hit = %v, want nil", hit)
	}
}

type stubDropHandler struct{ dropped []*Node }

func (s *stubDropHandler) OnDrop(n *Node) { s.dropped = append(s.dropped, n) }

func TestNode_HandlerBubbling(t *testing.T) {
	list := NewList("list", Rect{W: 100, H: 100})
	row := newRow("row", 20)
	list.AddChild(row)
	handle := NewNode("handle")
	row.AddChild(handle)

	if handle.DropHandlerNode() != nil {
		t.Error("no drop handler expected yet")
	}
	list.SetDropHandler(&stubDropHandler{})
	if got := handle.DropHandlerNode(); got != list {
		t.Errorf("drop handler node = %v, want list", got)
	}

	c := NewDragController(NewScene(Vec2{X: 100, Y: 100}), handle)
	if got := handle.DragHandlerNode(); got != handle {
		t.Errorf("drag handler node = %v, want handle", got)
	}
	if row.DragHandlerNode() != nil {
		t.Error("drag handlers do not bubble down")
	}
	if c.Handle() != handle {
		t.Error("controller handle mismatch")
	}
}
