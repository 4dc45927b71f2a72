package reorder

import "slices"

// Node is an element of the scene tree.
//
// A node's position among its parent's children is its sibling index, which
// is also its draw and layout order. Rects are in screen space with a
// top-left origin; y grows downward. Reparenting keeps the screen rect
// unless the new parent's layout moves the node.
//
// Nodes are not safe for concurrent use. All mutation happens on the UI
// goroutine, as with the rest of the scene.
type Node struct {
	// Name identifies the node in logs.
	Name string

	// Color is the fill color drawn for the node. Transparent nodes draw
	// nothing but still take part in layout and hit testing.
	Color uint32

	parent   *Node
	children []*Node

	rect   Rect
	layout *Layout

	// preferredHeight overrides rect height in a list layout when >= 0.
	preferredHeight float32
	flexibleWidth   bool

	// blocksInput=false removes the node and its subtree from hit testing.
	blocksInput bool
	destroyed   bool

	dragHandler DragHandler
	dropHandler DropHandler
}

// NewNode creates a detached node that blocks input.
func NewNode(name string) *Node {
	return &Node{
		Name:            name,
		preferredHeight: -1,
		blocksInput:     true,
	}
}

// NewList creates a detached container with a vertical list layout.
func NewList(name string, rect Rect, opts ...LayoutOption) *Node {
	n := NewNode(name)
	n.rect = rect
	n.layout = VerticalList(opts...)
	return n
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child slice in sibling order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// SiblingIndex returns the node's index in its parent, or -1 when detached.
func (n *Node) SiblingIndex() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// SetSiblingIndex moves the node to index i within its current parent.
// The index is clamped to the valid range.
func (n *Node) SetSiblingIndex(i int) {
	if n.parent == nil {
		return
	}
	n.MoveTo(n.parent, i)
}

// AddChild appends child as the last child of n.
func (n *Node) AddChild(child *Node) {
	child.MoveTo(n, len(n.children))
}

// MoveTo reparents the node under parent at the given sibling index.
// The index is clamped to [0, parent.ChildCount()] after the node has been
// removed from its old position, so moving within the same parent lands the
// node exactly at index. A nil parent detaches the node.
// Moves that would create a cycle, or involve a destroyed node, are ignored.
func (n *Node) MoveTo(parent *Node, index int) {
	if parent == nil {
		n.detach()
		return
	}
	if n.destroyed || parent.destroyed || parent == n || parent.isDescendantOf(n) {
		return
	}

	n.detach()

	index = max(0, min(index, len(parent.children)))
	parent.children = slices.Insert(parent.children, index, n)
	n.parent = parent
	parent.relayout()
}

// Destroy detaches the node and marks it and its subtree destroyed.
// A destroyed node can no longer be reparented.
func (n *Node) Destroy() {
	n.detach()
	n.Walk(func(d *Node) bool {
		d.destroyed = true
		d.dragHandler = nil
		d.dropHandler = nil
		return true
	})
}

// Destroyed reports whether Destroy has been called on the node or an
// ancestor it was attached to at the time.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range slices.Clone(n.children) {
		child.Walk(fn)
	}
}

// Rect returns the node's screen rectangle.
func (n *Node) Rect() Rect {
	return n.rect
}

// SetRect sets the node's screen rectangle. Descendants move with it; a
// list parent may reposition the node again.
func (n *Node) SetRect(r Rect) {
	n.setRect(r)
	if n.parent != nil {
		n.parent.relayout()
	}
}

// Position returns the top-left corner.
func (n *Node) Position() Vec2 {
	return n.rect.Pos()
}

// SetPosition moves the node so its top-left corner is at p.
func (n *Node) SetPosition(p Vec2) {
	n.SetPoint(PivotTopLeft, p)
}

// Point returns the screen position of the given pivot.
func (n *Node) Point(pivot Vec2) Vec2 {
	return n.rect.At(pivot)
}

// SetPoint moves the node so that its pivot lies at p. Size is unchanged.
func (n *Node) SetPoint(pivot Vec2, p Vec2) {
	r := n.rect
	r.X = p.X - r.W*pivot.X
	r.Y = p.Y - r.H*pivot.Y
	n.SetRect(r)
}

// PreferredHeight returns the height a list layout gives the node.
func (n *Node) PreferredHeight() float32 {
	if n.preferredHeight < 0 {
		return n.rect.H
	}
	return n.preferredHeight
}

// SetPreferredHeight sets the height a list layout gives the node and
// reflows the parent.
func (n *Node) SetPreferredHeight(h float32) {
	n.preferredHeight = max(h, 0)
	if n.parent != nil && n.parent.layout.IsList() {
		n.parent.relayout()
		return
	}
	r := n.rect
	r.H = n.preferredHeight
	n.setRect(r)
}

// FlexibleWidth reports whether a list layout stretches the node to the
// container's inner width.
func (n *Node) FlexibleWidth() bool {
	return n.flexibleWidth
}

// SetFlexibleWidth sets whether the node fills the available width.
func (n *Node) SetFlexibleWidth(flexible bool) {
	n.flexibleWidth = flexible
	if n.parent != nil {
		n.parent.relayout()
	}
}

// BlocksInput reports whether the node takes part in hit testing.
func (n *Node) BlocksInput() bool {
	return n.blocksInput
}

// SetBlocksInput includes or excludes the node's subtree from hit testing.
func (n *Node) SetBlocksInput(blocks bool) {
	n.blocksInput = blocks
}

// Layout returns the node's layout, or nil for free positioning.
func (n *Node) Layout() *Layout {
	return n.layout
}

// SetLayout sets the layout used for the node's children and reflows them.
func (n *Node) SetLayout(l *Layout) {
	n.layout = l
	n.relayout()
}

// SetDragHandler attaches a drag handler. Pointer presses on the node or any
// descendant without its own handler are routed to it.
func (n *Node) SetDragHandler(h DragHandler) {
	n.dragHandler = h
}

// SetDropHandler attaches a drop handler, found by bubbling from the node
// under the pointer at release.
func (n *Node) SetDropHandler(h DropHandler) {
	n.dropHandler = h
}

// DragHandlerNode returns the nearest node, starting at n and walking up,
// that has a drag handler.
func (n *Node) DragHandlerNode() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.dragHandler != nil {
			return cur
		}
	}
	return nil
}

// DropHandlerNode returns the nearest node, starting at n and walking up,
// that has a drop handler.
func (n *Node) DropHandlerNode() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.dropHandler != nil {
			return cur
		}
	}
	return nil
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
	p.relayout()
}

func (n *Node) isDescendantOf(ancestor *Node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (n *Node) relayout() {
	if n.layout.IsList() {
		n.layout.apply(n)
	}
}

// setRect assigns the rect, carrying descendants along and reflowing the
// node's own children when it has a list layout.
func (n *Node) setRect(r Rect) {
	old := n.rect
	n.rect = r

	if n.layout.IsList() {
		n.layout.apply(n)
		return
	}

	d := Vec2{X: r.X - old.X, Y: r.Y - old.Y}
	if d == (Vec2{}) {
		return
	}
	for _, child := range n.children {
		child.translate(d)
	}
}

func (n *Node) translate(d Vec2) {
	n.rect.X += d.X
	n.rect.Y += d.Y
	for _, child := range n.children {
		child.translate(d)
	}
}

// hitTest returns the deepest input-blocking node containing p.
// Later siblings are drawn on top and therefore tested first.
func (n *Node) hitTest(p Vec2) *Node {
	if !n.blocksInput || n.destroyed {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].hitTest(p); hit != nil {
			return hit
		}
	}
	if n.rect.Contains(p) {
		return n
	}
	return nil
}
