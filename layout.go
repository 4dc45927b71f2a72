package reorder

// LayoutType defines how a container positions its children.
type LayoutType uint8

const (
	LayoutFree     LayoutType = iota // Children keep their own rects
	LayoutVertical                   // Children stack top to bottom
)

// Layout describes how a container reflows its children.
// A vertical layout stacks children in sibling order, each taking its
// preferred height, separated by Gap and inset by Padding.
type Layout struct {
	Type LayoutType

	// Spacing (Tailwind-style)
	Gap     float32 // Space between children (gap-*)
	Padding float32 // Inner padding (p-*)
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children (like Tailwind gap-*).
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding (like Tailwind p-*).
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// VerticalList returns a vertical layout configured by opts.
func VerticalList(opts ...LayoutOption) *Layout {
	l := &Layout{Type: LayoutVertical}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsList reports whether the layout orders children as a list.
func (l *Layout) IsList() bool {
	return l != nil && l.Type == LayoutVertical
}

// apply repositions the children of n.
func (l *Layout) apply(n *Node) {
	if !l.IsList() {
		return
	}

	x := n.rect.X + l.Padding
	y := n.rect.Y + l.Padding
	innerW := n.rect.W - l.Padding*2
	if innerW < 0 {
		innerW = 0
	}

	for i, child := range n.children {
		if i > 0 {
			y += l.Gap
		}

		w := child.rect.W
		if child.flexibleWidth {
			w = innerW
		}
		h := child.rect.H
		if child.preferredHeight >= 0 {
			h = child.preferredHeight
		}

		child.setRect(Rect{X: x, Y: y, W: w, H: h})
		y += h
	}
}
