package reorder

import (
	"errors"
	"log/slog"
)

// Errors returned by BeginDrag.
var (
	ErrDragInProgress = errors.New("reorder: drag already in progress")
	ErrNoRow          = errors.New("reorder: drag handle is not inside a list row")
)

// DragPhase is the lifecycle state of a DragController.
type DragPhase uint8

const (
	DragIdle     DragPhase = iota // No session
	DragDragging                  // Row follows the pointer
	DragSettling                  // Released; row and placeholder are animating home
)

func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// placeholderName is the name given to every placeholder node.
const placeholderName = "placeholder"

// dragSession is the state of one drag, from BeginDrag until the row has
// been reparented. A controller without a session is idle.
type dragSession struct {
	row  *Node
	list *Node

	startIndex int
	offset     Vec2    // Pointer minus row position at grab time
	rowHeight  float32 // Row height at grab time

	placeholder *Node
	settling    bool
}

// DragController drives the reorder drag of a single list row.
//
// It is attached to the row's drag handle. On BeginDrag the row is lifted
// onto the scene overlay and a placeholder takes its slot in the list; the
// placeholder collapses, then follows the pointer from slot to slot, growing
// back each time it moves. On EndDrag the row flies to the placeholder while
// the placeholder grows to full height, after which the row takes the
// placeholder's slot and the placeholder is destroyed.
//
// While a placeholder height animation is running, the placeholder does not
// move. This keeps the slot from thrashing while its footprint changes.
//
// Usage:
//
//	scene := reorder.NewScene(display)
//	list := reorder.NewList("groups", rect)
//	scene.Root.AddChild(list)
//	// ... add rows, each with a handle node ...
//	reorder.NewDragController(scene, handle)
//	reorder.NewDropZone(list)
type DragController struct {
	scene  *Scene
	handle *Node

	tuning     Tuning
	resolveRow RowResolver
	onSettled  SettledFunc
	logger     *slog.Logger

	session       *dragSession
	heightTween   *Tween
	positionTween *Tween
}

// NewDragController creates a controller for the row owning handle and
// registers it as the handle's drag handler.
func NewDragController(scene *Scene, handle *Node, opts ...DragOption) *DragController {
	c := &DragController{
		scene:      scene,
		handle:     handle,
		tuning:     DefaultTuning(),
		resolveRow: ListRow,
		logger:     componentLogger("drag"),
	}
	for _, opt := range opts {
		opt(c)
	}
	handle.SetDragHandler(c)
	return c
}

// ListRow is the default RowResolver. It returns the first ancestor of the
// handle (excluding the handle itself) whose parent has a list layout.
func ListRow(handle *Node) *Node {
	for cur := handle.Parent(); cur != nil; cur = cur.Parent() {
		if p := cur.Parent(); p != nil && p.Layout().IsList() {
			return cur
		}
	}
	return nil
}

// Phase returns the controller's lifecycle state.
func (c *DragController) Phase() DragPhase {
	switch {
	case c.session == nil:
		return DragIdle
	case c.session.settling:
		return DragSettling
	default:
		return DragDragging
	}
}

// Handle returns the node the controller is attached to.
func (c *DragController) Handle() *Node {
	return c.handle
}

// Row returns the row being dragged, or nil when idle.
func (c *DragController) Row() *Node {
	if c.session == nil {
		return nil
	}
	return c.session.row
}

// Placeholder returns the active placeholder, or nil when idle.
func (c *DragController) Placeholder() *Node {
	if c.session == nil {
		return nil
	}
	return c.session.placeholder
}

// BeginDrag lifts the handle's row out of its list and reserves its slot
// with a collapsing placeholder. p is the pointer position in screen space.
//
// It returns ErrDragInProgress if a previous drag has not finished settling,
// and ErrNoRow if the handle is not inside a list row.
func (c *DragController) BeginDrag(p Vec2) error {
	c.scene.checkGoroutine("begin drag")

	if c.session != nil {
		return ErrDragInProgress
	}

	row := c.resolveRow(c.handle)
	if row == nil || row.Parent() == nil {
		return ErrNoRow
	}

	list := row.Parent()
	s := &dragSession{
		row:        row,
		list:       list,
		startIndex: row.SiblingIndex(),
		offset:     p.Sub(row.Position()),
		rowHeight:  row.Rect().H,
	}

	// Lift the row first so it keeps its pre-drag rect; the list then
	// reflows around the placeholder alone.
	row.SetBlocksInput(false)
	row.MoveTo(c.scene.Overlay, c.scene.Overlay.ChildCount())

	ph := NewNode(placeholderName)
	ph.SetBlocksInput(false)
	ph.SetFlexibleWidth(true)
	ph.SetPreferredHeight(s.rowHeight)
	ph.MoveTo(list, s.startIndex)
	s.placeholder = ph

	c.session = s
	c.animatePlaceholderHeight(s.rowHeight, c.tuning.CollapsedHeight, nil)

	c.logger.Debug("begin drag",
		slog.String("row", row.Name),
		slog.String("list", list.Name),
		slog.Int("index", s.startIndex))
	return nil
}

// OnDrag moves the row with the pointer and, unless a placeholder height
// animation is running, moves the placeholder to the slot under the pointer.
// It is ignored when no drag is active or the drag is settling.
func (c *DragController) OnDrag(p Vec2) {
	c.scene.checkGoroutine("drag")

	s := c.session
	if s == nil || s.settling {
		c.logger.Debug("drag ignored", slog.String("phase", c.Phase().String()))
		return
	}

	s.row.SetPosition(p.Sub(s.offset))

	if c.heightTween.Active() {
		return
	}

	ph := s.placeholder
	if ph.Destroyed() || ph.Parent() != s.list {
		c.logger.Debug("drag without placeholder", slog.String("row", s.row.Name))
		return
	}

	current := ph.SiblingIndex()
	target := dropIndex(s.list, p.Y, current)
	if target == current {
		return
	}

	ph.SetSiblingIndex(target)
	c.animatePlaceholderHeight(c.tuning.CollapsedHeight, s.rowHeight, nil)

	c.logger.Debug("placeholder moved",
		slog.String("row", s.row.Name),
		slog.Int("from", current),
		slog.Int("to", target))
}

// EndDrag releases the row: it flies to where the placeholder will end up
// while the placeholder grows back to the row's height. When the height
// animation completes the row replaces the placeholder in the list.
// It is ignored when no drag is active or the drag is already settling.
func (c *DragController) EndDrag(p Vec2) {
	c.scene.checkGoroutine("end drag")

	s := c.session
	if s == nil || s.settling {
		c.logger.Debug("end drag ignored", slog.String("phase", c.Phase().String()))
		return
	}

	c.settle()
	c.logger.Debug("end drag", slog.String("row", s.row.Name))
}

// CancelDrag sends the row back to where it was picked up, using the same
// settle animation as a drop. It is ignored unless a drag is in progress.
func (c *DragController) CancelDrag() {
	c.scene.checkGoroutine("cancel drag")

	s := c.session
	if s == nil || s.settling {
		return
	}

	if ph := s.placeholder; !ph.Destroyed() && ph.Parent() == s.list {
		ph.SetSiblingIndex(s.startIndex)
	}
	c.settle()
	c.logger.Debug("drag cancelled", slog.String("row", s.row.Name))
}

// settle starts the release animations.
func (c *DragController) settle() {
	s := c.session

	// Cut the running height animation wherever it is.
	c.heightTween.Cancel()
	c.heightTween = nil

	ph := s.placeholder
	if ph.Destroyed() || ph.Parent() != s.list {
		c.logger.Warn("placeholder lost, aborting drop", slog.String("row", s.row.Name))
		c.abort()
		return
	}

	s.settling = true

	// The placeholder grows downward from its top edge, so its bottom-left
	// corner ends up rowHeight-collapsed lower than it is now. A placeholder
	// already taller than collapsed is taken as-is.
	anchor := ph.Point(PivotBottomLeft)
	landing := anchor.Add(Vec2{Y: s.rowHeight - c.tuning.CollapsedHeight})
	if ph.Rect().H > c.tuning.CollapsedHeight {
		landing = anchor
	}

	c.animateRowPosition(s.row.Point(PivotBottomLeft), landing)
	c.animatePlaceholderHeight(ph.PreferredHeight(), s.rowHeight, c.finalize)
}

// finalize hands the placeholder's slot to the row and ends the session.
func (c *DragController) finalize() {
	s := c.session
	if s == nil {
		return
	}

	// Layout owns the row from here on.
	c.positionTween.Cancel()
	c.positionTween = nil

	ph := s.placeholder
	if ph.Destroyed() || ph.Parent() != s.list {
		c.logger.Warn("placeholder lost before settle", slog.String("row", s.row.Name))
		c.abort()
		return
	}

	s.row.SetBlocksInput(true)
	s.row.MoveTo(s.list, ph.SiblingIndex())
	c.session = nil
	ph.Destroy()

	to := s.row.SiblingIndex()
	c.logger.Debug("row settled",
		slog.String("row", s.row.Name),
		slog.Int("from", s.startIndex),
		slog.Int("to", to))

	if c.onSettled != nil {
		c.onSettled(s.row, s.startIndex, to)
	}
}

// abort returns the row to its original slot without animation and clears
// the session. It is the recovery path for a placeholder removed by someone
// else mid-drag.
func (c *DragController) abort() {
	s := c.session
	c.session = nil

	c.heightTween.Cancel()
	c.heightTween = nil
	c.positionTween.Cancel()
	c.positionTween = nil

	s.row.SetBlocksInput(true)
	if s.list.Destroyed() {
		c.logger.Error("list destroyed during drag; row left on overlay",
			slog.String("row", s.row.Name))
	} else {
		s.row.MoveTo(s.list, min(s.startIndex, s.list.ChildCount()))
	}
	if !s.placeholder.Destroyed() {
		s.placeholder.Destroy()
	}
}

// animatePlaceholderHeight replaces any running height animation.
func (c *DragController) animatePlaceholderHeight(from, to float32, done func()) {
	c.heightTween.Cancel()

	ph := c.session.placeholder
	var tw *Tween
	tw = c.scene.anim.AnimateFloat(from, to, c.tuning.CollapseDuration,
		func(h float32) {
			if !ph.Destroyed() {
				ph.SetPreferredHeight(h)
			}
		},
		func() {
			if c.heightTween == tw {
				c.heightTween = nil
			}
			if done != nil {
				done()
			}
		})
	c.heightTween = tw
}

// animateRowPosition replaces any running position animation. The row is
// moved by its bottom-left corner.
func (c *DragController) animateRowPosition(from, to Vec2) {
	c.positionTween.Cancel()

	row := c.session.row
	var tw *Tween
	tw = c.scene.anim.AnimateVec2(from, to, c.tuning.SettleDuration,
		func(v Vec2) {
			row.SetPoint(PivotBottomLeft, v)
		},
		func() {
			if c.positionTween == tw {
				c.positionTween = nil
			}
		})
	c.positionTween = tw
}

// dropIndex returns the sibling index the placeholder should take for a
// pointer at height y. The candidate is the first child whose midline lies
// below the pointer, or the last index when there is none. Moving downward
// the placeholder itself was counted among the children above, so the
// candidate is then one less.
func dropIndex(list *Node, y float32, current int) int {
	n := list.ChildCount()
	target := max(n-1, 0)

	for i := range n {
		if list.Child(i).Point(PivotCenter).Y > y {
			target = i
			if current < target {
				target--
			}
			break
		}
	}
	return target
}
