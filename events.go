package reorder

import "log/slog"

// DragHandler receives the pointer events of a drag that started on its node.
// Positions are in screen space.
type DragHandler interface {
	BeginDrag(p Vec2) error
	OnDrag(p Vec2)
	EndDrag(p Vec2)
}

// DragCanceler is implemented by drag handlers that can abort a drag.
type DragCanceler interface {
	CancelDrag()
}

// DropHandler receives the element whose drag was released over its node.
type DropHandler interface {
	OnDrop(dropped *Node)
}

// DefaultDragThreshold is the distance in pixels the pointer must travel
// while pressed before a drag begins.
const DefaultDragThreshold float32 = 10

// EventSystem turns per-frame input into drag and drop events.
//
// A left press is routed to the nearest drag handler above the node under
// the pointer. Once the pointer has moved DragThreshold pixels the handler
// gets BeginDrag followed by OnDrag, then OnDrag for every later move. On
// release the handler gets EndDrag, after which the nearest drop handler
// under the pointer gets OnDrop with the node the drag started on.
// Escape cancels the drag if the handler supports it.
type EventSystem struct {
	// DragThreshold is the press-to-drag distance in pixels.
	DragThreshold float32

	scene  *Scene
	logger *slog.Logger

	pressNode *Node // Node owning the pressed drag handler
	pressPos  Vec2
	lastPos   Vec2
	dragging  bool
}

// NewEventSystem creates an event system for scene.
func NewEventSystem(scene *Scene) *EventSystem {
	return &EventSystem{
		DragThreshold: DefaultDragThreshold,
		scene:         scene,
		logger:        componentLogger("events"),
	}
}

// Dragging reports whether a drag is in progress.
func (es *EventSystem) Dragging() bool {
	return es.dragging
}

// Process dispatches this frame's pointer events.
func (es *EventSystem) Process(input *InputState) {
	if input == nil {
		return
	}
	pos := input.MousePos()

	if input.MouseClicked(MouseButtonLeft) && es.pressNode == nil {
		if hit := es.scene.HitTest(pos); hit != nil {
			es.pressNode = hit.DragHandlerNode()
			es.pressPos = pos
		}
	}

	if es.pressNode != nil && input.MouseDown(MouseButtonLeft) {
		switch {
		case !es.dragging:
			if es.pastThreshold(pos) {
				es.begin(pos)
			}
		case pos != es.lastPos:
			if h := es.handler(); h != nil {
				h.OnDrag(pos)
			}
		}
	}

	if es.dragging && input.KeyPressed(KeyEscape) {
		es.cancel()
	}

	if input.MouseReleased(MouseButtonLeft) {
		es.release(pos)
	}

	es.lastPos = pos
}

func (es *EventSystem) pastThreshold(pos Vec2) bool {
	d := pos.Sub(es.pressPos)
	return d.X*d.X+d.Y*d.Y >= es.DragThreshold*es.DragThreshold
}

func (es *EventSystem) handler() DragHandler {
	if es.pressNode == nil {
		return nil
	}
	return es.pressNode.dragHandler
}

func (es *EventSystem) begin(pos Vec2) {
	h := es.handler()
	if h == nil {
		es.reset()
		return
	}
	if err := h.BeginDrag(pos); err != nil {
		es.logger.Debug("drag refused",
			slog.String("node", es.pressNode.Name),
			slog.String("err", err.Error()))
		es.reset()
		return
	}
	es.dragging = true
	h.OnDrag(pos)
}

func (es *EventSystem) cancel() {
	if c, ok := es.handler().(DragCanceler); ok {
		c.CancelDrag()
		es.logger.Debug("drag cancelled", slog.String("node", es.pressNode.Name))
	}
	es.reset()
}

func (es *EventSystem) release(pos Vec2) {
	if !es.dragging {
		es.reset()
		return
	}

	dragged := es.pressNode
	if h := es.handler(); h != nil {
		h.EndDrag(pos)
	}
	es.reset()

	hit := es.scene.HitTest(pos)
	if hit == nil {
		return
	}
	if target := hit.DropHandlerNode(); target != nil {
		target.dropHandler.OnDrop(dragged)
	}
}

func (es *EventSystem) reset() {
	es.pressNode = nil
	es.dragging = false
}
