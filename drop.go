package reorder

import "log/slog"

// DropZone is the passive drop target of a list.
//
// By the time the pointer is released over a list, the DragController of
// the dragged row has already claimed the drop and is settling the row into
// place. The zone therefore only records the event; it never mutates the
// tree. An observer can be attached as an extension point.
type DropZone struct {
	list     *Node
	observer func(dropped *Node)
	logger   *slog.Logger
}

// NewDropZone creates a drop zone for list and registers it as the list's
// drop handler.
func NewDropZone(list *Node, opts ...DropZoneOption) *DropZone {
	z := &DropZone{
		list:   list,
		logger: componentLogger("drop"),
	}
	for _, opt := range opts {
		opt(z)
	}
	list.SetDropHandler(z)
	return z
}

// List returns the container the zone is attached to.
func (z *DropZone) List() *Node {
	return z.list
}

// OnDrop records that dropped was released over the zone.
func (z *DropZone) OnDrop(dropped *Node) {
	name := "<nil>"
	if dropped != nil {
		name = dropped.Name
	}
	z.logger.Debug("drop", slog.String("zone", z.list.Name), slog.String("dropped", name))

	if z.observer != nil {
		z.observer(dropped)
	}
}
