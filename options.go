package reorder

import "log/slog"

// Tuning holds the timing and geometry constants of a reorder drag.
type Tuning struct {
	// CollapsedHeight is the placeholder height while it is collapsed.
	CollapsedHeight float32 `yaml:"collapsed_height"`

	// CollapseDuration is the length, in seconds, of every placeholder
	// height animation: collapse on pickup, grow on move, grow on settle.
	CollapseDuration float32 `yaml:"collapse_duration"`

	// SettleDuration is the length, in seconds, of the row's flight to its
	// landing position after release. Keep it shorter than CollapseDuration.
	SettleDuration float32 `yaml:"settle_duration"`
}

// Default tuning values.
const (
	DefaultCollapsedHeight  float32 = 10
	DefaultCollapseDuration float32 = 0.1
	DefaultSettleDuration   float32 = 0.07
)

// DefaultTuning returns the standard reorder feel.
func DefaultTuning() Tuning {
	return Tuning{
		CollapsedHeight:  DefaultCollapsedHeight,
		CollapseDuration: DefaultCollapseDuration,
		SettleDuration:   DefaultSettleDuration,
	}
}

// RowResolver maps a drag handle to the row it drags.
type RowResolver func(handle *Node) *Node

// SettledFunc is called once a dropped row has been reparented into its list.
// from and to are the row's sibling index before the drag and after it.
type SettledFunc func(row *Node, from, to int)

// DragOption configures a DragController.
type DragOption func(*DragController)

// WithTuning sets the drag tuning.
func WithTuning(t Tuning) DragOption {
	return func(c *DragController) { c.tuning = t }
}

// WithLogger sets the logger used for drag traces.
func WithLogger(l *slog.Logger) DragOption {
	return func(c *DragController) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRowResolver overrides how the dragged row is found from the handle.
func WithRowResolver(r RowResolver) DragOption {
	return func(c *DragController) {
		if r != nil {
			c.resolveRow = r
		}
	}
}

// WithSettled registers a callback for completed drops.
func WithSettled(fn SettledFunc) DragOption {
	return func(c *DragController) { c.onSettled = fn }
}

// DropZoneOption configures a DropZone.
type DropZoneOption func(*DropZone)

// WithDropObserver registers fn to be called with every dropped element.
func WithDropObserver(fn func(dropped *Node)) DropZoneOption {
	return func(z *DropZone) { z.observer = fn }
}

// WithDropLogger sets the logger used for drop traces.
func WithDropLogger(l *slog.Logger) DropZoneOption {
	return func(z *DropZone) {
		if l != nil {
			z.logger = l
		}
	}
}
