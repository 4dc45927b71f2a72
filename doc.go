/*
Package reorder provides drag-to-reorder for list panels in a game UI.

# Overview

A list is a Node with a vertical layout; its children are rows. Each row
carries a drag handle, a descendant node with a DragController attached.
Grabbing the handle lifts the row onto the scene overlay, where it follows
the pointer, while a placeholder keeps a slot open in the list. Releasing
flies the row into the slot and puts it back in the list.

The package contains the pieces a host needs to run that interaction:

	Node          scene tree with sibling-index ordering and hit testing
	Layout        vertical list layout that reflows on every change
	Animator      frame-ticked tweens with cancellation
	Scene         root and overlay surfaces plus the animator
	DragController the per-row reorder state machine
	DropZone      passive drop target for a list
	EventSystem   turns InputState into drag and drop events
	UI            runs a frame and hands the draw list to a Renderer

# Quick Start

	scene := reorder.NewScene(reorder.Vec2{X: 800, Y: 600})
	list := reorder.NewList("groups", reorder.Rect{X: 40, Y: 40, W: 300, H: 500}, reorder.Gap(4))
	scene.Root.AddChild(list)

	for i := range 5 {
	    row := reorder.NewNode(fmt.Sprintf("row-%d", i))
	    row.SetRect(reorder.Rect{H: 32})
	    row.SetFlexibleWidth(true)
	    list.AddChild(row)

	    handle := reorder.NewNode("handle")
	    handle.SetRect(reorder.Rect{X: row.Rect().X, Y: row.Rect().Y, W: 24, H: 32})
	    row.AddChild(handle)

	    reorder.NewDragController(scene, handle)
	}
	reorder.NewDropZone(list)

	ui := reorder.New(renderer, scene)
	for !window.ShouldClose() {
	    input := pollInput(window)
	    if err := ui.Frame(input, deltaTime); err != nil {
	        return err
	    }
	}

# Drag Lifecycle

A DragController is idle, dragging or settling:

	Idle      BeginDrag   -> Dragging
	Dragging  OnDrag      -> Dragging (repeatable)
	Dragging  EndDrag     -> Settling
	Dragging  CancelDrag  -> Settling (row flies back to its start slot)
	Settling  (height animation completes) -> Idle

While settling, OnDrag and EndDrag are ignored and BeginDrag returns
ErrDragInProgress.

# Placeholder Rules

When the drag starts, the placeholder is inserted at the row's old index at
full row height and collapses to Tuning.CollapsedHeight. Whenever it moves
to a new slot it grows back to full height. The placeholder never moves
while one of these height animations is running.

The slot under the pointer is the index of the first list child whose
vertical midline is below the pointer, minus one when the placeholder sits
above that child (the placeholder itself must not be counted twice). With no
such child the slot is the last index.

# Threading

Everything runs on the goroutine that created the Scene. Animation
callbacks run synchronously inside Scene.Tick. Calls from other goroutines
are logged as warnings.

# Logging

Drag and drop traces are logged at Debug level through log/slog. Call
SetVerbose(true) to see them, or SetLogger to route them elsewhere.
*/
package reorder
