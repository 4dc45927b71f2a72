package reorder

// Renderer is the interface for rendering a frame's draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// UI runs frames for a scene: input dispatch, animation and rendering.
type UI struct {
	renderer Renderer
	scene    *Scene
	events   *EventSystem
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithDragThreshold sets the press-to-drag distance in pixels.
func WithDragThreshold(pixels float32) UIOption {
	return func(u *UI) { u.events.DragThreshold = pixels }
}

// New creates a UI that draws scene with renderer.
func New(renderer Renderer, scene *Scene, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		scene:    scene,
		events:   NewEventSystem(scene),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Frame runs one frame: pointer events, then the animation tick (where
// tweens started by this frame's events take their first step), then
// drawing and rendering. deltaTime is in seconds.
func (u *UI) Frame(input *InputState, deltaTime float32) error {
	u.events.Process(input)
	u.scene.Tick(deltaTime)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	u.scene.Draw(dl)
	if dl.Empty() {
		return nil
	}
	return u.renderer.Render(dl)
}

// Scene returns the scene driven by the UI.
func (u *UI) Scene() *Scene {
	return u.scene
}

// Events returns the UI's event system.
func (u *UI) Events() *EventSystem {
	return u.events
}

// Resize notifies the renderer and the scene of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
	u.scene.Resize(Vec2{X: float32(width), Y: float32(height)})
}
