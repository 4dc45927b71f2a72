package reorder

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a screen-space rectangle.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// At returns the point at the given pivot, where (0,0) is the top-left
// corner and (1,1) the bottom-right.
func (r Rect) At(pivot Vec2) Vec2 {
	return Vec2{X: r.X + r.W*pivot.X, Y: r.Y + r.H*pivot.Y}
}

// Common pivots.
var (
	PivotTopLeft    = Vec2{X: 0, Y: 0}
	PivotCenter     = Vec2{X: 0.5, Y: 0.5}
	PivotBottomLeft = Vec2{X: 0, Y: 1}
)

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// lerpf interpolates between a and b. t=1 yields b exactly.
func lerpf(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// lerpVec2 interpolates component-wise between a and b.
func lerpVec2(a, b Vec2, t float32) Vec2 {
	return Vec2{X: lerpf(a.X, b.X, t), Y: lerpf(a.Y, b.Y, t)}
}
