package reorder

import "sync"

// drawListPool provides reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 256),
			IdxBuffer: make([]uint16, 0, 384),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	Color uint32     // RGBA packed color
}

// DrawList accumulates solid-color triangles for a frame.
type DrawList struct {
	VtxBuffer []Vertex // Vertex data
	IdxBuffer []uint16 // Index data
}

// Clear resets the DrawList for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
}

// Empty reports whether nothing has been drawn.
func (dl *DrawList) Empty() bool {
	return len(dl.IdxBuffer) == 0
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	if len(dl.VtxBuffer)+4 > 0xFFFF {
		return
	}

	idx := uint16(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer,
		idx, idx+1, idx+2,
		idx, idx+2, idx+3,
	)
}
