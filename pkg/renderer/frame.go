package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Frame holds the per-pixel sample accumulators of a render, row 0 being the
// top of the image
type Frame struct {
	Width  int
	Height int
	Pixels [][]PixelStats // Indexed [y][x]
}

// NewFrame allocates an empty frame
func NewFrame(width, height int) *Frame {
	pixels := make([][]PixelStats, height)
	for y := range pixels {
		pixels[y] = make([]PixelStats, width)
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}
}

// Color returns the linear average color of pixel (x, y)
func (f *Frame) Color(x, y int) core.Vec3 {
	return f.Pixels[y][x].GetColor()
}
