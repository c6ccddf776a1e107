package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrUnsupportedFormat is returned by Save for file extensions other than .png and .ppm
var ErrUnsupportedFormat = errors.New("unsupported image format")

// toDisplay converts a linear color to 8-bit channels: clamp to [0, 1],
// gamma 2 (square root) and scale by 255.99. NaN and infinite channels are black.
func toDisplay(c core.Vec3) (uint8, uint8, uint8) {
	c = core.NewVec3(finiteOrZero(c.X), finiteOrZero(c.Y), finiteOrZero(c.Z))
	g := c.Clamp(0, 1).GammaCorrect(2.0)
	return uint8(255.99 * g.X), uint8(255.99 * g.Y), uint8(255.99 * g.Z)
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Image converts the frame to an 8-bit RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := toDisplay(f.Color(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the frame as PNG
func WritePNG(w io.Writer, f *Frame) error {
	return png.Encode(w, f.Image())
}

// WritePPM encodes the frame as plain-text PPM (P3), top row first
func WritePPM(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := toDisplay(f.Color(x, y))
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}
	return bw.Flush()
}

// Save writes the frame to path, picking the encoder from the extension
func Save(path string, f *Frame) error {
	var encode func(io.Writer, *Frame) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = WritePNG
	case ".ppm":
		encode = WritePPM
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := encode(file, f); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
