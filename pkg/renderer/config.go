package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains the settings of a single render
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Camera rays traced per pixel
	MaxDepth        int   // Bounce limit handed to the path tracer
	TileSize        int   // Edge length of the square tiles handed to workers
	NumWorkers      int   // Worker goroutines, 0 picks one per logical CPU
	Seed            int64 // Base seed for the per-tile random generators
}

// DefaultConfig returns the settings used when a scene does not override them
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports the first setting that cannot be rendered
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// AspectRatio returns width over height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
