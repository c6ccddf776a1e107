package renderer

import (
	"context"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// Renderer traces a scene into a Frame using a pool of tile workers
type Renderer struct {
	world      geometry.Hitable
	camera     *Camera
	integrator integrator.Integrator
	config     Config
}

// NewRenderer creates a renderer for the given world. The path tracer is
// configured with config.MaxDepth and the given background.
func NewRenderer(world geometry.Hitable, camera *Camera, background integrator.Background, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pathTracer := integrator.NewPathTracer(background)
	pathTracer.MaxDepth = config.MaxDepth

	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: pathTracer,
		config:     config,
	}, nil
}

// Config returns the validated render settings
func (r *Renderer) Config() Config {
	return r.config
}

// Render traces every tile and returns the accumulated frame. If ctx is
// cancelled the tiles still queued are skipped and ctx.Err() is returned
// together with the partially filled frame.
func (r *Renderer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	frame := NewFrame(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize, r.config.Seed)

	pool := NewWorkerPool(r.renderTile, r.config.NumWorkers, len(tiles))
	logger.Infof("rendering %dx%d at %d spp with %d workers over %d tiles",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, pool.GetNumWorkers(), len(tiles))

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}
	pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		logger.Debugf("tile %d done (%d/%d)", result.TaskID, stats.TilesRendered, len(tiles))
	}
	stats.Duration = time.Since(start)

	if renderErr != nil {
		logger.Warningf("render stopped after %d of %d tiles: %v", stats.TilesRendered, len(tiles), renderErr)
		return frame, stats, renderErr
	}
	return frame, stats, nil
}

// renderTile accumulates SamplesPerPixel jittered camera rays into every pixel
// of the tile. Image row y maps to v = (Height-1-y + ξ) / Height so that row 0
// is the top of the picture.
func (r *Renderer) renderTile(tile *Tile, frame *Frame) RenderStats {
	sampler := core.NewRandomSampler(tile.Random)
	width := float64(r.config.Width)
	height := float64(r.config.Height)

	stats := RenderStats{TilesRendered: 1}
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		row := float64(r.config.Height - 1 - y)
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			pixel := &frame.Pixels[y][x]
			for s := 0; s < r.config.SamplesPerPixel; s++ {
				u := (float64(x) + sampler.Get1D()) / width
				v := (row + sampler.Get1D()) / height
				ray := r.camera.GetRay(u, v, sampler)
				pixel.AddSample(r.integrator.Radiance(ray, r.world, 0, sampler))
			}
			stats.TotalPixels++
			stats.TotalSamples += r.config.SamplesPerPixel
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
