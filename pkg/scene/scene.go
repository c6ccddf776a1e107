package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// ErrUnknownScene is returned by Build for names missing from the registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       geometry.Hitable      // Root of the object graph, usually a BVH
	Camera      renderer.CameraConfig // Aspect is replaced by the render config's
	Background  integrator.Background // Radiance of escaping rays
	Config      renderer.Config       // Recommended render settings
	BVHStats    geometry.BVHStats     // Shape of the top-level BVH
}

// Options are the inputs shared by every scene builder
type Options struct {
	Seed        int64  // Seeds object placement, Perlin tables and the BVH splits
	TexturePath string // Optional PNG or JPEG used by textured scenes
}

// Builder assembles a scene
type Builder func(opts Options) (*Scene, error)

type entry struct {
	description string
	build       Builder
}

var registry = map[string]entry{
	"random":        {"field of small random spheres with motion blur around three large ones", NewRandomScene},
	"two-perlin":    {"two spheres with Perlin marble noise", NewTwoPerlinScene},
	"earth":         {"image textured sphere, checkerboard without -texture", NewEarthScene},
	"simple-light":  {"Perlin spheres lit by a rectangle and a sphere light", NewSimpleLightScene},
	"cornell":       {"Cornell box with two rotated blocks", NewCornellScene},
	"cornell-smoke": {"Cornell box with blocks of light and dark smoke", NewCornellSmokeScene},
	"final":         {"box terrain, glass, fog, noise, motion blur and an instanced sphere cluster", NewFinalScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the one-line summary of a registered scene
func Description(name string) string {
	return registry[name].description
}

// Build assembles the named scene
func Build(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	s.Name = name
	s.Description = e.description
	return s, nil
}

// NewCamera creates the scene camera with the aspect ratio of config
func (s *Scene) NewCamera(config renderer.Config) *renderer.Camera {
	cameraConfig := s.Camera
	cameraConfig.Aspect = config.AspectRatio()
	return renderer.NewCamera(cameraConfig)
}

// newBVHScene wraps objects in a BVH for the camera's shutter interval
func newBVHScene(objects []geometry.Hitable, camera renderer.CameraConfig, background integrator.Background, config renderer.Config, seed int64) (*Scene, error) {
	bvh, err := geometry.NewBVHNodeParallel(objects, camera.Time0, camera.Time1, core.NewSeededSampler(seed))
	if err != nil {
		return nil, err
	}

	stats := bvh.Stats()
	logger.Infof("built bvh over %d objects\n%s", len(objects), renderer.BVHStatsTable(stats))

	config.Seed = seed
	camera.Aspect = config.AspectRatio()
	return &Scene{
		World:      bvh,
		Camera:     camera,
		Background: background,
		Config:     config,
		BVHStats:   stats,
	}, nil
}

// skyBackground is the white to light blue gradient of the outdoor scenes
func skyBackground() integrator.Background {
	return integrator.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

func blackBackground() integrator.Background {
	return integrator.NewSolidBackground(core.Vec3{})
}

func sceneConfig(width, height, spp int) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = spp
	return config
}
