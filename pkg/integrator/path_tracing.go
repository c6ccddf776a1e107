package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the number of bounces after which only emission is gathered
	DefaultMaxDepth = 50

	// ShadowAcneEpsilon is the minimum hit distance, keeping a scattered ray
	// from re-hitting the surface it left
	ShadowAcneEpsilon = 0.001
)

// PathTracer implements unidirectional path tracing without light sampling
type PathTracer struct {
	MaxDepth   int
	TMin       float64
	Background Background
}

// NewPathTracer creates a path tracer with the default depth and epsilon
func NewPathTracer(background Background) *PathTracer {
	return &PathTracer{
		MaxDepth:   DefaultMaxDepth,
		TMin:       ShadowAcneEpsilon,
		Background: background,
	}
}

// Radiance computes the color carried along a single ray.
// Emission is always gathered; scattering stops once depth reaches MaxDepth
// or the material absorbs the ray.
func (pt *PathTracer) Radiance(ray core.Ray, world geometry.Hitable, depth int, sampler core.Sampler) core.Vec3 {
	hit, isHit := world.Hit(ray, pt.TMin, math.Inf(1), sampler)
	if !isHit {
		return pt.Background.Value(ray)
	}

	// Start with emitted light from the hit material
	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	// If we've reached the ray bounce limit, no more light is gathered
	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := pt.Radiance(scatter.Scattered, world, depth+1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
