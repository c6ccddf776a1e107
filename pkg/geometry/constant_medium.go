package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a convex shape,
// such as smoke or fog. Rays passing through it scatter at an exponentially
// distributed free-flight distance.
type ConstantMedium struct {
	Boundary      Hitable
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with a medium of the given density whose
// isotropic phase function takes its color from texture
func NewConstantMedium(boundary Hitable, density float64, texture material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(texture),
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering event inside that segment. The boundary must be convex.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, sampler)
	if !ok {
		return material.HitRecord{}, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+MediumExitEpsilon, math.MaxFloat64, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if !(t0 < t1) {
		return material.HitRecord{}, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(sampler.Get1D())
	if !(hitDistance < distanceInside) {
		return material.HitRecord{}, false
	}

	t := t0 + hitDistance/rayLength
	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

func (*ConstantMedium) isHitable() {}
