package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit intersects the ray with the rectangle; the normal is always +Z
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	t, u, v, ok := hitAxisRect(ray, tMin, tMax, 0, 1, 2, r.X0, r.X1, r.Y0, r.Y1, r.K)
	if !ok {
		return material.HitRecord{}, false
	}
	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 0, 1),
		Material: r.Material,
		U:        u,
		V:        v,
	}, true
}

// BoundingBox pads the rectangle by RectThickness along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-RectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+RectThickness),
	), true
}

func (*XYRect) isHitable() {}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit intersects the ray with the rectangle; the normal is always +Y
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	t, u, v, ok := hitAxisRect(ray, tMin, tMax, 0, 2, 1, r.X0, r.X1, r.Z0, r.Z1, r.K)
	if !ok {
		return material.HitRecord{}, false
	}
	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 1, 0),
		Material: r.Material,
		U:        u,
		V:        v,
	}, true
}

// BoundingBox pads the rectangle by RectThickness along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-RectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+RectThickness, r.Z1),
	), true
}

func (*XZRect) isHitable() {}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit intersects the ray with the rectangle; the normal is always +X
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	t, u, v, ok := hitAxisRect(ray, tMin, tMax, 1, 2, 0, r.Y0, r.Y1, r.Z0, r.Z1, r.K)
	if !ok {
		return material.HitRecord{}, false
	}
	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0),
		Material: r.Material,
		U:        u,
		V:        v,
	}, true
}

// BoundingBox pads the rectangle by RectThickness along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-RectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+RectThickness, r.Y1, r.Z1),
	), true
}

func (*YZRect) isHitable() {}

// hitAxisRect intersects a ray with the rectangle [a0,a1]×[b0,b1] lying in the
// plane where the ray's axis c equals k. Every comparison is negated so a NaN
// from a ray parallel to the plane falls through to a miss.
func hitAxisRect(ray core.Ray, tMin, tMax float64, a, b, c int, a0, a1, b0, b1, k float64) (t, u, v float64, ok bool) {
	t = (k - ray.Origin.Axis(c)) / ray.Direction.Axis(c)
	if !(t > tMin && t < tMax) {
		return 0, 0, 0, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if !(pa >= a0 && pa <= a1 && pb >= b0 && pb <= b1) {
		return 0, 0, 0, false
	}

	return t, (pa - a0) / (a1 - a0), (pb - b0) / (b1 - b0), true
}
