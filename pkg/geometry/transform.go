package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipNormals reverses the normal reported by its child
type FlipNormals struct {
	Child Hitable
}

// NewFlipNormals wraps child so its normals point the other way
func NewFlipNormals(child Hitable) *FlipNormals {
	return &FlipNormals{Child: child}
}

func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	hit, ok := f.Child.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return hit, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

func (f *FlipNormals) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Child.BoundingBox(time0, time1)
}

func (*FlipNormals) isHitable() {}

// Translate moves its child by a fixed offset
type Translate struct {
	Child  Hitable
	Offset core.Vec3
}

// NewTranslate wraps child displaced by offset
func NewTranslate(child Hitable, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset}
}

// Hit moves the ray into the child's frame and the hit point back out
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	hit, ok := tr.Child.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return hit, false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Child.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

func (*Translate) isHitable() {}

// RotateY rotates its child about the Y axis
type RotateY struct {
	Child    Hitable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps child rotated by angle degrees about the Y axis.
// The bounding box is computed once from the child's box over [0, 1].
func NewRotateY(child Hitable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Child:    child,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := child.BoundingBox(0, 1)
	if !ok {
		return r
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0.0; i < 2; i++ {
		for j := 0.0; j < 2; j++ {
			for k := 0.0; k < 2; k++ {
				x := i*childBox.Max.X + (1-i)*childBox.Min.X
				y := j*childBox.Max.Y + (1-j)*childBox.Min.Y
				z := k*childBox.Max.Z + (1-k)*childBox.Min.Z
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	r.box = core.NewAABBFromPoints(corners...)
	r.hasBox = true
	return r
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, ok := r.Child.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return hit, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box precomputed at construction; the query interval is ignored
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

func (*RotateY) isHitable() {}
