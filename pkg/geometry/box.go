package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 rectangles.
// Faces on the minimum corner are flipped so every normal points out of the box.
type Box struct {
	PMin, PMax core.Vec3
	faces      *HitableList
}

// NewBox creates a box spanning the corners pMin and pMax
func NewBox(pMin, pMax core.Vec3, material material.Material) *Box {
	faces := NewHitableList(
		NewXYRect(pMin.X, pMax.X, pMin.Y, pMax.Y, pMax.Z, material),
		NewFlipNormals(NewXYRect(pMin.X, pMax.X, pMin.Y, pMax.Y, pMin.Z, material)),
		NewXZRect(pMin.X, pMax.X, pMin.Z, pMax.Z, pMax.Y, material),
		NewFlipNormals(NewXZRect(pMin.X, pMax.X, pMin.Z, pMax.Z, pMin.Y, material)),
		NewYZRect(pMin.Y, pMax.Y, pMin.Z, pMax.Z, pMax.X, material),
		NewFlipNormals(NewYZRect(pMin.Y, pMax.Y, pMin.Z, pMax.Z, pMin.X, material)),
	)

	return &Box{PMin: pMin, PMax: pMax, faces: faces}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns exactly the box corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.PMin, b.PMax), true
}

func (*Box) isHitable() {}
