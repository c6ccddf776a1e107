package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitableList is a flat collection of objects tested one by one
type HitableList struct {
	Objects []Hitable
}

// NewHitableList creates a list from the given objects
func NewHitableList(objects ...Hitable) *HitableList {
	return &HitableList{Objects: objects}
}

// Add appends an object to the list
func (l *HitableList) Add(object Hitable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit among all objects, shrinking tMax as hits are found
func (l *HitableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of all member boxes.
// An empty list, or one with any unbounded member, has no box.
func (l *HitableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

func (*HitableList) isHitable() {}
