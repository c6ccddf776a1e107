package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hitable is anything a ray can be intersected with.
// The set of implementations is closed and lives in this package; wrappers own
// their child, lists and BVH nodes own their members. A Hitable graph is built
// once and is safe for concurrent queries as long as each caller passes its
// own Sampler.
type Hitable interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval
	// [time0, time1], or false if the object is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)

	isHitable()
}

const (
	// RectThickness pads the flat axis of a rectangle so its box has volume
	RectThickness = 0.0001

	// MediumExitEpsilon separates the entry and exit queries against a medium boundary
	MediumExitEpsilon = 0.0001
)

var (
	// ErrNoBoundingBox is returned when a BVH is asked to contain an unbounded object
	ErrNoBoundingBox = errors.New("no bounding box in bvh node constructor")

	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("cannot build bvh from an empty object list")
)
