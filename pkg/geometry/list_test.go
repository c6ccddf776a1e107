package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestHitableList_Closest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, testMaterial)

	// Order must not matter
	for _, list := range []*HitableList{NewHitableList(near, far), NewHitableList(far, near)} {
		hit, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
		if !ok {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-12 {
			t.Errorf("Expected nearest hit at t=1.5, got %f", hit.T)
		}
	}
}

func TestHitableList_Empty(t *testing.T) {
	list := NewHitableList()
	if _, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1), nil); ok {
		t.Error("Empty list should never be hit")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Empty list should have no bounding box")
	}
}

func TestHitableList_BoundingBox(t *testing.T) {
	list := NewHitableList(
		NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(5, 5, 5), 1, testMaterial),
	)
	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(6, 6, 6))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	list.Add(NewHitableList())
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("A list with an unbounded member should have no box")
	}
}
