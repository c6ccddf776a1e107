package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestFlipNormals(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 0, testMaterial)
	flipped := NewFlipNormals(rect)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	original, ok := rect.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit on child")
	}
	hit, ok := flipped.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit on flipped child")
	}

	if !hit.Normal.Equals(original.Normal.Negate()) {
		t.Errorf("Expected normal %v, got %v", original.Normal.Negate(), hit.Normal)
	}
	if hit.T != original.T || hit.Point != original.Point || hit.U != original.U || hit.V != original.V {
		t.Error("Flipping should only change the normal")
	}

	childBox, _ := rect.BoundingBox(0, 1)
	box, ok := flipped.BoundingBox(0, 1)
	if !ok || box != childBox {
		t.Errorf("Expected child box %v, got %v", childBox, box)
	}
}

func TestTranslate(t *testing.T) {
	offset := core.NewVec3(2, 0, 0)
	moved := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial), offset)

	ray := core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := moved.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-12 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !hit.Point.ApproxEquals(core.NewVec3(2, 0, -1), 1e-12) {
		t.Errorf("Expected point (2,0,-1), got %v", hit.Point)
	}
	if !hit.Point.ApproxEquals(ray.At(hit.T), 1e-12) {
		t.Errorf("Point %v does not lie on the ray at t=%f", hit.Point, hit.T)
	}

	// The untranslated position is now empty
	if _, ok := moved.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1), nil); ok {
		t.Error("Expected miss at the original position")
	}

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Translated sphere should have a box")
	}
	expected := core.NewAABB(core.NewVec3(1, -1, -1), core.NewVec3(3, 1, 1))
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// +90 degrees maps (x, y, z) to (z, y, -x)
	rotated := NewRotateY(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 2), testMaterial), 90)

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Rotated box should have a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(0, 0, -1), core.NewVec3(2, 1, 0))
	if !box.Min.ApproxEquals(expected.Min, 1e-12) || !box.Max.ApproxEquals(expected.Max, 1e-12) {
		t.Errorf("Expected box %v, got %v", expected, box)
	}

	ray := core.NewRay(core.NewVec3(1, 0.5, -5), core.NewVec3(0, 0, 1))
	hit, ok := rotated.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit on rotated box")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !hit.Point.ApproxEquals(core.NewVec3(1, 0.5, -1), 1e-9) {
		t.Errorf("Expected point (1,0.5,-1), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestRotateY_HitsInsideBox(t *testing.T) {
	rotated := NewRotateY(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), testMaterial), 15)
	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Rotated box should have a bounding box")
	}

	sampler := core.NewSeededSampler(3)
	hits := 0
	for i := 0; i < 500; i++ {
		s := sampler.Get3D()
		origin := core.NewVec3(s.X*600-200, s.Y*600-200, -500)
		target := box.Min.Add(box.Size().MultiplyVec(sampler.Get3D()))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, ok := rotated.Hit(ray, 0.001, math.Inf(1), nil)
		if !ok {
			continue
		}
		hits++
		if !box.Contains(hit.Point, 1e-6) {
			t.Fatalf("Hit point %v outside rotated box %v", hit.Point, box)
		}
		if !hit.Point.ApproxEquals(ray.At(hit.T), 1e-6) {
			t.Fatalf("Hit point %v does not lie on the ray at t=%f", hit.Point, hit.T)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit the rotated box")
	}
}

func TestRotateY_UnboundedChild(t *testing.T) {
	rotated := NewRotateY(NewHitableList(), 30)
	if _, ok := rotated.BoundingBox(0, 1); ok {
		t.Error("Rotating an unbounded child should give no box")
	}
}
