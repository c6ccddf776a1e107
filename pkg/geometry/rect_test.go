package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRects_HitNormalAndUV(t *testing.T) {
	tests := []struct {
		name      string
		rect      Hitable
		origin    core.Vec3
		direction core.Vec3
		t         float64
		normal    core.Vec3
		u, v      float64
	}{
		{
			name:      "XY",
			rect:      NewXYRect(0, 2, 0, 4, 1, testMaterial),
			origin:    core.NewVec3(0.5, 1, 5),
			direction: core.NewVec3(0, 0, -1),
			t:         4,
			normal:    core.NewVec3(0, 0, 1),
			u:         0.25,
			v:         0.25,
		},
		{
			name:      "XZ",
			rect:      NewXZRect(-1, 1, -1, 1, 2, testMaterial),
			origin:    core.NewVec3(0, 0, 0.5),
			direction: core.NewVec3(0, 1, 0),
			t:         2,
			normal:    core.NewVec3(0, 1, 0),
			u:         0.5,
			v:         0.75,
		},
		{
			name:      "YZ",
			rect:      NewYZRect(0, 10, 0, 10, -3, testMaterial),
			origin:    core.NewVec3(0, 1, 9),
			direction: core.NewVec3(-2, 0, 0),
			t:         1.5,
			normal:    core.NewVec3(1, 0, 0),
			u:         0.1,
			v:         0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := tt.rect.Hit(ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.t) > 1e-12 {
				t.Errorf("Expected t=%f, got %f", tt.t, hit.T)
			}
			if !hit.Normal.Equals(tt.normal) {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
			if math.Abs(hit.U-tt.u) > 1e-12 || math.Abs(hit.V-tt.v) > 1e-12 {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.u, tt.v, hit.U, hit.V)
			}

			box, ok := tt.rect.BoundingBox(0, 1)
			if !ok || !box.Contains(hit.Point, 0) {
				t.Errorf("Hit point %v outside bounding box %v", hit.Point, box)
			}
		})
	}
}

func TestXYRect_Misses(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, testMaterial)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		tMax      float64
	}{
		{"outside extent", core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), math.Inf(1)},
		{"behind origin", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), math.Inf(1)},
		{"beyond tMax", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 4},
		{"parallel off plane", core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0), math.Inf(1)},
		{"parallel in plane", core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), math.Inf(1)},
		{"NaN direction", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, math.NaN()), math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := rect.Hit(core.NewRay(tt.origin, tt.direction), 0.001, tt.tMax, nil); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestXYRect_EdgeIsInclusive(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, testMaterial)
	ray := core.NewRay(core.NewVec3(1, -1, 5), core.NewVec3(0, 0, -1))

	hit, isHit := rect.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Ray through the corner should hit")
	}
	if hit.U != 1 || hit.V != 0 {
		t.Errorf("Expected uv (1, 0), got (%f, %f)", hit.U, hit.V)
	}
}

func TestRects_BoundingBoxThickness(t *testing.T) {
	tests := []struct {
		name     string
		rect     Hitable
		expected core.AABB
	}{
		{
			"XY", NewXYRect(0, 1, 2, 3, 5, testMaterial),
			core.NewAABB(core.NewVec3(0, 2, 5-RectThickness), core.NewVec3(1, 3, 5+RectThickness)),
		},
		{
			"XZ", NewXZRect(0, 1, 2, 3, 5, testMaterial),
			core.NewAABB(core.NewVec3(0, 5-RectThickness, 2), core.NewVec3(1, 5+RectThickness, 3)),
		},
		{
			"YZ", NewYZRect(0, 1, 2, 3, 5, testMaterial),
			core.NewAABB(core.NewVec3(5-RectThickness, 0, 2), core.NewVec3(5+RectThickness, 1, 3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.rect.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Rect should have a box")
			}
			if box != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, box)
			}
		})
	}
}
