package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutsideAndInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "unit sphere from the front",
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "scaled direction",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      0.5,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// The normal stays outward even though the ray leaves the sphere
			name:           "from the center",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Normal.ApproxEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if !hit.Point.ApproxEquals(ray.At(hit.T), 1e-12) {
				t.Errorf("Hit point %v does not match ray.At(%f)", hit.Point, hit.T)
			}
			if hit.Material != testMaterial {
				t.Error("Hit should carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil); isHit {
		t.Errorf("Tangent ray should miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5, nil)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// The range is open: a root exactly at tMax is rejected
	hit, isHit = sphere.Hit(ray, 0.001, 1.0, nil)
	if isHit {
		t.Errorf("Expected miss for root at tMax, but got hit at t=%f", hit.T)
	}

	// Near root excluded, far root qualifies
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0, nil)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got hit=%t t=%f", isHit, hit.T)
	}
}

func TestSphere_Hit_DegenerateRays(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	rays := map[string]core.Ray{
		"zero direction": core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0)),
		"NaN direction":  core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(math.NaN(), 0, 1)),
		"NaN origin":     core.NewRay(core.NewVec3(math.NaN(), 0, -5), core.NewVec3(0, 0, 1)),
	}
	for name, ray := range rays {
		if _, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil); isHit {
			t.Errorf("%s: expected miss", name)
		}
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		u, v      float64
	}{
		{"negative z", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0.75, 0.5},
		{"positive x", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), 0.5, 0.5},
		{"north pole", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0.5, 1.0},
		{"south pole", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.U-tt.u) > 1e-9 || math.Abs(hit.V-tt.v) > 1e-9 {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.u, tt.v, hit.U, hit.V)
			}
		})
	}
}

func TestSphere_HitPointsOnSurfaceAndInBox(t *testing.T) {
	center := core.NewVec3(1, -2, 3)
	radius := 1.5
	sphere := NewSphere(center, radius, testMaterial)
	box, ok := sphere.BoundingBox(0, 1)
	if !ok || !box.Size().Equals(core.NewVec3(3, 3, 3)) {
		t.Fatalf("Sphere should have a 3x3x3 box, got %v %t", box, ok)
	}

	sampler := core.NewSeededSampler(42)
	hits := 0
	for i := 0; i < 500; i++ {
		s := sampler.Get3D()
		origin := center.Add(core.NewVec3(s.X-0.5, s.Y-0.5, s.Z-0.5).Multiply(10))
		target := center.Add(core.RandomInUnitSphere(sampler).Multiply(radius))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
		if !isHit {
			continue
		}
		hits++
		if !(hit.T > 0.001) {
			t.Fatalf("t=%f outside the query range", hit.T)
		}
		if d := hit.Point.Subtract(center).Length(); math.Abs(d-radius) > 1e-9 {
			t.Fatalf("Hit point %v is %f from center, expected %f", hit.Point, d, radius)
		}
		if !box.Contains(hit.Point, 1e-9) {
			t.Fatalf("Hit point %v outside bounding box %v", hit.Point, box)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Normal %v is not unit length", hit.Normal)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit the sphere")
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 1, testMaterial)

	if c := sphere.Center(0.5); !c.ApproxEquals(core.NewVec3(2, 0, 0), 1e-12) {
		t.Errorf("Expected center (2,0,0) at t=0.5, got %v", c)
	}

	// A ray along z through x=4 only hits the sphere late in the shutter
	early := core.NewRayAtTime(core.NewVec3(4, 0, -5), core.NewVec3(0, 0, 1), 0.0)
	late := core.NewRayAtTime(core.NewVec3(4, 0, -5), core.NewVec3(0, 0, 1), 1.0)

	if _, isHit := sphere.Hit(early, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 0")
	}
	hit, isHit := sphere.Hit(late, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit at time 1")
	}
	if math.Abs(hit.T-4) > 1e-9 || !hit.Normal.ApproxEquals(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected t=4 normal (0,0,-1), got t=%f normal %v", hit.T, hit.Normal)
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a box")
	}
	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(5, 1, 1))
	if !box.Min.ApproxEquals(expected.Min, 1e-12) || !box.Max.ApproxEquals(expected.Max, 1e-12) {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}
