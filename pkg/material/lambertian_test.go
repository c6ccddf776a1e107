package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

func TestLambertian_ScattersAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.75)

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Time != ray.Time {
			t.Fatalf("Scattered ray should keep time %f, got %f", ray.Time, scatter.Scattered.Time)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
	}
}

func TestLambertian_MeanDirectionIsNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.7, 0.9))
	sampler := core.NewSeededSampler(7)

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	const samples = 20000
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	zs := make([]float64, samples)
	for i := 0; i < samples; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		xs[i] = scatter.Scattered.Direction.X
		ys[i] = scatter.Scattered.Direction.Y
		zs[i] = scatter.Scattered.Direction.Z
	}

	// normal + uniform point in the unit ball averages to the normal
	const tolerance = 0.02
	if math.Abs(stat.Mean(xs, nil)) > tolerance || math.Abs(stat.Mean(zs, nil)) > tolerance {
		t.Errorf("Tangential mean should be ~0, got x=%.4f z=%.4f", stat.Mean(xs, nil), stat.Mean(zs, nil))
	}
	if math.Abs(stat.Mean(ys, nil)-1) > tolerance {
		t.Errorf("Normal mean should be ~1, got %.4f", stat.Mean(ys, nil))
	}
}

func TestLambertian_Attenuation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, _ := lambertian.Scatter(ray, hit, sampler)
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestLambertian_TexturedAttenuation(t *testing.T) {
	texture := NewImageTexture(2, 1, []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	})
	lambertian := NewTexturedLambertian(texture)
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		u        float64
		expected core.Vec3
	}{
		{0.25, core.NewVec3(1, 0, 0)},
		{0.75, core.NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), U: tt.u, V: 0.5}
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		if !scatter.Attenuation.Equals(tt.expected) {
			t.Errorf("u=%.2f: expected %v, got %v", tt.u, tt.expected, scatter.Attenuation)
		}
	}
}
