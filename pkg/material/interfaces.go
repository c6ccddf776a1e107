package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how a ray continues after hitting a surface.
// The set of materials is closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
// Materials are immutable and may be shared by any number of primitives.
type Material interface {
	// Scatter returns the continuation ray and its attenuation, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance emitted at the surface point (black for non-emitters)
	Emitted(u, v float64, point core.Vec3) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is produced by a hit query and consumed by the caller; nothing retains it.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal, possibly flipped by wrappers
	Material Material  // Material of the hit object
	U, V     float64   // Surface parameterization for texture lookup
}

// noEmission is embedded by materials that do not emit light
type noEmission struct{}

func (noEmission) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
