package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	noEmission
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter reflects or refracts the ray. Total internal reflection always reflects;
// otherwise reflection is chosen with the Schlick probability. Glass never absorbs.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	dirDotNormal := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var refractionRatio, cosine float64
	if dirDotNormal > 0 {
		// Exiting the material (glass to air)
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / direction.Length()
	} else {
		// Entering the material (air to glass)
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / direction.Length()
	}

	reflectProb := 1.0
	refracted, canRefract := refract(direction, outwardNormal, refractionRatio)
	if canRefract {
		reflectProb = Reflectance(cosine, d.RefractiveIndex)
	}

	var scatteredDir core.Vec3
	if sampler.Get1D() < reflectProb {
		scatteredDir = reflect(direction, hit.Normal)
	} else {
		scatteredDir = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatteredDir, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

func (*Dielectric) isMaterial() {}

// refract bends v through a surface with normal n using Snell's law.
// It reports false when there is no real solution (total internal reflection).
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
