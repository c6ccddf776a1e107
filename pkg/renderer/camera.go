package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains the placement and lens settings of a thin-lens camera
type CameraConfig struct {
	LookFrom  core.Vec3 // Eye position
	LookAt    core.Vec3 // Point the camera faces
	Up        core.Vec3 // World up, need not be orthogonal to the view direction
	VFov      float64   // Vertical field of view in degrees
	Aspect    float64   // Width over height
	Aperture  float64   // Lens diameter, 0 gives a pinhole
	FocusDist float64   // Distance to the plane in perfect focus
	Time0     float64   // Shutter open
	Time1     float64   // Shutter close
}

// Camera generates primary rays through a thin lens
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.Aspect * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	fd := config.FocusDist
	lowerLeftCorner := config.LookFrom.
		Subtract(u.Multiply(fd * halfWidth)).
		Subtract(v.Multiply(fd * halfHeight)).
		Subtract(w.Multiply(fd))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * fd * halfWidth),
		vertical:        v.Multiply(2 * fd * halfHeight),
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// (0, 0) being the lower left corner. The origin is jittered over the lens and
// the time is drawn uniformly from the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)
	return core.NewRayAtTime(origin, direction, time)
}
