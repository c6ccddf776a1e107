package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// outdoorCamera looks at the origin from (13, 2, 3)
func outdoorCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:  core.NewVec3(13, 2, 3),
		LookAt:    core.NewVec3(0, 0, 0),
		Up:        core.NewVec3(0, 1, 0),
		VFov:      20,
		Aperture:  aperture,
		FocusDist: 10,
		Time0:     0,
		Time1:     1,
	}
}

// NewRandomScene scatters small spheres around three large ones. Diffuse
// spheres bounce upward during the shutter interval.
func NewRandomScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	checker := material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	objects := []geometry.Hitable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				center1 := center.Add(core.NewVec3(0, 0.5*sampler.Get1D(), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := sampler.Get3D().Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*sampler.Get1D())))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return newBVHScene(objects, outdoorCamera(0.1), skyBackground(), sceneConfig(400, 200, 100), opts.Seed)
}

// perlinSpheres returns a noise textured ground and a noise textured ball
func perlinSpheres(sampler core.Sampler) []geometry.Hitable {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	return []geometry.Hitable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewTwoPerlinScene shows the marble noise texture on two spheres
func NewTwoPerlinScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	return newBVHScene(perlinSpheres(sampler), outdoorCamera(0), skyBackground(), sceneConfig(400, 200, 100), opts.Seed)
}

// NewEarthScene maps an image onto a sphere. Without a texture path a
// generated checkerboard stands in for the image.
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := sphereTexture(opts)
	if err != nil {
		return nil, err
	}

	objects := []geometry.Hitable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	}
	return newBVHScene(objects, outdoorCamera(0), skyBackground(), sceneConfig(400, 200, 100), opts.Seed)
}

func sphereTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		return material.NewCheckerboardTexture(512, 256, 32,
			core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.2, 0.6, 0.2)), nil
	}

	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %dx%d texture from %s", texture.Width, texture.Height, opts.TexturePath)
	return texture, nil
}

// NewSimpleLightScene lights the Perlin spheres with a rectangle and a sphere
// against a black sky
func NewSimpleLightScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	objects := append(perlinSpheres(sampler),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	camera := outdoorCamera(0)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	return newBVHScene(objects, camera, blackBackground(), sceneConfig(400, 200, 400), opts.Seed)
}
