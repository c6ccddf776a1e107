package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	groundBoxWidth     = 100.0
	clusterSpheres     = 1000
)

// NewFinalScene combines every primitive, material and texture: a terrain of
// boxes, a moving sphere, glass, metal, a glass ball filled with blue fog, a
// thin global mist, a textured globe, a marble ball and a rotated cluster of
// small spheres with its own BVH
func NewFinalScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	boxes := make([]geometry.Hitable, 0, groundBoxesPerSide*groundBoxesPerSide)
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			x0 := -1000 + float64(i)*groundBoxWidth
			z0 := -1000 + float64(j)*groundBoxWidth
			y1 := 100 * (sampler.Get1D() + 0.01)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+groundBoxWidth, y1, z0+groundBoxWidth),
				ground,
			))
		}
	}
	terrain, err := geometry.NewBVHNode(boxes, 0, 1, sampler)
	if err != nil {
		return nil, err
	}

	objects := []geometry.Hitable{
		terrain,
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	}

	center := core.NewVec3(400, 400, 200)
	objects = append(objects,
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10)),
	)

	// Subsurface look: a glass shell around blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects,
		boundary,
		geometry.NewConstantMedium(boundary, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9))),
	)

	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, material.NewSolidColor(core.NewVec3(1, 1, 1))))

	globe, err := sphereTexture(opts)
	if err != nil {
		return nil, err
	}
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))),
	)

	cluster := make([]geometry.Hitable, clusterSpheres)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(sampler.Get3D().Multiply(165), 10, white)
	}
	clusterBVH, err := geometry.NewBVHNode(cluster, 0, 1, sampler)
	if err != nil {
		return nil, err
	}
	objects = append(objects, geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	camera := renderer.CameraConfig{
		LookFrom:  core.NewVec3(478, 278, -600),
		LookAt:    core.NewVec3(278, 278, 0),
		Up:        core.NewVec3(0, 1, 0),
		VFov:      40,
		Aperture:  0,
		FocusDist: 10,
		Time0:     0,
		Time1:     1,
	}
	return newBVHScene(objects, camera, blackBackground(), sceneConfig(400, 400, 1000), opts.Seed)
}
