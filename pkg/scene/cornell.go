package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:  core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:    core.NewVec3(278, 278, 0),
		Up:        core.NewVec3(0, 1, 0),
		VFov:      40,
		Aperture:  0, // No depth of field for Cornell box
		FocusDist: 10,
		Time0:     0,
		Time1:     1,
	}
}

// cornellWalls returns the five walls of the open-front box. Walls facing
// into the box are flipped so their normals point inward.
func cornellWalls(white material.Material) []geometry.Hitable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hitable{
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)), // Left
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),                                  // Right
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)), // Ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),                                // Floor
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)), // Back
	}
}

// cornellBlocks returns the short and tall blocks, rotated and placed in the box
func cornellBlocks(white material.Material) (geometry.Hitable, geometry.Hitable) {
	short := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65),
	)
	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295),
	)
	return short, tall
}

// NewCornellScene creates the classic Cornell box lit by a ceiling panel
func NewCornellScene(opts Options) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := cornellWalls(white)
	objects = append(objects, geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light))
	short, tall := cornellBlocks(white)
	objects = append(objects, short, tall)

	return newBVHScene(objects, cornellCamera(), blackBackground(), sceneConfig(300, 300, 500), opts.Seed)
}

// NewCornellSmokeScene replaces the blocks with constant density media under
// a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	objects := cornellWalls(white)
	objects = append(objects, geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light))
	short, tall := cornellBlocks(white)
	objects = append(objects,
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
	)

	return newBVHScene(objects, cornellCamera(), blackBackground(), sceneConfig(300, 300, 500), opts.Seed)
}
