package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewRectanglesScene creates a scene with a rectangular mirror panel behind
// two spheres and an infinite floor plane, exercising every primitive kind.
func NewRectanglesScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)

	// Mirror panel standing upright behind the spheres, facing the camera
	s.AddShape(geometry.NewRectangle(
		core.NewVec3(-8, -4, -24), // corner
		core.NewVec3(0, 2, -24),   // center
		core.NewVec3(1, 0, 0),     // side direction
		Mirror(),
	))

	s.AddShape(geometry.NewSphere(core.NewVec3(-2.5, -1, -14), 2.0, Glass())).
		AddShape(geometry.NewSphere(core.NewVec3(2.5, -0.5, -16), 2.5, RedRubber())).
		AddShape(geometry.NewSphere(core.NewVec3(0, 1.8, -19), 1.5, Ivory()))

	// Floor catching the sphere shadows
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -4, 0), core.NewVec3(0, 1, 0)))

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 25, 15), 1.6)).
		AddLight(lights.NewPointLight(core.NewVec3(25, 35, -20), 1.2))

	return s
}
