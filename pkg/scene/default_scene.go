package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic four-sphere scene: ivory, glass,
// red rubber and mirror spheres under three point lights.
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)

	s.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2.0, Ivory())).
		AddShape(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2.0, Glass())).
		AddShape(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3.0, RedRubber())).
		AddShape(geometry.NewSphere(core.NewVec3(7, 5, -18), 4.0, Mirror()))

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5)).
		AddLight(lights.NewPointLight(core.NewVec3(30, 50, -25), 1.3)).
		AddLight(lights.NewPointLight(core.NewVec3(30, 20, 30), 1.3))

	return s
}
