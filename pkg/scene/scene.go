package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. Shapes and lights
// are ordered; intersection ties between equidistant shapes resolve to the
// earlier one, so ordering is part of scene definition.
type Scene struct {
	Shapes       []geometry.Shape
	Lights       []lights.PointLight
	CameraConfig renderer.CameraConfig
}

// NewScene creates an empty scene with the given camera setup
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.PointLight, 0),
		CameraConfig: cameraConfig,
	}
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) *Scene {
	s.Shapes = append(s.Shapes, shape)
	return s
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) *Scene {
	s.Lights = append(s.Lights, light)
	return s
}

// GetShapes returns the ordered shape list
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetLights returns the ordered light list
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// GetCameraConfig returns the scene's camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}
