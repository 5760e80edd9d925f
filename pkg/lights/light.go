package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a point light source with a position and scalar intensity
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
