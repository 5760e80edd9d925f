package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig holds camera parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position; the view axis is -Z
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		VFov:   73.0,
		Width:  1024,
		Height: 768,
	}
}

// MergeCameraConfig merges non-zero override fields into a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != (core.Vec3{}) {
		merged.Center = override.Center
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.Height != 0 {
		merged.Height = override.Height
	}
	return merged
}

// Camera generates primary rays for rendering
type Camera struct {
	config     CameraConfig
	tanHalfFov float64
	aspect     float64
}

// NewCamera creates a camera from a config
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config:     config,
		tanHalfFov: math.Tan(config.VFov * math.Pi / 360.0),
		aspect:     float64(config.Width) / float64(config.Height),
	}
}

// GetRay generates the primary ray through the center of pixel (i, j).
// Pixel (0, 0) is the top-left corner; the image Y axis points down while
// the world Y axis points up, hence the sign flip.
func (c *Camera) GetRay(i, j int) core.Ray {
	relW := (float64(i) + 0.5) / float64(c.config.Width)
	relH := (float64(j) + 0.5) / float64(c.config.Height)

	x := (2*relW - 1) * c.tanHalfFov * c.aspect
	y := -(2*relH - 1) * c.tanHalfFov

	return core.NewRay(c.config.Center, core.NewVec3(x, y, -1))
}
