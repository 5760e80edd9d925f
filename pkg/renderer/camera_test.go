package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_GetRay_Directions(t *testing.T) {
	config := CameraConfig{Center: core.NewVec3(0, 0, 0), VFov: 90, Width: 4, Height: 4}
	camera := NewCamera(config)

	for j := 0; j < config.Height; j++ {
		for i := 0; i < config.Width; i++ {
			ray := camera.GetRay(i, j)

			if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
				t.Errorf("Ray (%d,%d) direction not unit length: %v", i, j, ray.Direction.Length())
			}
			if ray.Direction.Z >= 0 {
				t.Errorf("Ray (%d,%d) should look down -Z, got %v", i, j, ray.Direction)
			}
			if ray.Origin != config.Center {
				t.Errorf("Ray (%d,%d) origin should be the camera center, got %v", i, j, ray.Origin)
			}
		}
	}
}

func TestCamera_GetRay_Symmetry(t *testing.T) {
	camera := NewCamera(CameraConfig{VFov: 73, Width: 6, Height: 4})

	// Mirrored pixels produce mirrored directions
	left := camera.GetRay(0, 1)
	right := camera.GetRay(5, 1)
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-12 {
		t.Errorf("Expected horizontal symmetry, got %v vs %v", left.Direction, right.Direction)
	}

	top := camera.GetRay(2, 0)
	bottom := camera.GetRay(2, 3)
	if math.Abs(top.Direction.Y+bottom.Direction.Y) > 1e-12 {
		t.Errorf("Expected vertical symmetry, got %v vs %v", top.Direction, bottom.Direction)
	}

	// Image rows run downward, world Y runs upward
	if top.Direction.Y <= 0 {
		t.Errorf("Top row should look upward, got %v", top.Direction)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{Width: 320, Height: 240}

	merged := MergeCameraConfig(base, override)

	if merged.Width != 320 || merged.Height != 240 {
		t.Errorf("Expected overridden size 320x240, got %dx%d", merged.Width, merged.Height)
	}
	if merged.VFov != base.VFov || merged.Center != base.Center {
		t.Errorf("Unset override fields should keep base values, got %+v", merged)
	}
}
