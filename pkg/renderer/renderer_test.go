package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

type testScene struct {
	shapes []geometry.Shape
	lights []lights.PointLight
	camera CameraConfig
}

func (s *testScene) GetShapes() []geometry.Shape    { return s.shapes }
func (s *testScene) GetLights() []lights.PointLight { return s.lights }
func (s *testScene) GetCameraConfig() CameraConfig  { return s.camera }

type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}

func singleSphereScene(width, height int) *testScene {
	return &testScene{
		shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -10), 2.0,
				material.New(core.NewVec3(0.3, 0.1, 0.1), 0.9, 0.1, 0, 0, 10, 1.0)),
		},
		lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 20, -10), 1.5),
		},
		camera: CameraConfig{Center: core.NewVec3(0, 0, 0), VFov: 73, Width: width, Height: height},
	}
}

func TestRenderer_Render(t *testing.T) {
	scene := singleSphereScene(32, 24)
	r := NewRenderer(scene, Config{BandHeight: 8, NumWorkers: 2}, tracer.DefaultConfig(), nopLogger{})

	img, stats := r.Render()

	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 24 {
		t.Fatalf("Expected 32x24 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if stats.PrimaryRays != 32*24 {
		t.Errorf("Expected one primary ray per pixel (768), got %d", stats.PrimaryRays)
	}
	if stats.Bands != 3 {
		t.Errorf("Expected 3 bands of 8 rows, got %d", stats.Bands)
	}

	// A corner ray misses everything: exact background color
	background := color.RGBA{R: 51, G: 178, B: 204, A: 255}
	if got := img.RGBAAt(0, 0); got != background {
		t.Errorf("Expected background pixel %v, got %v", background, got)
	}

	// The center ray hits the sphere, so it must differ from the background
	if got := img.RGBAAt(16, 12); got == background {
		t.Errorf("Expected center pixel to hit the sphere, got background %v", got)
	}
}

func TestRenderer_WorkerCountDoesNotChangeImage(t *testing.T) {
	render := func(workers int) *image.RGBA {
		scene := singleSphereScene(16, 16)
		r := NewRenderer(scene, Config{BandHeight: 4, NumWorkers: workers}, tracer.DefaultConfig(), nopLogger{})
		img, _ := r.Render()
		return img
	}

	serial := render(1)
	parallel := render(4)

	if len(serial.Pix) != len(parallel.Pix) {
		t.Fatalf("Image sizes differ: %d vs %d", len(serial.Pix), len(parallel.Pix))
	}
	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Pixel data differs at byte %d: %d vs %d", i, serial.Pix[i], parallel.Pix[i])
		}
	}
}

func TestWorkerPool_ProcessesAllTasks(t *testing.T) {
	scene := singleSphereScene(8, 8)
	camera := NewCamera(scene.GetCameraConfig())
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	pool := NewWorkerPool(scene, camera, img, tracer.DefaultConfig(), 4, 2)
	pool.Start()

	for i := 0; i < 4; i++ {
		pool.SubmitTask(BandTask{TaskID: i, Bounds: image.Rect(0, i*2, 8, (i+1)*2)})
	}
	pool.Stop()

	seen := make(map[int]bool)
	var totalRays int64
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		seen[result.TaskID] = true
		totalRays += result.PrimaryRays
	}

	if len(seen) != 4 {
		t.Errorf("Expected 4 completed tasks, got %d", len(seen))
	}
	if totalRays != 64 {
		t.Errorf("Expected 64 rays across all bands, got %d", totalRays)
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected color.RGBA
	}{
		{
			name:     "background color",
			color:    core.NewVec3(0.2, 0.7, 0.8),
			expected: color.RGBA{R: 51, G: 178, B: 204, A: 255},
		},
		{
			name:     "white",
			color:    core.NewVec3(1, 1, 1),
			expected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name:     "out of range clamps",
			color:    core.NewVec3(-0.5, 1.5, 0.5),
			expected: color.RGBA{R: 0, G: 255, B: 128, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToRGBA(tt.color); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
