package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	BandHeight int // Rows per worker task
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		BandHeight: 32,
		NumWorkers: 0,
	}
}

// Scene provides everything the renderer needs: geometry and lights for the
// tracer plus the camera setup.
type Scene interface {
	tracer.Scene
	GetCameraConfig() CameraConfig
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width       int
	Height      int
	PrimaryRays int64
	Bands       int
	Elapsed     time.Duration
}

// Renderer renders a scene into an image using a pool of tracing workers
type Renderer struct {
	scene        Scene
	camera       *Camera
	config       Config
	tracerConfig tracer.Config
	logger       core.Logger
}

// NewRenderer creates a renderer for a scene
func NewRenderer(scene Scene, config Config, tracerConfig tracer.Config, logger core.Logger) *Renderer {
	return &Renderer{
		scene:        scene,
		camera:       NewCamera(scene.GetCameraConfig()),
		config:       config,
		tracerConfig: tracerConfig,
		logger:       logger,
	}
}

// Render traces one primary ray per pixel and assembles the image
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	cameraConfig := r.scene.GetCameraConfig()
	width, height := cameraConfig.Width, cameraConfig.Height

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	numBands := (height + r.config.BandHeight - 1) / r.config.BandHeight
	pool := NewWorkerPool(r.scene, r.camera, img, r.tracerConfig, numBands, r.config.NumWorkers)
	pool.Start()

	r.logger.Printf("Rendering %dx%d with %d workers over %d bands\n",
		width, height, pool.GetNumWorkers(), numBands)

	for band := 0; band < numBands; band++ {
		minY := band * r.config.BandHeight
		maxY := min(minY+r.config.BandHeight, height)
		pool.SubmitTask(BandTask{
			TaskID: band,
			Bounds: image.Rect(0, minY, width, maxY),
		})
	}
	pool.Stop()

	stats := RenderStats{Width: width, Height: height, Bands: numBands}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.PrimaryRays += result.PrimaryRays
	}
	stats.Elapsed = time.Since(startTime)

	r.logger.Printf("Traced %d primary rays in %v\n", stats.PrimaryRays, stats.Elapsed)
	return img, stats
}

// colorToRGBA converts a [0,1] color vector to an opaque 8-bit pixel
func colorToRGBA(c core.Vec3) color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(255 * math.Max(0, math.Min(1, v))))
	}
	return color.RGBA{R: clamp(c.X), G: clamp(c.Y), B: clamp(c.Z), A: 255}
}
