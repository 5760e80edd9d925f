package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	overrides := renderer.CameraConfig{Width: width, Height: height}

	switch sceneType {
	case "default":
		return scene.NewDefaultScene(overrides), nil
	case "rectangles":
		return scene.NewRectanglesScene(overrides), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'rectangles'")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	depth := flag.Int("depth", 4, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("out", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default    - Four spheres (ivory, glass, red rubber, mirror) under three lights")
		fmt.Println("  rectangles - Spheres in front of a rectangular mirror panel with a floor plane")
		return
	}

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tracerConfig := tracer.DefaultConfig()
	tracerConfig.MaxBounces = *depth

	renderConfig := renderer.DefaultConfig()
	renderConfig.NumWorkers = *workers

	logger := renderer.NewDefaultLogger()
	r := renderer.NewRenderer(selectedScene, renderConfig, tracerConfig, logger)

	img, stats := r.Render()
	fmt.Printf("Render completed in %v (%d primary rays)\n", stats.Elapsed, stats.PrimaryRays)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
