package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"rectangles scene", "rectangles", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 0, 0)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
				}
				if scene == nil {
					t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
				}
				if scene.GetCameraConfig().Width <= 0 {
					t.Errorf("Scene camera width should be positive, got %d", scene.GetCameraConfig().Width)
				}
				if len(scene.GetShapes()) == 0 {
					t.Errorf("Scene '%s' should contain shapes", tt.sceneType)
				}
				if len(scene.GetLights()) == 0 {
					t.Errorf("Scene '%s' should contain lights", tt.sceneType)
				}
			}
		})
	}
}

func TestCreateScene_SizeOverrides(t *testing.T) {
	scene, err := createScene("default", 320, 200)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	camera := scene.GetCameraConfig()
	if camera.Width != 320 || camera.Height != 200 {
		t.Errorf("Expected 320x200 camera, got %dx%d", camera.Width, camera.Height)
	}
}
