package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

const testSceneJSON = `{
  "materials": {
    "grey": {"kind": "lambertian", "albedo": [0.5, 0.5, 0.5]}
  },
  "surfaces": [
    {"kind": "sphere", "center": [0, 0, -1], "radius": 0.5, "material": "grey"}
  ]
}`

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "single.json")
	if err := os.WriteFile(sceneFile, []byte(testSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		sceneFile   string
		expectError bool
		shapes      int
	}{
		{"default scene", "default", "", false, 4},
		{"glass scene", "glass", "", false, 6},
		{"scene file overrides name", "default", sceneFile, false, 1},

		{"unknown scene", "nonexistent", "", true, 0},
		{"empty scene name", "", "", true, 0},
		{"missing scene file", "default", filepath.Join(dir, "missing.json"), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, tt.sceneFile)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error, got none")
				}
				if s != nil {
					t.Errorf("Expected nil scene on error, got %T", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.Shapes) != tt.shapes {
				t.Errorf("Expected %d shapes, got %d", tt.shapes, len(s.Shapes))
			}
		})
	}
}

func TestCreateScene_UnknownIsInvalidScene(t *testing.T) {
	if _, err := createScene("nonexistent", ""); !errors.Is(err, scene.ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	opts, err := parseFlags([]string{"-scene", "glass", "-width", "64", "-height", "32", "-samples", "8",
		"-depth", "5", "-seed", "7", "-workers", "0", "-no-jitter", "-quiet"}, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	config := buildConfig(opts)
	if config.ImageWidth != 64 || config.ImageHeight != 32 {
		t.Errorf("Unexpected size %dx%d", config.ImageWidth, config.ImageHeight)
	}
	if config.SamplesPerPixel != 8 || config.MaxDepth != 5 || config.RNGSeed != 7 {
		t.Errorf("Unexpected sampling settings %+v", config)
	}
	if config.Jitter {
		t.Error("Expected jitter disabled")
	}
	if config.NumWorkers != runtime.NumCPU() {
		t.Errorf("Expected -workers 0 to mean %d workers, got %d", runtime.NumCPU(), config.NumWorkers)
	}
	if opts.sceneType != "glass" || !opts.quiet {
		t.Errorf("Unexpected options %+v", opts)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	config := buildConfig(opts)
	defaults := renderer.DefaultRenderConfig()
	if config != defaults {
		t.Errorf("Expected default config %+v, got %+v", defaults, config)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := [][]string{
		{"-width", "wide"},
		{"-unknown"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args, &bytes.Buffer{}); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 9, 0, time.UTC)

	tests := []struct {
		name     string
		opts     options
		expected string
	}{
		{"built-in scene", options{sceneType: "glass"}, filepath.Join("output", "glass", "render_20240305_143009.png")},
		{"scene file", options{sceneType: "default", sceneFile: "scenes/my_scene.json"}, filepath.Join("output", "my_scene", "render_20240305_143009.png")},
		{"explicit output", options{sceneType: "default", output: "out.png"}, "out.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.opts, now); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPrintHelp(t *testing.T) {
	var out bytes.Buffer
	printHelp(&out)
	for _, want := range []string{"-scene", "-workers", "default", "glass"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected help to mention %q", want)
		}
	}
}

func TestRun_WritesPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "render.png")
	opts, err := parseFlags([]string{"-width", "16", "-height", "9", "-samples", "2", "-depth", "4",
		"-workers", "2", "-output", filename}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var stdout bytes.Buffer
	if err := run(context.Background(), opts, &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "Progress 100%") {
		t.Errorf("Expected final progress line, got %q", stdout.String())
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %v", b)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	opts, err := parseFlags([]string{"-samples", "0", "-quiet", "-output", filepath.Join(t.TempDir(), "x.png")}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := run(context.Background(), opts, &bytes.Buffer{}); !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
