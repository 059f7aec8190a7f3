package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func testCameraConfig() RenderConfig {
	config := DefaultRenderConfig()
	config.ImageWidth = 400
	config.ImageHeight = 200
	return config
}

func TestCamera_ViewportBasis(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// Viewport is 4 wide (aspect 2 * height 2), 2 tall
	du, dv := camera.PixelDeltas()
	if !vecClose(du, core.NewVec3(0.01, 0, 0), 1e-15) {
		t.Errorf("Expected pixel delta u (0.01,0,0), got %v", du)
	}
	if !vecClose(dv, core.NewVec3(0, -0.01, 0), 1e-15) {
		t.Errorf("Expected pixel delta v (0,-0.01,0), got %v", dv)
	}

	// Upper-left pixel center is half a pixel in from the corner
	if got := camera.PixelCenter(0, 0); !vecClose(got, core.NewVec3(-1.995, 0.995, -1), 1e-12) {
		t.Errorf("Expected first pixel center (-1.995,0.995,-1), got %v", got)
	}

	// Lower-right pixel center mirrors it
	if got := camera.PixelCenter(399, 199); !vecClose(got, core.NewVec3(1.995, -0.995, -1), 1e-12) {
		t.Errorf("Expected last pixel center (1.995,-0.995,-1), got %v", got)
	}
}

func TestCamera_GetRay_NoJitter(t *testing.T) {
	config := testCameraConfig()
	config.Jitter = false
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	first := camera.GetRay(10, 20, random)
	for i := 0; i < 10; i++ {
		if ray := camera.GetRay(10, 20, random); ray != first {
			t.Fatalf("Expected identical rays without jitter, got %v and %v", first, ray)
		}
	}

	if camera.Center() != config.CameraOrigin {
		t.Errorf("Expected camera center %v, got %v", config.CameraOrigin, camera.Center())
	}
	if first.Origin != config.CameraOrigin {
		t.Errorf("Expected ray origin at camera center, got %v", first.Origin)
	}
	if !vecClose(first.Direction, camera.PixelCenter(10, 20), 1e-15) {
		t.Errorf("Expected ray through pixel center, got %v", first.Direction)
	}
}

func TestCamera_GetRay_JitterStaysInPixel(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))
	center := camera.PixelCenter(123, 45)

	varied := false
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(123, 45, random)
		offset := ray.Direction.Subtract(center)

		if math.Abs(offset.X) > 0.005+1e-12 || math.Abs(offset.Y) > 0.005+1e-12 {
			t.Fatalf("Jittered sample offset %v leaves the pixel", offset)
		}
		if offset.Z != 0 {
			t.Fatalf("Jitter must stay on the viewport plane, got z offset %f", offset.Z)
		}
		if offset.X != 0 || offset.Y != 0 {
			varied = true
		}
	}

	if !varied {
		t.Error("Expected jittered rays to vary")
	}
}

func TestCamera_OffsetOrigin(t *testing.T) {
	base := testCameraConfig()
	base.Jitter = false
	moved := base
	moved.CameraOrigin = core.NewVec3(1, 2, 3)

	random := rand.New(rand.NewSource(1))
	baseRay := NewCamera(base).GetRay(7, 9, random)
	movedRay := NewCamera(moved).GetRay(7, 9, random)

	if movedRay.Origin != moved.CameraOrigin {
		t.Errorf("Expected origin %v, got %v", moved.CameraOrigin, movedRay.Origin)
	}
	// Translating the camera does not change where it looks
	if !vecClose(baseRay.Direction, movedRay.Direction, 1e-12) {
		t.Errorf("Expected same direction %v, got %v", baseRay.Direction, movedRay.Direction)
	}
}

func TestCamera_FocalLength(t *testing.T) {
	config := testCameraConfig()
	config.FocalLength = 2.5
	camera := NewCamera(config)

	if got := camera.PixelCenter(0, 0).Z; got != -2.5 {
		t.Errorf("Expected viewport at z=-2.5, got %f", got)
	}
}
