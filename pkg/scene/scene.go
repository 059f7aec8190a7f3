package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrInvalidScene is wrapped by every scene construction or validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes      []core.Shape // Objects in the scene, scanned linearly
	TopColor    core.Vec3    // Background color straight up
	BottomColor core.Vec3    // Background color straight down
}

// NewScene creates a scene with the default white-to-sky-blue background
func NewScene(shapes ...core.Shape) *Scene {
	return &Scene{
		Shapes:      shapes,
		TopColor:    core.ColorSkyBlue,
		BottomColor: core.ColorWhite,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the closest intersection among all shapes within [tMin, tMax].
// On an exactly equal t the later shape wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BackgroundColors returns the gradient endpoints used for rays that miss everything
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// Validate checks every shape that can validate itself
func (s *Scene) Validate() error {
	if !s.TopColor.IsFinite() || !s.BottomColor.IsFinite() {
		return fmt.Errorf("%w: background colors must be finite", ErrInvalidScene)
	}
	for i, shape := range s.Shapes {
		if shape == nil {
			return fmt.Errorf("%w: shape %d is nil", ErrInvalidScene, i)
		}
		if v, ok := shape.(core.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("%w: shape %d: %w", ErrInvalidScene, i, err)
			}
		}
	}
	return nil
}
