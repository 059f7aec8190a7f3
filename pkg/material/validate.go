package material

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// validateAlbedo rejects colors that would inject energy or NaNs into a path
func validateAlbedo(kind string, albedo core.Vec3) error {
	if !albedo.IsFinite() {
		return fmt.Errorf("%s albedo must be finite, got %v", kind, albedo)
	}
	if albedo.X < 0 || albedo.Y < 0 || albedo.Z < 0 {
		return fmt.Errorf("%s albedo must not be negative, got %v", kind, albedo)
	}
	return nil
}
