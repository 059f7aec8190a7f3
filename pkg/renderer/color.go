package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RGB is an 8-bit-per-channel display color
type RGB struct {
	R, G, B uint8
}

// LinearToGamma applies gamma-2 encoding. Non-positive and NaN inputs map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// Quantize clamps a display-space channel to [0, 1] and truncates it to 8 bits
func Quantize(channel float64) uint8 {
	if math.IsNaN(channel) {
		return 0
	}
	return uint8(255 * max(0.0, min(1.0, channel)))
}

// ToRGB converts a mean linear-space color to gamma-corrected 8-bit channels
func ToRGB(linear core.Vec3) RGB {
	return RGB{
		R: Quantize(LinearToGamma(linear.X)),
		G: Quantize(LinearToGamma(linear.Y)),
		B: Quantize(LinearToGamma(linear.Z)),
	}
}
