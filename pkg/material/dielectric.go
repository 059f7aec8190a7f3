package material

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	Albedo          core.Vec3 // Tint; near 1 for clear glass
	RefractiveIndex float64   // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new tinted dielectric material
func NewDielectric(albedo core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// NewClearDielectric creates a dielectric that absorbs no light
func NewClearDielectric(refractiveIndex float64) *Dielectric {
	return NewDielectric(core.ColorWhite, refractiveIndex)
}

// RefractionRatio returns the index ratio for a ray entering (front face) or leaving the medium
func (d *Dielectric) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / d.RefractiveIndex
	}
	return d.RefractiveIndex
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	direction := core.RefractOrReflect(rayIn.Direction, hit.Normal, d.RefractionRatio(hit.FrontFace), random)

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}

// Validate checks the material parameters
func (d *Dielectric) Validate() error {
	if err := validateAlbedo("dielectric", d.Albedo); err != nil {
		return err
	}
	if !(d.RefractiveIndex > 0) || math.IsInf(d.RefractiveIndex, 1) {
		return fmt.Errorf("dielectric refractive index must be positive and finite, got %v", d.RefractiveIndex)
	}
	return nil
}
