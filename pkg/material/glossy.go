package material

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Glossy represents a fuzzy mirror
type Glossy struct {
	Albedo    core.Vec3 // Reflected color
	Roughness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewGlossy creates a new glossy material, clamping roughness to [0, 1]
func NewGlossy(albedo core.Vec3, roughness float64) *Glossy {
	return &Glossy{Albedo: albedo, Roughness: max(0.0, min(1.0, roughness))}
}

// Scatter implements the Material interface for glossy reflection.
// Rays perturbed below the surface are not filtered here; the next intersection
// test decides what they see.
func (g *Glossy) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)
	if g.Roughness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(g.Roughness))
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: g.Albedo,
	}, true
}

// Validate checks the material parameters
func (g *Glossy) Validate() error {
	if err := validateAlbedo("glossy", g.Albedo); err != nil {
		return err
	}
	if math.IsNaN(g.Roughness) || g.Roughness < 0 || g.Roughness > 1 {
		return fmt.Errorf("glossy roughness must be in [0, 1], got %v", g.Roughness)
	}
	return nil
}
