package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Material kinds accepted in a Description
const (
	KindLambertian = "lambertian"
	KindGlossy     = "glossy"
	KindDielectric = "dielectric"
)

// Surface kinds accepted in a Description
const (
	KindSphere = "sphere"
)

// Description is a declarative scene: named materials plus an ordered surface list
type Description struct {
	Background *BackgroundDescription         `json:"background,omitempty"`
	Materials  map[string]MaterialDescription `json:"materials"`
	Surfaces   []SurfaceDescription           `json:"surfaces"`
}

// BackgroundDescription overrides the sky gradient
type BackgroundDescription struct {
	Top    [3]float64 `json:"top"`
	Bottom [3]float64 `json:"bottom"`
}

// MaterialDescription describes one material; optional fields apply to specific kinds
type MaterialDescription struct {
	Kind            string     `json:"kind"`
	Albedo          [3]float64 `json:"albedo"`
	Roughness       *float64   `json:"roughness,omitempty"`        // glossy only
	RefractiveIndex *float64   `json:"refractive_index,omitempty"` // dielectric only
}

// SurfaceDescription describes one surface bound to a named material
type SurfaceDescription struct {
	Kind     string     `json:"kind"`
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

func vec(c [3]float64) core.Vec3 {
	return core.NewVec3(c[0], c[1], c[2])
}

// Build turns a description into a validated scene.
// Each named material is constructed once and shared by all surfaces that reference it.
func Build(desc Description) (*Scene, error) {
	materials := make(map[string]core.Material, len(desc.Materials))
	for name, md := range desc.Materials {
		m, err := buildMaterial(md)
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %w", ErrInvalidScene, name, err)
		}
		materials[name] = m
	}

	s := NewScene()
	if desc.Background != nil {
		s.TopColor = vec(desc.Background.Top)
		s.BottomColor = vec(desc.Background.Bottom)
	}

	for i, sd := range desc.Surfaces {
		shape, err := buildSurface(sd, materials)
		if err != nil {
			return nil, fmt.Errorf("%w: surface %d: %w", ErrInvalidScene, i, err)
		}
		s.Add(shape)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func buildMaterial(md MaterialDescription) (core.Material, error) {
	albedo := vec(md.Albedo)

	var m core.Material
	switch md.Kind {
	case KindLambertian:
		m = material.NewLambertian(albedo)
	case KindGlossy:
		if md.Roughness == nil {
			return nil, fmt.Errorf("glossy material requires roughness")
		}
		// Construct directly so out-of-range roughness is reported instead of clamped
		m = &material.Glossy{Albedo: albedo, Roughness: *md.Roughness}
	case KindDielectric:
		if md.RefractiveIndex == nil {
			return nil, fmt.Errorf("dielectric material requires refractive_index")
		}
		m = material.NewDielectric(albedo, *md.RefractiveIndex)
	default:
		return nil, fmt.Errorf("unknown material kind %q", md.Kind)
	}

	if v, ok := m.(core.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildSurface(sd SurfaceDescription, materials map[string]core.Material) (core.Shape, error) {
	m, ok := materials[sd.Material]
	if !ok {
		return nil, fmt.Errorf("unknown material %q", sd.Material)
	}

	switch sd.Kind {
	case KindSphere:
		sphere := geometry.NewSphere(vec(sd.Center), sd.Radius, m)
		if err := sphere.Validate(); err != nil {
			return nil, err
		}
		return sphere, nil
	default:
		return nil, fmt.Errorf("unknown surface kind %q", sd.Kind)
	}
}
