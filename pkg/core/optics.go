package core

import (
	"math"
	"math/rand"
)

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n using Snell's law.
// etaRatio is the ratio of refractive indices (incident over transmitted).
func Refract(uv, n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// CannotRefract reports whether a ray meeting the surface at cosTheta undergoes total internal reflection
func CannotRefract(cosTheta, refractionRatio float64) bool {
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	return refractionRatio*sinTheta > 1.0
}

// RefractOrReflect returns the direction taken by v at a dielectric boundary with normal n.
// Total internal reflection always reflects; otherwise reflection is chosen with the
// Schlick probability, drawing one uniform value from random.
func RefractOrReflect(v, n Vec3, refractionRatio float64, random *rand.Rand) Vec3 {
	unitDirection := v.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(n), 1.0)

	if CannotRefract(cosTheta, refractionRatio) || random.Float64() < Reflectance(cosTheta, refractionRatio) {
		return Reflect(unitDirection, n)
	}
	return Refract(unitDirection, n, refractionRatio)
}
