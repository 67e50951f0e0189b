package gl

import "fixgl/engine/fix"

// MinIntensity is the floor every lit face is clamped to (0.10).
const MinIntensity fix.Scalar = 6554

// Intensity returns the Lambertian intensity of a surface at surfacePos with
// a unit normal, lit from lightPos. Surfaces facing away, and degenerate
// light directions, get MinIntensity.
func Intensity(lightPos, surfacePos, normal fix.Vec3, base fix.Scalar) fix.Scalar {
	dir, ok := fix.Normalize(lightPos.Sub(surfacePos))
	if !ok {
		return MinIntensity
	}
	d := fix.Dot(dir, normal).Clamp(0, fix.One)
	return fix.Maximum(d.Mul(base), MinIntensity)
}

// FaceIntensity lights a world-space triangle, using its first vertex as the
// surface point.
func FaceIntensity(light Light, a, b, c fix.Vec3) fix.Scalar {
	n, ok := fix.Normalize(fix.Normal(a, b, c))
	if !ok {
		return MinIntensity
	}
	return Intensity(light.Position, a, n, light.Intensity)
}
