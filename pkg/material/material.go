package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material describes how a surface responds to light: its base color plus
// independent mixing weights for the diffuse, specular, reflected and
// refracted contributions. Materials are value types; shading operations
// return adjusted copies and never mutate shared state.
type Material struct {
	Color            core.Vec3 // RGB, each channel in [0,1]
	Diffuse          float64   // Weight of the albedo-scaled diffuse term
	Specular         float64   // Weight of the white specular highlight
	Reflection       float64   // Weight of the reflected ray's color
	Refraction       float64   // Weight of the refracted ray's color
	SpecularExponent float64   // Phong shininess
	RefractiveIndex  float64   // Relative index of refraction
}

// New creates a material from a base color, the four mixing weights
// (diffuse, specular, reflection, refraction), a specular exponent and a
// refractive index.
func New(color core.Vec3, diffuse, specular, reflection, refraction, exponent, index float64) Material {
	return Material{
		Color:            color,
		Diffuse:          diffuse,
		Specular:         specular,
		Reflection:       reflection,
		Refraction:       refraction,
		SpecularExponent: exponent,
		RefractiveIndex:  index,
	}
}

// Default returns the sky-blue fallback material. It doubles as the
// background color for rays that escape the scene.
func Default() Material {
	return New(core.NewVec3(0.2, 0.7, 0.8), 1.0, 0, 0, 0, 1.0, 1.0)
}

// AdjustLight applies the accumulated diffuse and specular light sums to the
// material color: per channel, color*diffuse*diffuseWeight plus a white
// specular shift, clamped to [0,1].
func (m Material) AdjustLight(diffuse, specular float64) Material {
	albedo := diffuse * m.Diffuse
	whiteShift := specular * m.Specular

	m.Color = core.NewVec3(
		clamp(m.Color.X*albedo+whiteShift),
		clamp(m.Color.Y*albedo+whiteShift),
		clamp(m.Color.Z*albedo+whiteShift),
	)
	return m
}

// MixReflection adds the reflected ray's color, scaled by this material's
// reflection weight.
func (m Material) MixReflection(other Material) Material {
	return m.mix(other, m.Reflection)
}

// MixRefraction adds the refracted ray's color, scaled by this material's
// refraction weight.
func (m Material) MixRefraction(other Material) Material {
	return m.mix(other, m.Refraction)
}

func (m Material) mix(other Material, weight float64) Material {
	m.Color = core.NewVec3(
		clamp(m.Color.X+weight*other.Color.X),
		clamp(m.Color.Y+weight*other.Color.Y),
		clamp(m.Color.Z+weight*other.Color.Z),
	)
	return m
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}
