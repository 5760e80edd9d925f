package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Stock materials shared by the built-in scenes. Weights are
// (diffuse, specular, reflection, refraction).

// Ivory is a dull off-white surface with a faint mirror component
func Ivory() material.Material {
	return material.New(core.NewVec3(0.4, 0.4, 0.3), 0.6, 0.3, 0.1, 0, 50, 1.0)
}

// Glass is a transparent refracting surface with a sharp highlight
func Glass() material.Material {
	return material.New(core.NewVec3(0.6, 0.7, 0.8), 0, 0.5, 0.1, 0.8, 125, 1.5)
}

// RedRubber is a matte red surface with almost no highlight
func RedRubber() material.Material {
	return material.New(core.NewVec3(0.3, 0.1, 0.1), 0.9, 0.1, 0, 0, 10, 1.0)
}

// Mirror reflects nearly everything and carries an intense white highlight
func Mirror() material.Material {
	return material.New(core.NewVec3(1, 1, 1), 0, 10, 0.8, 0, 1425, 1.0)
}
