package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays. Intersect reports the
// nearest forward intersection point; NormalAt and MaterialAt describe the
// surface at a point previously returned by Intersect.
type Shape interface {
	Intersect(ray core.Ray) (core.Vec3, bool)
	NormalAt(point core.Vec3) core.Vec3
	MaterialAt(point core.Vec3) material.Material
}
