package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal. Planes
// carry no material of their own; MaterialAt returns the default material.
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (normalized at construction)
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect solves the implicit plane equation for the ray parameter. The
// ray misses when it is parallel to the plane or when it points away from
// it, detected by comparing the signs of the directional and positional dot
// products.
func (p *Plane) Intersect(ray core.Ray) (core.Vec3, bool) {
	toPlane := p.Point.Subtract(ray.Origin)
	planeDist := p.Normal.Dot(toPlane)
	cosDir := p.Normal.Dot(ray.Direction)

	if cosDir*planeDist <= 0 {
		return core.Vec3{}, false
	}
	return ray.At(planeDist / cosDir), true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// MaterialAt returns the default material
func (p *Plane) MaterialAt(point core.Vec3) material.Material {
	return material.Default()
}
