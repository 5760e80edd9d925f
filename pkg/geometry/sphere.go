package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Intersect tests the ray against the sphere using the geometric method:
// project the origin-to-center vector onto the ray, compare the
// closest-approach distance with the radius, then pick the nearer positive
// root. When the origin is inside the sphere the first root is negative and
// the exit point is returned instead.
func (s *Sphere) Intersect(ray core.Ray) (core.Vec3, bool) {
	toCenter := s.Center.Subtract(ray.Origin)
	projected := toCenter.Project(ray.Direction)

	centerDist := toCenter.Subtract(projected).Length()
	if centerDist > s.Radius {
		return core.Vec3{}, false
	}

	halfChord := math.Sqrt(s.Radius*s.Radius - centerDist*centerDist)
	alongRay := toCenter.Dot(ray.Direction)

	if t := alongRay - halfChord; t > 0 {
		return ray.At(t), true
	}
	if t := alongRay + halfChord; t > 0 {
		return ray.At(t), true
	}
	return core.Vec3{}, false
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// MaterialAt returns the sphere's material
func (s *Sphere) MaterialAt(point core.Vec3) material.Material {
	return s.Material
}
