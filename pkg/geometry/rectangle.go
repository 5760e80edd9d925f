package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Rectangle is a finite rectangular patch of a plane, bounded by two
// orthogonal edge vectors spanning from one corner.
type Rectangle struct {
	Width    core.Vec3 // Edge vector along the first side
	Height   core.Vec3 // Edge vector along the second side
	Plane    *Plane    // Supporting plane, anchored at the corner
	Material material.Material
}

// NewRectangle creates a rectangle from a corner point, the rectangle
// center, and a direction vector for the first side. The second side is the
// component of corner-to-center orthogonal to the first, so the two edges
// are orthogonal by construction.
func NewRectangle(corner, center, sideDir core.Vec3, mat material.Material) *Rectangle {
	half := center.Subtract(corner)
	e1 := sideDir.Normalize()
	e2 := half.Subtract(half.Project(e1)).Normalize()

	width := e1.Multiply(2 * half.Project(e1).Length())
	height := e2.Multiply(2 * half.Project(e2).Length())
	normal := e1.Cross(e2)

	return &Rectangle{
		Width:    width,
		Height:   height,
		Plane:    &Plane{Point: corner, Normal: normal},
		Material: mat,
	}
}

// Intersect delegates to the supporting plane, then accepts the hit only if
// the displacement from the corner projects within both edge vectors.
func (r *Rectangle) Intersect(ray core.Ray) (core.Vec3, bool) {
	point, ok := r.Plane.Intersect(ray)
	if !ok {
		return core.Vec3{}, false
	}

	d := point.Subtract(r.Plane.Point)
	if d.Project(r.Width).Length() > r.Width.Length() ||
		d.Project(r.Height).Length() > r.Height.Length() {
		return core.Vec3{}, false
	}
	return point, true
}

// NormalAt returns the supporting plane's normal
func (r *Rectangle) NormalAt(point core.Vec3) core.Vec3 {
	return r.Plane.Normal
}

// MaterialAt returns the rectangle's material
func (r *Rectangle) MaterialAt(point core.Vec3) material.Material {
	return r.Material
}
