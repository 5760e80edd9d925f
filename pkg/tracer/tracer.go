package tracer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Config contains tracing configuration
type Config struct {
	MaxBounces int     // Recursion limit for reflected/refracted rays
	Bias       float64 // Surface offset to avoid self-intersection
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxBounces: 4,
		Bias:       0.001,
	}
}

// Scene interface to avoid a dependency on the scene package. Shape and
// light order is significant: the nearest-hit search breaks exact distance
// ties in favor of the earlier shape.
type Scene interface {
	GetShapes() []geometry.Shape
	GetLights() []lights.PointLight
}

// Tracer turns primary rays into shaded colors by recursive ray casting
type Tracer struct {
	scene  Scene
	config Config
}

// NewTracer creates a tracer for a scene
func NewTracer(scene Scene, config Config) *Tracer {
	return &Tracer{scene: scene, config: config}
}

// Intersection captures a single ray-surface encounter. It lives only for
// the duration of one shading computation.
type Intersection struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
	Ray      core.Ray
}

// cast finds the nearest intersection of the ray with the scene. Shapes are
// tested in scene order and compared with strict less-than on distance, so
// the first shape encountered at the minimal distance wins.
func (t *Tracer) cast(ray core.Ray) (Intersection, bool) {
	closest := math.MaxFloat64
	var nearest Intersection
	found := false

	for _, shape := range t.scene.GetShapes() {
		point, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		dist := point.Subtract(ray.Origin).Length()
		if dist < closest {
			closest = dist
			nearest = Intersection{
				Point:    point,
				Normal:   shape.NormalAt(point),
				Material: shape.MaterialAt(point),
				Ray:      ray,
			}
			found = true
		}
	}

	return nearest, found
}

// Trace computes the color seen along a ray. Rays that escape the scene
// yield the default background material. Below the bounce limit the hit
// color composes local Phong shading with recursively traced reflection and
// refraction; at the limit only local shading remains.
func (t *Tracer) Trace(ray core.Ray, depth int) material.Material {
	hit, ok := t.cast(ray)
	if !ok {
		return material.Default()
	}

	if depth >= t.config.MaxBounces {
		diffuse, specular := t.lightContributions(hit)
		return hit.Material.AdjustLight(diffuse, specular)
	}

	reflected := t.Trace(t.reflectedRay(hit), depth+1)
	refracted := t.Trace(t.refractedRay(hit), depth+1)
	diffuse, specular := t.lightContributions(hit)

	return hit.Material.
		AdjustLight(diffuse, specular).
		MixReflection(reflected).
		MixRefraction(refracted)
}

// reflectedRay bounces the incoming ray off the surface
func (t *Tracer) reflectedRay(hit Intersection) core.Ray {
	direction := hit.Ray.Direction.Reflect(hit.Normal).Normalize()
	origin := offsetFromSurface(hit.Point, direction, hit.Normal, t.config.Bias)
	return core.NewRay(origin, direction)
}

// refractedRay bends the incoming ray through the surface
func (t *Tracer) refractedRay(hit Intersection) core.Ray {
	direction := hit.Ray.Direction.Refract(hit.Normal, hit.Material.RefractiveIndex).Normalize()
	origin := offsetFromSurface(hit.Point, direction, hit.Normal, t.config.Bias)
	return core.NewRay(origin, direction)
}

// lightContributions accumulates the Phong diffuse and specular sums over
// all lights, skipping lights the hit point is shadowed from.
func (t *Tracer) lightContributions(hit Intersection) (diffuse, specular float64) {
	for _, light := range t.scene.GetLights() {
		lightDir := light.Position.Subtract(hit.Point).Normalize()
		diffCoef := math.Max(0, lightDir.Dot(hit.Normal))

		if t.shadowed(hit.Point, hit.Normal, light.Position) {
			continue
		}

		specCoef := math.Pow(
			math.Max(0, lightDir.Reflect(hit.Normal).Dot(hit.Ray.Direction)),
			hit.Material.SpecularExponent,
		)

		diffuse += light.Intensity * diffCoef
		specular += light.Intensity * specCoef
	}
	return diffuse, specular
}

// shadowed reports whether any shape blocks the segment between the point
// and the light.
func (t *Tracer) shadowed(point, normal, lightPos core.Vec3) bool {
	lightDir := lightPos.Subtract(point).Normalize()
	lightDist := lightPos.Subtract(point).Length()

	origin := offsetFromSurface(point, lightDir, normal, t.config.Bias)
	if hit, ok := t.cast(core.NewRay(origin, lightDir)); ok {
		return hit.Point.Subtract(origin).Length() < lightDist
	}
	return false
}

// offsetFromSurface nudges a point off the surface along the normal, on the
// side the new ray is heading, so the ray cannot immediately re-intersect
// the surface it just left.
func offsetFromSurface(point, direction, normal core.Vec3, bias float64) core.Vec3 {
	shift := math.Copysign(bias, direction.Dot(normal))
	return point.Add(normal.Multiply(shift))
}
