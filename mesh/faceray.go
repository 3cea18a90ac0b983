package mesh

import (
	"math"

	"github.com/akmonengine/hedron/geom"
)

type RayHitKind int

const (
	RayMiss RayHitKind = iota
	RayFront
	RayBack
)

// RayIntersection describes where a ray crosses a face. Front hits enter the face
// against its normal, back hits leave it.
type RayIntersection struct {
	Kind     RayHitKind
	Distance float64
}

func (r RayIntersection) Hit() bool   { return r.Kind != RayMiss }
func (r RayIntersection) Front() bool { return r.Kind == RayFront }
func (r RayIntersection) Back() bool  { return r.Kind == RayBack }

// IntersectFaceWithRay intersects a ray with a face. Rays running parallel to the face
// never hit it.
func (p *Polyhedron) IntersectFaceWithRay(id FaceID, ray geom.Ray) RayIntersection {
	plane := p.faces[id].Plane
	cos := plane.Normal.Dot(ray.Direction)
	if geom.IsZero(cos, geom.AlmostZero) {
		return RayIntersection{}
	}
	distance, ok := geom.IntersectRayPolygon(ray, plane, p.boundaries[id])
	if !ok {
		return RayIntersection{}
	}
	if cos < 0 {
		return RayIntersection{Kind: RayFront, Distance: distance}
	}
	return RayIntersection{Kind: RayBack, Distance: distance}
}

// FaceDistanceWithRay returns the distance at which the ray hits the face, provided the
// hit is on one of the requested sides.
func (p *Polyhedron) FaceDistanceWithRay(id FaceID, ray geom.Ray, side geom.Side) (float64, bool) {
	hit := p.IntersectFaceWithRay(id, ray)
	switch {
	case hit.Front() && side != geom.SideBack:
		return hit.Distance, true
	case hit.Back() && side != geom.SideFront:
		return hit.Distance, true
	}
	return math.NaN(), false
}

// IntersectWithRay returns the nearest face hit by the ray on the requested sides.
func (p *Polyhedron) IntersectWithRay(ray geom.Ray, side geom.Side) (float64, FaceID, bool) {
	closest := math.Inf(1)
	face := FaceID(NoID)
	for i := range p.faces {
		if d, ok := p.FaceDistanceWithRay(FaceID(i), ray, side); ok && d < closest {
			closest = d
			face = FaceID(i)
		}
	}
	if face == NoID {
		return math.NaN(), NoID, false
	}
	return closest, face, true
}
