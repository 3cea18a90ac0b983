package hedron

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// edgeIntersectsEdge tests the segments in both orders, so the tolerance applied to
// either segment's length never depends on the order of the operands.
func edgeIntersectsEdge(a, b *mesh.Polyhedron) bool {
	lhs := a.EdgeSegment(0)
	rhs := b.EdgeSegment(0)
	return segmentTouchesSegment(lhs, rhs) || segmentTouchesSegment(rhs, lhs)
}

func edgeIntersectsPolygon(a, b *mesh.Polyhedron) bool {
	return segmentIntersectsFace(a.EdgeSegment(0), b, 0)
}

// edgeIntersectsPolyhedron tests the edge in both directions. The ray hits accept a
// start point slightly outside a face, so a single direction would depend on the order of
// the edge's vertices.
func edgeIntersectsPolyhedron(a, b *mesh.Polyhedron) bool {
	segment := a.EdgeSegment(0)
	reversed := geom.Segment{Start: segment.End, End: segment.Start}
	return segmentIntersectsPolyhedron(segment, b) || segmentIntersectsPolyhedron(reversed, b)
}

// segmentIntersectsPolyhedron casts a ray along the segment through every face of the
// solid. A crossing within the segment's length is an intersection. Otherwise the segment
// lies inside the solid exactly when the ray only leaves it.
func segmentIntersectsPolyhedron(segment geom.Segment, p *mesh.Polyhedron) bool {
	ray, length, ok := segmentRay(segment)
	if !ok {
		return p.ContainsPoint(segment.Start, geom.PointStatusEpsilon)
	}

	frontHit, backHit := false, false
	for i := range p.FaceCount() {
		hit := p.IntersectFaceWithRay(mesh.FaceID(i), ray)
		if !hit.Hit() {
			continue
		}
		if hit.Distance <= length {
			return true
		}
		if hit.Front() {
			frontHit = true
		} else {
			backHit = true
		}
	}
	return backHit && !frontHit
}

// segmentRay returns the ray starting at the segment's start and running along it,
// together with the segment's length. It fails for degenerate segments.
func segmentRay(s geom.Segment) (geom.Ray, float64, bool) {
	v := s.Vector()
	length := v.Len()
	if length == 0 {
		return geom.Ray{}, 0, false
	}
	return geom.Ray{Origin: s.Start, Direction: v.Mul(1 / length)}, length, true
}

// segmentTouchesSegment measures rhs against the ray running along lhs.
func segmentTouchesSegment(lhs, rhs geom.Segment) bool {
	if sharesEndpoint(lhs, rhs) {
		return true
	}

	ray, length, ok := segmentRay(lhs)
	if !ok {
		return rhs.Contains(lhs.Start, geom.AlmostZero)
	}

	distance := geom.SquaredDistance(ray, rhs)
	if distance.Parallel {
		if !distance.IsColinear() {
			return false
		}
		start := ray.DistanceToProjectedPoint(rhs.Start)
		end := ray.DistanceToProjectedPoint(rhs.End)
		return geom.Contains(start, -geom.AlmostZero, length+geom.AlmostZero) ||
			geom.Contains(end, -geom.AlmostZero, length+geom.AlmostZero) ||
			(start > 0) != (end > 0)
	}

	return distance.Distance < geom.AlmostZero*geom.AlmostZero && distance.Position1 <= length
}

func sharesEndpoint(lhs, rhs geom.Segment) bool {
	return lhs.Start == rhs.Start || lhs.Start == rhs.End ||
		lhs.End == rhs.Start || lhs.End == rhs.End
}

// segmentIntersectsFace checks whether a segment crosses or touches a face of p.
// Segments running parallel to the face can only touch it when they are coplanar, in
// which case they are tested against the face boundary and interior instead.
func segmentIntersectsFace(segment geom.Segment, p *mesh.Polyhedron, face mesh.FaceID) bool {
	ray, length, ok := segmentRay(segment)
	if !ok {
		return pointInFace(segment.Start, p, face)
	}

	if distance, hit := p.FaceDistanceWithRay(face, ray, geom.SideBoth); hit {
		return distance <= length
	}

	plane := p.FacePlane(face)
	if !geom.IsZero(plane.Normal.Dot(ray.Direction), geom.AlmostZero) {
		return false
	}
	if !geom.IsZero(plane.PointDistance(segment.Start), geom.AlmostZero) {
		return false
	}

	boundary := p.FaceBoundary(face)
	for i, start := range boundary {
		edge := geom.Segment{Start: start, End: boundary[(i+1)%len(boundary)]}
		if segmentTouchesSegment(segment, edge) || segmentTouchesSegment(edge, segment) {
			return true
		}
	}
	return geom.PolygonContainsPoint(segment.Start, plane.Normal, boundary)
}

// pointInFace reports whether point lies on the face's plane and inside its boundary.
func pointInFace(point mgl64.Vec3, p *mesh.Polyhedron, face mesh.FaceID) bool {
	plane := p.FacePlane(face)
	if plane.PointStatus(point, geom.PointStatusEpsilon) != geom.Inside {
		return false
	}
	return geom.PolygonContainsPoint(point, plane.Normal, p.FaceBoundary(face))
}
