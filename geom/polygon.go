package geom

import "github.com/go-gl/mathgl/mgl64"

// swizzle rotates the components of v so that axis ends up last. The first two
// components of the result are the projection onto the plane orthogonal to axis.
func swizzle(v mgl64.Vec3, axis int) mgl64.Vec3 {
	switch axis {
	case 0:
		return mgl64.Vec3{v[1], v[2], v[0]}
	case 1:
		return mgl64.Vec3{v[2], v[0], v[1]}
	default:
		return v
	}
}

// edgeCrossing checks whether the projected polygon edge v0-v1 (relative to the
// query point) crosses the positive X axis. It returns -1 if the query point lies on
// v0 or on the edge itself, 1 on a crossing and 0 otherwise.
func edgeCrossing(v0, v1 mgl64.Vec3) int {
	if IsZeroVec(v0, AlmostZero) {
		return -1
	}

	// Zero Y counts as negative so vertices on the axis are only counted once.
	if (IsZero(v0.Y(), AlmostZero) && IsZero(v1.Y(), AlmostZero)) ||
		(v0.Y() > 0 && v1.Y() > 0) ||
		(v0.Y() < 0 && v1.Y() < 0) {
		return 0
	}

	if v0.X() > 0 && v1.X() > 0 {
		return 1
	}
	if v0.X() < 0 && v1.X() < 0 {
		return 0
	}

	x := -v0.Y()*(v1.X()-v0.X())/(v1.Y()-v0.Y()) + v0.X()
	if IsZero(x, AlmostZero) {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// PolygonContainsPointOnAxis runs the crossing test for point against the polygon
// projected along axis. Points on the boundary count as contained.
func PolygonContainsPointOnAxis(point mgl64.Vec3, axis int, vertices []mgl64.Vec3) bool {
	if len(vertices) == 0 {
		return false
	}

	o := swizzle(point, axis)
	first := swizzle(vertices[0], axis).Sub(o)
	prev := first

	crossings := 0
	for _, v := range vertices[1:] {
		cur := swizzle(v, axis).Sub(o)
		s := edgeCrossing(prev, cur)
		if s == -1 {
			return true
		}
		crossings += s
		prev = cur
	}

	s := edgeCrossing(prev, first)
	if s == -1 {
		return true
	}
	crossings += s
	return crossings%2 != 0
}

// PolygonContainsPoint reports whether point lies inside the polygon with the given
// normal and boundary. The point is assumed to lie in the polygon's plane; this is
// not checked.
func PolygonContainsPoint(point, normal mgl64.Vec3, vertices []mgl64.Vec3) bool {
	return PolygonContainsPointOnAxis(point, MajorAxis(normal), vertices)
}

// IntersectRayPlane returns the distance along r to its intersection with p. It fails
// when r is parallel to p or the intersection lies behind the ray origin.
func IntersectRayPlane(r Ray, p Plane) (float64, bool) {
	d := r.Direction.Dot(p.Normal)
	if IsZero(d, AlmostZero) {
		return 0, false
	}

	s := p.Anchor().Sub(r.Origin).Dot(p.Normal) / d
	if s < -AlmostZero {
		return 0, false
	}
	return s, true
}

// IntersectRayPolygon returns the distance along r to the point where it hits the
// polygon lying in p with the given boundary.
func IntersectRayPolygon(r Ray, p Plane, vertices []mgl64.Vec3) (float64, bool) {
	distance, ok := IntersectRayPlane(r, p)
	if !ok {
		return 0, false
	}
	if !PolygonContainsPoint(r.PointAtDistance(distance), p.Normal, vertices) {
		return 0, false
	}
	return distance, true
}
