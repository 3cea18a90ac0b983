package geom

import "github.com/go-gl/mathgl/mgl64"

// PlaneStatus classifies a point against a plane.
type PlaneStatus int

const (
	Above PlaneStatus = iota
	Below
	Inside
)

func (s PlaneStatus) String() string {
	switch s {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "inside"
	}
}

// Plane is defined by the equation Normal · p = Distance.
// Normal is expected to be normalized.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane creates the plane through anchor with the given normal.
func NewPlane(anchor, normal mgl64.Vec3) Plane {
	return Plane{Normal: normal, Distance: normal.Dot(anchor)}
}

// Anchor returns the point of the plane closest to the origin.
func (p Plane) Anchor() mgl64.Vec3 {
	return p.Normal.Mul(p.Distance)
}

// PointDistance returns the signed distance of point to the plane, positive on the
// side the normal points to.
func (p Plane) PointDistance(point mgl64.Vec3) float64 {
	return point.Dot(p.Normal) - p.Distance
}

// PointStatus classifies point as Above, Below or Inside, where Inside means within
// epsilon of the plane.
func (p Plane) PointStatus(point mgl64.Vec3, epsilon float64) PlaneStatus {
	distance := p.PointDistance(point)
	if distance > epsilon {
		return Above
	}
	if distance < -epsilon {
		return Below
	}
	return Inside
}

// Flip returns the same plane with the opposite orientation.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Mul(-1), Distance: -p.Distance}
}
