package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Side selects which crossings of a ray through a face are of interest.
// A front crossing enters against the face normal, a back crossing leaves along it.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideBoth
)

// Ray is a half line. Direction must be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates the ray starting at from and passing through to.
func NewRay(from, to mgl64.Vec3) Ray {
	return Ray{Origin: from, Direction: to.Sub(from).Normalize()}
}

// PointAtDistance returns the point at the given distance along the ray.
func (r Ray) PointAtDistance(distance float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// DistanceToProjectedPoint returns the signed distance along the ray to the
// orthogonal projection of point onto the ray's line.
func (r Ray) DistanceToProjectedPoint(point mgl64.Vec3) float64 {
	return point.Sub(r.Origin).Dot(r.Direction)
}

// Segment is a closed line segment.
type Segment struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

func (s Segment) Vector() mgl64.Vec3 {
	return s.End.Sub(s.Start)
}

func (s Segment) Length() float64 {
	return s.Vector().Len()
}

// Direction returns the normalized direction from Start to End.
func (s Segment) Direction() mgl64.Vec3 {
	return s.Vector().Normalize()
}

// Contains reports whether point lies on the segment, within epsilon.
func (s Segment) Contains(point mgl64.Vec3, epsilon float64) bool {
	v := s.Vector()
	lenSqr := v.LenSqr()
	if lenSqr == 0 {
		return point.Sub(s.Start).Len() <= epsilon
	}

	t := point.Sub(s.Start).Dot(v) / lenSqr
	if t < 0 {
		return point.Sub(s.Start).Len() <= epsilon
	}
	if t > 1 {
		return point.Sub(s.End).Len() <= epsilon
	}

	closest := s.Start.Add(v.Mul(t))
	return point.Sub(closest).Len() <= epsilon
}

// LineDistance is the result of a closest point query between a ray and a segment.
type LineDistance struct {
	// Parallel is set when the ray and the segment enclose an angle below AlmostZero.
	// Position1 and Position2 are meaningless in that case.
	Parallel bool
	// Position1 is the distance along the ray to its closest point.
	Position1 float64
	// Position2 is the distance along the segment to its closest point.
	Position2 float64
	// Distance is the squared distance between the closest points. For parallel
	// input it is the squared distance from the segment start to the ray's line.
	Distance float64
}

// IsColinear reports whether the ray and the segment lie on the same line.
func (d LineDistance) IsColinear() bool {
	return d.Parallel && d.Distance <= AlmostZero*AlmostZero
}

// SquaredDistance computes the squared minimal distance between r and s, clamping the
// ray parameter to [0, ∞) and the segment parameter to the segment.
func SquaredDistance(r Ray, s Segment) LineDistance {
	u := s.Vector()
	segLenSqr := u.LenSqr()
	w := r.Origin.Sub(s.Start)

	// Degenerate segment: distance from a point to the ray.
	if segLenSqr == 0 {
		t := math.Max(0, -w.Dot(r.Direction))
		return LineDistance{
			Position1: t,
			Distance:  w.Add(r.Direction.Mul(t)).LenSqr(),
		}
	}

	b := r.Direction.Dot(u)
	d := r.Direction.Dot(w)
	e := u.Dot(w)
	denom := segLenSqr - b*b

	if denom <= AlmostZero*AlmostZero*segLenSqr {
		toStart := s.Start.Sub(r.Origin)
		perp := toStart.Sub(r.Direction.Mul(toStart.Dot(r.Direction)))
		return LineDistance{Parallel: true, Distance: perp.LenSqr()}
	}

	sc := clamp01((e - b*d) / denom)
	tc := b*sc - d
	if tc < 0 {
		tc = 0
		sc = clamp01(e / segLenSqr)
	}

	closest := w.Add(r.Direction.Mul(tc)).Sub(u.Mul(sc))
	return LineDistance{
		Position1: tc,
		Position2: sc * math.Sqrt(segLenSqr),
		Distance:  closest.LenSqr(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
