// Package geom provides the value-type primitives used by the brush queries:
// planes, rays, segments, bounding boxes and polygon tests, all expressed on
// top of mgl64 vectors.
//
// Every tolerance used by the query layer is one of the constants below.
// Queries never pick their own epsilon.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// AlmostZero treats near-zero lengths, dot products and distances as zero.
	AlmostZero = 0.001
	// PointStatusEpsilon is the half thickness of a plane when classifying points.
	PointStatusEpsilon = 0.0001
	// ColinearEpsilon bounds the enclosed angle of two directions considered colinear.
	ColinearEpsilon = 0.00001
)

// IsZero reports whether |v| <= epsilon.
func IsZero(v, epsilon float64) bool {
	return math.Abs(v) <= epsilon
}

// IsZeroVec reports whether every component of v is within epsilon of zero.
func IsZeroVec(v mgl64.Vec3, epsilon float64) bool {
	return IsZero(v[0], epsilon) && IsZero(v[1], epsilon) && IsZero(v[2], epsilon)
}

// Contains reports whether v lies in the closed interval spanned by lo and hi,
// in either order.
func Contains(v, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// MajorAxis returns the index of the component of v with the largest absolute value.
// Ties resolve to the lowest index.
func MajorAxis(v mgl64.Vec3) int {
	axis := 0
	best := math.Abs(v[0])
	for i := 1; i < 3; i++ {
		if a := math.Abs(v[i]); a > best {
			axis = i
			best = a
		}
	}
	return axis
}
