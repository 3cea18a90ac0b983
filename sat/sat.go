// Package sat implements the separating axis test for two convex solids.
//
// Two convex polyhedra are disjoint if and only if some plane separates them. For
// polyhedra the candidate planes are the face planes of either operand and the planes
// spanned by one edge of each operand. Every candidate is tried in turn and the test
// stops at the first plane that has all of one solid strictly above it while the other
// one lies below.
//
// Solids that only touch along a face, an edge or a vertex are reported as
// separated: the touching plane has one operand inside it and the other on one side.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2004), chapter 5.2.1
package sat

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// PointStatus classifies a set of positions against a plane using
// geom.PointStatusEpsilon. The result is Inside as soon as positions on both sides
// were seen, Above when at least one position is above and none below, and Below
// otherwise, including when every position lies in the plane.
func PointStatus(plane geom.Plane, positions []mgl64.Vec3) geom.PlaneStatus {
	above, below := 0, 0
	for _, p := range positions {
		switch plane.PointStatus(p, geom.PointStatusEpsilon) {
		case geom.Above:
			above++
		case geom.Below:
			below++
		}
		if above > 0 && below > 0 {
			return geom.Inside
		}
	}
	if above > 0 {
		return geom.Above
	}
	return geom.Below
}

// Separate reports whether some face plane of p has all of positions above it.
func Separate(p *mesh.Polyhedron, positions []mgl64.Vec3) bool {
	for i := range p.FaceCount() {
		if PointStatus(p.FacePlane(mesh.FaceID(i)), positions) == geom.Above {
			return true
		}
	}
	return false
}

// Intersects reports whether two convex solids overlap. Both operands must be solids.
func Intersects(a, b *mesh.Polyhedron) bool {
	if Separate(a, b.Positions()) || Separate(b, a.Positions()) {
		return false
	}
	return !separatedByEdges(a, b) && !separatedByEdges(b, a)
}

// separatedByEdges tries the planes through each edge of a that are parallel to some
// edge of b.
func separatedByEdges(a, b *mesh.Polyhedron) bool {
	aPositions := a.Positions()
	bPositions := b.Positions()

	bDirections := make([]mgl64.Vec3, b.EdgeCount())
	for i := range bDirections {
		bDirections[i] = b.EdgeSegment(mesh.EdgeID(i)).Direction()
	}

	for i := range a.EdgeCount() {
		segment := a.EdgeSegment(mesh.EdgeID(i))
		direction := segment.Direction()
		for _, other := range bDirections {
			axis := direction.Cross(other)
			if geom.IsZero(axis.Len(), geom.AlmostZero) {
				continue
			}

			plane := geom.NewPlane(segment.Start, axis.Normalize())
			aStatus := PointStatus(plane, aPositions)
			if aStatus == geom.Inside {
				continue
			}
			bStatus := PointStatus(plane, bPositions)
			if bStatus != geom.Inside && aStatus != bStatus {
				return true
			}
		}
	}
	return false
}
