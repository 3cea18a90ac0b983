package hedron

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
)

func polygonIntersectsPolygon(a, b *mesh.Polyhedron) bool {
	return faceIntersectsFace(a, 0, b, 0)
}

// polygonIntersectsPolyhedron also covers a polygon floating entirely inside the solid,
// which crosses none of its faces.
func polygonIntersectsPolyhedron(a, b *mesh.Polyhedron) bool {
	for i := range b.FaceCount() {
		if faceIntersectsFace(a, 0, b, mesh.FaceID(i)) {
			return true
		}
	}
	return b.ContainsPoint(a.FaceBoundary(0)[0], geom.PointStatusEpsilon)
}

// faceIntersectsFace reports whether two faces touch: a boundary edge of either face
// meets the other face, or one face lies inside the other without crossing its boundary.
func faceIntersectsFace(a *mesh.Polyhedron, aFace mesh.FaceID, b *mesh.Polyhedron, bFace mesh.FaceID) bool {
	if boundaryIntersectsFace(a, aFace, b, bFace) || boundaryIntersectsFace(b, bFace, a, aFace) {
		return true
	}
	return pointInFace(a.FaceBoundary(aFace)[0], b, bFace) ||
		pointInFace(b.FaceBoundary(bFace)[0], a, aFace)
}

func boundaryIntersectsFace(a *mesh.Polyhedron, aFace mesh.FaceID, b *mesh.Polyhedron, bFace mesh.FaceID) bool {
	boundary := a.FaceBoundary(aFace)
	for i, start := range boundary {
		edge := geom.Segment{Start: start, End: boundary[(i+1)%len(boundary)]}
		if segmentIntersectsFace(edge, b, bFace) {
			return true
		}
	}
	return false
}
