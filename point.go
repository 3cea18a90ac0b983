package hedron

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
)

// pointIntersectsPoint compares positions exactly. Points are usually snapped to the
// grid, so no tolerance is applied.
func pointIntersectsPoint(a, b *mesh.Polyhedron) bool {
	return a.Positions()[0] == b.Positions()[0]
}

func pointIntersectsEdge(a, b *mesh.Polyhedron) bool {
	return b.EdgeSegment(0).Contains(a.Positions()[0], geom.AlmostZero)
}

func pointIntersectsPolygon(a, b *mesh.Polyhedron) bool {
	return pointInFace(a.Positions()[0], b, 0)
}

func pointIntersectsPolyhedron(a, b *mesh.Polyhedron) bool {
	return b.ContainsPoint(a.Positions()[0], geom.PointStatusEpsilon)
}
