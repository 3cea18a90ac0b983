// Package hedron answers geometric questions about convex brushes: whether a point
// lies inside a brush, whether one brush contains another and whether two brushes
// touch or overlap.
//
// A brush may have collapsed to a single point, an edge or a flat polygon. Intersects
// classifies both operands by their dimension and dispatches to one of ten pairwise
// algorithms. The remaining six combinations call the same algorithms with the
// operands swapped.
//
// Every query is a pure function of immutable polyhedra, so any number of queries may
// run concurrently on the same operands. World and the selection helpers build on
// this to run batch queries over many brushes.
package hedron

import (
	"fmt"

	"github.com/akmonengine/hedron/mesh"
	"github.com/akmonengine/hedron/sat"
	"github.com/go-gl/mathgl/mgl64"
)

// PreconditionError is the panic value raised when a query receives a polyhedron whose
// vertex, edge and face counts match none of the valid dimensions.
type PreconditionError struct {
	Operation string
	Vertices  int
	Edges     int
	Faces     int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: invalid polyhedron with %d vertices, %d edges and %d faces",
		e.Operation, e.Vertices, e.Edges, e.Faces)
}

func newPreconditionError(operation string, p *mesh.Polyhedron) *PreconditionError {
	return &PreconditionError{
		Operation: operation,
		Vertices:  p.VertexCount(),
		Edges:     p.EdgeCount(),
		Faces:     p.FaceCount(),
	}
}

type intersectFunc func(a, b *mesh.Polyhedron) bool

// swapped calls fn with its operands reversed.
func swapped(fn intersectFunc) intersectFunc {
	return func(a, b *mesh.Polyhedron) bool {
		return fn(b, a)
	}
}

// intersections is indexed by the dimensions of both operands, point first.
var intersections = [4][4]intersectFunc{
	{pointIntersectsPoint, pointIntersectsEdge, pointIntersectsPolygon, pointIntersectsPolyhedron},
	{swapped(pointIntersectsEdge), edgeIntersectsEdge, edgeIntersectsPolygon, edgeIntersectsPolyhedron},
	{swapped(pointIntersectsPolygon), swapped(edgeIntersectsPolygon), polygonIntersectsPolygon, polygonIntersectsPolyhedron},
	{swapped(pointIntersectsPolyhedron), swapped(edgeIntersectsPolyhedron), swapped(polygonIntersectsPolyhedron), sat.Intersects},
}

// mustBeValid panics with a *PreconditionError when p has an invalid dimension.
func mustBeValid(operation string, p *mesh.Polyhedron) {
	if p.Dimension() == mesh.DimensionInvalid {
		panic(newPreconditionError(operation, p))
	}
}

// Intersects reports whether a and b touch or overlap.
// It panics with a *PreconditionError if either operand has an invalid dimension.
func Intersects(a, b *mesh.Polyhedron) bool {
	mustBeValid("intersects", a)
	mustBeValid("intersects", b)

	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}
	if a.Empty() || b.Empty() {
		return false
	}

	row := a.Dimension() - mesh.DimensionPoint
	column := b.Dimension() - mesh.DimensionPoint
	return intersections[row][column](a, b)
}

// Contains reports whether the solid a contains every vertex of b. It is false whenever a
// is not a solid.
func Contains(a, b *mesh.Polyhedron) bool {
	return a.Contains(b)
}

// ContainsPoint reports whether point lies inside the solid a or within epsilon of its
// boundary. Use geom.PointStatusEpsilon unless the caller needs a different tolerance.
func ContainsPoint(a *mesh.Polyhedron, point mgl64.Vec3, epsilon float64) bool {
	return a.ContainsPoint(point, epsilon)
}
