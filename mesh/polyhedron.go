// Package mesh implements convex polyhedra as half-edge meshes.
//
// A Polyhedron owns all of its vertices, half-edges, edges and faces in flat slices.
// Relations between them (origin, twin, next, face) are indices into those slices,
// so a Polyhedron can be copied and shared between goroutines without any aliasing
// concerns: once built it is never modified.
//
// A polyhedron may be degenerate. Depending on its vertex, edge and face counts it is
// classified as empty, a point, an edge, a polygon or a solid (see Dimension).
package mesh

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
)

type (
	VertexID   int
	HalfEdgeID int
	EdgeID     int
	FaceID     int
)

// NoID marks an absent relation.
const NoID = -1

// Vertex is a position plus one of the half-edges originating at it.
type Vertex struct {
	Position mgl64.Vec3
	HalfEdge HalfEdgeID
}

// HalfEdge is a directed edge on the boundary of a face.
// Edge polyhedra have half-edges without a face and without a successor.
type HalfEdge struct {
	Origin VertexID
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Face   FaceID
	Edge   EdgeID
}

// Edge joins a pair of twin half-edges. Second is NoID on the open boundary of a polygon.
type Edge struct {
	First  HalfEdgeID
	Second HalfEdgeID
}

// Face is a closed loop of half-edges lying in Plane. The plane normal points outward.
type Face struct {
	HalfEdge HalfEdgeID
	Size     int
	Plane    geom.Plane
}

// Polyhedron is an immutable convex half-edge mesh.
type Polyhedron struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	edges     []Edge
	faces     []Face

	// derived once in finish
	positions  []mgl64.Vec3
	boundaries [][]mgl64.Vec3
	bounds     geom.AABB
	dimension  Dimension
}

func (p *Polyhedron) VertexCount() int   { return len(p.vertices) }
func (p *Polyhedron) HalfEdgeCount() int { return len(p.halfEdges) }
func (p *Polyhedron) EdgeCount() int     { return len(p.edges) }
func (p *Polyhedron) FaceCount() int     { return len(p.faces) }

func (p *Polyhedron) Vertex(id VertexID) Vertex       { return p.vertices[id] }
func (p *Polyhedron) HalfEdge(id HalfEdgeID) HalfEdge { return p.halfEdges[id] }
func (p *Polyhedron) Edge(id EdgeID) Edge             { return p.edges[id] }
func (p *Polyhedron) Face(id FaceID) Face             { return p.faces[id] }

// Bounds returns the cached bounding box.
func (p *Polyhedron) Bounds() geom.AABB {
	return p.bounds
}

// Positions returns all vertex positions in vertex order.
// The returned slice is shared and must not be modified.
func (p *Polyhedron) Positions() []mgl64.Vec3 {
	return p.positions
}

// Closed reports whether the mesh satisfies Euler's formula for a closed surface.
func (p *Polyhedron) Closed() bool {
	return len(p.vertices)+len(p.faces) == len(p.edges)+2
}

// HasVertex reports whether some vertex lies within epsilon of position.
func (p *Polyhedron) HasVertex(position mgl64.Vec3, epsilon float64) bool {
	for _, v := range p.positions {
		if v.Sub(position).Len() <= epsilon {
			return true
		}
	}
	return false
}

// Destination returns the vertex a half-edge points to.
func (p *Polyhedron) Destination(id HalfEdgeID) VertexID {
	h := p.halfEdges[id]
	if h.Next != NoID {
		return p.halfEdges[h.Next].Origin
	}
	return p.halfEdges[h.Twin].Origin
}

// EdgeSegment returns the segment from the first to the second vertex of an edge.
func (p *Polyhedron) EdgeSegment(id EdgeID) geom.Segment {
	first := p.edges[id].First
	return geom.Segment{
		Start: p.vertices[p.halfEdges[first].Origin].Position,
		End:   p.vertices[p.Destination(first)].Position,
	}
}

// EdgeVector returns the unnormalized direction of an edge.
func (p *Polyhedron) EdgeVector(id EdgeID) mgl64.Vec3 {
	return p.EdgeSegment(id).Vector()
}

// FaceHalfEdges returns the boundary half-edges of a face in order.
func (p *Polyhedron) FaceHalfEdges(id FaceID) []HalfEdgeID {
	face := p.faces[id]
	result := make([]HalfEdgeID, 0, face.Size)
	current := face.HalfEdge
	for range face.Size {
		result = append(result, current)
		current = p.halfEdges[current].Next
	}
	return result
}

// FaceEdges returns the edges bounding a face in boundary order.
func (p *Polyhedron) FaceEdges(id FaceID) []EdgeID {
	halfEdges := p.FaceHalfEdges(id)
	result := make([]EdgeID, len(halfEdges))
	for i, h := range halfEdges {
		result[i] = p.halfEdges[h].Edge
	}
	return result
}

// FaceBoundary returns the vertex positions of a face in boundary order.
// The returned slice is shared and must not be modified.
func (p *Polyhedron) FaceBoundary(id FaceID) []mgl64.Vec3 {
	return p.boundaries[id]
}

func (p *Polyhedron) FacePlane(id FaceID) geom.Plane {
	return p.faces[id].Plane
}

func (p *Polyhedron) FaceNormal(id FaceID) mgl64.Vec3 {
	return p.faces[id].Plane.Normal
}

// FaceCenter returns the average of the face's vertex positions.
func (p *Polyhedron) FaceCenter(id FaceID) mgl64.Vec3 {
	return average(p.boundaries[id])
}

// Transform returns a copy of the polyhedron moved by t. Topology is shared by value,
// planes and bounds are derived again.
func (p *Polyhedron) Transform(t geom.Transform) *Polyhedron {
	result := &Polyhedron{
		vertices:  make([]Vertex, len(p.vertices)),
		halfEdges: append([]HalfEdge(nil), p.halfEdges...),
		edges:     append([]Edge(nil), p.edges...),
		faces:     append([]Face(nil), p.faces...),
	}
	for i, v := range p.vertices {
		result.vertices[i] = Vertex{Position: t.Apply(v.Position), HalfEdge: v.HalfEdge}
	}
	result.finish()
	return result
}

// finish derives every cached value from the topology and vertex positions.
func (p *Polyhedron) finish() {
	p.positions = make([]mgl64.Vec3, len(p.vertices))
	for i, v := range p.vertices {
		p.positions[i] = v.Position
	}

	p.boundaries = make([][]mgl64.Vec3, len(p.faces))
	for i := range p.faces {
		boundary := make([]mgl64.Vec3, 0, p.faces[i].Size)
		for _, h := range p.FaceHalfEdges(FaceID(i)) {
			boundary = append(boundary, p.vertices[p.halfEdges[h].Origin].Position)
		}
		p.boundaries[i] = boundary
		p.faces[i].Plane = geom.NewPlane(average(boundary), newellNormal(boundary))
	}

	p.bounds = geom.BoundsOf(p.positions...)
	p.dimension = classify(len(p.vertices), len(p.edges), len(p.faces))
}

// newellNormal computes the normalized normal of a polygon, oriented by the
// counter-clockwise winding of its vertices. Degenerate polygons yield the zero vector.
func newellNormal(vertices []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, cur := range vertices {
		next := vertices[(i+1)%len(vertices)]
		n[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		n[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		n[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}
	if n.LenSqr() == 0 {
		return n
	}
	return n.Normalize()
}

func average(points []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}
