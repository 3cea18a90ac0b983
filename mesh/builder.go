package mesh

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// boxFaces lists the outward faces of a box whose corner i has bit 0 set for max x,
// bit 1 for max y and bit 2 for max z.
var boxFaces = [][]int{
	{1, 3, 7, 5}, // +x
	{0, 4, 6, 2}, // -x
	{2, 6, 7, 3}, // +y
	{0, 1, 5, 4}, // -y
	{4, 5, 7, 6}, // +z
	{0, 2, 3, 1}, // -z
}

func NewEmpty() *Polyhedron {
	p := &Polyhedron{}
	p.finish()
	return p
}

func NewPoint(position mgl64.Vec3) *Polyhedron {
	p := &Polyhedron{
		vertices: []Vertex{{Position: position, HalfEdge: NoID}},
	}
	p.finish()
	return p
}

// NewEdge builds a polyhedron made of a single edge from a to b.
func NewEdge(a, b mgl64.Vec3) *Polyhedron {
	p := &Polyhedron{
		vertices: []Vertex{
			{Position: a, HalfEdge: 0},
			{Position: b, HalfEdge: 1},
		},
		halfEdges: []HalfEdge{
			{Origin: 0, Twin: 1, Next: NoID, Face: NoID, Edge: 0},
			{Origin: 1, Twin: 0, Next: NoID, Face: NoID, Edge: 0},
		},
		edges: []Edge{{First: 0, Second: 1}},
	}
	p.finish()
	return p
}

// NewPolygon builds a single face from its boundary, given counter-clockwise as seen
// from the side the normal should point to.
func NewPolygon(points ...mgl64.Vec3) (*Polyhedron, error) {
	if len(points) < 3 {
		return nil, errors.Errorf("polygon needs at least 3 points, got %d", len(points))
	}
	loop := make([]int, len(points))
	for i := range loop {
		loop[i] = i
	}
	p, err := FromFaces(points, [][]int{loop})
	if err != nil {
		return nil, errors.Wrap(err, "polygon")
	}
	return p, nil
}

// NewBox builds the solid spanned by bounds. Bounds without extent along some axes
// build the polygon, edge or point they collapse to.
func NewBox(bounds geom.AABB) *Polyhedron {
	flat := make([]int, 0, 3)
	for axis := range 3 {
		if bounds.Min[axis] == bounds.Max[axis] {
			flat = append(flat, axis)
		}
	}
	switch len(flat) {
	case 3:
		return NewPoint(bounds.Min)
	case 2:
		return NewEdge(bounds.Min, bounds.Max)
	case 1:
		return newFlatBox(bounds, flat[0])
	}

	corners := make([]mgl64.Vec3, 8)
	for i := range corners {
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				corners[i][axis] = bounds.Max[axis]
			} else {
				corners[i][axis] = bounds.Min[axis]
			}
		}
	}
	p, err := FromFaces(corners, boxFaces)
	if err != nil {
		// the topology is fixed, only a programming error can get here
		panic(err)
	}
	return p
}

// newFlatBox builds the rectangle of bounds lying across axis, facing towards +axis.
func newFlatBox(bounds geom.AABB, axis int) *Polyhedron {
	u, v := (axis+1)%3, (axis+2)%3
	corners := []mgl64.Vec3{bounds.Min, bounds.Min, bounds.Min, bounds.Min}
	corners[1][u] = bounds.Max[u]
	corners[2][u] = bounds.Max[u]
	corners[2][v] = bounds.Max[v]
	corners[3][v] = bounds.Max[v]

	p, err := NewPolygon(corners...)
	if err != nil {
		panic(err)
	}
	return p
}

func NewCube(center mgl64.Vec3, halfSize float64) *Polyhedron {
	extent := mgl64.Vec3{halfSize, halfSize, halfSize}
	return NewBox(geom.AABB{Min: center.Sub(extent), Max: center.Add(extent)})
}

// NewTetrahedron builds the solid with corners a, b, c and d in any order.
func NewTetrahedron(a, b, c, d mgl64.Vec3) (*Polyhedron, error) {
	volume := b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))
	if geom.IsZero(volume, geom.ColinearEpsilon) {
		return nil, errors.Errorf("tetrahedron corners %v %v %v %v are coplanar", a, b, c, d)
	}
	if volume > 0 {
		b, c = c, b
	}
	return FromFaces([]mgl64.Vec3{a, b, c, d}, [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
	})
}

type directedEdge struct {
	from, to int
}

// FromFaces assembles a polyhedron from vertex positions and face loops. Every loop lists
// vertex indices counter-clockwise as seen from outside. Twin half-edges are paired by
// their opposite directed edges. The input is trusted to be convex.
func FromFaces(positions []mgl64.Vec3, loops [][]int) (*Polyhedron, error) {
	if len(loops) == 0 {
		return nil, errors.New("at least one face is required")
	}

	p := &Polyhedron{vertices: make([]Vertex, len(positions))}
	for i, position := range positions {
		p.vertices[i] = Vertex{Position: position, HalfEdge: NoID}
	}

	directed := make(map[directedEdge]HalfEdgeID)
	for f, loop := range loops {
		if len(loop) < 3 {
			return nil, errors.Errorf("face %d has %d vertices, need at least 3", f, len(loop))
		}
		faceID := FaceID(len(p.faces))
		first := HalfEdgeID(len(p.halfEdges))
		for i, v := range loop {
			next := loop[(i+1)%len(loop)]
			if v < 0 || v >= len(positions) {
				return nil, errors.Errorf("face %d references vertex %d out of range [0, %d)", f, v, len(positions))
			}
			if v == next {
				return nil, errors.Errorf("face %d repeats vertex %d", f, v)
			}
			key := directedEdge{from: v, to: next}
			if _, ok := directed[key]; ok {
				return nil, errors.Errorf("directed edge %d->%d is used twice", v, next)
			}
			id := HalfEdgeID(len(p.halfEdges))
			directed[key] = id
			p.halfEdges = append(p.halfEdges, HalfEdge{
				Origin: VertexID(v),
				Twin:   NoID,
				Next:   first + HalfEdgeID((i+1)%len(loop)),
				Face:   faceID,
				Edge:   NoID,
			})
			if p.vertices[v].HalfEdge == NoID {
				p.vertices[v].HalfEdge = id
			}
		}
		p.faces = append(p.faces, Face{HalfEdge: first, Size: len(loop)})
	}

	for id := range p.halfEdges {
		h := &p.halfEdges[id]
		if h.Edge != NoID {
			continue
		}
		edgeID := EdgeID(len(p.edges))
		edge := Edge{First: HalfEdgeID(id), Second: NoID}
		to := p.halfEdges[h.Next].Origin
		if twin, ok := directed[directedEdge{from: int(to), to: int(h.Origin)}]; ok {
			h.Twin = twin
			p.halfEdges[twin].Twin = HalfEdgeID(id)
			p.halfEdges[twin].Edge = edgeID
			edge.Second = twin
		}
		h.Edge = edgeID
		p.edges = append(p.edges, edge)
	}

	if len(p.faces) > 1 {
		for _, h := range p.halfEdges {
			if h.Twin == NoID {
				return nil, errors.Errorf("mesh is open along edge %d->%d", h.Origin, p.halfEdges[h.Next].Origin)
			}
		}
	}
	for i, v := range p.vertices {
		if v.HalfEdge == NoID {
			return nil, errors.Errorf("vertex %d is not used by any face", i)
		}
	}

	p.finish()
	return p, nil
}
