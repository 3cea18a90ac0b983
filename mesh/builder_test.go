package mesh

import (
	"testing"

	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTopology verifies the half-edge relations every builder must maintain.
func checkTopology(t *testing.T, p *Polyhedron) {
	t.Helper()
	for i := range p.HalfEdgeCount() {
		id := HalfEdgeID(i)
		h := p.HalfEdge(id)
		if h.Twin != NoID {
			twin := p.HalfEdge(h.Twin)
			assert.Equal(t, id, twin.Twin, "twin of twin of %d", id)
			assert.Equal(t, h.Edge, twin.Edge, "twins share an edge")
			assert.Equal(t, p.Destination(id), twin.Origin, "twin starts where %d ends", id)
		}
		if h.Face != NoID {
			assert.Equal(t, h.Face, p.HalfEdge(h.Next).Face, "next of %d stays on the face", id)
		}
	}
	for i := range p.VertexCount() {
		v := p.Vertex(VertexID(i))
		if v.HalfEdge != NoID {
			assert.Equal(t, VertexID(i), p.HalfEdge(v.HalfEdge).Origin)
		}
	}
}

func TestNewBox(t *testing.T) {
	box := NewCube(mgl64.Vec3{0, 0, 0}, 1)

	assert.Equal(t, 8, box.VertexCount())
	assert.Equal(t, 12, box.EdgeCount())
	assert.Equal(t, 24, box.HalfEdgeCount())
	assert.Equal(t, 6, box.FaceCount())
	assert.True(t, box.Closed())
	assert.Equal(t, DimensionSolid, box.Dimension())
	assert.Equal(t, geom.AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}, box.Bounds())
	checkTopology(t, box)

	normals := []mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for i, expected := range normals {
		plane := box.FacePlane(FaceID(i))
		assert.InDeltaSlice(t, expected[:], plane.Normal[:], 1e-12, "face %d", i)
		assert.InDelta(t, 1.0, plane.Distance, 1e-12, "face %d", i)
		assert.InDeltaSlice(t, expected[:], box.FaceCenter(FaceID(i))[:], 1e-12)
		assert.Len(t, box.FaceEdges(FaceID(i)), 4)
	}
}

func TestNewBox_Flat(t *testing.T) {
	tests := []struct {
		name      string
		bounds    geom.AABB
		dimension Dimension
		normal    mgl64.Vec3
	}{
		{"Flat along x", geom.AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, DimensionPolygon, mgl64.Vec3{1, 0, 0}},
		{"Flat along y", geom.AABB{Min: mgl64.Vec3{0, 2, 0}, Max: mgl64.Vec3{1, 2, 1}}, DimensionPolygon, mgl64.Vec3{0, 1, 0}},
		{"Flat along z", geom.AABB{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 2}}, DimensionPolygon, mgl64.Vec3{0, 0, 1}},
		{"Line", geom.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{0, 3, 0}}, DimensionEdge, mgl64.Vec3{}},
		{"Single point", geom.AABB{Min: mgl64.Vec3{1, 2, 3}, Max: mgl64.Vec3{1, 2, 3}}, DimensionPoint, mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(tt.bounds)
			assert.Equal(t, tt.dimension, box.Dimension())
			assert.Equal(t, tt.bounds, box.Bounds())
			checkTopology(t, box)

			if tt.dimension == DimensionPolygon {
				assert.Equal(t, 4, box.VertexCount())
				assert.InDeltaSlice(t, tt.normal[:], box.FaceNormal(0)[:], 1e-12)
			}
		})
	}
}

func TestNewTetrahedron(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{0, 1, 0}
	c := mgl64.Vec3{1, 0, 0}
	d := mgl64.Vec3{0, 0, 1}

	tests := []struct {
		name       string
		a, b, c, d mgl64.Vec3
	}{
		{"Outward winding", a, b, c, d},
		{"Inward winding", a, c, b, d},
		{"Apex first", d, a, b, c},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tet, err := NewTetrahedron(tt.a, tt.b, tt.c, tt.d)
			require.NoError(t, err)

			assert.Equal(t, 4, tet.VertexCount())
			assert.Equal(t, 6, tet.EdgeCount())
			assert.Equal(t, 4, tet.FaceCount())
			assert.True(t, tet.Closed())
			assert.Equal(t, DimensionSolid, tet.Dimension())
			checkTopology(t, tet)

			centroid := average(tet.Positions())
			for i := range tet.FaceCount() {
				assert.Equal(t, geom.Below, tet.FacePlane(FaceID(i)).PointStatus(centroid, geom.PointStatusEpsilon),
					"centroid must be below face %d", i)
			}
		})
	}
}

func TestNewTetrahedron_Coplanar(t *testing.T) {
	_, err := NewTetrahedron(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{1, 1, 0},
	)
	assert.Error(t, err)
}

func TestNewPolygon(t *testing.T) {
	square, err := NewPolygon(
		mgl64.Vec3{-1, -1, 0},
		mgl64.Vec3{1, -1, 0},
		mgl64.Vec3{1, 1, 0},
		mgl64.Vec3{-1, 1, 0},
	)
	require.NoError(t, err)

	assert.Equal(t, 4, square.VertexCount())
	assert.Equal(t, 4, square.EdgeCount())
	assert.Equal(t, 1, square.FaceCount())
	assert.False(t, square.Closed())
	assert.Equal(t, DimensionPolygon, square.Dimension())
	assert.InDeltaSlice(t, []float64{0, 0, 1}, square.FaceNormal(0)[:], 1e-12)
	checkTopology(t, square)

	for i := range square.EdgeCount() {
		assert.Equal(t, NoID, int(square.Edge(EdgeID(i)).Second), "boundary edge %d has no twin", i)
	}

	_, err = NewPolygon(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
	assert.Error(t, err)
}

func TestNewEdge(t *testing.T) {
	edge := NewEdge(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 0})

	assert.Equal(t, DimensionEdge, edge.Dimension())
	assert.Equal(t, VertexID(1), edge.Destination(0))
	assert.Equal(t, VertexID(0), edge.Destination(1))
	assert.Equal(t, geom.Segment{Start: mgl64.Vec3{0, 0, 0}, End: mgl64.Vec3{2, 0, 0}}, edge.EdgeSegment(0))
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, edge.EdgeVector(0))
	checkTopology(t, edge)
}

func TestFromFaces_Errors(t *testing.T) {
	triangle := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		name      string
		positions []mgl64.Vec3
		loops     [][]int
	}{
		{"No faces", triangle, nil},
		{"Short loop", triangle, [][]int{{0, 1}}},
		{"Index out of range", triangle, [][]int{{0, 1, 3}}},
		{"Negative index", triangle, [][]int{{0, -1, 2}}},
		{"Repeated vertex", triangle, [][]int{{0, 0, 1}}},
		{"Duplicated directed edge", triangle, [][]int{{0, 1, 2}, {0, 1, 2}}},
		{"Open mesh", append(triangle, mgl64.Vec3{0, 0, 1}), [][]int{{0, 2, 1}, {0, 1, 3}}},
		{"Unused vertex", append(triangle, mgl64.Vec3{5, 5, 5}), [][]int{{0, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromFaces(tt.positions, tt.loops)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestTransform(t *testing.T) {
	cube := NewCube(mgl64.Vec3{0, 0, 0}, 1)
	transform := geom.NewTransform()
	transform.Position = mgl64.Vec3{10, 0, 0}

	moved := cube.Transform(transform)

	assert.Equal(t, geom.AABB{Min: mgl64.Vec3{9, -1, -1}, Max: mgl64.Vec3{11, 1, 1}}, moved.Bounds())
	assert.InDelta(t, 11.0, moved.FacePlane(0).Distance, 1e-12)
	assert.Equal(t, cube.EdgeCount(), moved.EdgeCount())
	assert.Equal(t, DimensionSolid, moved.Dimension())

	// the source is left untouched
	assert.Equal(t, geom.AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}, cube.Bounds())
	assert.InDelta(t, 1.0, cube.FacePlane(0).Distance, 1e-12)
}

func TestTransform_Rotation(t *testing.T) {
	cube := NewCube(mgl64.Vec3{0, 0, 0}, 1)
	transform := geom.NewTransform()
	transform.Rotation = mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1})

	rotated := cube.Transform(transform)

	// +x face now faces +y
	assert.InDeltaSlice(t, []float64{0, 1, 0}, rotated.FaceNormal(0)[:], 1e-9)
	assert.True(t, rotated.ContainsPoint(mgl64.Vec3{0.5, 0.5, 0.5}, geom.PointStatusEpsilon))
}

func TestHasVertex(t *testing.T) {
	cube := NewCube(mgl64.Vec3{0, 0, 0}, 1)

	assert.True(t, cube.HasVertex(mgl64.Vec3{1, 1, 1}, 0))
	assert.True(t, cube.HasVertex(mgl64.Vec3{1.0005, 1, 1}, geom.AlmostZero))
	assert.False(t, cube.HasVertex(mgl64.Vec3{1, 1, 0}, geom.AlmostZero))
}
