package mesh

import (
	"testing"

	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPoint(t *testing.T) {
	cube := NewCube(mgl64.Vec3{0, 0, 0}, 1)

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"Center", mgl64.Vec3{0, 0, 0}, true},
		{"On a face", mgl64.Vec3{1, 0, 0}, true},
		{"On a corner", mgl64.Vec3{1, 1, 1}, true},
		{"Outside on X", mgl64.Vec3{1.5, 0, 0}, false},
		{"Outside near a corner", mgl64.Vec3{1.1, 1.1, 0}, false},
		{"Far away", mgl64.Vec3{10, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cube.ContainsPoint(tt.point, geom.PointStatusEpsilon))
		})
	}
}

func TestContainsPoint_Tetrahedron(t *testing.T) {
	tet, err := NewTetrahedron(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{4, 0, 0},
		mgl64.Vec3{0, 4, 0},
		mgl64.Vec3{0, 0, 4},
	)
	require.NoError(t, err)

	assert.True(t, tet.ContainsPoint(mgl64.Vec3{1, 1, 1}, geom.PointStatusEpsilon))
	// inside the bounds but beyond the slanted face
	assert.False(t, tet.ContainsPoint(mgl64.Vec3{3, 3, 3}, geom.PointStatusEpsilon))
}

func TestContainsPoint_NonSolid(t *testing.T) {
	square, err := NewPolygon(
		mgl64.Vec3{-1, -1, 0},
		mgl64.Vec3{1, -1, 0},
		mgl64.Vec3{1, 1, 0},
		mgl64.Vec3{-1, 1, 0},
	)
	require.NoError(t, err)

	assert.False(t, square.ContainsPoint(mgl64.Vec3{0, 0, 0}, geom.PointStatusEpsilon))
	assert.False(t, NewPoint(mgl64.Vec3{0, 0, 0}).ContainsPoint(mgl64.Vec3{0, 0, 0}, geom.PointStatusEpsilon))
	assert.False(t, NewEmpty().ContainsPoint(mgl64.Vec3{0, 0, 0}, geom.PointStatusEpsilon))
}

func TestContains(t *testing.T) {
	big := NewCube(mgl64.Vec3{0, 0, 0}, 2)
	small := NewCube(mgl64.Vec3{0, 0, 0}, 1)
	shifted := NewCube(mgl64.Vec3{1.5, 0, 0}, 1)
	square, err := NewPolygon(
		mgl64.Vec3{-1, -1, 0},
		mgl64.Vec3{1, -1, 0},
		mgl64.Vec3{1, 1, 0},
		mgl64.Vec3{-1, 1, 0},
	)
	require.NoError(t, err)

	tests := []struct {
		name     string
		outer    *Polyhedron
		inner    *Polyhedron
		expected bool
	}{
		{"Big contains small", big, small, true},
		{"Small does not contain big", small, big, false},
		{"Cube contains itself", small, small, true},
		{"Partial overlap", big, shifted, false},
		{"Solid contains polygon", big, square, true},
		{"Solid contains edge", small, NewEdge(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0}), true},
		{"Solid contains point", small, NewPoint(mgl64.Vec3{0.5, 0.5, 0.5}), true},
		{"Polygon contains nothing", square, NewPoint(mgl64.Vec3{0, 0, 0}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outer.Contains(tt.inner))
		})
	}
}
