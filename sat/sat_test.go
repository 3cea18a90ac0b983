package sat

import (
	"testing"

	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointStatus(t *testing.T) {
	plane := geom.NewPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1})

	tests := []struct {
		name      string
		positions []mgl64.Vec3
		expected  geom.PlaneStatus
	}{
		{"All above", []mgl64.Vec3{{0, 0, 1}, {1, 0, 2}}, geom.Above},
		{"All below", []mgl64.Vec3{{0, 0, -1}, {1, 0, -2}}, geom.Below},
		{"Straddling", []mgl64.Vec3{{0, 0, 1}, {0, 0, -1}}, geom.Inside},
		{"Above and on the plane", []mgl64.Vec3{{0, 0, 0}, {0, 0, 1}}, geom.Above},
		{"Below and on the plane", []mgl64.Vec3{{0, 0, 0}, {0, 0, -1}}, geom.Below},
		{"All on the plane", []mgl64.Vec3{{0, 0, 0}, {1, 1, 0.00005}}, geom.Below},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointStatus(plane, tt.positions))
		})
	}
}

func TestSeparate(t *testing.T) {
	cube := mesh.NewCube(mgl64.Vec3{0, 0, 0}, 1)

	assert.True(t, Separate(cube, []mgl64.Vec3{{3, 0, 0}, {4, 1, 1}}))
	assert.False(t, Separate(cube, []mgl64.Vec3{{3, 0, 0}, {0, 0, 0}}))
	assert.True(t, Separate(cube, []mgl64.Vec3{{1, 0, 0}, {2, 0, 0}}), "touching the face plane from outside")
}

func TestIntersects(t *testing.T) {
	cube := mesh.NewCube(mgl64.Vec3{0, 0, 0}, 0.5)

	tests := []struct {
		name     string
		other    *mesh.Polyhedron
		expected bool
	}{
		{"Identical", cube, true},
		{"Half overlap", mesh.NewCube(mgl64.Vec3{0.5, 0, 0}, 0.5), true},
		{"Separated along X", mesh.NewCube(mgl64.Vec3{2, 0, 0}, 0.5), false},
		{"Touching faces", mesh.NewCube(mgl64.Vec3{1, 0, 0}, 0.5), false},
		{"Contained", mesh.NewCube(mgl64.Vec3{0, 0, 0}, 0.25), true},
		{"Containing", mesh.NewCube(mgl64.Vec3{0, 0, 0}, 3), true},
		{"Diagonal gap", mesh.NewCube(mgl64.Vec3{1.2, 1.2, 1.2}, 0.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Intersects(cube, tt.other))
			assert.Equal(t, tt.expected, Intersects(tt.other, cube), "symmetry")
		})
	}
}

// Two tetrahedra whose face planes all fail to separate them, while an edge/edge plane does.
func TestIntersects_EdgeAxis(t *testing.T) {
	lower, err := mesh.NewTetrahedron(
		mgl64.Vec3{-1, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, -1},
		mgl64.Vec3{0, -1, -1},
	)
	require.NoError(t, err)

	upper, err := mesh.NewTetrahedron(
		mgl64.Vec3{0, -1, 0.1},
		mgl64.Vec3{0, 1, 0.1},
		mgl64.Vec3{1, 0, 1.1},
		mgl64.Vec3{-1, 0, 1.1},
	)
	require.NoError(t, err)

	assert.False(t, Separate(lower, upper.Positions()))
	assert.False(t, Separate(upper, lower.Positions()))
	assert.False(t, Intersects(lower, upper))
	assert.False(t, Intersects(upper, lower))

	crossing := upper.Transform(geom.Transform{Position: mgl64.Vec3{0, 0, -0.2}, Rotation: mgl64.QuatIdent()})
	assert.True(t, Intersects(lower, crossing))
	assert.True(t, Intersects(crossing, lower))
}
