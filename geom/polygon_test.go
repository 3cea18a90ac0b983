package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(z float64) []mgl64.Vec3 {
	return []mgl64.Vec3{
		{-1, -1, z},
		{+1, -1, z},
		{+1, +1, z},
		{-1, +1, z},
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	normal := mgl64.Vec3{0, 0, 1}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"center", mgl64.Vec3{0, 0, 0}, true},
		{"vertex", mgl64.Vec3{1, 1, 0}, true},
		{"on edge", mgl64.Vec3{0, -1, 0}, true},
		{"near edge inside", mgl64.Vec3{0.999, 0.5, 0}, true},
		{"outside right", mgl64.Vec3{1.5, 0, 0}, false},
		{"outside diagonal", mgl64.Vec3{-2, -2, 0}, false},
		{"outside on vertex row", mgl64.Vec3{2, 1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PolygonContainsPoint(tt.point, normal, square(0)))
		})
	}
}

func TestPolygonContainsPoint_VerticalPolygon(t *testing.T) {
	// polygon in the x = 2 plane
	vertices := []mgl64.Vec3{
		{2, 0, 0},
		{2, 3, 0},
		{2, 3, 3},
		{2, 0, 3},
	}
	normal := mgl64.Vec3{1, 0, 0}

	assert.True(t, PolygonContainsPoint(mgl64.Vec3{2, 1, 1}, normal, vertices))
	assert.False(t, PolygonContainsPoint(mgl64.Vec3{2, 4, 1}, normal, vertices))
}

func TestIntersectRayPlane(t *testing.T) {
	plane := NewPlane(mgl64.Vec3{0, 0, 2}, mgl64.Vec3{0, 0, 1})

	t.Run("hit from below", func(t *testing.T) {
		d, ok := IntersectRayPlane(Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, 1}}, plane)
		require.True(t, ok)
		assert.InDelta(t, 2.0, d, 1e-12)
	})

	t.Run("plane behind the ray", func(t *testing.T) {
		_, ok := IntersectRayPlane(Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, -1}}, plane)
		assert.False(t, ok)
	})

	t.Run("parallel ray", func(t *testing.T) {
		_, ok := IntersectRayPlane(Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}}, plane)
		assert.False(t, ok)
	})
}

func TestIntersectRayPolygon(t *testing.T) {
	plane := NewPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1})
	vertices := square(1)

	d, ok := IntersectRayPolygon(Ray{Origin: mgl64.Vec3{0.5, 0.5, -1}, Direction: mgl64.Vec3{0, 0, 1}}, plane, vertices)
	require.True(t, ok)
	assert.InDelta(t, 2.0, d, 1e-12)

	_, ok = IntersectRayPolygon(Ray{Origin: mgl64.Vec3{3, 0.5, -1}, Direction: mgl64.Vec3{0, 0, 1}}, plane, vertices)
	assert.False(t, ok)
}
