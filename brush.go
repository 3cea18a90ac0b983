package hedron

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
)

// Brush is a named convex volume of a level. Its geometry may have collapsed to a
// point, an edge or a polygon while being edited.
type Brush struct {
	Name     string
	Geometry *mesh.Polyhedron
	// Locked brushes are never paired with each other during overlap detection.
	Locked bool
}

// NewBrush creates an unlocked brush
func NewBrush(name string, geometry *mesh.Polyhedron) *Brush {
	return &Brush{Name: name, Geometry: geometry}
}

// Bounds returns the bounding box of the brush geometry
func (b *Brush) Bounds() geom.AABB {
	return b.Geometry.Bounds()
}

// Move replaces the geometry by a transformed copy
func (b *Brush) Move(t geom.Transform) {
	b.Geometry = b.Geometry.Transform(t)
}

func (b *Brush) String() string {
	return b.Name + " (" + b.Geometry.Dimension().String() + ")"
}
