package mesh

import (
	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// ContainsPoint reports whether point lies inside or on the boundary of a solid,
// i.e. is not above any face plane by more than epsilon. Non-solids contain nothing.
func (p *Polyhedron) ContainsPoint(point mgl64.Vec3, epsilon float64) bool {
	if !p.IsPolyhedron() {
		return false
	}
	if !p.bounds.ContainsPoint(point) {
		return false
	}
	for _, face := range p.faces {
		if face.Plane.PointStatus(point, epsilon) == geom.Above {
			return false
		}
	}
	return true
}

// Contains reports whether every vertex of other lies inside this solid.
func (p *Polyhedron) Contains(other *Polyhedron) bool {
	if !p.IsPolyhedron() {
		return false
	}
	if !p.bounds.Contains(other.bounds) {
		return false
	}
	for _, v := range other.positions {
		if !p.ContainsPoint(v, geom.PointStatusEpsilon) {
			return false
		}
	}
	return true
}
