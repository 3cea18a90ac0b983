package mesh

// Dimension classifies a polyhedron by its vertex, edge and face counts.
type Dimension int

const (
	DimensionEmpty Dimension = iota
	DimensionPoint
	DimensionEdge
	DimensionPolygon
	DimensionSolid
	DimensionInvalid
)

func (d Dimension) String() string {
	switch d {
	case DimensionEmpty:
		return "empty"
	case DimensionPoint:
		return "point"
	case DimensionEdge:
		return "edge"
	case DimensionPolygon:
		return "polygon"
	case DimensionSolid:
		return "solid"
	default:
		return "invalid"
	}
}

func classify(vertices, edges, faces int) Dimension {
	switch {
	case vertices == 0 && edges == 0 && faces == 0:
		return DimensionEmpty
	case vertices == 1 && edges == 0 && faces == 0:
		return DimensionPoint
	case vertices == 2 && edges == 1 && faces == 0:
		return DimensionEdge
	case vertices >= 3 && faces == 1:
		return DimensionPolygon
	case vertices >= 4 && faces >= 4:
		return DimensionSolid
	default:
		return DimensionInvalid
	}
}

// Dimension returns the classification computed when the polyhedron was built.
func (p *Polyhedron) Dimension() Dimension {
	return p.dimension
}

func (p *Polyhedron) Empty() bool        { return p.dimension == DimensionEmpty }
func (p *Polyhedron) IsPoint() bool      { return p.dimension == DimensionPoint }
func (p *Polyhedron) IsEdge() bool       { return p.dimension == DimensionEdge }
func (p *Polyhedron) IsPolygon() bool    { return p.dimension == DimensionPolygon }
func (p *Polyhedron) IsPolyhedron() bool { return p.dimension == DimensionSolid }
