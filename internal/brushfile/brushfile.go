// Package brushfile reads brush descriptions from YAML documents.
//
// A document lists brushes by name. Each brush is either an axis aligned box or a
// set of vertices with optional face loops:
//
//	brushes:
//	  - name: floor
//	    box: {min: [-4, -4, -1], max: [4, 4, 0]}
//	    locked: true
//	  - name: wedge
//	    vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0], [0, 0, 1]]
//	    faces: [[0, 2, 1], [0, 1, 3], [1, 2, 3], [0, 3, 2]]
//	  - name: marker
//	    vertices: [[1, 1, 1]]
//
// Without faces, one vertex is a point, two are an edge and more are a polygon
// boundary. Face loops list vertex indices counter-clockwise seen from outside.
package brushfile

import (
	"bytes"
	"io"
	"os"

	"github.com/akmonengine/hedron"
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type File struct {
	Brushes []Brush `yaml:"brushes"`
}

type Brush struct {
	Name     string      `yaml:"name"`
	Vertices [][]float64 `yaml:"vertices,omitempty"`
	Faces    [][]int     `yaml:"faces,omitempty"`
	Box      *Box        `yaml:"box,omitempty"`
	Locked   bool        `yaml:"locked,omitempty"`
}

type Box struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "while reading brush file %s", path)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "brush file %s", path)
	}
	return f, nil
}

// Decode parses a YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "while decoding brushes")
	}

	seen := make(map[string]bool, len(f.Brushes))
	for i, b := range f.Brushes {
		if b.Name == "" {
			return nil, errors.Errorf("brush %d has no name", i)
		}
		if seen[b.Name] {
			return nil, errors.Errorf("brush %q is defined twice", b.Name)
		}
		seen[b.Name] = true
	}
	return &f, nil
}

// Encode writes f as a YAML document.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(err, "while encoding brushes")
	}
	return enc.Close()
}

// Geometry builds the polyhedron described by b.
func (b Brush) Geometry() (*mesh.Polyhedron, error) {
	if b.Box != nil {
		if len(b.Vertices) > 0 || len(b.Faces) > 0 {
			return nil, errors.Errorf("brush %q: a box cannot have vertices or faces", b.Name)
		}
		return b.Box.geometry(b.Name)
	}

	positions := make([]mgl64.Vec3, len(b.Vertices))
	for i, v := range b.Vertices {
		p, err := vector(v)
		if err != nil {
			return nil, errors.Wrapf(err, "brush %q: vertex %d", b.Name, i)
		}
		positions[i] = p
	}

	if len(b.Faces) > 0 {
		p, err := mesh.FromFaces(positions, b.Faces)
		return p, errors.Wrapf(err, "brush %q", b.Name)
	}

	switch len(positions) {
	case 0:
		return mesh.NewEmpty(), nil
	case 1:
		return mesh.NewPoint(positions[0]), nil
	case 2:
		return mesh.NewEdge(positions[0], positions[1]), nil
	default:
		p, err := mesh.NewPolygon(positions...)
		return p, errors.Wrapf(err, "brush %q", b.Name)
	}
}

func (b *Box) geometry(name string) (*mesh.Polyhedron, error) {
	lo, err := vector(b.Min)
	if err != nil {
		return nil, errors.Wrapf(err, "brush %q: box min", name)
	}
	hi, err := vector(b.Max)
	if err != nil {
		return nil, errors.Wrapf(err, "brush %q: box max", name)
	}
	for i := range 3 {
		if lo[i] > hi[i] {
			return nil, errors.Errorf("brush %q: box min %v is above max %v", name, lo, hi)
		}
	}
	return mesh.NewBox(geom.AABB{Min: lo, Max: hi}), nil
}

func vector(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, errors.Errorf("expected 3 coordinates, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// Build creates the brushes of the file, in file order.
func (f *File) Build() ([]*hedron.Brush, error) {
	brushes := make([]*hedron.Brush, 0, len(f.Brushes))
	for _, b := range f.Brushes {
		geometry, err := b.Geometry()
		if err != nil {
			return nil, err
		}
		brush := hedron.NewBrush(b.Name, geometry)
		brush.Locked = b.Locked
		brushes = append(brushes, brush)
	}
	return brushes, nil
}

// Find returns the brush named name.
func (f *File) Find(name string) (Brush, bool) {
	for _, b := range f.Brushes {
		if b.Name == name {
			return b, true
		}
	}
	return Brush{}, false
}
