package hedron

import (
	"math"

	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

// World holds the brushes of a level and detects which of them overlap
type World struct {
	Brushes     []*Brush
	SpatialGrid *SpatialGrid
	Workers     int
	// Logger may be nil, nothing is logged then
	Logger *zap.Logger

	Events Events
}

// NewWorld creates an empty world with its own grid and event tracking
func NewWorld(cellSize float64, numCells int, workers int, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		SpatialGrid: NewSpatialGrid(cellSize, numCells),
		Workers:     workers,
		Logger:      logger,
		Events:      NewEvents(),
	}
}

// AddBrush adds a brush to the world
func (w *World) AddBrush(brush *Brush) {
	w.Brushes = append(w.Brushes, brush)
	if brush.Geometry.Dimension() == mesh.DimensionInvalid {
		w.logger().Warn("brush has an invalid geometry and is ignored by queries",
			zap.String("brush", brush.Name),
			zap.Int("vertices", brush.Geometry.VertexCount()),
			zap.Int("edges", brush.Geometry.EdgeCount()),
			zap.Int("faces", brush.Geometry.FaceCount()),
		)
	}
}

// RemoveBrush removes a brush from the world
func (w *World) RemoveBrush(brush *Brush) {
	k := -1
	for i, b := range w.Brushes {
		if b == brush {
			k = i
			break
		}
	}

	if k != -1 {
		w.Brushes = append(w.Brushes[:k], w.Brushes[k+1:]...)
	}

	w.Events.forget(brush)
}

// Detect finds every pair of intersecting brushes, then emits the overlap events
func (w *World) Detect() []Pair {
	workers := w.workers()
	if w.Events.listeners == nil {
		w.Events = NewEvents()
	}

	// Phase 1: Broad phase on bounds
	// Phase 2: Narrow phase on geometry
	overlaps := NarrowPhase(BroadPhase(w.SpatialGrid, w.Brushes, workers), workers)
	w.logger().Debug("overlap detection",
		zap.Int("brushes", len(w.Brushes)),
		zap.Int("overlaps", len(overlaps)),
		zap.Int("workers", workers),
	)

	w.Events.recordOverlaps(overlaps)
	w.Events.flush()

	return overlaps
}

// Move applies the same transform to every brush
func (w *World) Move(t geom.Transform) {
	task(w.workers(), w.Brushes, func(_ int, brush *Brush) {
		brush.Move(t)
	})
}

// Hit is the nearest brush found along a ray
type Hit struct {
	Brush    *Brush
	Face     mesh.FaceID
	Distance float64
}

// Pick returns the brush whose geometry the ray hits first. Solids are hit on their
// front faces, polygons on either side. Pick only reads the world and may run
// concurrently with other picks.
func (w *World) Pick(ray geom.Ray) (Hit, bool) {
	hits := make([]Hit, len(w.Brushes))
	task(w.workers(), w.Brushes, func(i int, brush *Brush) {
		hits[i] = pickBrush(brush, ray)
	})

	best := Hit{Face: mesh.NoID, Distance: math.Inf(1)}
	for _, hit := range hits {
		if hit.Brush != nil && hit.Distance < best.Distance {
			best = hit
		}
	}
	if best.Brush == nil {
		return best, false
	}
	w.logger().Debug("pick", zap.String("brush", best.Brush.Name), zap.Float64("distance", best.Distance))
	return best, true
}

func pickBrush(brush *Brush, ray geom.Ray) Hit {
	var side geom.Side
	switch brush.Geometry.Dimension() {
	case mesh.DimensionSolid:
		side = geom.SideFront
	case mesh.DimensionPolygon:
		side = geom.SideBoth
	default:
		return Hit{}
	}

	distance, face, ok := brush.Geometry.IntersectWithRay(ray, side)
	if !ok {
		return Hit{}
	}
	return Hit{Brush: brush, Face: face, Distance: distance}
}

func (w *World) workers() int {
	return max(DEFAULT_WORKERS, w.Workers)
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		return nopLogger
	}
	return w.Logger
}

var nopLogger = zap.NewNop()
