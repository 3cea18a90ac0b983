package hedron

import (
	"slices"
	"sync"

	"github.com/akmonengine/hedron/mesh"
	"github.com/akmonengine/hedron/sat"
)

// BroadPhase inserts every brush in the grid and streams the pairs whose bounds overlap.
// A workersCount below one runs a single worker, as in NarrowPhase.
func BroadPhase(spatialGrid *SpatialGrid, brushes []*Brush, workersCount int) <-chan Pair {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	spatialGrid.Clear()
	for i, brush := range brushes {
		spatialGrid.Insert(i, brush)
	}
	spatialGrid.SortCells()

	return spatialGrid.FindPairsParallel(brushes, workersCount)
}

// NarrowPhase keeps the pairs whose geometries actually intersect, sorted by brush order.
// Pairs involving an empty or invalid geometry are dropped.
func NarrowPhase(pairs <-chan Pair, workersCount int) []Pair {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	// Dispatcher: solid pairs go through SAT, every degenerate combination through Intersects
	solidPairs := make(chan Pair, workersCount)
	degeneratePairs := make(chan Pair, workersCount)

	go func() {
		defer close(solidPairs)
		defer close(degeneratePairs)

		for pair := range pairs {
			a := pair.BrushA.Geometry
			b := pair.BrushB.Geometry
			if !queryable(a) || !queryable(b) {
				continue
			}

			if a.IsPolyhedron() && b.IsPolyhedron() {
				solidPairs <- pair
			} else {
				degeneratePairs <- pair
			}
		}
	}()

	allOverlaps := make(chan Pair, workersCount*2)
	var wg sync.WaitGroup
	// Path 1: separating axis test between solids
	wg.Add(1)
	go func() {
		defer wg.Done()
		for pair := range filterPairs(solidPairs, workersCount, sat.Intersects) {
			allOverlaps <- pair
		}
	}()

	// Path 2: points, edges and polygons
	wg.Add(1)
	go func() {
		defer wg.Done()
		for pair := range filterPairs(degeneratePairs, workersCount, Intersects) {
			allOverlaps <- pair
		}
	}()

	go func() {
		wg.Wait()
		close(allOverlaps)
	}()

	overlaps := make([]Pair, 0)
	for pair := range allOverlaps {
		overlaps = append(overlaps, pair)
	}
	slices.SortFunc(overlaps, comparePairs)
	return overlaps
}

// filterPairs runs the intersection test on workersCount goroutines and forwards the
// pairs that pass it
func filterPairs(pairs <-chan Pair, workersCount int, intersects func(a, b *mesh.Polyhedron) bool) <-chan Pair {
	ch := make(chan Pair, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(ch)

		for range workersCount {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for pair := range pairs {
					if intersects(pair.BrushA.Geometry, pair.BrushB.Geometry) {
						ch <- pair
					}
				}
			}()
		}

		wg.Wait()
	}()

	return ch
}

func queryable(p *mesh.Polyhedron) bool {
	return p.Dimension() != mesh.DimensionInvalid && !p.Empty()
}

func comparePairs(a, b Pair) int {
	if a.indexA != b.indexA {
		return a.indexA - b.indexA
	}
	return a.indexB - b.indexB
}
