package hedron

import (
	"math"
	"sort"
	"sync"

	"github.com/akmonengine/hedron/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey is the integer coordinate of a grid cell
type CellKey struct {
	X, Y, Z int
}

// Cell holds the indices of the brushes overlapping it
type Cell struct {
	brushIndices []int
}

// Pair is a pair of brushes whose bounds overlap
type Pair struct {
	BrushA *Brush
	BrushB *Brush

	// positions in the brush slice, BrushA first
	indexA, indexB int
}

// SpatialGrid is a uniform hashed grid used as broad phase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	// brushes spanning more cells than the table holds, paired by bounds only
	oversized []int
}

// NewSpatialGrid creates a grid with the given cell size. The cell count is rounded up
// to a power of two.
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].brushIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize:  cellSize,
		cells:     cells,
		cellMask:  numCells - 1,
		oversized: make([]int, 0),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds a brush to every cell its bounds overlap. A brush covering more cells
// than the table holds is kept aside instead.
func (sg *SpatialGrid) Insert(brushIndex int, brush *Brush) {
	bounds := brush.Bounds()
	if sg.isOversized(bounds) {
		sg.oversized = append(sg.oversized, brushIndex)
		return
	}
	sg.forEachCell(bounds, func(cellIdx int) {
		sg.cells[cellIdx].brushIndices = append(sg.cells[cellIdx].brushIndices, brushIndex)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].brushIndices = sg.cells[i].brushIndices[:0]
	}
	sg.oversized = sg.oversized[:0]
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].brushIndices) > 1 {
			sort.Ints(sg.cells[i].brushIndices)
		}
	}
	sort.Ints(sg.oversized)
}

// FindPairs returns every pair of brushes with overlapping bounds, in brush order
func (sg *SpatialGrid) FindPairs(brushes []*Brush) []Pair {
	pairs := make([]Pair, 0, len(brushes)/2)
	seen := make([]bool, len(brushes))

	for brushIdx := range brushes {
		clear(seen)
		sg.collectPairs(brushes, brushIdx, seen, func(pair Pair) {
			pairs = append(pairs, pair)
		})
	}

	return pairs
}

// FindPairsParallel splits the brushes between workers and streams the pairs found
func (sg *SpatialGrid) FindPairsParallel(brushes []*Brush, numWorkers int) <-chan Pair {
	numWorkers = max(DEFAULT_WORKERS, numWorkers)
	var wg sync.WaitGroup
	pairsChan := make(chan Pair, numWorkers*10)

	brushesPerWorker := len(brushes) / numWorkers
	if brushesPerWorker == 0 {
		brushesPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		startIdx := w * brushesPerWorker
		endIdx := startIdx + brushesPerWorker
		if w == numWorkers-1 {
			endIdx = len(brushes)
		}
		endIdx = min(endIdx, len(brushes))
		if startIdx >= endIdx {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(brushes))
			for brushIdx := start; brushIdx < end; brushIdx++ {
				clear(seen)
				sg.collectPairs(brushes, brushIdx, seen, func(pair Pair) {
					pairsChan <- pair
				})
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// collectPairs emits the pairs formed by brushes[brushIdx] and any later brush sharing a
// cell. Oversized brushes share a cell with everything.
func (sg *SpatialGrid) collectPairs(brushes []*Brush, brushIdx int, seen []bool, emit func(Pair)) {
	brushA := brushes[brushIdx]
	boundsA := brushA.Bounds()

	visit := func(otherIdx int) {
		// (A,B) only, never (B,A)
		if otherIdx <= brushIdx || seen[otherIdx] {
			return
		}
		seen[otherIdx] = true

		brushB := brushes[otherIdx]
		if brushA.Locked && brushB.Locked {
			return
		}
		if boundsA.Overlaps(brushB.Bounds()) {
			emit(Pair{BrushA: brushA, BrushB: brushB, indexA: brushIdx, indexB: otherIdx})
		}
	}

	if sg.isOversized(boundsA) {
		for otherIdx := brushIdx + 1; otherIdx < len(brushes); otherIdx++ {
			visit(otherIdx)
		}
		return
	}

	sg.forEachCell(boundsA, func(cellIdx int) {
		for _, otherIdx := range sg.cells[cellIdx].brushIndices {
			visit(otherIdx)
		}
	})
	for _, otherIdx := range sg.oversized {
		visit(otherIdx)
	}
}

// isOversized reports whether bounds cover more cells than the table holds. Such bounds
// would visit the same hashed cells many times over.
func (sg *SpatialGrid) isOversized(bounds geom.AABB) bool {
	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	limit := len(sg.cells)
	count := 1
	for _, span := range [3]int{
		maxCell.X - minCell.X + 1,
		maxCell.Y - minCell.Y + 1,
		maxCell.Z - minCell.Z + 1,
	} {
		if span > limit {
			return true
		}
		count *= span
		if count > limit {
			return true
		}
	}
	return false
}

func (sg *SpatialGrid) forEachCell(bounds geom.AABB, fn func(cellIdx int)) {
	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
