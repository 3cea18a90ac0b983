package hedron

import (
	"context"

	"github.com/akmonengine/hedron/mesh"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SelectTouching returns the brushes intersecting volume, in input order.
// A brush with an invalid geometry aborts the selection with a *PreconditionError.
func SelectTouching(ctx context.Context, volume *mesh.Polyhedron, brushes []*Brush, workers int) ([]*Brush, error) {
	if volume.Dimension() == mesh.DimensionInvalid {
		return nil, newPreconditionError("select touching", volume)
	}
	return selectBrushes(ctx, brushes, workers, func(brush *Brush) (bool, error) {
		if brush.Geometry.Dimension() == mesh.DimensionInvalid {
			return false, errors.Wrapf(newPreconditionError("select touching", brush.Geometry), "brush %q", brush.Name)
		}
		return Intersects(volume, brush.Geometry), nil
	})
}

// SelectInside returns the brushes entirely contained in volume, in input order.
func SelectInside(ctx context.Context, volume *mesh.Polyhedron, brushes []*Brush, workers int) ([]*Brush, error) {
	if !volume.IsPolyhedron() {
		return nil, errors.Errorf("select inside: volume must be a solid, got %s", volume.Dimension())
	}
	return selectBrushes(ctx, brushes, workers, func(brush *Brush) (bool, error) {
		return !brush.Geometry.Empty() && Contains(volume, brush.Geometry), nil
	})
}

func selectBrushes(ctx context.Context, brushes []*Brush, workers int, keep func(*Brush) (bool, error)) ([]*Brush, error) {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(DEFAULT_WORKERS, workers))

	selected := make([]bool, len(brushes))
	for i, brush := range brushes {
		if groupCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			ok, err := keep(brush)
			if err != nil {
				return err
			}
			selected[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*Brush, 0)
	for i, ok := range selected {
		if ok {
			result = append(result, brushes[i])
		}
	}
	return result, nil
}
