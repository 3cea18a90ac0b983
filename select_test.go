package hedron

import (
	"context"
	"testing"

	"github.com/akmonengine/hedron/mesh"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionBrushes(t *testing.T) []*Brush {
	return []*Brush{
		createTestBrush("inside", vec(0, 0, 0)),
		createTestBrush("crossing", vec(1.2, 0, 0)),
		createTestBrush("outside", vec(5, 0, 0)),
		NewBrush("point", point(0.5, 0.5, 0.5)),
		NewBrush("edge", edge(vec(-3, 0, 0), vec(3, 0, 0))),
		NewBrush("square", unitSquare(t)),
		NewBrush("empty", mesh.NewEmpty()),
	}
}

func names(brushes []*Brush) []string {
	result := make([]string, len(brushes))
	for i, brush := range brushes {
		result[i] = brush.Name
	}
	return result
}

func TestSelectTouching(t *testing.T) {
	volume := mesh.NewCube(vec(0, 0, 0), 1)

	for _, workers := range []int{0, 1, 3, 16} {
		selected, err := SelectTouching(context.Background(), volume, selectionBrushes(t), workers)
		require.NoError(t, err)
		assert.Equal(t, []string{"inside", "crossing", "point", "edge", "square"}, names(selected), "%d workers", workers)
	}
}

func TestSelectInside(t *testing.T) {
	volume := mesh.NewCube(vec(0, 0, 0), 1)

	selected, err := SelectInside(context.Background(), volume, selectionBrushes(t), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"inside", "point", "square"}, names(selected))
}

func TestSelectInside_VolumeMustBeSolid(t *testing.T) {
	_, err := SelectInside(context.Background(), unitSquare(t), selectionBrushes(t), 1)
	assert.EqualError(t, err, "select inside: volume must be a solid, got polygon")
}

func TestSelectTouching_InvalidBrush(t *testing.T) {
	brushes := append(selectionBrushes(t), NewBrush("sheet", invalidSheet(t)))

	_, err := SelectTouching(context.Background(), mesh.NewCube(vec(0, 0, 0), 1), brushes, 2)
	require.Error(t, err)

	var precondition *PreconditionError
	require.True(t, errors.As(err, &precondition))
	assert.Equal(t, 2, precondition.Faces)
	assert.Contains(t, err.Error(), `brush "sheet"`)
}

func TestSelectTouching_InvalidVolume(t *testing.T) {
	_, err := SelectTouching(context.Background(), invalidSheet(t), selectionBrushes(t), 2)

	var precondition *PreconditionError
	assert.True(t, errors.As(err, &precondition))
}

func TestSelect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	selected, err := SelectTouching(ctx, mesh.NewCube(vec(0, 0, 0), 1), selectionBrushes(t), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, selected)

	selected, err = SelectInside(ctx, mesh.NewCube(vec(0, 0, 0), 1), selectionBrushes(t), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, selected)
}
