package cell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

func TestEastWestIndex_WithinRow(t *testing.T) {
	c, err := FromStrings("0", "0")
	require.NoError(t, err)

	east, err := EastIndex(c.Index)
	require.NoError(t, err)
	require.Equal(t, c.Index+1, east)

	west, err := WestIndex(east)
	require.NoError(t, err)
	require.Equal(t, c.Index, west)
}

func TestEastWestIndex_WrapAtRowEnds(t *testing.T) {
	b, ok := grid.BandForStep(grid.EquatorStep)
	require.True(t, ok)

	rowStart := b.IndexStart + int64(grid.EquatorStep-b.StepStart)*b.CellsPerRow()
	rowEnd := rowStart + b.CellsPerRow() - 1

	east, err := EastIndex(rowEnd)
	require.NoError(t, err)
	require.Equal(t, rowStart, east)

	west, err := WestIndex(rowStart)
	require.NoError(t, err)
	require.Equal(t, rowEnd, west)
}

func TestEastWestIndex_PoleRowIsSingleCell(t *testing.T) {
	east, err := EastIndex(NorthPoleIndex)
	require.NoError(t, err)
	require.Equal(t, NorthPoleIndex, east)

	west, err := WestIndex(SouthPoleIndex)
	require.NoError(t, err)
	require.Equal(t, SouthPoleIndex, west)
}

func TestEastWestIndex_OutOfRange(t *testing.T) {
	_, err := EastIndex(SouthPoleIndex + 1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = WestIndex(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestNorthSouthNeighbor_AdjacentRows(t *testing.T) {
	c, err := FromStrings("0", "0")
	require.NoError(t, err)

	north, err := c.NorthNeighbor()
	require.NoError(t, err)
	require.Equal(t, c.Step-1, north.Step)
	require.Equal(t, c.North, north.South)

	south, err := north.SouthNeighbor()
	require.NoError(t, err)
	require.Equal(t, c, south)
}

func TestNorthSouthNeighbor_AcrossBandBoundary(t *testing.T) {
	// First k=3 row sits just south of a k=4 band; the neighbor must be the
	// k=4 cell containing this cell's center longitude, not an index shift.
	south, _ := grid.StepLatRange(156411)
	c, err := FromUnits(south, 6) // cell [6, 9), center 7.5
	require.NoError(t, err)
	require.Equal(t, int32(3), c.K)

	north, err := c.NorthNeighbor()
	require.NoError(t, err)
	require.Equal(t, int32(4), north.K)
	require.Equal(t, grid.Unit(4), north.West) // [4, 8) contains 7.5
	require.Equal(t, c.North, north.South)

	back, err := north.SouthNeighbor()
	require.NoError(t, err)
	require.Equal(t, int32(3), back.K)
	require.Equal(t, grid.Unit(6), back.West) // [6, 9) contains 6.0
}

func TestNorthSouthNeighbor_PoleCrossing(t *testing.T) {
	ring, err := FromUnits(grid.NorthPoleEdge-1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(2), ring.Step)

	north, err := ring.NorthNeighbor()
	require.NoError(t, err)
	require.Equal(t, NorthPoleIndex, north.Index)

	// poles are their own vertical neighbors
	again, err := north.NorthNeighbor()
	require.NoError(t, err)
	require.Equal(t, NorthPoleIndex, again.Index)

	southRing, err := FromUnits(-grid.LatMax+4, 0)
	require.NoError(t, err)
	require.Equal(t, int32(479999), southRing.Step)

	south, err := southRing.SouthNeighbor()
	require.NoError(t, err)
	require.Equal(t, SouthPoleIndex, south.Index)
}

func TestNorthSouthNeighbor_FromPoleCells(t *testing.T) {
	// Stepping equatorward off a pole cell must land in the adjacent ring
	// row, never at the antipodal cap.
	north, err := FromIndex(NorthPoleIndex)
	require.NoError(t, err)

	below, err := north.SouthNeighbor()
	require.NoError(t, err)
	require.NotEqual(t, SouthPoleIndex, below.Index)
	require.Equal(t, int32(2), below.Step)
	require.Equal(t, int64(1), below.Index) // prime-meridian cell of the ring row
	require.Equal(t, grid.NorthPoleEdge, below.North)
	require.Equal(t, grid.Unit(0), below.West)

	// and back up into the cap
	again, err := below.NorthNeighbor()
	require.NoError(t, err)
	require.Equal(t, NorthPoleIndex, again.Index)

	south, err := FromIndex(SouthPoleIndex)
	require.NoError(t, err)

	above, err := south.NorthNeighbor()
	require.NoError(t, err)
	require.NotEqual(t, NorthPoleIndex, above.Index)
	require.Equal(t, int32(479999), above.Step)
	require.Equal(t, int64(300626092549), above.Index)
	require.Equal(t, grid.SouthPoleEdge, above.South)

	again, err = above.SouthNeighbor()
	require.NoError(t, err)
	require.Equal(t, SouthPoleIndex, again.Index)
}
