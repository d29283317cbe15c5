package cell

import (
	"fmt"

	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// EastIndex returns the index of the cell immediately east of index,
// wrapping within the row at the antimeridian. Pole cells are their own
// east neighbor (their row has a single cell).
func EastIndex(index int64) (int64, error) {
	rowStart, rowEnd, err := rowSpan(index)
	if err != nil {
		return 0, err
	}
	if index == rowEnd {
		return rowStart, nil
	}

	return index + 1, nil
}

// WestIndex returns the index of the cell immediately west of index,
// wrapping within the row at the antimeridian.
func WestIndex(index int64) (int64, error) {
	rowStart, rowEnd, err := rowSpan(index)
	if err != nil {
		return 0, err
	}
	if index == rowStart {
		return rowEnd, nil
	}

	return index - 1, nil
}

// rowSpan derives the index range [rowStart, rowEnd] of the row containing
// index from its band.
func rowSpan(index int64) (rowStart, rowEnd int64, err error) {
	band, ok := grid.BandForIndex(index)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, index)
	}

	cellsPerRow := band.CellsPerRow()
	rowStart = index - (index-band.IndexStart)%cellsPerRow
	rowEnd = rowStart + cellsPerRow - 1

	return rowStart, rowEnd, nil
}

// NorthNeighbor returns the cell due north of c, resolved at c's center
// longitude. Adjacent rows may use a different longitude multiplier, so the
// neighbor is recomputed through the band table rather than by index
// arithmetic. Crossing into the polar cap returns the pole cell; the north
// pole is its own north neighbor, and stepping north from the south pole
// lands in the ring row at the cap's center longitude.
func (c Cell) NorthNeighbor() (Cell, error) {
	if c.Index == NorthPoleIndex {
		return c, nil
	}
	if c.Step-1 <= grid.MinStep {
		return northPoleCell(), nil
	}

	return rowNeighbor(c, c.Step-1)
}

// SouthNeighbor returns the cell due south of c, resolved at c's center
// longitude. The south pole is its own south neighbor; stepping south from
// the north pole lands in the ring row at the cap's center longitude.
func (c Cell) SouthNeighbor() (Cell, error) {
	if c.Index == SouthPoleIndex {
		return c, nil
	}
	if c.Step+1 >= grid.MaxStep {
		return southPoleCell(), nil
	}

	return rowNeighbor(c, c.Step+1)
}

// rowNeighbor resolves the cell in the given adjacent step containing c's
// center longitude. The center sits on a half-unit boundary, so the division
// is carried out on doubled grid units to stay exact.
func rowNeighbor(c Cell, step int32) (Cell, error) {
	band, ok := grid.BandForStep(step)
	if !ok {
		return Cell{}, fmt.Errorf("%w: step %d", errs.ErrBandNotFound, step)
	}

	west := c.West
	if west < 0 {
		west += grid.LngWrap
	}
	centerTwice := 2*int64(west) + int64(c.K)

	cellsPerRow := band.CellsPerRow()
	lngIndex := (centerTwice / (2 * int64(band.K))) % cellsPerRow
	index := band.IndexStart + int64(step-band.StepStart)*cellsPerRow + lngIndex

	return build(band, step, lngIndex, index), nil
}
