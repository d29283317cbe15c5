// Package drift implements the position-code calculator and the
// drift-correction resolver: given a coordinate displaced by bounded GPS
// measurement error plus the position code recorded at acquisition time, it
// recovers the index of the originally recorded cell.
package drift

import (
	"fmt"

	"github.com/WujiKey/F9Grid/cell"
	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// Code labels one of the nine 3×3 sub-regions of a cell. The layout, by
// sub-region row (south to north) and column (west to east):
//
//	north: 4 9 2
//	mid:   3 5 7
//	south: 8 1 6
//
// Pole cells have no meaningful direction and collapse to a fixed code:
// 1 at the north pole, 9 at the south pole.
type Code int

// Fixed codes for the polar cap cells.
const (
	NorthPoleCode Code = 1
	SouthPoleCode Code = 9
)

// codeMatrix maps [row][column] to a position code; row 0 is the southern
// third, column 0 the western third.
var codeMatrix = [3][3]Code{
	{8, 1, 6}, // south
	{3, 5, 7}, // mid
	{4, 9, 2}, // north
}

// Valid reports whether c is one of the nine position codes.
func (c Code) Valid() bool {
	return c >= 1 && c <= 9
}

// PositionCode computes the position code of a grid-unit coordinate within
// its containing cell c.
//
// The row is found by comparing the latitude offset directly against 1 and 2:
// cells are exactly 3 units tall, so no division is needed. The column
// compares 3× the longitude offset against k and 2k, since k/3 need not be
// an integer.
func PositionCode(c cell.Cell, lat, lng grid.Unit) (Code, error) {
	if c.IsPole {
		if c.Index == cell.NorthPoleIndex {
			return NorthPoleCode, nil
		}

		return SouthPoleCode, nil
	}

	latOff := lat - c.South
	if latOff < 0 || latOff >= grid.StepHeight {
		return 0, fmt.Errorf("%w: latitude %d outside cell %d", errs.ErrInvalidCoordinate, lat, c.Index)
	}
	row := 1
	if latOff < 1 {
		row = 0
	} else if latOff >= 2 {
		row = 2
	}

	// Re-normalize the longitude relative to the west edge so cells adjacent
	// to the antimeridian subtract correctly.
	west := c.West
	if west < 0 {
		west += grid.LngWrap
	}
	lngOff := grid.NormalizeLng(grid.NormalizeLng(lng) - west)

	k := grid.Unit(c.K)
	if lngOff >= k {
		return 0, fmt.Errorf("%w: longitude %d outside cell %d", errs.ErrInvalidCoordinate, lng, c.Index)
	}
	col := 1
	if 3*lngOff < k {
		col = 0
	} else if 3*lngOff >= 2*k {
		col = 2
	}

	return codeMatrix[row][col], nil
}
