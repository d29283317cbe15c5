package cell

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// FromStrings resolves the cell containing the coordinate given as decimal
// strings. It fails with errs.ErrInvalidCoordinate on unparsable input or a
// latitude outside [-90, 90]; every parseable coordinate on Earth maps to
// exactly one cell.
func FromStrings(lat, lng string) (Cell, error) {
	latD, err := grid.ParseLatitude(lat)
	if err != nil {
		return Cell{}, err
	}
	lngD, err := grid.ParseLongitude(lng)
	if err != nil {
		return Cell{}, err
	}

	return FromCoordinate(latD, lngD)
}

// FromCoordinate resolves the cell containing the given decimal-degree
// coordinate. Longitude wraps modulo 360°; latitude must lie in [-90, 90].
func FromCoordinate(lat, lng decimal.Decimal) (Cell, error) {
	if lat.Abs().Cmp(decimal.New(90, 0)) > 0 {
		return Cell{}, fmt.Errorf("%w: latitude %s out of [-90, 90]", errs.ErrInvalidCoordinate, lat)
	}

	return FromUnits(grid.UnitFromDecimal(lat), grid.LngUnitFromDecimal(lng))
}

// FromUnits resolves the cell containing a coordinate already converted to
// grid units. This is the forward codec core; the drift resolver calls it
// directly with unit-shifted latitudes.
func FromUnits(lat, lng grid.Unit) (Cell, error) {
	if lat > grid.LatMax || lat < -grid.LatMax {
		return Cell{}, fmt.Errorf("%w: grid latitude %d", errs.ErrInvalidCoordinate, lat)
	}

	// Polar caps first: the cap boundary is 89.999625°, included on the
	// north side and excluded on the south side.
	if lat >= grid.NorthPoleEdge {
		return northPoleCell(), nil
	}
	if lat < grid.SouthPoleEdge {
		return southPoleCell(), nil
	}

	step := grid.StepForLat(lat)
	band, ok := grid.BandForStep(step)
	if !ok {
		// Unreachable: the band table partitions [1, 480000].
		return Cell{}, fmt.Errorf("%w: step %d", errs.ErrBandNotFound, step)
	}

	k := int64(band.K)
	cellsPerRow := band.CellsPerRow()
	lngIndex := (int64(grid.NormalizeLng(lng)) / k) % cellsPerRow

	index := band.IndexStart + int64(step-band.StepStart)*cellsPerRow + lngIndex

	return build(band, step, lngIndex, index), nil
}

// FromIndex reconstructs the cell identified by a global index. It is the
// exact inverse of the forward codec: FromIndex(c.Index) returns a cell with
// identical boundaries for every valid index.
func FromIndex(index int64) (Cell, error) {
	switch index {
	case NorthPoleIndex:
		return northPoleCell(), nil
	case SouthPoleIndex:
		return southPoleCell(), nil
	}

	band, ok := grid.BandForIndex(index)
	if !ok {
		return Cell{}, fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, index)
	}

	cellsPerRow := band.CellsPerRow()
	offset := index - band.IndexStart
	step := band.StepStart + int32(offset/cellsPerRow)
	lngIndex := offset % cellsPerRow

	return build(band, step, lngIndex, index), nil
}

// build assembles a non-pole cell from its band, step and longitude index.
func build(band grid.Band, step int32, lngIndex, index int64) Cell {
	south, north := grid.StepLatRange(step)

	west := grid.Unit(lngIndex * int64(band.K))
	if west >= grid.LngWrap/2 {
		west -= grid.LngWrap
	}

	return Cell{
		Index: index,
		K:     band.K,
		Step:  step,
		South: south,
		North: north,
		West:  west,
		East:  west + grid.Unit(band.K),
	}
}
