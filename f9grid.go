// Package f9grid assigns every point on Earth to one of ~300.6 billion fixed
// rectangular cells and provides the exact inverse mapping, plus drift
// correction for recovering a recorded cell from a coordinate displaced by
// bounded GPS measurement error.
//
// The grid has 480,000 latitude rows of 0.000375° each; rows are grouped into
// 263 bands whose per-row cell count is chosen so cell areas stay near
// 1730.963 m² on the WGS-84 ellipsoid. The two poles are singleton cells
// covering circular caps. A cell is identified by a stable 39-bit integer
// index, densely packed from 0 (north pole) to 300,626,092,559 (south pole).
//
// # Basic Usage
//
// Resolving a coordinate to its cell and back:
//
//	c, err := f9grid.EncodeStrings("25.033964", "121.564468")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Index, c.LatSouth(), c.LngWest())
//
//	same, _ := f9grid.Decode(c.Index)
//
// Recording a fix for later drift correction:
//
//	code, _ := f9grid.PositionCodeStrings("25.033964", "121.564468")
//	// ... store (c.Index, code); later, with a drifted reading:
//	orig, err := f9grid.FindOriginalCellStrings("25.033971", "121.564459", code)
//
// Coordinates are accepted as decimal strings or decimal.Decimal values, not
// float64: the 0.000125° grid resolution is within floating-point rounding
// error of common query coordinates, and a misrounded input lands in the
// wrong cell.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the grid, cell
// and drift packages, which expose the band table, the coordinate↔index
// codecs and the drift resolver directly. The track package stores recorded
// fixes in a compact binary log, olc converts external location codes, and
// geom exports cells as orb geometries.
//
// All operations are pure functions over the immutable band table and are
// safe for concurrent use without locks.
package f9grid

import (
	"github.com/shopspring/decimal"

	"github.com/WujiKey/F9Grid/cell"
	"github.com/WujiKey/F9Grid/drift"
	"github.com/WujiKey/F9Grid/grid"
)

// Well-known indexes.
const (
	NorthPoleIndex = cell.NorthPoleIndex // index of the north polar cap cell
	SouthPoleIndex = cell.SouthPoleIndex // index of the south polar cap cell
	MaxIndex       = cell.SouthPoleIndex // largest valid cell index
)

// Cell is one grid cell. See the cell package for its fields and accessors.
type Cell = cell.Cell

// Code is a 1-9 position code. See the drift package.
type Code = drift.Code

// Encode resolves the cell containing a decimal-degree coordinate.
func Encode(lat, lng decimal.Decimal) (Cell, error) {
	return cell.FromCoordinate(lat, lng)
}

// EncodeStrings resolves the cell containing a coordinate given as decimal
// strings.
func EncodeStrings(lat, lng string) (Cell, error) {
	return cell.FromStrings(lat, lng)
}

// Decode reconstructs the cell identified by a global index.
func Decode(index int64) (Cell, error) {
	return cell.FromIndex(index)
}

// PositionCode computes the position code of a coordinate within its cell.
func PositionCode(lat, lng decimal.Decimal) (Code, error) {
	c, err := cell.FromCoordinate(lat, lng)
	if err != nil {
		return 0, err
	}

	return drift.PositionCode(c, grid.UnitFromDecimal(lat), grid.LngUnitFromDecimal(lng))
}

// PositionCodeStrings computes the position code of a coordinate given as
// decimal strings.
func PositionCodeStrings(lat, lng string) (Code, error) {
	latD, err := grid.ParseLatitude(lat)
	if err != nil {
		return 0, err
	}
	lngD, err := grid.ParseLongitude(lng)
	if err != nil {
		return 0, err
	}

	return PositionCode(latD, lngD)
}

// FindOriginalCell recovers the index of the originally recorded cell from a
// possibly drifted coordinate and the position code recorded with it.
func FindOriginalCell(lat, lng decimal.Decimal, orig Code) (int64, error) {
	return drift.FindOriginalCell(lat, lng, orig)
}

// FindOriginalCellStrings is FindOriginalCell for coordinates given as
// decimal strings.
func FindOriginalCellStrings(lat, lng string, orig Code) (int64, error) {
	return drift.FindOriginalCellStrings(lat, lng, orig)
}
