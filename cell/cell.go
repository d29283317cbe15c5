// Package cell implements the coordinate↔index codec of the F9Grid: mapping
// any point on Earth to one of ~300.6 billion fixed rectangular cells and
// recovering a cell's exact boundaries from its 39-bit index.
//
// Cells are value types computed on demand; nothing in this package holds
// mutable state, so every function is safe for concurrent use.
package cell

import (
	"github.com/shopspring/decimal"

	"github.com/WujiKey/F9Grid/grid"
)

// Well-known cell indexes.
const (
	// NorthPoleIndex is the index of the north polar cap cell.
	NorthPoleIndex int64 = 0

	// SouthPoleIndex is the index of the south polar cap cell. It is also the
	// largest valid index.
	SouthPoleIndex int64 = 300626092559
)

// Cell is one grid cell: either a proper rectangle in grid-unit space or one
// of the two circular polar caps. Latitude and longitude ranges are half-open
// [south, north) and [west, east); the north pole cap additionally includes
// its top edge (+90°).
//
// West is normalized into [-180°, 180°); East may exceed +180° for cells that
// straddle the antimeridian.
type Cell struct {
	Index int64 // global cell index in [0, SouthPoleIndex]
	K     int32 // longitude multiplier of the cell's band
	Step  int32 // latitude row, 1 (north pole) to 480000 (south pole)

	South grid.Unit // south latitude edge, inclusive
	North grid.Unit // north latitude edge, exclusive (inclusive at +90°)
	West  grid.Unit // west longitude edge, inclusive
	East  grid.Unit // east longitude edge, exclusive

	IsPole bool // true for the two polar cap cells
}

// LatSouth returns the south latitude boundary in decimal degrees.
func (c Cell) LatSouth() decimal.Decimal { return c.South.Degrees() }

// LatNorth returns the north latitude boundary in decimal degrees.
func (c Cell) LatNorth() decimal.Decimal { return c.North.Degrees() }

// LngWest returns the west longitude boundary in decimal degrees.
func (c Cell) LngWest() decimal.Decimal { return c.West.Degrees() }

// LngEast returns the east longitude boundary in decimal degrees.
func (c Cell) LngEast() decimal.Decimal { return c.East.Degrees() }

// Center returns the cell's center coordinate in decimal degrees. Centers sit
// on half-unit boundaries, so the math is done on doubled grid units to stay
// exact. Pole cells report the pole itself.
func (c Cell) Center() (lat, lng decimal.Decimal) {
	if c.IsPole {
		if c.Index == NorthPoleIndex {
			return decimal.New(90, 0), decimal.Zero
		}

		return decimal.New(-90, 0), decimal.Zero
	}

	lat = grid.HalfUnitDegrees(int64(c.South) + int64(c.North))
	lng = grid.HalfUnitDegrees(int64(c.West) + int64(c.East))

	return lat, lng
}

// northPoleCell returns the north polar cap: a circular cap covering
// latitudes [89.999625°, 90°] at every longitude.
func northPoleCell() Cell {
	return Cell{
		Index:  NorthPoleIndex,
		K:      int32(grid.LngWrap),
		Step:   grid.MinStep,
		South:  grid.NorthPoleEdge,
		North:  grid.LatMax,
		West:   -grid.LngWrap / 2,
		East:   grid.LngWrap / 2,
		IsPole: true,
	}
}

// southPoleCell returns the south polar cap: a circular cap covering
// latitudes [-90°, -89.999625°) at every longitude.
func southPoleCell() Cell {
	return Cell{
		Index:  SouthPoleIndex,
		K:      int32(grid.LngWrap),
		Step:   grid.MaxStep,
		South:  -grid.LatMax,
		North:  grid.SouthPoleEdge,
		West:   -grid.LngWrap / 2,
		East:   grid.LngWrap / 2,
		IsPole: true,
	}
}
