// Package geom exports cells as orb geometries for GeoJSON and mapping
// pipelines. This is the only place the library converts to binary floating
// point; the loss of exactness is acceptable at the export boundary because
// the values are for display, not for re-indexing.
package geom

import (
	"github.com/paulmach/orb"

	"github.com/WujiKey/F9Grid/cell"
)

// Bound returns the cell's bounding box. For cells straddling the
// antimeridian the east edge exceeds +180°, matching the cell's half-open
// longitude range.
func Bound(c cell.Cell) orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.LngWest().InexactFloat64(), c.LatSouth().InexactFloat64()},
		Max: orb.Point{c.LngEast().InexactFloat64(), c.LatNorth().InexactFloat64()},
	}
}

// Polygon returns the cell outline as a closed counter-clockwise ring.
func Polygon(c cell.Cell) orb.Polygon {
	b := Bound(c)

	return orb.Polygon{orb.Ring{
		b.Min,
		orb.Point{b.Max[0], b.Min[1]},
		b.Max,
		orb.Point{b.Min[0], b.Max[1]},
		b.Min,
	}}
}

// Center returns the cell's center point. Pole cells report the pole itself.
func Center(c cell.Cell) orb.Point {
	lat, lng := c.Center()

	return orb.Point{lng.InexactFloat64(), lat.InexactFloat64()}
}
