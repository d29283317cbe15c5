// Package grid provides the integer angular arithmetic underlying the F9Grid
// cell index: grid units, latitude steps, and the latitude-band table.
//
// All geometry is computed in grid units (degrees × 8000, i.e. 0.000125° per
// unit) so cell boundaries are exact integers. Decimal degrees appear only at
// the API boundary, carried as decimal.Decimal values; binary floating point
// is never used internally because its rounding error at the 6th decimal
// place is large enough to move a coordinate across a cell boundary.
package grid

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WujiKey/F9Grid/errs"
)

// Unit is an angle measured in grid units: decimal degrees × 8000.
// One unit equals 0.000125°.
type Unit int64

const (
	// UnitsPerDegree is the number of grid units per decimal degree.
	UnitsPerDegree = 8000

	// LatMax is +90° in grid units. Valid grid latitudes span [-LatMax, LatMax].
	LatMax Unit = 90 * UnitsPerDegree

	// LngWrap is a full circle (360°) in grid units. Normalized grid
	// longitudes span [0, LngWrap).
	LngWrap Unit = 360 * UnitsPerDegree
)

var (
	unitsPerDegreeDec = decimal.New(UnitsPerDegree, 0)
	degreesPerUnitDec = decimal.New(125, -6) // 1/8000, exact in decimal
	latMaxDec         = decimal.New(90, 0)
	fullCircleDec     = decimal.New(360, 0)
)

// UnitFromDecimal converts decimal degrees to grid units, rounding toward
// negative infinity. Floor (not truncation) keeps the half-open interval
// convention [lower, upper) symmetric for negative angles: a value
// infinitesimally below a cell boundary lands in the lower cell.
func UnitFromDecimal(deg decimal.Decimal) Unit {
	return Unit(deg.Mul(unitsPerDegreeDec).Floor().IntPart())
}

// UnitFromString parses a decimal-degree string and converts it to grid units.
// It fails with errs.ErrInvalidCoordinate on unparsable input.
func UnitFromString(deg string) (Unit, error) {
	d, err := decimal.NewFromString(deg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCoordinate, deg)
	}

	return UnitFromDecimal(d), nil
}

// LngUnitFromDecimal converts a decimal longitude to grid units, reducing it
// modulo 360° in decimal first. The reduction keeps arbitrarily large
// longitudes exact; converting them directly would overflow the int64 unit
// space around 1.15e15 degrees. The result may still be negative; NormalizeLng
// maps it into [0, LngWrap).
func LngUnitFromDecimal(deg decimal.Decimal) Unit {
	return UnitFromDecimal(deg.Mod(fullCircleDec))
}

// ParseLatitude parses a decimal latitude and validates it against [-90, 90].
func ParseLatitude(deg string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(deg)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: latitude %q", errs.ErrInvalidCoordinate, deg)
	}
	if d.Abs().Cmp(latMaxDec) > 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: latitude %s out of [-90, 90]", errs.ErrInvalidCoordinate, d)
	}

	return d, nil
}

// ParseLongitude parses a decimal longitude. Any finite value is accepted;
// longitudes wrap modulo 360°.
func ParseLongitude(deg string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(deg)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: longitude %q", errs.ErrInvalidCoordinate, deg)
	}

	return d, nil
}

// Degrees converts grid units back to decimal degrees. The conversion is an
// exact decimal multiplication by 0.000125; it never routes through a binary
// float intermediate.
func (u Unit) Degrees() decimal.Decimal {
	return decimal.New(int64(u), 0).Mul(degreesPerUnitDec)
}

// HalfUnitDegrees converts a doubled grid-unit value (2 × units) to decimal
// degrees. Cell centers sit on half-unit boundaries, so they are carried as
// doubled integers to stay exact.
func HalfUnitDegrees(twice int64) decimal.Decimal {
	return decimal.New(twice, 0).Mul(decimal.New(625, -7))
}

// NormalizeLng maps any grid longitude into [0, LngWrap) using a true
// mathematical modulo. Go's % operator can return negative remainders, which
// would break the floor-division math downstream.
func NormalizeLng(lng Unit) Unit {
	m := lng % LngWrap
	if m < 0 {
		m += LngWrap
	}

	return m
}
