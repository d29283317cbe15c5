// Package olc converts 10-character open location codes to and from F9Grid
// grid units. The code lattice and the grid share the same 0.000125° base
// unit, so the conversion is pure integer arithmetic with no rounding: each
// character pair contributes one base-20 digit of latitude and one of
// longitude at a fixed positional weight.
package olc

import (
	"fmt"
	"strings"

	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// Alphabet is the 20-symbol code alphabet. Digits 0-19 map to successive
// characters; easily confused letters are excluded.
const Alphabet = "23456789CFGHJMPQRVWX"

// CodeLength is the length of a full-precision code.
const CodeLength = 10

// base is the alphabet radix.
const base = 20

// weights holds the grid-unit weight of each of the five character pairs.
// Successive pairs refine by a factor of 20, bottoming out at one grid unit.
var weights = [5]grid.Unit{160000, 8000, 400, 20, 1}

// latOffset and lngOffset shift the unsigned code values so the code origin
// (-90°, -180°) maps to zero.
const (
	latOffset = grid.LatMax
	lngOffset = grid.LngWrap / 2
)

// Decode converts a 10-character code into the grid-unit coordinate of its
// south-west corner. It fails with errs.ErrInvalidCode on a code of the
// wrong length, a character outside the alphabet, or a latitude outside
// [-90°, 90°).
func Decode(code string) (lat, lng grid.Unit, err error) {
	if len(code) != CodeLength {
		return 0, 0, fmt.Errorf("%w: length %d, want %d", errs.ErrInvalidCode, len(code), CodeLength)
	}

	for i := 0; i < CodeLength; i += 2 {
		latDigit := strings.IndexByte(Alphabet, code[i])
		lngDigit := strings.IndexByte(Alphabet, code[i+1])
		if latDigit < 0 || lngDigit < 0 {
			return 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidCode, code)
		}

		w := weights[i/2]
		lat += grid.Unit(latDigit) * w
		lng += grid.Unit(lngDigit) * w
	}

	lat -= latOffset
	lng -= lngOffset

	if lat >= grid.LatMax {
		return 0, 0, fmt.Errorf("%w: %q decodes above 90° latitude", errs.ErrInvalidCode, code)
	}

	return lat, lng, nil
}

// Encode converts a grid-unit coordinate into the 10-character code of the
// one-unit lattice square containing it. Longitude wraps; latitude must lie
// in [-90°, 90°).
func Encode(lat, lng grid.Unit) (string, error) {
	if lat < -grid.LatMax || lat >= grid.LatMax {
		return "", fmt.Errorf("%w: grid latitude %d out of range", errs.ErrInvalidCode, lat)
	}

	latVal := lat + latOffset
	lngVal := grid.NormalizeLng(lng+lngOffset) // wraps into [0, 360°)

	var b [CodeLength]byte
	for i := len(weights) - 1; i >= 0; i-- {
		b[2*i] = Alphabet[latVal%base]
		b[2*i+1] = Alphabet[lngVal%base]
		latVal /= base
		lngVal /= base
	}

	return string(b[:]), nil
}
