package drift

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WujiKey/F9Grid/cell"
	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

// FindOriginalCell recovers the index of the cell recorded at acquisition
// time from the current, possibly drifted, coordinate and the position code
// recorded with the original fix. Under bounded drift a position can only
// move into a sub-region adjacent to its original one, so the pair uniquely
// identifies the original cell.
//
// It fails with errs.ErrInvalidPositionCode or errs.ErrInvalidCoordinate on
// bad input, and with errs.ErrNoSolution when no original cell is consistent
// with the supplied code.
func FindOriginalCell(lat, lng decimal.Decimal, orig Code) (int64, error) {
	if !orig.Valid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPositionCode, orig)
	}
	if lat.Abs().Cmp(decimal.New(90, 0)) > 0 {
		return 0, fmt.Errorf("%w: latitude %s out of [-90, 90]", errs.ErrInvalidCoordinate, lat)
	}

	return findOriginal(grid.UnitFromDecimal(lat), grid.LngUnitFromDecimal(lng), orig)
}

// FindOriginalCellStrings is FindOriginalCell for coordinates given as
// decimal strings.
func FindOriginalCellStrings(lat, lng string, orig Code) (int64, error) {
	latD, err := grid.ParseLatitude(lat)
	if err != nil {
		return 0, err
	}
	lngD, err := grid.ParseLongitude(lng)
	if err != nil {
		return 0, err
	}

	return FindOriginalCell(latD, lngD, orig)
}

func findOriginal(lat, lng grid.Unit, orig Code) (int64, error) {
	// Polar caps and the single-unit rings adjacent to them: a fix this close
	// to a pole can only have originated in the pole cell.
	if lat >= grid.NorthPoleEdge-1 {
		if orig == NorthPoleCode {
			return cell.NorthPoleIndex, nil
		}

		return 0, fmt.Errorf("%w: code %d near north pole", errs.ErrNoSolution, orig)
	}
	if lat < grid.SouthPoleEdge+1 {
		if orig == SouthPoleCode {
			return cell.SouthPoleIndex, nil
		}

		return 0, fmt.Errorf("%w: code %d near south pole", errs.ErrNoSolution, orig)
	}

	cur, err := cell.FromUnits(lat, lng)
	if err != nil {
		return 0, err
	}
	curCode, err := PositionCode(cur, lat, lng)
	if err != nil {
		return 0, err
	}

	switch matchTable[orig][curCode] {
	case ActionStay:
		return cur.Index, nil
	case ActionEast:
		return cell.EastIndex(cur.Index)
	case ActionWest:
		return cell.WestIndex(cur.Index)
	case ActionSearchNorth:
		return searchRow(lat+1, lng, orig, northEdgeTable, cell.NorthPoleIndex)
	case ActionSearchSouth:
		return searchRow(lat-1, lng, orig, southEdgeTable, cell.SouthPoleIndex)
	default:
		// Unreachable: the 9×9 table is total over valid codes.
		return 0, fmt.Errorf("%w: no action for codes (%d, %d)", errs.ErrNoSolution, orig, curCode)
	}
}

// searchRow resolves a search-north/search-south action: the latitude has
// been shifted by one grid unit into the adjacent row, and the original cell
// is found by matching orig against the position code on the shared edge.
// A shift across a pole boundary resolves to the pole cell directly.
func searchRow(lat, lng grid.Unit, orig Code, edgeTable [10][10]Action, poleIndex int64) (int64, error) {
	if lat >= grid.NorthPoleEdge || lat < grid.SouthPoleEdge {
		return poleIndex, nil
	}

	c, err := cell.FromUnits(lat, lng)
	if err != nil {
		return 0, err
	}
	code, err := PositionCode(c, lat, lng)
	if err != nil {
		return 0, err
	}

	// The calling convention restricts which codes reach each edge table, so
	// a miss here means the shifted coordinate landed outside the shared
	// edge. Treated as no solution rather than assumed unreachable.
	switch edgeTable[orig][code] {
	case ActionStay:
		return c.Index, nil
	case ActionEast:
		return cell.EastIndex(c.Index)
	case ActionWest:
		return cell.WestIndex(c.Index)
	default:
		return 0, fmt.Errorf("%w: codes (%d, %d) off the shared edge", errs.ErrNoSolution, orig, code)
	}
}
