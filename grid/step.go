package grid

// Latitude step constants. A step is a 1-based row number counted from the
// north pole; every row is exactly StepHeight grid units tall.
const (
	StepHeight = 3 // row height in grid units (0.000375°)

	MinStep     int32 = 1      // north pole row
	EquatorStep int32 = 240000 // row whose south edge is the equator
	MaxStep     int32 = 480000 // south pole row

	// NorthPoleEdge is the south boundary of the north polar cap (89.999625°).
	// Grid latitudes at or above it belong to the north pole cell.
	NorthPoleEdge = LatMax - StepHeight

	// SouthPoleEdge is the north boundary of the south polar cap (-89.999625°).
	// Grid latitudes strictly below it belong to the south pole cell; the
	// boundary itself is excluded.
	SouthPoleEdge = -LatMax + StepHeight
)

// StepForLat resolves the latitude row containing the given grid latitude.
// The result is clamped to [MinStep, MaxStep], so the caller is responsible
// for routing polar-cap latitudes to the pole cells first.
func StepForLat(lat Unit) int32 {
	// ceil((LatMax - lat) / StepHeight) with non-negative numerator.
	n := int64(LatMax - lat)
	if n < 0 {
		n = 0
	}
	step := (n + StepHeight - 1) / StepHeight

	if step < int64(MinStep) {
		return MinStep
	}
	if step > int64(MaxStep) {
		return MaxStep
	}

	return int32(step)
}

// StepLatRange returns the half-open latitude range [south, north) of a step
// in grid units. It is the exact inverse of StepForLat: an O(1) affine map,
// no table lookup involved.
func StepLatRange(step int32) (south, north Unit) {
	delta := int64(step) - int64(EquatorStep)
	south = Unit(-delta * StepHeight)
	north = south + StepHeight

	return south, north
}
