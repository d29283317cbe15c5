package grid

import "sort"

// Grid-wide index constants derived from the band table.
const (
	// Divisor is the full circle in grid units; every band's longitude
	// multiplier k divides it exactly, which keeps cell edges aligned with
	// the external location-code lattice.
	Divisor = int64(LngWrap)

	bandCount = 263
)

// Band is a contiguous run of latitude steps that share one longitude
// multiplier k, together with the global index range its cells occupy.
// The 263 bands partition step ∈ [1, 480000] and index ∈ [0, 300626092559]
// with no gaps or overlaps; the first and last bands are the single-row
// polar caps.
type Band struct {
	K          int32 // longitude multiplier: grid units per cell width
	StepStart  int32 // first step of the band (northernmost)
	StepEnd    int32 // last step of the band (southernmost)
	IndexStart int64 // index of the band's first (north-west) cell
	IndexEnd   int64 // index of the band's last (south-east) cell
}

// CellsPerRow returns the number of cells in each of the band's rows.
func (b Band) CellsPerRow() int64 {
	return Divisor / int64(b.K)
}

type bandSeed struct {
	k          int32
	stepStart  int32
	indexStart int64
}

// bands is the derived, immutable band table. It is built once at package
// init and only read afterwards, so all lookups are safe for concurrent use.
var bands = buildBands()

func buildBands() [bandCount]Band {
	var out [bandCount]Band
	for i, s := range bandSeeds {
		out[i] = Band{
			K:          s.k,
			StepStart:  s.stepStart,
			IndexStart: s.indexStart,
		}
		if i+1 < bandCount {
			out[i].StepEnd = bandSeeds[i+1].stepStart - 1
			out[i].IndexEnd = bandSeeds[i+1].indexStart - 1
		} else {
			// South pole: a single-row, single-cell band.
			out[i].StepEnd = s.stepStart
			out[i].IndexEnd = s.indexStart
		}
	}

	return out
}

// MaxIndex is the largest valid cell index (the south pole cell).
func MaxIndex() int64 {
	return bands[bandCount-1].IndexEnd
}

// BandForStep locates the band containing the given step via binary search.
// Exactly one band matches every step in [1, 480000]; ok is false only for
// out-of-range input.
func BandForStep(step int32) (Band, bool) {
	if step < MinStep || step > MaxStep {
		return Band{}, false
	}

	i := sort.Search(bandCount, func(i int) bool {
		return bands[i].StepEnd >= step
	})
	if i == bandCount || bands[i].StepStart > step {
		return Band{}, false
	}

	return bands[i], true
}

// BandForIndex locates the band containing the given cell index via binary
// search. ok is false only for indexes outside [0, MaxIndex()].
func BandForIndex(index int64) (Band, bool) {
	if index < 0 || index > MaxIndex() {
		return Band{}, false
	}

	i := sort.Search(bandCount, func(i int) bool {
		return bands[i].IndexEnd >= index
	})
	if i == bandCount || bands[i].IndexStart > index {
		return Band{}, false
	}

	return bands[i], true
}

// Bands returns a copy of the full band table, north to south. It exists for
// auditing and tests; lookups should go through BandForStep/BandForIndex.
func Bands() []Band {
	out := make([]Band, bandCount)
	copy(out, bands[:])

	return out
}
