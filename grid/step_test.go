package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepForLat(t *testing.T) {
	tests := []struct {
		lat  Unit
		want int32
	}{
		{720000, 1},   // north pole, clamped into row 1
		{719997, 1},   // cap boundary
		{719996, 2},   // one unit below the cap
		{719994, 2},   // bottom of row 2
		{3, 239999},   // just north of the equator row
		{2, 240000},   // equator row top unit
		{0, 240000},   // equator itself
		{-1, 240001},
		{-719997, 479999},
		{-720000, 480000}, // south pole
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, StepForLat(tt.lat), "StepForLat(%d)", tt.lat)
	}
}

func TestStepLatRange(t *testing.T) {
	south, north := StepLatRange(EquatorStep)
	require.Equal(t, Unit(0), south)
	require.Equal(t, Unit(3), north)

	south, north = StepLatRange(MinStep)
	require.Equal(t, NorthPoleEdge, south)
	require.Equal(t, LatMax, north)

	south, north = StepLatRange(MaxStep)
	require.Equal(t, -LatMax, south)
	require.Equal(t, SouthPoleEdge, north)
}

func TestStepLatRange_InvertsStepForLat(t *testing.T) {
	for step := int32(1); step <= MaxStep; step += 997 {
		south, north := StepLatRange(step)
		require.Equal(t, Unit(3), north-south, "step %d height", step)

		// every unit latitude in the row maps back to the step
		require.Equal(t, step, StepForLat(south), "step %d south edge", step)
		require.Equal(t, step, StepForLat(north-1), "step %d top unit", step)
	}
}

func TestStepRows_PartitionLatitudeDomain(t *testing.T) {
	// adjacent steps share exactly one boundary
	for step := int32(1); step < MaxStep; step += 1009 {
		_, north := StepLatRange(step + 1)
		south, _ := StepLatRange(step)
		require.Equal(t, south, north, "steps %d/%d boundary", step, step+1)
	}
}
