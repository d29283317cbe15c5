package cell

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/WujiKey/F9Grid/errs"
	"github.com/WujiKey/F9Grid/grid"
)

func TestFromStrings_KnownCells(t *testing.T) {
	tests := []struct {
		name      string
		lat, lng  string
		wantIndex int64
		wantK     int32
		wantStep  int32
	}{
		{"equator origin", "0", "0", 150312086280, 3, 240000},
		{"taipei", "25.033964", "121.564468", 86225690451, 3, 173243},
		{"sydney", "-33.856784", "151.215297", 235379428710, 4, 330285},
		{"portland", "45.5", "-122.75", 42891440780, 4, 118667},
		{"near north pole", "89.99", "0", 2162, 18000, 27},
		{"south cap boundary excluded", "-89.999625", "0", 300626092549, 288000, 479999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromStrings(tt.lat, tt.lng)
			require.NoError(t, err)
			require.Equal(t, tt.wantIndex, c.Index)
			require.Equal(t, tt.wantK, c.K)
			require.Equal(t, tt.wantStep, c.Step)
			require.False(t, c.IsPole)
		})
	}
}

func TestFromStrings_Poles(t *testing.T) {
	t.Run("north pole at 90", func(t *testing.T) {
		for _, lng := range []string{"0", "45.5", "-180", "179.99"} {
			c, err := FromStrings("90", lng)
			require.NoError(t, err)
			require.Equal(t, NorthPoleIndex, c.Index)
			require.True(t, c.IsPole)
		}
	})

	t.Run("cap boundary included on north side", func(t *testing.T) {
		c, err := FromStrings("89.999625", "12")
		require.NoError(t, err)
		require.Equal(t, NorthPoleIndex, c.Index)
	})

	t.Run("south pole below boundary", func(t *testing.T) {
		c, err := FromStrings("-89.99975", "0")
		require.NoError(t, err)
		require.Equal(t, SouthPoleIndex, c.Index)
		require.True(t, c.IsPole)

		c, err = FromStrings("-90", "31")
		require.NoError(t, err)
		require.Equal(t, SouthPoleIndex, c.Index)
	})
}

func TestFromStrings_LongitudeWraps(t *testing.T) {
	origin, err := FromStrings("0", "0")
	require.NoError(t, err)

	for _, lng := range []string{"360", "-360", "720", "360000000000000000", "-360000000000000000"} {
		c, err := FromStrings("0", lng)
		require.NoError(t, err)
		require.Equal(t, origin.Index, c.Index, "lng %s", lng)
	}

	east, err := FromStrings("0", "180")
	require.NoError(t, err)
	west, err := FromStrings("0", "-180")
	require.NoError(t, err)
	require.Equal(t, east.Index, west.Index)
	require.Equal(t, int64(150312566280), east.Index)
}

func TestFromStrings_InvalidInput(t *testing.T) {
	_, err := FromStrings("justnorth", "0")
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)

	_, err = FromStrings("0", "")
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)

	_, err = FromStrings("90.000001", "0")
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)

	_, err = FromStrings("-91", "0")
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
}

func TestFromIndex_InvalidInput(t *testing.T) {
	_, err := FromIndex(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = FromIndex(SouthPoleIndex + 1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestSouthPoleIndex_MatchesBandTable(t *testing.T) {
	require.Equal(t, SouthPoleIndex, grid.MaxIndex())
}

func TestRoundTrip_IndexToCellToIndex(t *testing.T) {
	// Probe every band at its corners plus interior rows; the forward codec
	// applied to the reconstructed south-west corner must return the same
	// index.
	for _, b := range grid.Bands() {
		cpr := b.CellsPerRow()
		probes := []int64{
			b.IndexStart,
			b.IndexStart + cpr - 1,
			b.IndexEnd,
			b.IndexStart + (b.IndexEnd-b.IndexStart)/2,
		}
		for _, index := range probes {
			c, err := FromIndex(index)
			require.NoError(t, err)
			require.Equal(t, index, c.Index)

			if c.IsPole {
				continue
			}

			again, err := FromUnits(c.South, c.West)
			require.NoError(t, err)
			require.Equal(t, index, again.Index, "band k=%d", b.K)
			require.Equal(t, c, again)
		}
	}
}

func TestRoundTrip_CoordinateToCellBoundaries(t *testing.T) {
	// Boundaries computed via the forward codec and via the inverse codec
	// must be identical for the same cell.
	coords := [][2]string{
		{"0", "0"},
		{"25.033964", "121.564468"},
		{"-33.856784", "151.215297"},
		{"45.5", "-122.75"},
		{"0.000125", "179.999875"},
		{"-89.999625", "0"},
		{"89.9995", "-1"},
	}

	for _, co := range coords {
		c, err := FromStrings(co[0], co[1])
		require.NoError(t, err)

		d, err := FromIndex(c.Index)
		require.NoError(t, err)
		require.Equal(t, c, d, "(%s, %s)", co[0], co[1])
	}
}

func TestIndex_MonotonicEastward(t *testing.T) {
	// within one row the index increases by 1 per cell width eastward
	c, err := FromStrings("0", "0")
	require.NoError(t, err)

	east, err := FromUnits(c.South, c.West+grid.Unit(c.K))
	require.NoError(t, err)
	require.Equal(t, c.Index+1, east.Index)
}

func TestIndex_MonotonicSouthward(t *testing.T) {
	// the last cell of a step precedes the first cell of the next step
	for _, step := range []int32{2, 27, 156411, 240000, 323590, 479998} {
		b, ok := grid.BandForStep(step)
		require.True(t, ok)

		south, _ := grid.StepLatRange(step)
		last, err := FromUnits(south, -1) // westmost negative unit = east end of row
		require.NoError(t, err)

		nextSouth, _ := grid.StepLatRange(step + 1)
		first, err := FromUnits(nextSouth, 0)
		require.NoError(t, err)

		require.Equal(t, b.K, last.K)
		require.Less(t, last.Index, first.Index, "step %d", step)
	}
}

func TestCellBoundaries_Decimal(t *testing.T) {
	c, err := FromStrings("0", "0")
	require.NoError(t, err)

	require.True(t, c.LatSouth().Equal(decimal.Zero))
	require.True(t, c.LatNorth().Equal(decimal.RequireFromString("0.000375")))
	require.True(t, c.LngWest().Equal(decimal.Zero))
	require.True(t, c.LngEast().Equal(decimal.RequireFromString("0.000375")))

	lat, lng := c.Center()
	require.True(t, lat.Equal(decimal.RequireFromString("0.0001875")))
	require.True(t, lng.Equal(decimal.RequireFromString("0.0001875")))
}

func TestCellBoundaries_AntimeridianStraddle(t *testing.T) {
	// a cell whose west edge is the last multiple of k below 180° keeps a
	// half-open range ending at or past +180°
	c, err := FromStrings("0.000125", "179.999875")
	require.NoError(t, err)
	require.Equal(t, grid.Unit(1439997), c.West)
	require.Equal(t, grid.Unit(1440000), c.East)
	require.True(t, c.LngEast().Equal(decimal.New(180, 0)))

	across, err := FromStrings("0.000125", "-180")
	require.NoError(t, err)
	require.Equal(t, grid.Unit(-1440000), across.West)
	require.Equal(t, c.Index+1, across.Index)
}

func TestPoleCell_Shape(t *testing.T) {
	north, err := FromIndex(NorthPoleIndex)
	require.NoError(t, err)
	require.True(t, north.IsPole)
	require.Equal(t, grid.NorthPoleEdge, north.South)
	require.Equal(t, grid.LatMax, north.North)

	lat, lng := north.Center()
	require.True(t, lat.Equal(decimal.New(90, 0)))
	require.True(t, lng.Equal(decimal.Zero))

	south, err := FromIndex(SouthPoleIndex)
	require.NoError(t, err)
	require.True(t, south.IsPole)
	require.Equal(t, -grid.LatMax, south.South)
	require.Equal(t, grid.SouthPoleEdge, south.North)
}

func BenchmarkFromStrings(b *testing.B) {
	for b.Loop() {
		_, _ = FromStrings("25.033964", "121.564468")
	}
}

func BenchmarkFromUnits(b *testing.B) {
	for b.Loop() {
		_, _ = FromUnits(200271, 972515)
	}
}

func BenchmarkFromIndex(b *testing.B) {
	for b.Loop() {
		_, _ = FromIndex(86225690451)
	}
}
