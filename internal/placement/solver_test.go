package placement

import (
	"testing"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestSolver() *Solver {
	return New(model.DefaultGeometry())
}

// obstaclesAt builds unlabeled zones with the default component safety.
func obstaclesAt(centers ...float64) []model.Obstacle {
	geo := model.DefaultGeometry()
	var obs []model.Obstacle
	for _, c := range centers {
		obs = append(obs, model.Obstacle{Center: c, Safety: geo.ComponentSafety})
	}
	return obs
}

func TestSolve_DefaultFrameNoObstacles(t *testing.T) {
	s := defaultTestSolver()

	pl, ok := s.Solve(2100, -25, nil)

	require.True(t, ok)
	assert.False(t, pl.Fallback)
	// PM1 anchored, PM4 at the bottom margin, PM2/PM3 spread at their
	// extremes
	assert.Equal(t, -25.0, pl.Position(1))
	assert.Equal(t, 177.5, pl.Position(2))
	assert.Equal(t, 1832.5, pl.Position(3))
	assert.Equal(t, 2040.0, pl.Position(4))
}

func TestSolve_ClearancesHoldOnDefaultFrame(t *testing.T) {
	s := defaultTestSolver()
	geo := s.Geometry

	pl, ok := s.Solve(2100, -25, nil)
	require.True(t, ok)

	for i := 1; i <= 3; i++ {
		gap := pl.Position(i+1) - pl.Position(i)
		assert.GreaterOrEqual(t, gap, geo.MinDistance(i, i+1),
			"PM%d-PM%d gap too small", i, i+1)
	}
}

func TestSolve_InvalidHeight(t *testing.T) {
	s := defaultTestSolver()

	_, ok := s.Solve(0, -25, nil)
	assert.False(t, ok)

	_, ok = s.Solve(-100, -25, nil)
	assert.False(t, ok)
}

func TestSolve_DegenerateSpanFallsBack(t *testing.T) {
	// A frame too short for even PM2's clearance leaves no span at all
	s := defaultTestSolver()

	pl, ok := s.Solve(200, -25, nil)

	require.True(t, ok)
	assert.True(t, pl.Fallback)
	assert.Equal(t, -25.0, pl.Position(1))
	assert.Equal(t, 177.5, pl.Position(2))
	assert.Equal(t, 335.0, pl.Position(3))
	assert.Equal(t, 542.5, pl.Position(4))
}

func TestSolve_MinimumFrameWithStandardComponentsFallsBack(t *testing.T) {
	// On an 840mm frame the three auto hinges and the lock blanket the
	// whole span, so the solver falls back to minimum clearances from PM1.
	s := defaultTestSolver()

	hinges := AutoHingePositions(840, 3)
	require.Equal(t, []float64{150, 346, 640}, hinges)

	obs := obstaclesAt(1050, hinges[0], hinges[1], hinges[2])
	pl, ok := s.Solve(840, -25, obs)

	require.True(t, ok)
	assert.True(t, pl.Fallback)
	assert.Equal(t, [4]float64{-25, 177.5, 335, 542.5}, pl.PM)
}

func TestSolve_BottomObstacleTrimsPM4(t *testing.T) {
	// A hinge near the frame bottom blocks PM4's preferred spot. The
	// leftover range below it is too small, so PM4 moves above the zone.
	s := defaultTestSolver()

	pl, ok := s.Solve(2100, -25, obstaclesAt(1800))

	require.True(t, ok)
	assert.False(t, pl.Fallback)
	assert.Equal(t, 1630.0, pl.Position(4))
	assert.Equal(t, 1422.5, pl.Position(3))
	// The shift keeps the obstacle clearance intact
	assert.GreaterOrEqual(t, 1800-pl.Position(4), 170.0)
}

func TestSolve_PM3SnapsOutOfBlockedZone(t *testing.T) {
	// An obstacle at 1750 swallows PM3's preferred 1832.5 spot but leaves
	// a usable range below the zone and exactly 120mm above it. PM4 keeps
	// the top of the frame, PM3 snaps to the end of the lower range.
	s := defaultTestSolver()

	pl, ok := s.Solve(2100, -25, obstaclesAt(1750))

	require.True(t, ok)
	assert.False(t, pl.Fallback)
	assert.Equal(t, 2040.0, pl.Position(4))
	assert.Equal(t, 1580.0, pl.Position(3))
	assert.Equal(t, 177.5, pl.Position(2))
}

func TestSolve_FullJobLayout(t *testing.T) {
	// Realistic job: 2100mm frame, lock at 1050, three auto hinges. PM2
	// snaps past the top hinge zone, PM4 clears the bottom hinge zone.
	s := defaultTestSolver()

	hinges := AutoHingePositions(2100, 3)
	require.Equal(t, []float64{150, 810, 1800}, hinges)

	obs := obstaclesAt(1050, hinges[0], hinges[1], hinges[2])
	pl, ok := s.Solve(2100, -25, obs)

	require.True(t, ok)
	assert.False(t, pl.Fallback)
	assert.Equal(t, [4]float64{-25, 320, 1422.5, 1630}, pl.PM)

	// The layout it produced passes its own validation
	result := s.Validate(2100, pl, obs)
	assert.True(t, result.OK(), "violations: %v", result.Violations)
}

func TestSolve_CenteringRevertsToMinimumOffsets(t *testing.T) {
	// Five zones block everything between 300 and 1920, leaving one
	// narrow range at each end of the span. PM2 keeps the top range,
	// PM3's snap target is the same range's end and the centered pair
	// falls into the blocked middle, so both revert to the stacked
	// minimum offsets from PM1.
	s := defaultTestSolver()

	pl, ok := s.Solve(2100, -25, obstaclesAt(470, 810, 1150, 1490, 1750))

	require.True(t, ok)
	assert.False(t, pl.Fallback)
	assert.Equal(t, [4]float64{-25, 177.5, 335, 2040}, pl.PM)
}

func TestSolve_Idempotent(t *testing.T) {
	s := defaultTestSolver()
	obs := obstaclesAt(1050, 150, 810, 1800)

	first, ok1 := s.Solve(2100, -25, obs)
	second, ok2 := s.Solve(2100, -25, obs)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second, "same inputs must give the same layout")
}

func TestSolve_ObstacleOutsideSpanIgnored(t *testing.T) {
	// A lock parked below the frame bottom cannot influence the layout
	s := defaultTestSolver()

	withOutside, ok := s.Solve(2100, -25, obstaclesAt(2400))
	require.True(t, ok)
	without, ok := s.Solve(2100, -25, nil)
	require.True(t, ok)

	assert.Equal(t, without.PM, withOutside.PM)
}

func TestSolve_ReportsUsableRanges(t *testing.T) {
	s := defaultTestSolver()

	pl, ok := s.Solve(2100, -25, obstaclesAt(1050))
	require.True(t, ok)

	require.Len(t, pl.Ranges, 2)
	assert.Equal(t, model.Range{Start: 177.5, End: 880}, pl.Ranges[0])
	assert.Equal(t, model.Range{Start: 1220, End: 2040}, pl.Ranges[1])
}

func TestFreeRanges_ObstacleCoveringSpanStart(t *testing.T) {
	obs := []model.Obstacle{{Center: 200, Safety: 170}} // zone 30..370

	ranges := freeRanges(177.5, 2040, obs)

	require.Len(t, ranges, 1)
	assert.Equal(t, model.Range{Start: 370, End: 2040}, ranges[0])
}

func TestFreeRanges_OverlappingObstaclesMerge(t *testing.T) {
	obs := obstaclesAt(600, 800) // zones 430..770 and 630..970 overlap

	ranges := freeRanges(177.5, 2040, obs)

	require.Len(t, ranges, 2)
	assert.Equal(t, model.Range{Start: 177.5, End: 430}, ranges[0])
	assert.Equal(t, model.Range{Start: 970, End: 2040}, ranges[1])
}
