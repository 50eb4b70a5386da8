package placement

import (
	"math"
	"sort"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Solver computes machining-point positions along the frame axis.
type Solver struct {
	Geometry model.Geometry
}

func New(geo model.Geometry) *Solver {
	return &Solver{Geometry: geo}
}

// Solve places the four machining points for a frame. PM1 stays at
// pm1, PM4 goes as far down as the frame and the obstacle zones allow,
// and PM2/PM3 are spread between them. The returned ok is false when
// the frame height is unusable; a degenerate span or fully blocked
// frame yields the minimum-clearance fallback layout instead, marked
// on the placement. Positions are rounded to 0.1 mm.
func (s *Solver) Solve(frameHeight, pm1 float64, obstacles []model.Obstacle) (model.Placement, bool) {
	geo := s.Geometry
	if frameHeight <= 0 {
		return model.Placement{}, false
	}

	// Usable span for PM2..PM4: below PM1 plus its clearance, above the
	// bottom margin PM4's slot needs.
	spanStart := pm1 + geo.MinDistance(1, 2)
	spanEnd := frameHeight - geo.TopMargin()
	if spanEnd <= spanStart {
		return s.fallback(pm1), true
	}

	ranges := freeRanges(spanStart, spanEnd, obstacles)

	// Drop ranges too small to host a machining point
	usable := ranges[:0]
	for _, r := range ranges {
		if r.Size() >= geo.MinRangeSize {
			usable = append(usable, r)
		}
	}
	if len(usable) == 0 {
		return s.fallback(pm1), true
	}

	pm4 := usable[len(usable)-1].End
	pm2, pm3 := s.spreadPM23(pm1, pm4, usable)

	return model.Placement{
		PM:     [4]float64{round1(pm1), round1(pm2), round1(pm3), round1(pm4)},
		Ranges: usable,
	}, true
}

// fallback stacks the machining points at their minimum clearances from
// PM1 when no valid layout exists.
func (s *Solver) fallback(pm1 float64) model.Placement {
	geo := s.Geometry
	p := model.Placement{Fallback: true}
	p.PM[0] = round1(pm1)
	p.PM[1] = round1(p.PM[0] + geo.MinDistance(1, 2))
	p.PM[2] = round1(p.PM[1] + geo.MinDistance(2, 3))
	p.PM[3] = round1(p.PM[2] + geo.MinDistance(3, 4))
	return p
}

// spreadPM23 finds positions for PM2 and PM3 between the fixed outer
// points. It starts from the extremes (PM2 close to PM1, PM3 close to
// PM4), snaps each into the free ranges when it landed in a blocked
// zone, and as a last resort centers both around the midpoint.
func (s *Solver) spreadPM23(pm1, pm4 float64, ranges []model.Range) (float64, float64) {
	geo := s.Geometry
	min12 := geo.MinDistance(1, 2)
	min23 := geo.MinDistance(2, 3)
	min34 := geo.MinDistance(3, 4)

	pm2 := pm1 + min12
	pm3 := pm4 - min34

	// Frame too short to spread: stack from PM1 instead
	if pm3-pm2 < min23 {
		return pm2, pm2 + min23
	}

	best2, best3 := pm2, pm3

	if !inRanges(pm2, ranges) {
		for _, r := range ranges {
			if r.Start >= pm1+min12 {
				best2 = r.Start
				break
			}
		}
	}
	if !inRanges(pm3, ranges) {
		for i := len(ranges) - 1; i >= 0; i-- {
			if ranges[i].End <= pm4-min34 {
				best3 = ranges[i].End
				break
			}
		}
	}

	// Snapping may have pushed them together. Center the pair at the
	// minimum clearance; when even that lands in a blocked zone, give
	// up on the ranges and stack from PM1.
	if best3-best2 < min23 {
		mid := (best2 + best3) / 2
		best2 = mid - min23/2
		best3 = mid + min23/2
		if !inRanges(best2, ranges) || !inRanges(best3, ranges) {
			best2 = pm1 + min12
			best3 = best2 + min23
		}
	}
	return best2, best3
}

// freeRanges subtracts the obstacle zones from the span. Obstacles are
// clamped to the span first; zones outside it contribute nothing.
func freeRanges(start, end float64, obstacles []model.Obstacle) []model.Range {
	sorted := make([]model.Obstacle, len(obstacles))
	copy(sorted, obstacles)
	sort.Slice(sorted, func(i, j int) bool {
		si, _ := sorted[i].Interval()
		sj, _ := sorted[j].Interval()
		return si < sj
	})

	var ranges []model.Range
	current := start
	for _, o := range sorted {
		os, oe := o.Interval()
		os = math.Max(os, start)
		oe = math.Min(oe, end)
		if os >= end || oe <= start {
			continue
		}
		if os > current {
			ranges = append(ranges, model.Range{Start: current, End: os})
		}
		if oe > current {
			current = oe
		}
	}
	if current < end {
		ranges = append(ranges, model.Range{Start: current, End: end})
	}
	return ranges
}

// inRanges reports whether pos falls inside any free range.
func inRanges(pos float64, ranges []model.Range) bool {
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// round1 rounds to one decimal, the resolution positions are applied at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
