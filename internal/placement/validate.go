package placement

import (
	"math"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Validate checks a placement against the clearance rules, the obstacle
// zones and the frame boundary. Every violated rule is recorded and the
// offending machining points are flagged individually, so a caller can
// mark exactly the fields that need attention.
func (s *Solver) Validate(frameHeight float64, pl model.Placement, obstacles []model.Obstacle) model.ValidationResult {
	geo := s.Geometry
	var result model.ValidationResult

	// Consecutive machining points must keep their slot clearances.
	// Both ends of a violated pair are flagged.
	for i := 1; i <= 3; i++ {
		required := geo.MinDistance(i, i+1)
		gap := pl.Position(i+1) - pl.Position(i)
		if gap < required {
			result.PMErrors[i-1] = true
			result.PMErrors[i] = true
			result.Violations = append(result.Violations, model.Violation{
				Kind:     model.ViolationClearance,
				PM:       i,
				Other:    i + 1,
				Distance: gap,
				Required: required,
			})
		}
	}

	// Every machining point must stay clear of every lock and hinge zone
	for i := 1; i <= 4; i++ {
		for _, o := range obstacles {
			dist := math.Abs(pl.Position(i) - o.Center)
			if dist < o.Safety {
				result.PMErrors[i-1] = true
				result.Violations = append(result.Violations, model.Violation{
					Kind:     model.ViolationObstacle,
					PM:       i,
					Obstacle: o.Label,
					Distance: dist,
					Required: o.Safety,
				})
			}
		}
	}

	// PM4 may not run past the bottom margin
	if frameHeight > 0 {
		limit := frameHeight - geo.TopMargin()
		if pl.Position(4) > limit {
			result.PMErrors[3] = true
			result.Violations = append(result.Violations, model.Violation{
				Kind:     model.ViolationBoundary,
				PM:       4,
				Distance: pl.Position(4),
				Required: limit,
			})
		}
	}

	return result
}
