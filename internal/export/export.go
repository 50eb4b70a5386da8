// Package export renders machining job artifacts: PDF job sheets,
// QR-coded program labels, parameter workbooks, DXF elevation drawings
// and HTML layout charts.
package export

import (
	"github.com/piwi3910/FrameWizard/internal/model"
)

// Job bundles everything the exporters draw from: the project, its
// solved placement, the validation outcome, the machine setup and the
// generated programs.
type Job struct {
	Project    *model.Project
	Placement  model.Placement
	Validation model.ValidationResult
	Setup      model.MachineSetup
	Programs   []model.GeneratedProgram
}

// Obstacles returns the lock and hinge keep-clear zones of the job.
func (j Job) Obstacles() []model.Obstacle {
	return j.Project.Obstacles(j.Setup.Geometry.ComponentSafety)
}

// axisBounds returns the drawn extent along the frame axis. The lower
// bound reaches above the top datum when a machining point slot does;
// the upper bound is the frame height.
func axisBounds(j Job) (lo, hi float64) {
	hi = j.Project.Frame.Height
	for i := 1; i <= 4; i++ {
		edge := j.Placement.Position(i) - j.Setup.Geometry.PM[i-1].Width/2
		if edge < lo {
			lo = edge
		}
	}
	return lo, hi
}

// containingRange describes the free range a position was placed in,
// or "-" when it lies outside every range (PM1 anchors above the
// datum and never comes from a range).
func containingRange(j Job, pos float64) string {
	for _, r := range j.Placement.Ranges {
		if r.Contains(pos) {
			return model.FormatNumber(r.Start) + " to " + model.FormatNumber(r.End)
		}
	}
	return "-"
}
