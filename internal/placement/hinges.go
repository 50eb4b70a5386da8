package placement

import "github.com/piwi3910/FrameWizard/internal/model"

// AutoHingePositions distributes count hinges over the frame height,
// measured from the frame top. The top hinge sits at 150 mm, the bottom
// one at 1800 mm on full-height frames or 200 mm above the bottom on
// shorter ones. Middle hinges use the workshop's 1.5x spacing ratio so
// gaps widen towards the bottom. Returns nil for an unusable height or
// count; positions are rounded to 0.1 mm.
func AutoHingePositions(frameHeight float64, count int) []float64 {
	if frameHeight <= 0 || count <= 0 || count > 4 {
		return nil
	}

	const top = 150.0
	last := 1800.0
	if frameHeight < 2000 {
		last = frameHeight - 200
	}

	var positions []float64
	switch count {
	case 1:
		positions = []float64{frameHeight / 2}
	case 2:
		positions = []float64{top, last}
	case 3:
		// Middle placed so the lower gap is 1.5x the upper gap
		middle := top + (last-top)/2.5
		positions = []float64{top, middle, last}
	case 4:
		// Cascading 1.5x ratios: d, 1.5d, 2.25d
		d := (last - top) / 4.75
		positions = []float64{top, top + d, top + 2.5*d, last}
	}

	for i := range positions {
		positions[i] = round1(positions[i])
	}
	return positions
}

// AutoLockPosition returns the catalog drop-in position for the lock case.
func AutoLockPosition(geo model.Geometry) float64 {
	return geo.LockPosition
}

// ApplyAutoHinges activates count hinge slots on the project and fills
// them with the computed positions.
func ApplyAutoHinges(p *model.Project, count int) {
	positions := AutoHingePositions(p.Frame.Height, count)
	p.SetHingeCount(len(positions))
	for i, pos := range positions {
		p.Hinges[i].Position = pos
	}
}
