package gcode

import (
	"fmt"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// CheckTravel parses a generated program and verifies every commanded
// position stays inside the machine's travel envelope. At most one
// violation per axis is reported, carrying the worst excursion, so a
// program that runs off an axis repeatedly still reads as one problem.
func CheckTravel(program model.GeneratedProgram, travel model.Travel) []model.TravelViolation {
	moves := Parse(program.Code)

	worst := map[string]model.TravelViolation{}
	record := func(axis string, value, lo, hi float64) {
		var excess float64
		switch {
		case value < lo:
			excess = lo - value
		case value > hi:
			excess = value - hi
		default:
			return
		}
		if v, ok := worst[axis]; ok && v.Excess >= excess {
			return
		}
		worst[axis] = model.TravelViolation{
			Program: program.FileName,
			Axis:    axis,
			Value:   value,
			Min:     lo,
			Max:     hi,
			Excess:  excess,
		}
	}

	for _, m := range moves {
		record("X", m.ToX, travel.MinX, travel.MaxX)
		record("Y", m.ToY, travel.MinY, travel.MaxY)
		record("Z", m.ToZ, travel.MinZ, travel.MaxZ)
	}

	var out []model.TravelViolation
	for _, axis := range []string{"X", "Y", "Z"} {
		if v, ok := worst[axis]; ok {
			out = append(out, v)
		}
	}
	return out
}

// CheckPrograms runs the travel check over a whole program set.
func CheckPrograms(programs []model.GeneratedProgram, travel model.Travel) []model.TravelViolation {
	var out []model.TravelViolation
	for _, p := range programs {
		out = append(out, CheckTravel(p, travel)...)
	}
	return out
}

// FormatTravelWarnings converts violations to human-readable warnings.
func FormatTravelWarnings(violations []model.TravelViolation) []string {
	var warnings []string
	for _, v := range violations {
		warnings = append(warnings, fmt.Sprintf(
			"%s: %s reaches %.1f mm, envelope is %.1f to %.1f (%.1f mm outside)",
			v.Program, v.Axis, v.Value, v.Min, v.Max, v.Excess))
	}
	return warnings
}
