package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// Layer names of the elevation drawing.
const (
	layerFrame    = "FRAME"
	layerPM       = "PM"
	layerHardware = "HARDWARE"
	layerSafety   = "SAFETY"
	layerNotes    = "NOTES"
)

// ExportDXF writes the frame elevation as a DXF drawing in real
// millimetres: X along the frame axis from the top datum, Y across the
// beam. Machining slots, hardware marks and keep-clear zones sit on
// separate layers so CAM tooling can toggle them.
func ExportDXF(path string, job Job) error {
	if job.Project == nil {
		return fmt.Errorf("no project to export")
	}

	p := job.Project
	frameH := p.Frame.Height
	frameW := p.Frame.Width

	d := dxf.NewDrawing()

	// Frame outline
	if _, err := d.AddLayer(layerFrame, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("layer %s: %w", layerFrame, err)
	}
	d.LwPolyline(true,
		[]float64{0, 0},
		[]float64{frameH, 0},
		[]float64{frameH, frameW},
		[]float64{0, frameW})

	// Machining point slots
	if _, err := d.AddLayer(layerPM, color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("layer %s: %w", layerPM, err)
	}
	for i := 1; i <= 4; i++ {
		pos := job.Placement.Position(i)
		half := job.Setup.Geometry.PM[i-1].Width / 2
		y1 := frameW * 0.2
		y2 := frameW * 0.8
		d.LwPolyline(true,
			[]float64{pos - half, y1},
			[]float64{pos + half, y1},
			[]float64{pos + half, y2},
			[]float64{pos - half, y2})
	}

	// Lock and hinge center marks, extended past the beam edges
	if _, err := d.AddLayer(layerHardware, color.Blue, table.LT_DASHDOT, true); err != nil {
		return fmt.Errorf("layer %s: %w", layerHardware, err)
	}
	overshoot := frameW * 0.25
	if p.Lock.Active && p.Lock.Position > 0 {
		d.Line(p.Lock.Position, -overshoot, 0, p.Lock.Position, frameW+overshoot, 0)
		// cylinder bore, distinguishes the lock from hinge marks
		d.Circle(p.Lock.Position, frameW/2, 0, frameW*0.3)
	}
	for _, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			d.Line(h.Position, -overshoot, 0, h.Position, frameW+overshoot, 0)
		}
	}

	// Keep-clear zone edges
	if _, err := d.AddLayer(layerSafety, color.Red, table.LT_HIDDEN, true); err != nil {
		return fmt.Errorf("layer %s: %w", layerSafety, err)
	}
	for _, obstacle := range job.Obstacles() {
		start, end := obstacle.Interval()
		d.Line(start, 0, 0, start, frameW, 0)
		d.Line(end, 0, 0, end, frameW, 0)
	}

	// Annotations
	if _, err := d.AddLayer(layerNotes, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("layer %s: %w", layerNotes, err)
	}
	textH := frameW * 0.25
	for i := 1; i <= 4; i++ {
		pos := job.Placement.Position(i)
		half := job.Setup.Geometry.PM[i-1].Width / 2
		label := fmt.Sprintf("PM%d %s", i, model.FormatNumber(pos))
		d.Text(label, pos-half, frameW+textH, 0, textH)
	}
	if p.Lock.Active && p.Lock.Position > 0 {
		d.Text(fmt.Sprintf("LOCK %s", model.FormatNumber(p.Lock.Position)),
			p.Lock.Position, -2*textH, 0, textH)
	}
	for i, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			d.Text(fmt.Sprintf("H%d %s", i+1, model.FormatNumber(h.Position)),
				h.Position, -2*textH, 0, textH)
		}
	}
	title := fmt.Sprintf("%s  FRAME %s x %s  DOOR %s  %s",
		p.Name, model.FormatNumber(frameH), model.FormatNumber(frameW),
		model.FormatNumber(p.Frame.DoorWidth), p.Orientation)
	d.Text(title, 0, frameW+3*textH, 0, textH*1.4)

	return d.SaveAs(path)
}
