package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
)

// pmColor is an RGB fill for one machining point slot.
type pmColor struct {
	R, G, B int
}

// pmColors assigns each machining point a fixed color, shared with the
// elevation legend.
var pmColors = [4]pmColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	beamHeight   = 48.0 // drawn beam thickness; the cross axis is not to scale
)

// ExportPDF writes the job sheet: an elevation page showing the frame
// with machining points, keep-clear zones and hardware marks, followed
// by a summary page and a programs-and-machine page.
func ExportPDF(path string, job Job) error {
	if job.Project == nil {
		return fmt.Errorf("no project to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderElevationPage(pdf, job)

	pdf.AddPage()
	renderSummaryPage(pdf, job)

	pdf.AddPage()
	renderProgramsPage(pdf, job)

	return pdf.OutputFileAndClose(path)
}

// renderElevationPage draws the frame upright along the page width with
// every machining position annotated.
func renderElevationPage(pdf *fpdf.Fpdf, job Job) {
	p := job.Project

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: frame %s x %s mm, door %s mm (%s)",
		p.Name, model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width),
		model.FormatNumber(p.Frame.DoorWidth), p.Orientation)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	layout := "preferred"
	if job.Placement.Fallback {
		layout = "fallback (minimum clearances)"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Machining points: 4 | Hinges: %d | Controller: %s | Layout: %s",
		p.HingeCount(), job.Setup.Controller, layout)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale positions along the frame axis onto the page width
	axisLo, axisHi := axisBounds(job)
	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / (axisHi - axisLo)
	toX := func(pos float64) float64 {
		return marginLeft + (pos-axisLo)*scale
	}

	beamY := drawAreaTop + 6
	beamX := toX(0)
	beamW := axisHi * scale

	// Frame beam
	pdf.SetFillColor(226, 229, 233)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(beamX, beamY, beamW, beamHeight, "FD")

	// Top datum line
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.3)
	pdf.Line(beamX, beamY-3, beamX, beamY+beamHeight+3)

	drawSafetyZones(pdf, job, toX, beamY)
	drawMachiningPoints(pdf, job, toX, beamY, scale)
	drawHardwareMarks(pdf, job, toX, beamY)
	drawAxisAnnotations(pdf, job, toX, beamY, beamX, beamW)
	drawLegend(pdf, job, beamY+beamHeight+20)
}

// drawSafetyZones renders the hatched keep-clear bands around the lock
// and hinge positions.
func drawSafetyZones(pdf *fpdf.Fpdf, job Job, toX func(float64) float64, beamY float64) {
	frameH := job.Project.Frame.Height

	for _, obstacle := range job.Obstacles() {
		start, end := obstacle.Interval()
		start = math.Max(start, 0)
		end = math.Min(end, frameH)
		if end <= start {
			continue
		}

		zx := toX(start)
		zw := toX(end) - zx

		pdf.SetFillColor(255, 200, 200)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, beamY, zw, beamHeight, "FD")

		drawHatchPattern(pdf, zx, beamY, zw, beamHeight)

		if zw > 24 {
			pdf.SetFont("Helvetica", "B", 6)
			pdf.SetTextColor(180, 0, 0)
			labelW := pdf.GetStringWidth("KEEP CLEAR")
			pdf.SetXY(zx+(zw-labelW)/2, beamY+2)
			pdf.CellFormat(labelW, 4, "KEEP CLEAR", "", 0, "C", false, 0, "")
		}
	}

	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark it
// as excluded.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 5.0
	for d := spacing; d < w+h; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawMachiningPoints renders the PM slot rectangles centered on their
// solved positions.
func drawMachiningPoints(pdf *fpdf.Fpdf, job Job, toX func(float64) float64, beamY, scale float64) {
	slotH := beamHeight * 0.6
	slotY := beamY + (beamHeight-slotH)/2

	for i := 1; i <= 4; i++ {
		pos := job.Placement.Position(i)
		width := job.Setup.Geometry.PM[i-1].Width
		col := pmColors[i-1]

		px := toX(pos - width/2)
		pw := width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, slotY, pw, slotH, "FD")

		pdf.SetFont("Helvetica", "B", markFontSize(pw))
		pdf.SetTextColor(0, 0, 0)
		label := fmt.Sprintf("PM%d", i)
		labelW := pdf.GetStringWidth(label)
		if labelW < pw-2 {
			pdf.SetXY(px+(pw-labelW)/2, slotY+slotH/2-4)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}

		pdf.SetFont("Helvetica", "", markFontSize(pw))
		value := model.FormatNumber(pos)
		valueW := pdf.GetStringWidth(value)
		if valueW < pw-2 {
			pdf.SetXY(px+(pw-valueW)/2, slotY+slotH/2)
			pdf.CellFormat(valueW, 4, value, "", 0, "C", false, 0, "")
		}
	}
}

// drawHardwareMarks renders center lines for the lock and the active
// hinges with their labels above the beam.
func drawHardwareMarks(pdf *fpdf.Fpdf, job Job, toX func(float64) float64, beamY float64) {
	p := job.Project

	mark := func(pos float64, label string, r, g, b int) {
		x := toX(pos)

		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.6)
		pdf.Line(x, beamY, x, beamY+beamHeight)

		pdf.SetFillColor(r, g, b)
		pdf.Circle(x, beamY+beamHeight/2, 1.4, "F")

		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(r, g, b)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(x-labelW/2, beamY-5)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}

	if p.Lock.Active && p.Lock.Position > 0 {
		mark(p.Lock.Position, "Lock", 180, 0, 0)
	}
	for i, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			mark(h.Position, fmt.Sprintf("H%d", i+1), 21, 101, 192)
		}
	}

	pdf.SetTextColor(0, 0, 0)
}

// drawAxisAnnotations adds position ticks below the beam, the overall
// length dimension and the rotated beam width label.
func drawAxisAnnotations(pdf *fpdf.Fpdf, job Job, toX func(float64) float64, beamY, beamX, beamW float64) {
	p := job.Project
	bottom := beamY + beamHeight

	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.2)
	pdf.SetTextColor(80, 80, 80)

	tickLabel := func(pos, rowY float64) {
		x := toX(pos)
		pdf.Line(x, bottom, x, bottom+2)
		label := model.FormatNumber(pos)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(x-labelW/2, rowY)
		pdf.CellFormat(labelW, 3.5, label, "", 0, "C", false, 0, "")
	}

	// Machining point positions on the first row
	pdf.SetFont("Helvetica", "", 7)
	for i := 1; i <= 4; i++ {
		tickLabel(job.Placement.Position(i), bottom+2.5)
	}

	// Hardware positions on the second row
	if p.Lock.Active && p.Lock.Position > 0 {
		tickLabel(p.Lock.Position, bottom+7)
	}
	for _, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			tickLabel(h.Position, bottom+7)
		}
	}

	// Overall length below the annotation rows
	pdf.SetFont("Helvetica", "", 8)
	lengthLabel := fmt.Sprintf("%s mm overall", model.FormatNumber(p.Frame.Height))
	lengthW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(beamX+(beamW-lengthW)/2, bottom+12)
	pdf.CellFormat(lengthW, 4, lengthLabel, "", 0, "C", false, 0, "")

	// Beam width to the left of the beam, rotated
	widthLabel := fmt.Sprintf("%s mm", model.FormatNumber(p.Frame.Width))
	pdf.TransformBegin()
	pdf.TransformRotate(90, marginLeft-3, beamY+beamHeight/2)
	widthW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(marginLeft-3-widthW/2, beamY+beamHeight/2-2)
	pdf.CellFormat(widthW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders the color legend under the elevation drawing.
func drawLegend(pdf *fpdf.Fpdf, job Job, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Legend:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	maxX := pageWidth - marginRight

	entry := func(r, g, b int, label string) {
		labelW := pdf.GetStringWidth(label) + 6
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(r, g, b)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}

	for i := 1; i <= 4; i++ {
		geo := job.Setup.Geometry.PM[i-1]
		col := pmColors[i-1]
		entry(col.R, col.G, col.B, fmt.Sprintf("PM%d @ %s (%s x %s mm)",
			i, model.FormatNumber(job.Placement.Position(i)),
			model.FormatNumber(geo.Width), model.FormatNumber(geo.Height)))
	}
	entry(255, 200, 200, fmt.Sprintf("keep-clear zone (+/- %s mm)",
		model.FormatNumber(job.Setup.Geometry.ComponentSafety)))
}

// renderSummaryPage draws the job overview with the placement and
// hardware tables.
func renderSummaryPage(pdf *fpdf.Fpdf, job Job) {
	p := job.Project

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Machining Job Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18.0

	hardware := fmt.Sprintf("%d hinges, no lock", p.HingeCount())
	if p.Lock.Active && p.Lock.Position > 0 {
		hardware = fmt.Sprintf("%d hinges, lock at %s mm", p.HingeCount(), model.FormatNumber(p.Lock.Position))
	}
	validation := "OK"
	if !job.Validation.OK() {
		validation = fmt.Sprintf("%d violations", len(job.Validation.Violations))
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Project", fmt.Sprintf("%s (%s hand)", p.Name, p.Orientation)},
		{"Frame", fmt.Sprintf("%s x %s mm, door %s mm",
			model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width),
			model.FormatNumber(p.Frame.DoorWidth))},
		{"Controller", job.Setup.Controller},
		{"Hardware", hardware},
		{"Programs", fmt.Sprintf("%d generated", len(job.Programs))},
		{"Validation", validation},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Violations warning
	if !job.Validation.OK() {
		y += 3
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Placement violations", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, v := range job.Validation.Violations {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+v.Message(), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y += 5

	// Placement table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placement", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{22, 35, 42, 55, 25}
	headers := []string{"Point", "Position", "Slot", "Free range", "Check"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i := 1; i <= 4; i++ {
		geo := job.Setup.Geometry.PM[i-1]
		check := "ok"
		if job.Validation.PMErrors[i-1] {
			check = "error"
		}
		rowData := []string{
			fmt.Sprintf("PM%d", i),
			model.FormatNumber(job.Placement.Position(i)) + " mm",
			fmt.Sprintf("%s x %s mm", model.FormatNumber(geo.Width), model.FormatNumber(geo.Height)),
			containingRange(job, job.Placement.Position(i)),
			check,
		}

		if i%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if job.Placement.Fallback {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetXY(marginLeft, y+1)
		pdf.CellFormat(200, 4, "Minimum-clearance fallback layout.", "", 0, "L", false, 0, "")
		y += 5
	}

	y += 5

	// Hardware table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Hardware", "", 0, "L", false, 0, "")
	y += 9

	hwWidths := []float64{32, 35, 25, 35}
	hwHeaders := []string{"Component", "Position", "Order", "Y offset"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos = marginLeft
	for i, header := range hwHeaders {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(hwWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += hwWidths[i]
	}
	y += 6

	type hwRow struct {
		name    string
		pos     float64
		order   int
		yOffset float64
	}
	var rows []hwRow
	if p.Lock.Active && p.Lock.Position > 0 {
		rows = append(rows, hwRow{"Lock", p.Lock.Position, p.Lock.Order, p.LockYOffset})
	}
	for i, h := range p.Hinges {
		if h.Active && h.Position > 0 {
			rows = append(rows, hwRow{fmt.Sprintf("Hinge %d", i+1), h.Position, h.Order, p.HingeYOffset})
		}
	}

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		rowData := []string{
			row.name,
			model.FormatNumber(row.pos) + " mm",
			fmt.Sprintf("%d", row.order),
			model.FormatNumber(row.yOffset) + " mm",
		}
		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(hwWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += hwWidths[j]
		}
		y += 6
	}

	drawFooter(pdf)
}

// renderProgramsPage draws the program inventory with parsed move
// counts, travel warnings and the machine settings.
func renderProgramsPage(pdf *fpdf.Fpdf, job Job) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Programs & Machine", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18.0

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Generated Programs", "", 0, "L", false, 0, "")
	y += 9

	if len(job.Programs) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 6, "No programs generated yet.", "", 0, "L", false, 0, "")
		y += 8
	} else {
		colWidths := []float64{78, 22, 22, 20, 20, 20, 42}
		headers := []string{"File", "Kind", "Side", "Moves", "Drills", "Feeds", "Fingerprint"}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		for i, program := range job.Programs {
			stats := gcode.Summarize(gcode.Parse(program.Code))
			rowData := []string{
				program.FileName,
				string(program.Kind),
				string(program.Side),
				fmt.Sprintf("%d", stats.Moves),
				fmt.Sprintf("%d", stats.Drills),
				fmt.Sprintf("%d", stats.Feeds),
				model.ShortFingerprint(program.Fingerprint),
			}

			if i%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}

			xPos = marginLeft
			for j, cell := range rowData {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
		}
	}

	// Travel envelope warnings
	if violations := gcode.CheckPrograms(job.Programs, job.Setup.Travel); len(violations) > 0 {
		y += 5
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Travel envelope exceeded", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, warning := range gcode.FormatTravelWarnings(violations) {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+warning, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y += 6

	// Machine settings
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Machine Settings", "", 0, "L", false, 0, "")
	y += 9

	offsets := job.Setup.Offsets
	travel := job.Setup.Travel
	settingsItems := []struct {
		label string
		value string
	}{
		{"Controller", job.Setup.Controller},
		{"Work offsets", fmt.Sprintf("X%s Y%s Z%s mm",
			model.FormatNumber(offsets.X), model.FormatNumber(offsets.Y), model.FormatNumber(offsets.Z))},
		{"Travel X", fmt.Sprintf("%s to %s mm", model.FormatNumber(travel.MinX), model.FormatNumber(travel.MaxX))},
		{"Travel Y", fmt.Sprintf("%s to %s mm", model.FormatNumber(travel.MinY), model.FormatNumber(travel.MaxY))},
		{"Travel Z", fmt.Sprintf("%s to %s mm", model.FormatNumber(travel.MinZ), model.FormatNumber(travel.MaxZ))},
		{"Component safety", model.FormatNumber(job.Setup.Geometry.ComponentSafety) + " mm"},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	drawFooter(pdf)
}

// drawFooter writes the generator note at the bottom of the page.
func drawFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by FrameWizard - Door Frame Machining Configurator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// markFontSize returns a font size that fits the slot width.
func markFontSize(w float64) float64 {
	switch {
	case w > 28:
		return 8
	case w > 16:
		return 7
	default:
		return 6
	}
}
