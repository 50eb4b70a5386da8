package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
)

// Workbook sheet names.
const (
	sheetJob       = "Job"
	sheetPlacement = "Placement"
	sheetVariables = "Variables"
	sheetPrograms  = "Programs"
)

// ExportExcel writes the parameter workbook: the job overview, the
// solved placement, the dollar-variable catalog and the program
// inventory on separate sheets.
func ExportExcel(path string, job Job) error {
	if job.Project == nil {
		return fmt.Errorf("no project to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDE3EA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("workbook style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetJob); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetPlacement, sheetVariables, sheetPrograms} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	writeJobSheet(f, job, header)
	writePlacementSheet(f, job, header)
	writeVariablesSheet(f, job, header)
	writeProgramsSheet(f, job, header)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// setRow fills one row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		f.SetCellValue(sheet, cell, v)
	}
}

func writeJobSheet(f *excelize.File, job Job, header int) {
	p := job.Project

	lockPos := "not set"
	if p.Lock.Active && p.Lock.Position > 0 {
		lockPos = model.FormatNumber(p.Lock.Position)
	}
	layout := "preferred"
	if job.Placement.Fallback {
		layout = "fallback"
	}
	validation := "OK"
	if !job.Validation.OK() {
		validation = fmt.Sprintf("%d violations", len(job.Validation.Violations))
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Project", p.Name},
		{"Orientation", string(p.Orientation)},
		{"Frame height (mm)", p.Frame.Height},
		{"Frame width (mm)", p.Frame.Width},
		{"Door width (mm)", p.Frame.DoorWidth},
		{"Hinges", p.HingeCount()},
		{"Lock position (mm)", lockPos},
		{"Controller", job.Setup.Controller},
		{"Layout", layout},
		{"Validation", validation},
		{"Programs", len(job.Programs)},
	}
	for i, row := range rows {
		setRow(f, sheetJob, i+1, row.label, row.value)
	}

	last, _ := excelize.CoordinatesToCellName(1, len(rows))
	f.SetCellStyle(sheetJob, "A1", last, header)
	f.SetColWidth(sheetJob, "A", "A", 20)
	f.SetColWidth(sheetJob, "B", "B", 28)
}

func writePlacementSheet(f *excelize.File, job Job, header int) {
	setRow(f, sheetPlacement, 1,
		"Point", "Position (mm)", "Slot width (mm)", "Slot height (mm)", "Free range", "Check")

	for i := 1; i <= 4; i++ {
		geo := job.Setup.Geometry.PM[i-1]
		check := "ok"
		if job.Validation.PMErrors[i-1] {
			check = "error"
		}
		setRow(f, sheetPlacement, i+1,
			fmt.Sprintf("PM%d", i),
			job.Placement.Position(i),
			geo.Width,
			geo.Height,
			containingRange(job, job.Placement.Position(i)),
			check)
	}

	fallback := "no"
	if job.Placement.Fallback {
		fallback = "yes"
	}
	setRow(f, sheetPlacement, 7, "Fallback layout", fallback)

	f.SetCellStyle(sheetPlacement, "A1", "F1", header)
	f.SetColWidth(sheetPlacement, "A", "F", 15)
	f.SetColWidth(sheetPlacement, "E", "E", 18)
}

func writeVariablesSheet(f *excelize.File, job Job, header int) {
	setRow(f, sheetVariables, 1, "Name", "Value")

	vars := model.JobVariables(job.Project, job.Placement, job.Setup)
	for i, name := range vars.Names() {
		value, _ := vars.Get(name)
		setRow(f, sheetVariables, i+2, name, value)
	}

	f.SetCellStyle(sheetVariables, "A1", "B1", header)
	f.SetColWidth(sheetVariables, "A", "A", 24)
	f.SetColWidth(sheetVariables, "B", "B", 16)
}

func writeProgramsSheet(f *excelize.File, job Job, header int) {
	setRow(f, sheetPrograms, 1,
		"File", "Kind", "Side", "Moves", "Drills", "Feeds", "Fingerprint", "Generated at")

	for i, program := range job.Programs {
		stats := gcode.Summarize(gcode.Parse(program.Code))
		setRow(f, sheetPrograms, i+2,
			program.FileName,
			string(program.Kind),
			string(program.Side),
			stats.Moves,
			stats.Drills,
			stats.Feeds,
			model.ShortFingerprint(program.Fingerprint),
			program.GeneratedAt)
	}

	f.SetCellStyle(sheetPrograms, "A1", "H1", header)
	f.SetColWidth(sheetPrograms, "A", "A", 34)
	f.SetColWidth(sheetPrograms, "B", "G", 12)
	f.SetColWidth(sheetPrograms, "H", "H", 22)
}
