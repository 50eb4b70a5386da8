// Package importer reads door frame orders into projects. It supports
// CSV and Excel order lists with automatic delimiter detection and
// case-insensitive header mapping, and DXF elevation drawings carrying
// the frame outline, hinge marks and lock bore in real millimetres.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/placement"
)

// ImportResult holds the projects read from one order file together
// with per-row errors and warnings. Bad rows never abort the import;
// they land in Errors and the remaining rows still come through.
type ImportResult struct {
	Projects []model.Project
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A role the file does not carry maps to -1.
type ColumnMapping struct {
	Name         int
	Height       int
	Width        int
	DoorWidth    int
	Orientation  int
	Hinges       int
	HingeProfile int
	LockProfile  int
	LockPosition int
}

// columnRole ties a mapping field to the header spellings that select it.
type columnRole struct {
	target  func(*ColumnMapping) *int
	aliases []string
}

// columnRoles lists every recognized header spelling, all lowercase.
var columnRoles = []columnRole{
	{func(m *ColumnMapping) *int { return &m.Name },
		[]string{"name", "project", "order", "door", "label", "description", "desc"}},
	{func(m *ColumnMapping) *int { return &m.Height },
		[]string{"height", "frame height", "frame_height", "h"}},
	{func(m *ColumnMapping) *int { return &m.Width },
		[]string{"width", "frame width", "frame_width", "w"}},
	{func(m *ColumnMapping) *int { return &m.DoorWidth },
		[]string{"door width", "door_width", "leaf width", "leaf_width", "leaf"}},
	{func(m *ColumnMapping) *int { return &m.Orientation },
		[]string{"orientation", "hand", "side", "hinging", "din"}},
	{func(m *ColumnMapping) *int { return &m.Hinges },
		[]string{"hinges", "hinge count", "hinge_count", "count"}},
	{func(m *ColumnMapping) *int { return &m.HingeProfile },
		[]string{"hinge profile", "hinge_profile", "hinge"}},
	{func(m *ColumnMapping) *int { return &m.LockProfile },
		[]string{"lock profile", "lock_profile", "lock"}},
	{func(m *ColumnMapping) *int { return &m.LockPosition },
		[]string{"lock position", "lock_position", "lock height", "lock_height"}},
}

// ImportFile reads an order file by extension: .csv and .txt order
// lists, .xlsx workbooks and .dxf elevation drawings.
func ImportFile(path string, cfg model.AppConfig) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ImportCSV(path, cfg)
	case ".xlsx":
		return ImportExcel(path, cfg)
	case ".dxf":
		return ImportDXF(path, cfg)
	}
	return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type %q", filepath.Ext(path))}}
}

// DetectCSVDelimiter guesses the delimiter of raw CSV content by trying
// comma, semicolon, tab and pipe. Candidates are ranked by how many
// lines split into the same column count, column count breaking ties.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		consistent, cols := delimiterFit(data, delim)
		if cols < 2 {
			continue
		}
		if score := consistent*10 + cols; score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

// delimiterFit splits data with the candidate delimiter and reports how
// many lines match the first line's column count, and that count.
func delimiterFit(data []byte, delim rune) (consistent, cols int) {
	records, err := readRecords(bytes.NewReader(data), delim)
	if err != nil || len(records) == 0 {
		return 0, 0
	}
	cols = len(records[0])
	for _, row := range records {
		if len(row) == cols {
			consistent++
		}
	}
	return consistent, cols
}

// DetectColumns matches a header row against the known column aliases,
// case-insensitively. For each role the leftmost matching cell wins.
// When no cell matches any alias the row is not a header and the
// positional fallback (name, height, width, door width, hinges)
// applies.
func DetectColumns(row []string) (ColumnMapping, bool) {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	mapping := ColumnMapping{
		Name: -1, Height: -1, Width: -1, DoorWidth: -1, Orientation: -1,
		Hinges: -1, HingeProfile: -1, LockProfile: -1, LockPosition: -1,
	}
	isHeader := false
	for _, role := range columnRoles {
		idx := role.target(&mapping)
		for i, cell := range cells {
			if *idx != -1 {
				break
			}
			for _, alias := range role.aliases {
				if cell == alias {
					*idx = i
					isHeader = true
					break
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Name: 0, Height: 1, Width: 2, DoorWidth: 3, Hinges: 4,
			Orientation: -1, HingeProfile: -1, LockProfile: -1, LockPosition: -1,
		}, false
	}
	return mapping, true
}

// parseOrientation reads a hinging side cell, accepting DIN-style shorthands.
func parseOrientation(s string) (model.Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r", "din right", "din-right":
		return model.SideRight, true
	case "left", "l", "din left", "din-left":
		return model.SideLeft, true
	}
	return model.SideRight, false
}

// getCell returns the trimmed cell at idx, or "" when the row is too
// short or the column is unmapped.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow builds a project from one order row, starting from the
// workspace defaults. It returns the project, an error message that
// skips the row, and an optional warning.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, cfg model.AppConfig, imported int) (model.Project, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Frame %d", imported+1)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.Project{}, fmt.Sprintf("%s: Missing frame height", rowLabel), ""
	}
	height, ok := model.ParseNumeric(heightStr, 0)
	if !ok {
		return model.Project{}, fmt.Sprintf("%s: Invalid frame height '%s'", rowLabel, heightStr), ""
	}
	if height <= 0 {
		return model.Project{}, fmt.Sprintf("%s: Frame height must be positive", rowLabel), ""
	}

	p := model.NewProject(name)
	cfg.ApplyToProject(&p)

	var warns []string
	if clamped := model.ClampHeight(height); clamped != height {
		warns = append(warns, fmt.Sprintf("%s: Frame height %s clamped to %s",
			rowLabel, model.FormatNumber(height), model.FormatNumber(clamped)))
		height = clamped
	}
	p.Frame.Height = height

	if s := getCell(row, mapping.Width); s != "" {
		v, ok := model.ParseNumeric(s, 0)
		if !ok || v <= 0 {
			return model.Project{}, fmt.Sprintf("%s: Invalid frame width '%s'", rowLabel, s), ""
		}
		p.Frame.Width = v
	}
	if s := getCell(row, mapping.DoorWidth); s != "" {
		v, ok := model.ParseNumeric(s, 0)
		if !ok || v <= 0 {
			return model.Project{}, fmt.Sprintf("%s: Invalid door width '%s'", rowLabel, s), ""
		}
		p.Frame.DoorWidth = v
	}
	p.LockYOffset = p.Frame.AutoYOffset()
	p.HingeYOffset = p.Frame.AutoYOffset()

	if s := getCell(row, mapping.Orientation); s != "" {
		if side, ok := parseOrientation(s); ok {
			p.Orientation = side
		} else {
			warns = append(warns, fmt.Sprintf("%s: Unknown orientation '%s', keeping %s", rowLabel, s, p.Orientation))
		}
	}

	count := p.HingeCount()
	if s := getCell(row, mapping.Hinges); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > len(p.Hinges) {
			return model.Project{}, fmt.Sprintf("%s: Invalid hinge count '%s'", rowLabel, s), ""
		}
		count = n
	}
	placement.ApplyAutoHinges(&p, count)

	if s := getCell(row, mapping.HingeProfile); s != "" {
		p.SelectedHinge = s
	}
	if s := getCell(row, mapping.LockProfile); s != "" {
		p.SelectedLock = s
	}
	if s := getCell(row, mapping.LockPosition); s != "" {
		v, ok := model.ParseNumeric(s, 0)
		if !ok || v <= 0 {
			return model.Project{}, fmt.Sprintf("%s: Invalid lock position '%s'", rowLabel, s), ""
		}
		p.Lock.Position = v
	}

	return p, "", strings.Join(warns, "; ")
}

// isEmptyRow reports whether every cell is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// readRecords parses CSV content with a fixed delimiter. Quoting is
// lax and rows may have ragged column counts; getCell absorbs short rows.
func readRecords(r io.Reader, delim rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportCSV imports an order list from a CSV file, detecting the
// delimiter first. A non-comma delimiter is reported as a warning so
// surprising splits are visible in the output.
func ImportCSV(path string, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readRecords(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", cfg, result.Warnings)
}

// ImportCSVFromReader imports an order list from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	records, err := readRecords(reader, delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", cfg, nil)
}

// ImportExcel imports an order list from the first sheet of an .xlsx
// workbook.
func ImportExcel(path string, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", cfg, nil)
}

// importFromRows turns tabular order data into projects: detect the
// column mapping, then run every data row through parseRow. Messages
// carry the 1-based source row so a fixable order file stays fixable.
func importFromRows(rows [][]string, rowPrefix string, cfg model.AppConfig, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		if mapping.Height == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Height")
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No alias matched, but a first row whose height cell is not
		// numeric is still some unrecognized header. Skip it and trust
		// the positional mapping.
		if _, ok := model.ParseNumeric(rows[0][1], 0); !ok {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		p, errMsg, warning := parseRow(rows[i], mapping, rowLabel, cfg, len(result.Projects))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Projects = append(result.Projects, p)
	}

	return result
}
