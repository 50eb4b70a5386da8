package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/FrameWizard/internal/model"
)

// LabelInfo holds the data encoded into each program label's QR code.
// Scanning a label at the machine identifies the program file and the
// frame it belongs to.
type LabelInfo struct {
	Project     string  `json:"project"`
	FileName    string  `json:"file"`
	Kind        string  `json:"kind"`
	Side        string  `json:"side"`
	FrameHeight float64 `json:"frame_height_mm"`
	FrameWidth  float64 `json:"frame_width_mm"`
	Fingerprint string  `json:"fingerprint"`
	GeneratedAt string  `json:"generated_at"`
}

// Label layout constants for Avery 5160-compatible sheets (3 columns,
// 10 rows per page, 66.7mm x 25.4mm per label on US Letter).
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per generated
// program. Each label carries the file name, the program kind and side,
// the frame dimensions and a QR code encoding the metadata as JSON.
func ExportLabels(path string, job Job) error {
	if job.Project == nil {
		return fmt.Errorf("no project to export")
	}
	if len(job.Programs) == 0 {
		return fmt.Errorf("no programs to label")
	}

	labels := CollectLabelInfos(job)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("render label for %q: %w", label.FileName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single program label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.FileName)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area on the left
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// File name (bold, truncated to fit)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	fileName := info.FileName
	if pdf.GetStringWidth(fileName) > textW {
		for len(fileName) > 0 && pdf.GetStringWidth(fileName+"...") > textW {
			fileName = fileName[:len(fileName)-1]
		}
		fileName += "..."
	}
	pdf.CellFormat(textW, 4.5, fileName, "", 1, "L", false, 0, "")

	// Program kind and side
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	program := fmt.Sprintf("%s %s program", info.Side, info.Kind)
	pdf.CellFormat(textW, 3.5, program, "", 1, "L", false, 0, "")

	// Frame dimensions
	pdf.SetXY(textX, y+labelPadding+9)
	frame := fmt.Sprintf("Frame %s x %s mm",
		model.FormatNumber(info.FrameHeight), model.FormatNumber(info.FrameWidth))
	pdf.CellFormat(textW, 3.5, frame, "", 1, "L", false, 0, "")

	// Fingerprint and generation date
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+13)
	trace := info.Fingerprint
	if len(info.GeneratedAt) >= 10 {
		trace += " | " + info.GeneratedAt[:10]
	}
	pdf.CellFormat(textW, 3, trace, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts the label data for every generated
// program, for testing or alternative label formats.
func CollectLabelInfos(job Job) []LabelInfo {
	var labels []LabelInfo
	for _, program := range job.Programs {
		labels = append(labels, LabelInfo{
			Project:     job.Project.Name,
			FileName:    program.FileName,
			Kind:        string(program.Kind),
			Side:        string(program.Side),
			FrameHeight: job.Project.Frame.Height,
			FrameWidth:  job.Project.Frame.Width,
			Fingerprint: model.ShortFingerprint(program.Fingerprint),
			GeneratedAt: program.GeneratedAt,
		})
	}
	return labels
}
