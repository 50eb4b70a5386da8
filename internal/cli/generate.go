package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/export"
	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outDir string // output directory for programs and artifacts
	side   string // narrow generation to one hand
	save   bool   // store rendered programs back into the project file
	pdf    bool
	xlsx   bool
	dxf    bool
	labels bool
	chart  bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate PROJECT",
		Short: "Render the CNC programs for a project",
		Long: `Generate solves the project's layout, renders the frame, lock and hinge
programs for the selected sides and writes them as .nc files. Optional
flags export the job sheet, parameter workbook, elevation drawing,
program labels and layout chart alongside.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory (default from config, else current dir)")
	cmd.Flags().StringVar(&opts.side, "side", "", "generate one hand only: right or left")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the rendered programs in the project file")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "export the PDF job sheet")
	cmd.Flags().BoolVar(&opts.xlsx, "xlsx", false, "export the Excel parameter workbook")
	cmd.Flags().BoolVar(&opts.dxf, "dxf", false, "export the DXF elevation drawing")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "export the QR program labels")
	cmd.Flags().BoolVar(&opts.chart, "chart", false, "export the HTML layout chart")

	return cmd
}

func runGenerate(cmd *cobra.Command, path string, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return err
	}

	sides := model.Sides
	if opts.side != "" {
		if opts.side != string(model.SideRight) && opts.side != string(model.SideLeft) {
			return fmt.Errorf("unknown side %q", opts.side)
		}
		sides = []model.Side{model.Side(opts.side)}
	}

	pl, result, solved := computeLayout(ws, &p)
	if !result.OK() {
		printViolations(result)
		return fmt.Errorf("placement has %d violations; fix the layout before generating", len(result.Violations))
	}
	if !solved {
		printWarning("No layout satisfies all clearances; minimum-clearance fallback used")
	}

	gen := gcode.New(ws.Machine)
	in := gcode.Inputs{
		Project:   &p,
		Placement: pl,
		Types:     &ws.Types,
		Profiles:  &ws.Profiles,
		Templates: ws.Templates,
	}

	pr := newProgress(logger)
	programs, err := gen.GenerateAll(in, sides...)
	if err != nil {
		return err
	}
	pr.done(fmt.Sprintf("Generated %d programs", len(programs)))

	outDir := opts.outDir
	if outDir == "" {
		outDir = ws.Config.OutputDir
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, prog := range programs {
		target := filepath.Join(outDir, prog.FileName)
		if err := os.WriteFile(target, []byte(prog.Code), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", prog.FileName, err)
		}
		printFile(target)
	}

	for _, warning := range gcode.FormatTravelWarnings(gcode.CheckPrograms(programs, ws.Machine.Travel)) {
		printWarning("%s", warning)
	}

	job := export.Job{
		Project:    &p,
		Placement:  pl,
		Validation: result,
		Setup:      ws.Machine,
		Programs:   programs,
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := runExports(opts, outDir, base, job); err != nil {
		return err
	}

	if opts.save {
		p.StorePrograms(programs)
		if err := project.SaveProject(path, p, ws.Config.BackupCount); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		printSuccess("Stored %d programs in %s", len(programs), path)
	}
	return nil
}

// runExports writes the requested artifact files next to the programs.
func runExports(opts *generateOpts, outDir, base string, job export.Job) error {
	type artifact struct {
		enabled bool
		path    string
		write   func(string, export.Job) error
	}
	artifacts := []artifact{
		{opts.pdf, filepath.Join(outDir, base+"_job.pdf"), export.ExportPDF},
		{opts.xlsx, filepath.Join(outDir, base+"_job.xlsx"), export.ExportExcel},
		{opts.dxf, filepath.Join(outDir, base+"_elevation.dxf"), export.ExportDXF},
		{opts.labels, filepath.Join(outDir, base+"_labels.pdf"), export.ExportLabels},
		{opts.chart, filepath.Join(outDir, base+"_layout.html"), export.ExportChart},
	}
	for _, a := range artifacts {
		if !a.enabled {
			continue
		}
		if err := a.write(a.path, job); err != nil {
			return fmt.Errorf("export %s: %w", filepath.Base(a.path), err)
		}
		printFile(a.path)
	}
	return nil
}
