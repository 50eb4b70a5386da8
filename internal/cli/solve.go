package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/placement"
	"github.com/piwi3910/FrameWizard/internal/project"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	fromFile   string  // project file to read frame and hardware from
	height     float64 // frame height in mm
	pm1        float64 // PM1 anchor override in mm
	lock       float64 // lock case position in mm
	noLock     bool    // solve without a lock case
	hinges     string  // comma-separated hinge positions
	autoHinges int     // distribute this many hinges automatically
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a machining point layout",
		Long: `Solve computes the four machining point positions for a frame, keeping
clear of the hinge and lock hardware. Hardware comes from flags or,
with --project, from a saved project file.

Examples:
  framewizard solve --height 2100 --auto-hinges 3
  framewizard solve --height 2100 --hinges 150,810,1800 --lock 1050
  framewizard solve --project entry_door.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fromFile, "project", "p", "", "read frame and hardware from a project file")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in mm (default from config)")
	cmd.Flags().Float64Var(&opts.pm1, "pm1", 0, "override the PM1 anchor position in mm")
	cmd.Flags().Float64Var(&opts.lock, "lock", 0, "lock case position in mm (default from machine geometry)")
	cmd.Flags().BoolVar(&opts.noLock, "no-lock", false, "solve without a lock case")
	cmd.Flags().StringVar(&opts.hinges, "hinges", "", "comma-separated hinge positions in mm")
	cmd.Flags().IntVar(&opts.autoHinges, "auto-hinges", 0, "distribute this many hinges automatically")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOpts) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	p, err := opts.buildProject(ws, cmd)
	if err != nil {
		return err
	}

	pl, result, solved := computeLayout(ws, &p)

	printTitle(fmt.Sprintf("Layout for %s x %s mm frame",
		model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width)))
	printPlacement(ws, pl, result)

	if !solved {
		printWarning("No layout satisfies all clearances; minimum-clearance fallback used")
	}
	printViolations(result)
	if result.OK() {
		printSuccess("Layout OK")
	}
	return nil
}

// buildProject assembles a scratch project from the solve flags, or
// loads the referenced project file. Only flags the user actually set
// override the workspace defaults.
func (o *solveOpts) buildProject(ws *project.Workspace, cmd *cobra.Command) (model.Project, error) {
	if o.fromFile != "" {
		return project.LoadProject(o.fromFile)
	}

	p := ws.NewProject("layout")
	if cmd.Flags().Changed("height") {
		p.Frame.Height = model.ClampHeight(o.height)
	}
	if cmd.Flags().Changed("pm1") {
		p.PM1Position = o.pm1
	}
	if o.noLock {
		p.Lock.Active = false
	} else if cmd.Flags().Changed("lock") {
		p.Lock.Position = o.lock
	}

	switch {
	case o.hinges != "":
		positions, err := parsePositions(o.hinges)
		if err != nil {
			return model.Project{}, fmt.Errorf("parse --hinges: %w", err)
		}
		if len(positions) > len(p.Hinges) {
			return model.Project{}, fmt.Errorf("at most %d hinges supported, got %d", len(p.Hinges), len(positions))
		}
		p.SetHingeCount(len(positions))
		for i, pos := range positions {
			p.Hinges[i].Position = pos
		}
	case o.autoHinges > 0:
		if o.autoHinges > len(p.Hinges) {
			return model.Project{}, fmt.Errorf("at most %d hinges supported, got %d", len(p.Hinges), o.autoHinges)
		}
		placement.ApplyAutoHinges(&p, o.autoHinges)
	default:
		p.SetHingeCount(0)
	}
	return p, nil
}

// computeLayout runs the solver and validation for one project against
// the workspace machine geometry.
func computeLayout(ws *project.Workspace, p *model.Project) (model.Placement, model.ValidationResult, bool) {
	solver := placement.New(ws.Machine.Geometry)
	obstacles := p.Obstacles(ws.Machine.Geometry.ComponentSafety)
	pl, solved := solver.Solve(p.Frame.Height, p.PM1Position, obstacles)
	return pl, solver.Validate(p.Frame.Height, pl, obstacles), solved
}

// printPlacement lists the machining point positions with their slot
// sizes, flagging points the validation rejected.
func printPlacement(ws *project.Workspace, pl model.Placement, result model.ValidationResult) {
	for i := 1; i <= 4; i++ {
		geo := ws.Machine.Geometry.PM[i-1]
		value := fmt.Sprintf("%s mm  (%s x %s mm slot)",
			model.FormatNumber(pl.Position(i)), model.FormatNumber(geo.Width), model.FormatNumber(geo.Height))
		if result.PMErrors[i-1] {
			value += "  " + styleIconError.Render(iconError)
		}
		printKeyValue(fmt.Sprintf("PM%d", i), value)
	}
	for _, r := range pl.Ranges {
		printDetail("free range %s to %s mm", model.FormatNumber(r.Start), model.FormatNumber(r.End))
	}
}

// printViolations prints one error line per constraint violation.
func printViolations(result model.ValidationResult) {
	for _, v := range result.Violations {
		printError("%s", v.Message())
	}
}

// parsePositions parses a comma-separated list of millimetre values.
func parsePositions(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	positions := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad position %q", part)
		}
		positions = append(positions, v)
	}
	return positions, nil
}
