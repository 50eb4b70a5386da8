package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PROJECT",
		Short: "Check a project's layout against the clearance rules",
		Long: `Validate recomputes the machining point layout for a project and checks
it against the clearance, keep-clear and boundary rules. Stored
programs are compared against the current inputs and flagged when
stale. The command fails when the layout has violations, so it can
gate automated program generation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return err
	}

	pl, result, solved := computeLayout(ws, &p)

	printTitle(fmt.Sprintf("%s: %s x %s mm frame", p.Name,
		model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width)))
	printPlacement(ws, pl, result)
	if !solved {
		printWarning("No layout satisfies all clearances; minimum-clearance fallback used")
	}
	printViolations(result)
	printProgramStatus(ws, &p, pl)

	for _, warning := range gcode.FormatTravelWarnings(gcode.CheckPrograms(p.Programs, ws.Machine.Travel)) {
		printWarning("%s", warning)
	}

	if !result.OK() {
		return fmt.Errorf("placement has %d violations", len(result.Violations))
	}
	printSuccess("Layout OK")
	return nil
}

// printProgramStatus compares the project's stored programs against the
// current inputs and reports which have gone stale.
func printProgramStatus(ws *project.Workspace, p *model.Project, pl model.Placement) {
	if len(p.Programs) == 0 {
		return
	}

	gen := gcode.New(ws.Machine)
	in := gcode.Inputs{
		Project:   p,
		Placement: pl,
		Types:     &ws.Types,
		Profiles:  &ws.Profiles,
		Templates: ws.Templates,
	}

	printNewline()
	printTitle("Stored programs")
	for _, prog := range p.Programs {
		current, err := gen.Fingerprint(in, prog.Side, prog.Kind)
		if err != nil {
			printDetail("%s: %v", prog.FileName, err)
			continue
		}
		status := prog.Status(current)
		if status == model.InSync {
			printKeyValue(prog.FileName, status.String())
		} else {
			printKeyValue(prog.FileName, StyleWarning.Render(status.String()))
		}
	}
}
