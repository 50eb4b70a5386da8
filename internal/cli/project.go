package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/importer"
	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/placement"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create and edit project files",
	}

	cmd.AddCommand(newProjectInitCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectSetCmd())
	cmd.AddCommand(newProjectImportCmd())

	return cmd
}

// projectInitOpts holds the flags for project init.
type projectInitOpts struct {
	output      string
	height      float64
	width       float64
	doorWidth   float64
	orientation string
	hinges      int
	set         string
}

func newProjectInitCmd() *cobra.Command {
	var opts projectInitOpts

	cmd := &cobra.Command{
		Use:   "init NAME",
		Short: "Create a project file from the workspace defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectInit(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "project file path (default derived from the name)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in mm")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width in mm")
	cmd.Flags().Float64Var(&opts.doorWidth, "door-width", 0, "door leaf width in mm")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "", "hinging side: right or left")
	cmd.Flags().IntVar(&opts.hinges, "hinges", 0, "number of auto-distributed hinges")
	cmd.Flags().StringVar(&opts.set, "set", "", "apply a saved profile set")

	return cmd
}

func runProjectInit(cmd *cobra.Command, name string, opts *projectInitOpts) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	p := ws.NewProject(name)
	if cmd.Flags().Changed("height") {
		p.Frame.Height = model.ClampHeight(opts.height)
	}
	if cmd.Flags().Changed("width") {
		p.Frame.Width = opts.width
	}
	if cmd.Flags().Changed("door-width") {
		p.Frame.DoorWidth = opts.doorWidth
	}
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("door-width") {
		p.LockYOffset = p.Frame.AutoYOffset()
		p.HingeYOffset = p.Frame.AutoYOffset()
	}
	if opts.orientation != "" {
		side, err := parseSide(opts.orientation)
		if err != nil {
			return err
		}
		p.Orientation = side
	}
	if opts.set != "" {
		set := ws.Sets.FindByName(opts.set)
		if set == nil {
			if names := ws.Sets.Names(); len(names) > 0 {
				return fmt.Errorf("unknown profile set %q, have %s", opts.set, strings.Join(names, ", "))
			}
			return fmt.Errorf("unknown profile set %q", opts.set)
		}
		set.ApplyTo(&p)
	}

	count := p.HingeCount()
	if cmd.Flags().Changed("hinges") {
		count = opts.hinges
	}
	if count > len(p.Hinges) {
		return fmt.Errorf("at most %d hinges supported, got %d", len(p.Hinges), count)
	}
	placement.ApplyAutoHinges(&p, count)

	path := opts.output
	if path == "" {
		path = projectFileName(name)
	}
	if err := project.SaveProject(path, p, ws.Config.BackupCount); err != nil {
		return err
	}

	ws.Config.AddRecentProject(path)
	if err := ws.SaveConfig(); err != nil {
		return err
	}

	printSuccess("Created project %q", name)
	printFile(path)
	printNextStep("Generate programs", "framewizard generate "+path)
	return nil
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Print a project's frame, hardware and layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectShow(args[0])
		},
	}
}

func runProjectShow(path string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return err
	}

	printTitle(p.Name)
	printKeyValue("Frame", fmt.Sprintf("%s x %s mm, door %s mm",
		model.FormatNumber(p.Frame.Height), model.FormatNumber(p.Frame.Width), model.FormatNumber(p.Frame.DoorWidth)))
	printKeyValue("Orientation", string(p.Orientation)+" hand")
	if p.Lock.Active {
		printKeyValue("Lock", fmt.Sprintf("%s mm (%s)", model.FormatNumber(p.Lock.Position), selectionName(p.SelectedLock)))
	} else {
		printKeyValue("Lock", "none")
	}
	for i, h := range p.ActiveHinges() {
		printKeyValue(fmt.Sprintf("Hinge %d", i+1), model.FormatNumber(h.Position)+" mm")
	}
	printKeyValue("Hinge profile", selectionName(p.SelectedHinge))
	printNewline()

	pl, result, _ := computeLayout(ws, &p)
	printTitle("Placement")
	printPlacement(ws, pl, result)
	if pl.Fallback {
		printWarning("Minimum-clearance fallback layout")
	}
	printViolations(result)
	printProgramStatus(ws, &p, pl)
	return nil
}

// selectionName renders a profile selection, or a placeholder when none
// is chosen yet.
func selectionName(name string) string {
	if name == "" {
		return "none selected"
	}
	return name
}

// projectSetOpts holds the flags for project set.
type projectSetOpts struct {
	name        string
	height      float64
	width       float64
	doorWidth   float64
	orientation string
	pm1         float64
	hingeCount  int
	hinges      []string // N=MM assignments
	lock        float64
	noLock      bool
	selectHinge string
	selectLock  string
	overrides   []string // name=value dollar overrides
}

func newProjectSetCmd() *cobra.Command {
	var opts projectSetOpts

	cmd := &cobra.Command{
		Use:   "set PROJECT",
		Short: "Update project values and save with backup",
		Long: `Set updates the given fields of a project file and writes it back,
rotating backups per the configured backup count. Only flags that are
given change the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectSet(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "project name")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in mm")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width in mm")
	cmd.Flags().Float64Var(&opts.doorWidth, "door-width", 0, "door leaf width in mm")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "", "hinging side: right or left")
	cmd.Flags().Float64Var(&opts.pm1, "pm1", 0, "PM1 anchor position in mm")
	cmd.Flags().IntVar(&opts.hingeCount, "hinge-count", 0, "number of active hinges (auto-distributed)")
	cmd.Flags().StringArrayVar(&opts.hinges, "hinge", nil, "hinge position as N=MM (repeatable)")
	cmd.Flags().Float64Var(&opts.lock, "lock", 0, "lock case position in mm")
	cmd.Flags().BoolVar(&opts.noLock, "no-lock", false, "deactivate the lock case")
	cmd.Flags().StringVar(&opts.selectHinge, "select-hinge", "", "hinge profile name")
	cmd.Flags().StringVar(&opts.selectLock, "select-lock", "", "lock profile name")
	cmd.Flags().StringArrayVar(&opts.overrides, "override", nil, "dollar variable override as name=value (repeatable)")

	return cmd
}

func runProjectSet(cmd *cobra.Command, path string, opts *projectSetOpts) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	p, err := project.LoadProject(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if opts.name != "" {
		p.Name = opts.name
	}
	if flags.Changed("height") {
		p.Frame.Height = model.ClampHeight(opts.height)
	}
	if flags.Changed("width") {
		p.Frame.Width = opts.width
	}
	if flags.Changed("door-width") {
		p.Frame.DoorWidth = opts.doorWidth
	}
	if opts.orientation != "" {
		side, err := parseSide(opts.orientation)
		if err != nil {
			return err
		}
		p.Orientation = side
	}
	if flags.Changed("pm1") {
		p.PM1Position = opts.pm1
	}
	if flags.Changed("hinge-count") {
		if opts.hingeCount > len(p.Hinges) {
			return fmt.Errorf("at most %d hinges supported, got %d", len(p.Hinges), opts.hingeCount)
		}
		placement.ApplyAutoHinges(&p, opts.hingeCount)
	}
	for _, assign := range opts.hinges {
		slot, pos, err := parseHingeAssignment(assign)
		if err != nil {
			return err
		}
		if !p.Hinges[slot-1].Active {
			return fmt.Errorf("hinge %d is not active; raise --hinge-count first", slot)
		}
		p.Hinges[slot-1].Position = pos
	}
	if opts.noLock {
		p.Lock.Active = false
	} else if flags.Changed("lock") {
		p.Lock.Active = true
		p.Lock.Position = opts.lock
	}
	if opts.selectHinge != "" {
		if ws.Profiles.FindByName(model.KindHinge, opts.selectHinge) == nil {
			return fmt.Errorf("unknown hinge profile %q", opts.selectHinge)
		}
		p.SelectedHinge = opts.selectHinge
	}
	if opts.selectLock != "" {
		if ws.Profiles.FindByName(model.KindLock, opts.selectLock) == nil {
			return fmt.Errorf("unknown lock profile %q", opts.selectLock)
		}
		p.SelectedLock = opts.selectLock
	}
	for _, ov := range opts.overrides {
		name, value, ok := strings.Cut(ov, "=")
		if !ok || name == "" {
			return fmt.Errorf("bad override %q, want name=value", ov)
		}
		p.Overrides.Set(name, value)
	}

	p.Touch()
	if err := project.SaveProject(path, p, ws.Config.BackupCount); err != nil {
		return err
	}
	printSuccess("Updated %s", path)
	return nil
}

func newProjectImportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create project files from an order list (CSV, Excel) or a DXF drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectImport(args[0], outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the imported project files")

	return cmd
}

func runProjectImport(path, outDir string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	res := importer.ImportFile(path, ws.Config)
	for _, w := range res.Warnings {
		printWarning("%s", w)
	}
	for _, e := range res.Errors {
		printWarning("%s", e)
	}
	if len(res.Projects) == 0 {
		return fmt.Errorf("no projects imported from %s", path)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, p := range res.Projects {
		if p.SelectedHinge != "" && ws.Profiles.FindByName(model.KindHinge, p.SelectedHinge) == nil {
			printWarning("%s: unknown hinge profile %q", p.Name, p.SelectedHinge)
		}
		if p.SelectedLock != "" && ws.Profiles.FindByName(model.KindLock, p.SelectedLock) == nil {
			printWarning("%s: unknown lock profile %q", p.Name, p.SelectedLock)
		}

		out := filepath.Join(outDir, projectFileName(p.Name))
		if err := project.SaveProject(out, p, ws.Config.BackupCount); err != nil {
			return err
		}
		printFile(out)
	}

	printSuccess("Imported %d of %d rows from %s",
		len(res.Projects), len(res.Projects)+len(res.Errors), filepath.Base(path))
	return nil
}

// parseHingeAssignment parses a "N=MM" hinge position assignment.
func parseHingeAssignment(s string) (slot int, pos float64, err error) {
	numStr, posStr, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("bad hinge assignment %q, want N=MM", s)
	}
	slot, err = strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil || slot < 1 || slot > 4 {
		return 0, 0, fmt.Errorf("bad hinge slot in %q, want 1 to 4", s)
	}
	pos, err = strconv.ParseFloat(strings.TrimSpace(posStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad hinge position in %q", s)
	}
	return slot, pos, nil
}

// parseSide parses a hinging side name.
func parseSide(s string) (model.Side, error) {
	switch strings.ToLower(s) {
	case string(model.SideRight):
		return model.SideRight, nil
	case string(model.SideLeft):
		return model.SideLeft, nil
	}
	return "", fmt.Errorf("unknown side %q, want right or left", s)
}

// projectFileName derives a file name from the project name.
func projectFileName(name string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.ToLower(strings.TrimSpace(name)))
	base = strings.Trim(base, "_")
	if base == "" {
		base = "project"
	}
	return base + ".json"
}
