package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the workspace configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigExportCmd())
	cmd.AddCommand(newConfigImportCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the app defaults and machine setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}

			printTitle("Project defaults")
			printKeyValue("Frame height", model.FormatNumber(ws.Config.DefaultFrameHeight)+" mm")
			printKeyValue("Frame width", model.FormatNumber(ws.Config.DefaultFrameWidth)+" mm")
			printKeyValue("Door width", model.FormatNumber(ws.Config.DefaultDoorWidth)+" mm")
			printKeyValue("Hinges", fmt.Sprintf("%d", ws.Config.DefaultHingeCount))
			printKeyValue("Orientation", string(ws.Config.DefaultOrientation))
			printKeyValue("Output dir", orDefault(ws.Config.OutputDir, "current directory"))
			printKeyValue("Backups", fmt.Sprintf("%d", ws.Config.BackupCount))
			printNewline()

			printTitle("Machine")
			printKeyValue("Controller", ws.Machine.Controller)
			printKeyValue("Offsets", fmt.Sprintf("X%s Y%s Z%s mm",
				model.FormatNumber(ws.Machine.Offsets.X),
				model.FormatNumber(ws.Machine.Offsets.Y),
				model.FormatNumber(ws.Machine.Offsets.Z)))
			printKeyValue("Travel X", fmt.Sprintf("%s to %s mm",
				model.FormatNumber(ws.Machine.Travel.MinX), model.FormatNumber(ws.Machine.Travel.MaxX)))
			printKeyValue("Travel Y", fmt.Sprintf("%s to %s mm",
				model.FormatNumber(ws.Machine.Travel.MinY), model.FormatNumber(ws.Machine.Travel.MaxY)))
			printKeyValue("Travel Z", fmt.Sprintf("%s to %s mm",
				model.FormatNumber(ws.Machine.Travel.MinZ), model.FormatNumber(ws.Machine.Travel.MaxZ)))
			printKeyValue("Safety", model.FormatNumber(ws.Machine.Geometry.ComponentSafety)+" mm")
			printNewline()

			printKeyValue("Workspace", ws.Dir)
			if len(ws.Config.RecentProjects) > 0 {
				printTitle("Recent projects")
				for _, r := range ws.Config.RecentProjects {
					printDetail("%s", r)
				}
			}
			return nil
		},
	}
}

// orDefault renders a value, or a dimmed fallback when it is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return StyleDim.Render(fallback)
	}
	return s
}

// configSetOpts holds the flags for config set.
type configSetOpts struct {
	defHeight    float64
	defWidth     float64
	defDoorWidth float64
	defHinges    int
	defSide      string
	outputDir    string
	backups      int
	controller   string
	offsetX      float64
	offsetY      float64
	offsetZ      float64
	minX, maxX   float64
	minY, maxY   float64
	minZ, maxZ   float64
}

func newConfigSetCmd() *cobra.Command {
	var opts configSetOpts

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change app defaults or machine settings",
		Long: `Set updates the workspace configuration. App defaults go to
config.json, machine settings to machine.toml; each file is only
rewritten when one of its values changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.defHeight, "default-height", 0, "default frame height in mm")
	f.Float64Var(&opts.defWidth, "default-width", 0, "default frame width in mm")
	f.Float64Var(&opts.defDoorWidth, "default-door-width", 0, "default door width in mm")
	f.IntVar(&opts.defHinges, "default-hinges", 0, "default hinge count")
	f.StringVar(&opts.defSide, "default-orientation", "", "default hinging side: right or left")
	f.StringVar(&opts.outputDir, "output-dir", "", "default program output directory")
	f.IntVar(&opts.backups, "backups", 0, "project backups to keep")
	f.StringVar(&opts.controller, "controller", "", "controller profile: "+strings.Join(model.GetMachineProfileNames(), ", "))
	f.Float64Var(&opts.offsetX, "offset-x", 0, "work offset X in mm")
	f.Float64Var(&opts.offsetY, "offset-y", 0, "work offset Y in mm")
	f.Float64Var(&opts.offsetZ, "offset-z", 0, "work offset Z in mm")
	f.Float64Var(&opts.minX, "min-x", 0, "travel envelope minimum X in mm")
	f.Float64Var(&opts.maxX, "max-x", 0, "travel envelope maximum X in mm")
	f.Float64Var(&opts.minY, "min-y", 0, "travel envelope minimum Y in mm")
	f.Float64Var(&opts.maxY, "max-y", 0, "travel envelope maximum Y in mm")
	f.Float64Var(&opts.minZ, "min-z", 0, "travel envelope minimum Z in mm")
	f.Float64Var(&opts.maxZ, "max-z", 0, "travel envelope maximum Z in mm")

	return cmd
}

func runConfigSet(cmd *cobra.Command, opts *configSetOpts) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	configChanged := false
	machineChanged := false

	if flags.Changed("default-height") {
		ws.Config.DefaultFrameHeight = model.ClampHeight(opts.defHeight)
		configChanged = true
	}
	if flags.Changed("default-width") {
		ws.Config.DefaultFrameWidth = opts.defWidth
		configChanged = true
	}
	if flags.Changed("default-door-width") {
		ws.Config.DefaultDoorWidth = opts.defDoorWidth
		configChanged = true
	}
	if flags.Changed("default-hinges") {
		if opts.defHinges < 0 || opts.defHinges > 4 {
			return fmt.Errorf("default hinge count %d out of range 0..4", opts.defHinges)
		}
		ws.Config.DefaultHingeCount = opts.defHinges
		configChanged = true
	}
	if opts.defSide != "" {
		side, err := parseSide(opts.defSide)
		if err != nil {
			return err
		}
		ws.Config.DefaultOrientation = side
		configChanged = true
	}
	if flags.Changed("output-dir") {
		ws.Config.OutputDir = opts.outputDir
		configChanged = true
	}
	if flags.Changed("backups") {
		if opts.backups < 0 {
			return fmt.Errorf("backup count must not be negative")
		}
		ws.Config.BackupCount = opts.backups
		configChanged = true
	}

	if opts.controller != "" {
		names := model.GetMachineProfileNames()
		found := false
		for _, n := range names {
			if n == opts.controller {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown controller %q, want one of %s", opts.controller, strings.Join(names, ", "))
		}
		ws.Machine.Controller = opts.controller
		machineChanged = true
	}
	machineFields := []struct {
		flag   string
		target *float64
		value  float64
	}{
		{"offset-x", &ws.Machine.Offsets.X, opts.offsetX},
		{"offset-y", &ws.Machine.Offsets.Y, opts.offsetY},
		{"offset-z", &ws.Machine.Offsets.Z, opts.offsetZ},
		{"min-x", &ws.Machine.Travel.MinX, opts.minX},
		{"max-x", &ws.Machine.Travel.MaxX, opts.maxX},
		{"min-y", &ws.Machine.Travel.MinY, opts.minY},
		{"max-y", &ws.Machine.Travel.MaxY, opts.maxY},
		{"min-z", &ws.Machine.Travel.MinZ, opts.minZ},
		{"max-z", &ws.Machine.Travel.MaxZ, opts.maxZ},
	}
	for _, field := range machineFields {
		if flags.Changed(field.flag) {
			*field.target = field.value
			machineChanged = true
		}
	}

	if !configChanged && !machineChanged {
		printInfo("Nothing to change")
		return nil
	}
	if configChanged {
		if err := ws.SaveConfig(); err != nil {
			return err
		}
		printSuccess("Updated app configuration")
	}
	if machineChanged {
		if err := ws.SaveMachine(); err != nil {
			return err
		}
		printSuccess("Updated machine setup")
	}
	return nil
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the workspace directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			fmt.Println(ws.Dir)
			return nil
		},
	}
}

func newConfigExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the whole workspace to one backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], ws); err != nil {
				return err
			}
			printSuccess("Exported workspace data")
			printFile(args[0])
			return nil
		},
	}
}

func newConfigImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the workspace from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			backup.Apply(ws)
			if err := saveAll(ws); err != nil {
				return err
			}

			printSuccess("Imported workspace data from %s (created %s)", args[0], backup.CreatedAt)
			return nil
		},
	}
}

// saveAll writes every workspace store back to disk.
func saveAll(ws *project.Workspace) error {
	savers := []func() error{
		ws.SaveConfig, ws.SaveMachine, ws.SaveTypes,
		ws.SaveProfiles, ws.SaveTemplates, ws.SaveSets,
	}
	for _, save := range savers {
		if err := save(); err != nil {
			return err
		}
	}
	return nil
}
