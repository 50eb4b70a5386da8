package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/gcode"
	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage component types and profiles",
		Long: `Profile manages the hinge and lock catalogs: component types carry the
G-code templates, profiles bind a type to concrete parameter values.
Projects select profiles by name.`,
	}

	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileAddCmd())
	cmd.AddCommand(newProfileRemoveCmd())
	cmd.AddCommand(newProfileExportCmd())
	cmd.AddCommand(newProfileImportCmd())
	cmd.AddCommand(newTypeAddCmd())
	cmd.AddCommand(newTypeRemoveCmd())

	return cmd
}

func newProfileListCmd() *cobra.Command {
	var kindFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List component types and profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}

			kinds := model.ComponentKinds
			if kindFilter != "" {
				kind, err := parseKind(kindFilter)
				if err != nil {
					return err
				}
				kinds = []model.ComponentKind{kind}
			}

			for _, kind := range kinds {
				printTitle(kindTitle(kind) + " types")
				names := ws.Types.Names(kind)
				if len(names) == 0 {
					printDetail("none")
				}
				for _, name := range names {
					t := ws.Types.FindByName(kind, name)
					n := len(gcode.ScanPlaceholders(t.GCode))
					printKeyValue(name, fmt.Sprintf("%d variables", n))
				}

				printTitle(kindTitle(kind) + " profiles")
				profiles := ws.Profiles.Names(kind)
				if len(profiles) == 0 {
					printDetail("none")
				}
				for _, name := range profiles {
					prof := ws.Profiles.FindByName(kind, name)
					printKeyValue(name, "type "+prof.TypeName)
				}
				printNewline()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFilter, "kind", "", "limit to one kind: hinge or lock")

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show KIND NAME",
		Short: "Show a profile and its effective template values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			prof := ws.Profiles.FindByName(kind, args[1])
			if prof == nil {
				return fmt.Errorf("unknown %s profile %q", kind, args[1])
			}
			typ := ws.Types.FindByName(kind, prof.TypeName)
			if typ == nil {
				return fmt.Errorf("%s profile %q references unknown type %q", kind, prof.Name, prof.TypeName)
			}

			printTitle(fmt.Sprintf("%s (%s profile)", prof.Name, kind))
			printKeyValue("Type", typ.Name)
			printKeyValue("Updated", prof.UpdatedAt)
			printNewline()

			printTitle("Variables")
			for _, ph := range gcode.ScanPlaceholders(typ.GCode) {
				printKeyValue(ph.Name, effectiveValue(ph, prof))
			}
			return nil
		},
	}
}

// effectiveValue renders the value a placeholder resolves to for one
// profile, marking defaults and unresolved names.
func effectiveValue(ph gcode.Placeholder, prof *model.ComponentProfile) string {
	switch ph.Kind {
	case gcode.VarDollar:
		return StyleDim.Render("job value")
	case gcode.VarL:
		if v, ok := prof.LVars[ph.Name]; ok && v != "" {
			return v
		}
	default:
		if v, ok := prof.CustomVars[ph.Name]; ok && v != "" {
			return v
		}
	}
	if ph.HasDefault {
		return ph.Default + StyleDim.Render(" (default)")
	}
	return StyleWarning.Render("unset")
}

func newProfileAddCmd() *cobra.Command {
	var typeName string
	var lvars, customs []string

	cmd := &cobra.Command{
		Use:   "add KIND NAME",
		Short: "Add a profile bound to an existing type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			if ws.Types.FindByName(kind, typeName) == nil {
				return fmt.Errorf("unknown %s type %q", kind, typeName)
			}

			prof := model.NewComponentProfile(args[1], kind, typeName)
			if prof.LVars, err = parseVars(lvars); err != nil {
				return err
			}
			if prof.CustomVars, err = parseVars(customs); err != nil {
				return err
			}
			if err := ws.Profiles.Add(prof); err != nil {
				return err
			}
			if err := ws.SaveProfiles(); err != nil {
				return err
			}

			printSuccess("Added %s profile %q (type %s)", kind, prof.Name, typeName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "component type the profile parameterizes")
	cmd.Flags().StringArrayVar(&lvars, "lvar", nil, "L variable as L1=value (repeatable)")
	cmd.Flags().StringArrayVar(&customs, "var", nil, "custom variable as name=value (repeatable)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newProfileRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove KIND NAME",
		Short: "Remove a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			prof := ws.Profiles.FindByName(kind, args[1])
			if prof == nil {
				return fmt.Errorf("unknown %s profile %q", kind, args[1])
			}
			ws.Profiles.Remove(prof.ID)
			if err := ws.SaveProfiles(); err != nil {
				return err
			}

			printSuccess("Removed %s profile %q", kind, args[1])
			return nil
		},
	}
}

func newProfileExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export KIND NAME FILE",
		Short: "Export a profile with its type to a JSON file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			prof := ws.Profiles.FindByName(kind, args[1])
			if prof == nil {
				return fmt.Errorf("unknown %s profile %q", kind, args[1])
			}
			typ := ws.Types.FindByName(kind, prof.TypeName)
			if typ == nil {
				return fmt.Errorf("%s profile %q references unknown type %q", kind, prof.Name, prof.TypeName)
			}

			bundle := project.ProfileBundle{Type: *typ, Profile: *prof}
			if err := project.ExportProfileBundle(args[2], bundle); err != nil {
				return fmt.Errorf("write bundle: %w", err)
			}

			printSuccess("Exported %s profile %q", kind, prof.Name)
			printFile(args[2])
			return nil
		},
	}
}

func newProfileImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a profile bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}

			bundle, err := project.ImportProfileBundle(args[0])
			if err != nil {
				return err
			}

			if ws.Types.FindByName(bundle.Type.Kind, bundle.Type.Name) == nil {
				if err := ws.Types.Add(bundle.Type); err != nil {
					return err
				}
				if err := ws.SaveTypes(); err != nil {
					return err
				}
				printInfo("Imported %s type %q", bundle.Type.Kind, bundle.Type.Name)
			}
			if err := ws.Profiles.Add(bundle.Profile); err != nil {
				return err
			}
			if err := ws.SaveProfiles(); err != nil {
				return err
			}

			printSuccess("Imported %s profile %q", bundle.Profile.Kind, bundle.Profile.Name)
			return nil
		},
	}
}

func newTypeAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-type KIND NAME TEMPLATE",
		Short: "Add a component type from a G-code template file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[2])
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}

			t := model.NewComponentType(args[1], kind, string(text))
			if err := ws.Types.Add(t); err != nil {
				return err
			}
			if err := ws.SaveTypes(); err != nil {
				return err
			}

			printSuccess("Added %s type %q", kind, t.Name)
			printDetail("%d template variables", len(gcode.ScanPlaceholders(t.GCode)))
			return nil
		},
	}
}

func newTypeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-type KIND NAME",
		Short: "Remove a component type that no profile uses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			t := ws.Types.FindByName(kind, args[1])
			if t == nil {
				return fmt.Errorf("unknown %s type %q", kind, args[1])
			}
			for _, prof := range ws.Profiles.Profiles {
				if prof.Kind == kind && prof.TypeName == t.Name {
					return fmt.Errorf("%s profile %q still uses type %q", kind, prof.Name, t.Name)
				}
			}

			ws.Types.Remove(t.ID)
			if err := ws.SaveTypes(); err != nil {
				return err
			}

			printSuccess("Removed %s type %q", kind, args[1])
			return nil
		},
	}
}

// parseKind parses a component kind name.
func parseKind(s string) (model.ComponentKind, error) {
	switch strings.ToLower(s) {
	case string(model.KindHinge):
		return model.KindHinge, nil
	case string(model.KindLock):
		return model.KindLock, nil
	}
	return "", fmt.Errorf("unknown kind %q, want hinge or lock", s)
}

// kindTitle capitalizes a kind for section headings.
func kindTitle(kind model.ComponentKind) string {
	s := string(kind)
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseVars parses repeated name=value assignments into a map.
func parseVars(assignments []string) (map[string]string, error) {
	vars := map[string]string{}
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("bad assignment %q, want name=value", a)
		}
		vars[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return vars, nil
}
