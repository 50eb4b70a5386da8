package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func newSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage saved profile sets",
		Long: `Sets are named hinge and lock selections captured from a project,
including the hinge count and hinging side. Applying a set with
"project init --set" configures a new project in one step.`,
	}

	cmd.AddCommand(newSetsListCmd())
	cmd.AddCommand(newSetsSaveCmd())
	cmd.AddCommand(newSetsRemoveCmd())

	return cmd
}

func newSetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profile sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}

			if len(ws.Sets.Sets) == 0 {
				printInfo("No profile sets saved")
				return nil
			}
			for _, s := range ws.Sets.Sets {
				printKeyValue(s.Name, fmt.Sprintf("hinge %s, lock %s, %d hinges, %s hand",
					selectionName(s.SelectedHinge), selectionName(s.SelectedLock),
					s.HingeCount, s.Orientation))
				if s.Description != "" {
					printDetail("%s", s.Description)
				}
			}
			return nil
		},
	}
}

func newSetsSaveCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save NAME PROJECT",
		Short: "Capture a project's selections as a named set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			p, err := project.LoadProject(args[1])
			if err != nil {
				return err
			}

			set := model.NewProfileSet(args[0], description, &p)
			if err := ws.Sets.Add(set); err != nil {
				return err
			}
			if err := ws.SaveSets(); err != nil {
				return err
			}

			printSuccess("Saved profile set %q", set.Name)
			printNextStep("Apply it", fmt.Sprintf("framewizard project init NAME --set %q", set.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what the set is for")

	return cmd
}

func newSetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a profile set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			set := ws.Sets.FindByName(args[0])
			if set == nil {
				return fmt.Errorf("unknown profile set %q", args[0])
			}
			ws.Sets.Remove(set.ID)
			if err := ws.SaveSets(); err != nil {
				return err
			}

			printSuccess("Removed profile set %q", args[0])
			return nil
		},
	}
}
