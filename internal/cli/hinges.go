package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/placement"
)

func newHingesCmd() *cobra.Command {
	var height float64

	cmd := &cobra.Command{
		Use:   "hinges COUNT",
		Short: "Distribute hinges over the frame height",
		Long: `Hinges prints the automatic hinge positions for a frame: the top hinge
at 150 mm, the bottom one near the frame foot and the middle ones with
gaps widening towards the bottom.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad hinge count %q", args[0])
			}

			ws, err := openWorkspace()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("height") {
				height = ws.Config.DefaultFrameHeight
			}

			h := model.ClampHeight(height)
			positions := placement.AutoHingePositions(h, count)
			if positions == nil {
				return fmt.Errorf("unusable hinge count %d (1 to 4 supported)", count)
			}

			printTitle(fmt.Sprintf("%d hinges on a %s mm frame", count, model.FormatNumber(h)))
			for i, pos := range positions {
				printKeyValue(fmt.Sprintf("Hinge %d", i+1), model.FormatNumber(pos)+" mm")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&height, "height", 0, "frame height in mm (default from config)")

	return cmd
}
