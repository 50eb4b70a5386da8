package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout solver and generator as a JSON API",
		Long: `Serve loads the workspace and exposes it over HTTP. The API offers
the same solver, validation and program generation as the solve,
validate and generate commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace()
			if err != nil {
				return err
			}

			printInfo("Serving API on %s", addr)
			printDetail("workspace: %s", ws.Dir)
			return server.New(ws).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
