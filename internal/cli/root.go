// Package cli implements the framewizard command line interface.
//
// Commands cover the whole workshop flow: computing machining point
// layouts (solve, hinges, validate), rendering CNC programs and export
// artifacts (generate), managing the component catalogs (profile),
// editing project files and importing order lists (project), serving
// the JSON API (serve) and maintaining the workspace configuration
// (config). All commands accept --verbose for debug logging and
// --data-dir to point at an alternate workspace.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/FrameWizard/internal/project"
)

var (
	version = "dev"     // semantic version, injected via ldflags
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the build information shown by --version. The main
// package calls this with ldflags-injected values.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// dataDir is the workspace override from --data-dir; empty selects the
// platform default directory.
var dataDir string

// openWorkspace loads the configured workspace.
func openWorkspace() (*project.Workspace, error) {
	return project.LoadWorkspace(dataDir)
}

// Execute runs the framewizard CLI and returns the first command error.
// Logging goes to stderr at info level, or debug with --verbose.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI under ctx so commands stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "framewizard",
		Short: "FrameWizard computes CNC machining layouts for door frames",
		Long: `FrameWizard places the four machining points of a door frame around its
hinge and lock hardware, validates the layout against the workshop
clearance rules and renders per-side CNC programs from G-code templates.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("framewizard %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "workspace directory (defaults to the platform config dir)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newHingesCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newProjectCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newSetsCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newServeCmd())

	return root
}
