package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Application is what the console commands need from the composition root.
type Application interface {
	// Shell creates a console bound to in and out.
	Shell(in io.Reader, out io.Writer) *Shell
	// Serve runs the HTTP API and the scheduled jobs until ctx is done.
	Serve(ctx context.Context) error
	// ImportScenario stores the scenario file at path in the database under name.
	ImportScenario(ctx context.Context, name, path string) error
	// ListScenarios returns the names of the scenarios stored in the database.
	ListScenarios(ctx context.Context) ([]string, error)
}

// NewRootCmd builds the dronefleet command tree. Without a subcommand it opens
// the interactive menu.
func NewRootCmd(app Application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dronefleet",
		Short: "Drone fleet dispatch console",
		Long: `dronefleet loads delivery scenarios, plans drone missions and drives them
through launch and completion, interactively, from a script, or over HTTP.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Shell(cmd.InOrStdin(), cmd.OutOrStdout()).RunMenu(cmd.Context())
		},
	}

	rootCmd.AddCommand(MenuCmd(app))
	rootCmd.AddCommand(RunCmd(app))
	rootCmd.AddCommand(ServeCmd(app))
	rootCmd.AddCommand(ImportCmd(app))
	rootCmd.AddCommand(ScenariosCmd(app))

	return rootCmd
}

// MenuCmd returns the menu command
func MenuCmd(app Application) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Shell(cmd.InOrStdin(), cmd.OutOrStdout()).RunMenu(cmd.Context())
		},
	}
}

// RunCmd returns the run command
func RunCmd(app Application) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a comma-separated list of console steps",
		Long: `Run executes console steps in order and exits. Steps are menu numbers or names:
load[=source], plan, launch, complete, system, stats, notify, fleet, package=<id>.

Example:
  dronefleet run "load=scenario_demo.txt,plan,launch,complete,stats"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Shell(cmd.InOrStdin(), cmd.OutOrStdout()).RunScript(cmd.Context(), args[0])
		},
	}
}

// ServeCmd returns the serve command
func ServeCmd(app Application) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run the auto-dispatch job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context())
		},
	}
}

// ImportCmd returns the import command
func ImportCmd(app Application) *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Store a scenario file in the database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ImportScenario(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q imported from %s\n", args[0], args[1])
			return nil
		},
	}
}

// ScenariosCmd returns the scenarios command
func ScenariosCmd(app Application) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenarios stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.ListScenarios(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored scenario.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
