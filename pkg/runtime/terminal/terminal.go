package terminal

import (
	"github.com/edu-tools/mentor-dashboard/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// NewCLI creates a new CLI instance
func NewCLI() *CLI {
	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mentor-dashboard",
		Short: "Weekly time tracking reports and visualizations for project teams",
	}

	cmd.AddCommand(commands.NewGenerateCmd())
	cmd.AddCommand(commands.NewSummaryCmd())

	return cmd
}
