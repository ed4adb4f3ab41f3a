package terminal

import (
	"io"
	"os"

	"github.com/sera-tools/sera-atlas/pkg/runtime/terminal/commands"
	"github.com/sera-tools/sera-atlas/pkg/services/report"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rules   report.Rules
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Rules  report.Rules
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		rules:  opts.Rules,
		output: opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sera",
		Short: "Greenhouse feasibility report tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.rules, cli.output))

	return cmd
}
