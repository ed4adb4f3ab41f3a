package main

import (
	"fmt"
	"os"

	"github.com/sera-tools/sera-atlas/pkg/runtime/terminal"
	"github.com/sera-tools/sera-atlas/pkg/services/report"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Rules:  report.DefaultRules(),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
