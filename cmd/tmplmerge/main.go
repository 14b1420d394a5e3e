package main

import (
	"os"

	"github.com/arthur-debert/tmplmerge/internal/cli"
	"github.com/arthur-debert/tmplmerge/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(os.Stderr, ui.FormatAuto).Errorf("%v", err)
		os.Exit(1)
	}
}
