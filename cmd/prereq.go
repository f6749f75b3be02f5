package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iotempower/installcheck/internal/catalog"
	"github.com/iotempower/installcheck/internal/options"
	"github.com/iotempower/installcheck/internal/prereq"
	"github.com/iotempower/installcheck/internal/runner"
)

var prereqCmd = &cobra.Command{
	Use:   "prereq",
	Short: "Check that the package manager tools used by verify are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.SystemRunner{}

		// Without settings, check every manager the catalog knows.
		var checks []catalog.Check
		if opts, err := options.Load(localDir()); err == nil {
			checks = catalog.Resolve(opts)
		} else {
			for _, p := range catalog.Packages() {
				checks = append(checks, catalog.Check{Name: p.Name, Manager: p.Manager, Module: p.Module})
			}
		}

		if errs := prereq.Check(r, prereq.Managers(checks)); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, "  -", e)
			}
			return fmt.Errorf("missing prerequisites")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All package manager tools are available.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prereqCmd)
}
