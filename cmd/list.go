package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iotempower/installcheck/internal/catalog"
	"github.com/iotempower/installcheck/internal/options"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the packages that verify would check, without querying them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		if listAll {
			for _, p := range catalog.Packages() {
				rows = append(rows, []string{p.Name, string(p.Manager), p.Module})
			}
		} else {
			opts, err := options.Load(localDir())
			if err != nil {
				return err
			}
			for _, c := range catalog.Resolve(opts) {
				rows = append(rows, []string{c.Name, string(c.Manager), c.Module})
			}
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, "No modules selected, nothing to verify.")
			return nil
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("PACKAGE", "MANAGER", "MODULE").
			Rows(rows...)
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "list the whole catalog instead of the selected modules")
	rootCmd.AddCommand(listCmd)
}
