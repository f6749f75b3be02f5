package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iotempower/installcheck/internal/catalog"
	"github.com/iotempower/installcheck/internal/log"
	"github.com/iotempower/installcheck/internal/options"
	"github.com/iotempower/installcheck/internal/prereq"
	"github.com/iotempower/installcheck/internal/report"
	"github.com/iotempower/installcheck/internal/runner"
	"github.com/iotempower/installcheck/internal/verify"
)

var noProgress bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every package of the selected modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.SystemRunner{}
		local := localDir()

		format, err := report.ParseFormat(settings.GetString("format"))
		if err != nil {
			return err
		}

		opts, err := options.Load(local)
		if err != nil {
			return err
		}
		checks := catalog.Resolve(opts)
		log.Info("resolved checks", "modules", opts.EnabledModules(), "checks", len(checks))

		// Advisory only: a missing dpkg still fails each apt check on its own.
		for _, e := range prereq.Check(r, prereq.Managers(checks)) {
			log.Warn(e.Error())
		}

		v := verify.New(r, local)
		v.Jobs = settings.GetInt("jobs")

		var progress *report.Progress
		if !noProgress {
			progress = report.NewProgress(os.Stderr, len(checks))
		}
		v.OnResult = progress.Observe

		started := time.Now()
		results := v.Run(cmd.Context(), checks)
		progress.Done(os.Stderr)

		rep := report.New(local, started, time.Now(), results)
		if err := report.Write(cmd.OutOrStdout(), rep, format); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if !rep.OK() {
			return fmt.Errorf("%d of %d package checks did not pass", rep.Summary.Failed+rep.Summary.Errored, rep.Summary.Total)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().Int("jobs", 1, "number of package queries to run at once")
	verifyCmd.Flags().String("format", "text", "report format: text, json or yaml")
	verifyCmd.Flags().BoolVar(&noProgress, "no-progress", false, "never show a progress bar")
	_ = settings.BindPFlag("jobs", verifyCmd.Flags().Lookup("jobs"))
	_ = settings.BindPFlag("format", verifyCmd.Flags().Lookup("format"))
	rootCmd.AddCommand(verifyCmd)
}
