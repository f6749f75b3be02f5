package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iotempower/installcheck/internal/config"
	"github.com/iotempower/installcheck/internal/log"
)

// settings layers flags over $IOTEMPOWER_LOCAL over installcheck.toml.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:          "installcheck",
	Short:        "Verify that the packages selected during iot_install are present",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(localDir())
		if err != nil {
			return err
		}
		settings.SetDefault("jobs", cfg.Jobs)
		settings.SetDefault("format", cfg.Format)
		settings.SetDefault("log-level", cfg.LogLevel)

		level, err := log.ParseLevel(settings.GetString("log-level"))
		if err != nil {
			return err
		}
		log.Init(log.Config{Level: level, Output: os.Stderr})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func RootCmd() *cobra.Command {
	return rootCmd
}

// localDir is the IoTempower local directory; "" means the working directory.
func localDir() string {
	return settings.GetString("local")
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("local", "", "IoTempower local directory (default $"+config.EnvLocalDir+", else the working directory)")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	_ = settings.BindEnv("local", config.EnvLocalDir)
	_ = settings.BindPFlag("local", flags.Lookup("local"))
	_ = settings.BindPFlag("log-level", flags.Lookup("log-level"))
}
