package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/site"
)

var env config.Env

var rootCmd = &cobra.Command{
	Use:   "self-hosted",
	Short: "Self-hosted Infrastructure - documentation site landing pages",
	Long: `Composes the localized home and about pages of the Self-hosted Infrastructure
documentation site from manifest.yaml, content.yaml and the translation dictionaries,
and serves, exports or prints them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		e, err := config.LoadEnv()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("site-dir") {
			e.SiteDir, _ = cmd.Flags().GetString("site-dir")
		}
		if cmd.Flags().Changed("log-level") {
			e.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		env = e

		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      env.Level(),
			TimeFormat: time.TimeOnly,
		})))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", tint.Err(err))
		os.Exit(1)
	}
}

func loadSite() (*site.Site, error) {
	return site.Load(env)
}

func init() {
	rootCmd.PersistentFlags().String("site-dir", ".", "Directory holding manifest.yaml (overrides SITE_DIR)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
}
