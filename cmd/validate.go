package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest, translations and content without serving anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d locales, %d features, %d services, %d quick start links, %d technologies\n",
			len(s.Locales.Supported()),
			len(s.Content.Features),
			len(s.Content.Services),
			len(s.Content.QuickStart),
			len(s.Content.TechStack),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
