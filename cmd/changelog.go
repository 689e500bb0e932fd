package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/veneer/internal/changelog"
)

var changelogSince string

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show release notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := changelog.Since(changelogSince, changelog.Entries())
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "No changes since %s.\n", changelogSince)
			return nil
		}
		return changelog.Write(out, entries)
	},
}

func init() {
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "Only show versions newer than this one")
	rootCmd.AddCommand(changelogCmd)
}
