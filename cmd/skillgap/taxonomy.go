package main

import (
	"skill-gap/internal/domain/skill"

	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the skill taxonomy",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), skill.DefaultTaxonomy().Categories())
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}
