package main

import (
	"github.com/spf13/cobra"

	"pbxreg/internal/planfile"
)

var applyCmd = &cobra.Command{
	Use:   "apply <plans.toml>",
	Short: "Register a batch of files from a TOML plan file",
	Long: `Apply every [[file]] table in the plan file, in order, as a single
transaction: if any registration fails the manifest is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	plans, err := planfile.Load(args[0])
	if err != nil {
		return err
	}
	return runPlans(cmd, plans)
}
