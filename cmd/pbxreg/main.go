// Package main provides the pbxreg CLI: it registers source files and
// resources into an Xcode project.pbxproj manifest as one atomic, referentially
// consistent transaction.
//
// Commands:
//   - add   : register a single file from flags
//   - apply : register a batch of files described in a TOML plan file
//
// The CLI is a thin collaborator around internal/pbx: it resolves the
// manifest path, reads it once, runs the engine in memory, and writes once —
// only after the whole run succeeded.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pbxreg/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pbxreg",
	Short: "Register files into an Xcode project manifest",
	Long: `pbxreg edits project.pbxproj so that a new file shows up everywhere it
must: file reference, build file, build phase, group tree and build settings.
Edits are all-or-nothing; a failed run leaves the manifest untouched.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().StringP("project", "p", ".", "project directory, .xcodeproj bundle, or project.pbxproj path")
	rootCmd.PersistentFlags().BoolP("dry-run", "n", false, "show what would change without writing")
	rootCmd.PersistentFlags().Bool("diff", false, "print a unified diff of the changes")
	rootCmd.PersistentFlags().Bool("backup", false, "keep the previous manifest as project.pbxproj.bak")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupColor applies the --color flag before any output is rendered.
func setupColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
