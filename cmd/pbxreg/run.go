package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pbxreg/internal/diff"
	"pbxreg/internal/pbx"
	"pbxreg/internal/projfile"
	"pbxreg/internal/validate"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
	idStyle  = color.New(color.FgCyan)
)

// runPlans is the shared add/apply path: resolve the manifest, validate the
// plans, run the engine over the in-memory text, integrity-check the result,
// and only then write. --dry-run stops before the write; --diff previews the
// change either way.
func runPlans(cmd *cobra.Command, plans []pbx.RegistrationPlan) error {
	setupColor(cmd)
	out := cmd.OutOrStdout()

	if err := validate.Plans(plans); err != nil {
		return err
	}

	projectArg, _ := cmd.Flags().GetString("project")
	path, err := projfile.Find(projectArg)
	if err != nil {
		return err
	}

	before, err := projfile.Read(path)
	if err != nil {
		return err
	}

	after, report, err := pbx.NewRegistrar().Apply(before, plans)
	if err != nil {
		failMark.Fprint(out, "✗ ")
		fmt.Fprintln(out, "no changes written")
		return err
	}
	if err := validate.Integrity(after); err != nil {
		return fmt.Errorf("post-run integrity check failed, no changes written: %w", err)
	}

	showDiff, _ := cmd.Flags().GetBool("diff")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if showDiff || dryRun {
		patch, err := diff.Unified("a/project.pbxproj", "b/project.pbxproj", []byte(before), []byte(after), diff.Options{})
		if err != nil {
			return fmt.Errorf("failed to render diff: %w", err)
		}
		fmt.Fprint(out, patch)
	}

	if dryRun {
		printReport(out, report)
		fmt.Fprintln(out, "dry run: manifest not written")
		return nil
	}

	backup, _ := cmd.Flags().GetBool("backup")
	if err := projfile.Write(path, after, backup); err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

// printReport renders one line per registered file plus its generated
// identifiers, phases in sorted order for stable output.
func printReport(w io.Writer, report *pbx.Report) {
	for _, res := range report.Results {
		okMark.Fprint(w, "✓ ")
		fmt.Fprintf(w, "%s (fileRef %s)\n", res.FileName, idStyle.Sprint(res.FileRefID))

		phases := make([]string, 0, len(res.BuildFileIDs))
		for phase := range res.BuildFileIDs {
			phases = append(phases, phase)
		}
		sort.Strings(phases)
		for _, phase := range phases {
			fmt.Fprintf(w, "  %s: %s\n", phase, idStyle.Sprint(res.BuildFileIDs[phase]))
		}
	}
}
