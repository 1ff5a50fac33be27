package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"pbxreg/internal/pbx"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Register one file into the project manifest",
	Long: `Register one file: <file> is the path stored on the file reference,
relative to its group. Compiled sources default to the Sources build phase;
pass --phase explicitly to override, or none is used for plain resources.

Examples:
  pbxreg add LoginView.swift --group Views
  pbxreg add CreateLibraryView.swift --group Views --after LibrariesListView.swift
  pbxreg add App.entitlements --group VirtualLibraryApp \
      --set Debug:CODE_SIGN_ENTITLEMENTS=App/App.entitlements \
      --set Release:CODE_SIGN_ENTITLEMENTS=App/App.entitlements`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringP("group", "g", "", "destination group display name (required)")
	addCmd.Flags().StringArray("phase", nil, "build phase display name (repeatable)")
	addCmd.Flags().String("after", "", "insert after this sibling display name within the group")
	addCmd.Flags().String("after-id", "", "insert after this sibling identifier within the group")
	addCmd.Flags().String("kind", "", "lastKnownFileType (inferred from the extension when empty)")
	addCmd.Flags().StringArray("set", nil, "build setting edit as CONFIG:KEY=VALUE (repeatable)")
	_ = addCmd.MarkFlagRequired("group")
}

func runAdd(cmd *cobra.Command, args []string) error {
	stored := args[0]
	group, _ := cmd.Flags().GetString("group")
	phases, _ := cmd.Flags().GetStringArray("phase")
	after, _ := cmd.Flags().GetString("after")
	afterID, _ := cmd.Flags().GetString("after-id")
	kind, _ := cmd.Flags().GetString("kind")
	sets, _ := cmd.Flags().GetStringArray("set")

	plan := pbx.RegistrationPlan{
		FileName:   path.Base(stored),
		StoredPath: stored,
		Group:      group,
		Phases:     defaultPhases(phases, effectiveKind(kind, stored)),
		After:      after,
		AfterID:    afterID,
		FileKind:   kind,
	}
	for _, s := range sets {
		edit, err := parseSetting(s)
		if err != nil {
			return err
		}
		plan.Settings = append(plan.Settings, edit)
	}

	return runPlans(cmd, []pbx.RegistrationPlan{plan})
}

func effectiveKind(kind, stored string) string {
	if kind != "" {
		return kind
	}
	return pbx.InferFileKind(stored)
}

// defaultPhases gives compiled sources the Sources phase when the caller
// passed no --phase. Resources stay phase-free.
func defaultPhases(phases []string, kind string) []string {
	if len(phases) > 0 {
		return phases
	}
	if strings.HasPrefix(kind, "sourcecode.") {
		return []string{"Sources"}
	}
	return nil
}

// parseSetting parses one --set argument of the form CONFIG:KEY=VALUE.
func parseSetting(s string) (pbx.SettingEdit, error) {
	config, rest, ok := strings.Cut(s, ":")
	if !ok {
		return pbx.SettingEdit{}, fmt.Errorf("invalid --set %q: want CONFIG:KEY=VALUE", s)
	}
	key, value, ok := strings.Cut(rest, "=")
	if !ok || config == "" || key == "" {
		return pbx.SettingEdit{}, fmt.Errorf("invalid --set %q: want CONFIG:KEY=VALUE", s)
	}
	return pbx.SettingEdit{Configuration: config, Key: key, Value: value}, nil
}
