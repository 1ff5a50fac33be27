// Package planfile loads batch registration plans from a TOML document.
//
// A plan file is the declarative replacement for the per-file tables the old
// ad hoc scripts kept hardcoded:
//
//	[[file]]
//	name   = "LoginView.swift"
//	group  = "Views"
//	phases = ["Sources"]
//	after  = "BookResultView.swift"
//
//	[[file]]
//	name  = "VirtualLibrary.entitlements"
//	group = "VirtualLibraryApp"
//
//	  [[file.set]]
//	  configuration = "Debug"
//	  key           = "CODE_SIGN_ENTITLEMENTS"
//	  value         = "VirtualLibraryApp/VirtualLibrary.entitlements"
//
// Unknown keys are rejected rather than ignored: a typoed "phase" silently
// dropping a build-phase registration is exactly the class of bug the engine
// exists to prevent.
package planfile

import (
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"

	"pbxreg/internal/pbx"
)

type document struct {
	Files []fileEntry `toml:"file"`
}

type fileEntry struct {
	Name    string         `toml:"name"`
	Path    string         `toml:"path"`
	Group   string         `toml:"group"`
	Phases  []string       `toml:"phases"`
	After   string         `toml:"after"`
	AfterID string         `toml:"after_id"`
	Kind    string         `toml:"kind"`
	Set     []settingEntry `toml:"set"`
}

type settingEntry struct {
	Configuration string `toml:"configuration"`
	Key           string `toml:"key"`
	Value         string `toml:"value"`
}

// Load reads a plan file and converts it into registration plans, in file
// order. Name defaults to the base of path and vice versa, so the common
// case needs only one of the two.
func Load(file string) ([]pbx.RegistrationPlan, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	plans, err := parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return plans, nil
}

func parse(data string) ([]pbx.RegistrationPlan, error) {
	var doc document
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return nil, fmt.Errorf("unknown keys: %v", un)
	}
	if len(doc.Files) == 0 {
		return nil, fmt.Errorf("no [[file]] tables")
	}

	plans := make([]pbx.RegistrationPlan, 0, len(doc.Files))
	for i, f := range doc.Files {
		name, stored := f.Name, f.Path
		if name == "" {
			name = path.Base(stored)
		}
		if stored == "" {
			stored = name
		}
		if name == "" || name == "." {
			return nil, fmt.Errorf("[[file]] %d: name or path required", i+1)
		}
		p := pbx.RegistrationPlan{
			FileName:   name,
			StoredPath: stored,
			Group:      f.Group,
			Phases:     f.Phases,
			After:      f.After,
			AfterID:    f.AfterID,
			FileKind:   f.Kind,
		}
		for _, s := range f.Set {
			p.Settings = append(p.Settings, pbx.SettingEdit{
				Configuration: s.Configuration,
				Key:           s.Key,
				Value:         s.Value,
			})
		}
		plans = append(plans, p)
	}
	return plans, nil
}
