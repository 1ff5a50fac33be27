package pbx

import (
	"path"
	"strings"
)

// RegistrationPlan declares one file's registration: where it lives in the
// group tree, which build phases compile it, and any build-setting side
// effects. A plan with no phases registers a plain resource (for example an
// entitlements file) that is referenced but never compiled.
type RegistrationPlan struct {
	FileName   string        // display name, e.g. "LoginView.swift"
	StoredPath string        // path recorded on the file reference
	Group      string        // display name of the destination group
	Phases     []string      // build phase display names, in order
	After      string        // optional: insert after this sibling (display name)
	AfterID    string        // optional: insert after this sibling (identifier); wins over After
	FileKind   string        // lastKnownFileType; inferred from FileName when empty
	Settings   []SettingEdit // build-setting side effects
}

// SettingEdit sets one key in the buildSettings map of every configuration
// block with a matching name. Application is exactly-once: an existing key is
// left untouched.
type SettingEdit struct {
	Configuration string // e.g. "Debug" or "Release"
	Key           string
	Value         string
}

// Result reports the identifiers generated for one successfully applied plan.
type Result struct {
	FileName     string
	FileRefID    string
	BuildFileIDs map[string]string // build phase name -> build file identifier
}

// Report collects per-plan results for a fully successful run. A failed run
// produces no report; the error names the offending plan and step.
type Report struct {
	Results []Result
}

// fileKindByExt maps file extensions to the lastKnownFileType values the
// manifest grammar expects. Unlisted extensions fall back to "text".
var fileKindByExt = map[string]string{
	".swift":        "sourcecode.swift",
	".m":            "sourcecode.c.objc",
	".h":            "sourcecode.c.h",
	".entitlements": "text.plist.entitlements",
	".plist":        "text.plist.xml",
	".storyboard":   "file.storyboard",
	".xib":          "file.xib",
	".xcassets":     "folder.assetcatalog",
	".json":         "text.json",
	".md":           "net.daringfireball.markdown",
}

// InferFileKind returns the lastKnownFileType for a display name based on its
// extension.
func InferFileKind(name string) string {
	if k, ok := fileKindByExt[strings.ToLower(path.Ext(name))]; ok {
		return k
	}
	return "text"
}

// fileKind resolves the plan's effective lastKnownFileType.
func (p RegistrationPlan) fileKind() string {
	if p.FileKind != "" {
		return p.FileKind
	}
	return InferFileKind(p.FileName)
}
