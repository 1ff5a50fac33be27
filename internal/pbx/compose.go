package pbx

import "fmt"

// RecordKind names a composable manifest entry shape.
type RecordKind string

const (
	// KindBuildFile bridges a file reference into a build phase:
	// one single-line record in the PBXBuildFile section.
	KindBuildFile RecordKind = "build-file"
	// KindFileReference is the file's single-line record in the
	// PBXFileReference section.
	KindFileReference RecordKind = "file-reference"
	// KindPhaseEntry is the build-file reference inside a phase's files list.
	KindPhaseEntry RecordKind = "phase-entry"
	// KindGroupChild is the file reference inside a group's children list.
	KindGroupChild RecordKind = "group-child"
	// KindBuildSetting is a key/value line inside a buildSettings map.
	KindBuildSetting RecordKind = "build-setting"
)

// Fields carries the semantic inputs for one composed fragment. Only the
// fields relevant to the requested kind are read.
type Fields struct {
	ID       string // record identifier (build file, file reference, phase/group entry)
	FileRef  string // referenced file identifier (build-file only)
	Name     string // display name used in /* ... */ comments
	Phase    string // build phase display name (build-file, phase-entry)
	Path     string // stored path (file-reference only)
	FileKind string // lastKnownFileType (file-reference only)
	Key      string // build-setting only
	Value    string // build-setting only
}

// Compose renders the exact text fragment for one record kind. It is a pure
// function: identical arguments always produce identical bytes (fixed tabs,
// fixed separators), so repeated runs yield stable diffs. Every fragment ends
// with a newline and is ready to splice in front of an anchor line.
func Compose(kind RecordKind, f Fields) (string, error) {
	switch kind {
	case KindBuildFile:
		return fmt.Sprintf("\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
			f.ID, f.Name, f.Phase, f.FileRef, f.Name), nil
	case KindFileReference:
		return fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = \"<group>\"; };\n",
			f.ID, f.Name, f.FileKind, quote(f.Path)), nil
	case KindPhaseEntry:
		return fmt.Sprintf("\t\t\t\t%s /* %s in %s */,\n", f.ID, f.Name, f.Phase), nil
	case KindGroupChild:
		return fmt.Sprintf("\t\t\t\t%s /* %s */,\n", f.ID, f.Name), nil
	case KindBuildSetting:
		return fmt.Sprintf("\t\t\t\t%s = %s;\n", f.Key, quote(f.Value)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRecordKind, kind)
	}
}

// quote wraps a value in double quotes when it contains characters outside
// the manifest's unquoted-token alphabet.
func quote(s string) string {
	if s == "" {
		return `""`
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '$' || c == '.' || c == '/':
		default:
			return `"` + s + `"`
		}
	}
	return s
}
