package pbx

import (
	"errors"
	"strings"
	"testing"
)

func TestComposeBuildFileExact(t *testing.T) {
	got, err := Compose(KindBuildFile, Fields{
		ID:      "BB0000000000000000000001",
		FileRef: "BB0000000000000000000002",
		Name:    "LoginView.swift",
		Phase:   "Sources",
	})
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	want := "\t\tBB0000000000000000000001 /* LoginView.swift in Sources */ = {isa = PBXBuildFile; fileRef = BB0000000000000000000002 /* LoginView.swift */; };\n"
	if got != want {
		t.Fatalf("fragment mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestComposeFileReferenceExact(t *testing.T) {
	got, err := Compose(KindFileReference, Fields{
		ID:       "BB0000000000000000000002",
		Name:     "LoginView.swift",
		Path:     "LoginView.swift",
		FileKind: "sourcecode.swift",
	})
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	want := "\t\tBB0000000000000000000002 /* LoginView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = LoginView.swift; sourceTree = \"<group>\"; };\n"
	if got != want {
		t.Fatalf("fragment mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestComposeQuotesNonTokenValues(t *testing.T) {
	got, err := Compose(KindFileReference, Fields{
		ID:       "BB0000000000000000000003",
		Name:     "My View.swift",
		Path:     "My View.swift",
		FileKind: "sourcecode.swift",
	})
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if want := `path = "My View.swift";`; !strings.Contains(got, want) {
		t.Fatalf("expected quoted path in %q", got)
	}

	got, err = Compose(KindBuildSetting, Fields{Key: "CODE_SIGN_ENTITLEMENTS", Value: "App/App.entitlements"})
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	// Slashes and dots are token chars; no quoting expected.
	if want := "\t\t\t\tCODE_SIGN_ENTITLEMENTS = App/App.entitlements;\n"; got != want {
		t.Fatalf("setting fragment mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestComposeDeterministic(t *testing.T) {
	f := Fields{ID: "BB0000000000000000000004", Name: "X.swift", Phase: "Sources"}
	a, err := Compose(KindPhaseEntry, f)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	b, err := Compose(KindPhaseEntry, f)
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if a != b {
		t.Fatalf("non-deterministic output: %q vs %q", a, b)
	}
}

func TestComposeUnsupportedKind(t *testing.T) {
	_, err := Compose(RecordKind("target-dependency"), Fields{})
	if !errors.Is(err, ErrUnsupportedRecordKind) {
		t.Fatalf("expected ErrUnsupportedRecordKind, got %v", err)
	}
}
