package pbx

import (
	"strings"
	"testing"
)

func TestInferFileKind(t *testing.T) {
	cases := map[string]string{
		"LoginView.swift":             "sourcecode.swift",
		"AppDelegate.m":               "sourcecode.c.objc",
		"Bridging-Header.h":           "sourcecode.c.h",
		"VirtualLibrary.entitlements": "text.plist.entitlements",
		"Info.plist":                  "text.plist.xml",
		"Main.storyboard":             "file.storyboard",
		"Assets.xcassets":             "folder.assetcatalog",
		"README":                      "text",
		"data.unknownext":             "text",
	}
	for name, want := range cases {
		if got := InferFileKind(name); got != want {
			t.Fatalf("InferFileKind(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestRepeatedPhaseRegistersOnce(t *testing.T) {
	plan := RegistrationPlan{
		FileName:   "X.swift",
		StoredPath: "X.swift",
		Group:      "Views",
		Phases:     []string{"Sources", "Sources"},
	}
	out, report, err := NewRegistrar().Apply(sampleManifest, []RegistrationPlan{plan})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(report.Results[0].BuildFileIDs) != 1 {
		t.Fatalf("expected one build file, got %+v", report.Results[0].BuildFileIDs)
	}
	if n := strings.Count(out, "/* X.swift in Sources */"); n != 2 {
		t.Fatalf("build file + phase entry expected exactly once each, comment count %d", n)
	}
}
