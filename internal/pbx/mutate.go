package pbx

import (
	"fmt"
	"regexp"
	"strings"
)

// Registrar applies registration plans to a manifest text as one
// all-or-nothing transaction. Plans are applied in order, each one against
// the text produced by the previous; any failure discards the in-progress
// buffer and returns the original input unchanged. The registrar performs no
// I/O: reading and writing the manifest is the caller's boundary.
type Registrar struct {
	alloc *Allocator
}

// NewRegistrar returns a registrar with a fresh identifier allocator.
func NewRegistrar() *Registrar {
	return &Registrar{alloc: NewAllocator()}
}

// Apply registers every plan against text and returns the mutated text plus a
// per-plan report. On error the returned text is the input, byte-for-byte,
// and the error names the plan and step that failed.
func (r *Registrar) Apply(text string, plans []RegistrationPlan) (string, *Report, error) {
	cur := text
	report := &Report{}
	for i, p := range plans {
		next, res, err := r.applyPlan(cur, p)
		if err != nil {
			return text, nil, fmt.Errorf("plan %d (%s): %w", i+1, p.FileName, err)
		}
		cur = next
		report.Results = append(report.Results, res)
	}
	return cur, report, nil
}

// insertion is one pending splice: where, what, and the step name used in
// error messages. Anchors are resolved at application time, never before.
type insertion struct {
	step string
	spec Spec
	frag string
}

func (r *Registrar) applyPlan(text string, p RegistrationPlan) (string, Result, error) {
	if p.FileName == "" || p.StoredPath == "" || p.Group == "" {
		return text, Result{}, fmt.Errorf("incomplete plan: fileName, storedPath and group are required")
	}
	// Phases form an ordered set: one build file per (file, phase) pair.
	p.Phases = uniqueStrings(p.Phases)

	// Pre-flight: a stored path may be registered at most once, whether it
	// arrived in an earlier run or earlier in this one.
	if pathRegistered(text, p.StoredPath) {
		return text, Result{}, fmt.Errorf("%w: path %q", ErrDuplicateFile, p.StoredPath)
	}

	fileRef, err := r.alloc.Allocate(text)
	if err != nil {
		return text, Result{}, err
	}
	buildIDs := make(map[string]string, len(p.Phases))
	for _, phase := range p.Phases {
		id, err := r.alloc.Allocate(text)
		if err != nil {
			return text, Result{}, err
		}
		buildIDs[phase] = id
	}

	ops, err := planInsertions(p, fileRef, buildIDs)
	if err != nil {
		return text, Result{}, err
	}

	cur := text
	for _, op := range ops {
		a, err := Locate(cur, op.spec)
		if err != nil {
			return text, Result{}, fmt.Errorf("%s: %w", op.step, err)
		}
		cur = splice(cur, a, op.frag)
	}

	for _, e := range p.Settings {
		cur, err = applySetting(cur, e)
		if err != nil {
			return text, Result{}, fmt.Errorf("build setting %s.%s: %w", e.Configuration, e.Key, err)
		}
	}

	return cur, Result{FileName: p.FileName, FileRefID: fileRef, BuildFileIDs: buildIDs}, nil
}

// planInsertions composes every fragment the plan needs, paired with the
// anchor spec it must land on. Composition happens up front so a rendering
// failure costs nothing; anchors stay symbolic until each splice.
func planInsertions(p RegistrationPlan, fileRef string, buildIDs map[string]string) ([]insertion, error) {
	var ops []insertion

	frag, err := Compose(KindFileReference, Fields{
		ID: fileRef, Name: p.FileName, Path: p.StoredPath, FileKind: p.fileKind(),
	})
	if err != nil {
		return nil, err
	}
	ops = append(ops, insertion{step: "file reference", spec: SectionStart("PBXFileReference"), frag: frag})

	for _, phase := range p.Phases {
		bf := buildIDs[phase]
		frag, err := Compose(KindBuildFile, Fields{ID: bf, FileRef: fileRef, Name: p.FileName, Phase: phase})
		if err != nil {
			return nil, err
		}
		ops = append(ops, insertion{step: "build file (" + phase + ")", spec: SectionStart("PBXBuildFile"), frag: frag})

		frag, err = Compose(KindPhaseEntry, Fields{ID: bf, Name: p.FileName, Phase: phase})
		if err != nil {
			return nil, err
		}
		ops = append(ops, insertion{step: "phase entry (" + phase + ")", spec: PhaseFiles(phase), frag: frag})
	}

	frag, err = Compose(KindGroupChild, Fields{ID: fileRef, Name: p.FileName})
	if err != nil {
		return nil, err
	}
	spec := GroupStart(p.Group)
	if p.After != "" || p.AfterID != "" {
		spec = SiblingAfter(p.Group, p.AfterID, p.After)
	}
	ops = append(ops, insertion{step: "group child", spec: spec, frag: frag})

	return ops, nil
}

// applySetting inserts key = value into every matching configuration block
// that does not already assign the key. Blocks are re-resolved after each
// splice; a key that is present everywhere makes the edit a no-op.
func applySetting(text string, e SettingEdit) (string, error) {
	if e.Configuration == "" || e.Key == "" {
		return text, fmt.Errorf("incomplete setting edit: configuration and key are required")
	}
	frag, err := Compose(KindBuildSetting, Fields{Key: e.Key, Value: e.Value})
	if err != nil {
		return text, err
	}
	for {
		lines := splitLines(text)
		blocks := findConfigSettings(lines, e.Configuration)
		if len(blocks) == 0 {
			return text, fmt.Errorf("%w: configuration %q", ErrAnchorNotFound, e.Configuration)
		}
		inserted := false
		for _, b := range blocks {
			if hasSettingKey(lines, b, e.Key) {
				continue
			}
			text = splice(text, Anchor{Line: b.insert}, frag)
			inserted = true
			break // line indexes moved; re-resolve before the next block
		}
		if !inserted {
			return text, nil
		}
	}
}

// splice inserts frag in front of the anchor line. Lines keep their
// terminators, so joining with the empty separator reconstructs the text.
func splice(text string, a Anchor, frag string) string {
	lines := splitLines(text)
	if a.Line >= len(lines) {
		return text + frag
	}
	return strings.Join(lines[:a.Line], "") + frag + strings.Join(lines[a.Line:], "")
}

// uniqueStrings keeps the first occurrence of each value, preserving order.
func uniqueStrings(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

var reRefPath = regexp.MustCompile(`isa = PBXFileReference;.* path = ("([^"]*)"|[^;]+);`)

// pathRegistered reports whether some file reference already stores path.
// Only PBXFileReference records count: groups also carry path fields.
func pathRegistered(text, stored string) bool {
	for _, ln := range splitLines(text) {
		t := trimLine(ln)
		if !strings.Contains(t, "isa = PBXFileReference;") {
			continue
		}
		m := reRefPath.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		p := m[1]
		if strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
			p = m[2]
		}
		if p == stored {
			return true
		}
	}
	return false
}
