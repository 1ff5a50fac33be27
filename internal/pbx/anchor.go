package pbx

// Anchor location over the manifest text. Anchors are structural handles
// (line indexes into the current text), never byte offsets, and must be
// re-resolved after every splice: each insertion invalidates everything
// located before it.
//
// Matching rules:
//   - Records are matched by their "ID /* name */ = {" opening line, with the
//     isa of the block confirming the record kind. Comment text alone is never
//     trusted across kinds.
//   - Zero matches fail with ErrAnchorNotFound; more than one fails with
//     ErrAmbiguousAnchor. The locator never picks "the first occurrence".

import (
	"fmt"
	"regexp"
	"strings"
)

type specKind string

const (
	specSectionStart specKind = "section-start"
	specPhaseFiles   specKind = "phase-files"
	specGroupStart   specKind = "group-start"
	specSiblingAfter specKind = "sibling-after"
)

// Spec names one insertion point: the start of a section, the files list of a
// build phase, the children list of a group, or the position right after a
// specific sibling inside a group.
type Spec struct {
	kind      specKind
	section   string
	phase     string
	group     string
	sibling   string
	siblingID string
}

// SectionStart anchors right after "/* Begin <section> section */".
func SectionStart(section string) Spec { return Spec{kind: specSectionStart, section: section} }

// PhaseFiles anchors right after the "files = (" of the named build phase.
func PhaseFiles(phase string) Spec { return Spec{kind: specPhaseFiles, phase: phase} }

// GroupStart anchors right after the "children = (" of the named group.
func GroupStart(group string) Spec { return Spec{kind: specGroupStart, group: group} }

// SiblingAfter anchors right after a child of the named group. The sibling is
// matched by identifier when siblingID is non-empty, otherwise by display
// name; a name shared by two children is ambiguous, not a free pick.
func SiblingAfter(group, siblingID, sibling string) Spec {
	return Spec{kind: specSiblingAfter, group: group, siblingID: siblingID, sibling: sibling}
}

func (s Spec) String() string {
	switch s.kind {
	case specSectionStart:
		return "section-start " + s.section
	case specPhaseFiles:
		return "phase-files " + s.phase
	case specGroupStart:
		return "group-start " + s.group
	case specSiblingAfter:
		if s.siblingID != "" {
			return fmt.Sprintf("sibling-after %s in %s", s.siblingID, s.group)
		}
		return fmt.Sprintf("sibling-after %q in %s", s.sibling, s.group)
	}
	return string(s.kind)
}

// Anchor is a resolved insertion point: new fragments are spliced in before
// line Line of the text the anchor was resolved against.
type Anchor struct {
	Line int
}

var (
	reRecordOpen = regexp.MustCompile(`^\s*([0-9A-F]{24}) /\* (.+) \*/ = \{$`)
	reChildEntry = regexp.MustCompile(`^\s*([0-9A-F]{24}) /\* (.+) \*/,$`)
	rePhaseIsa   = regexp.MustCompile(`^\s*isa = PBX\w*BuildPhase;$`)
	reGroupIsa   = regexp.MustCompile(`^\s*isa = PBX(Variant)?Group;$`)
	reConfigIsa  = regexp.MustCompile(`^\s*isa = XCBuildConfiguration;$`)
)

// Locate resolves a spec against the current manifest text. All candidate
// locations are enumerated before deciding; exactly one must remain.
func Locate(text string, spec Spec) (Anchor, error) {
	lines := splitLines(text)
	var candidates []int
	switch spec.kind {
	case specSectionStart:
		marker := "/* Begin " + spec.section + " section */"
		for i, ln := range lines {
			if trimLine(ln) == marker {
				candidates = append(candidates, i+1)
			}
		}
	case specPhaseFiles:
		for _, b := range findRecords(lines, spec.phase, rePhaseIsa) {
			if j := findInBlock(lines, b, `files = (`); j >= 0 {
				candidates = append(candidates, j+1)
			}
		}
	case specGroupStart:
		for _, b := range findRecords(lines, spec.group, reGroupIsa) {
			if j := findInBlock(lines, b, `children = (`); j >= 0 {
				candidates = append(candidates, j+1)
			}
		}
	case specSiblingAfter:
		groups := findRecords(lines, spec.group, reGroupIsa)
		if len(groups) == 0 {
			return Anchor{}, fmt.Errorf("%w: group-start %s", ErrAnchorNotFound, spec.group)
		}
		if len(groups) > 1 {
			return Anchor{}, fmt.Errorf("%w: group-start %s (%d candidates)", ErrAmbiguousAnchor, spec.group, len(groups))
		}
		open := findInBlock(lines, groups[0], `children = (`)
		if open < 0 {
			return Anchor{}, fmt.Errorf("%w: %s: group has no children list", ErrAnchorNotFound, spec)
		}
		for j := open + 1; j <= groups[0].end; j++ {
			if trimLine(lines[j]) == ");" {
				break
			}
			m := reChildEntry.FindStringSubmatch(trimLine(lines[j]))
			if m == nil {
				continue
			}
			if spec.siblingID != "" {
				if m[1] == spec.siblingID {
					candidates = append(candidates, j+1)
				}
			} else if m[2] == spec.sibling {
				candidates = append(candidates, j+1)
			}
		}
	default:
		return Anchor{}, fmt.Errorf("unknown anchor spec kind %q", spec.kind)
	}

	switch len(candidates) {
	case 0:
		return Anchor{}, fmt.Errorf("%w: %s", ErrAnchorNotFound, spec)
	case 1:
		return Anchor{Line: candidates[0]}, nil
	default:
		return Anchor{}, fmt.Errorf("%w: %s (%d candidates)", ErrAmbiguousAnchor, spec, len(candidates))
	}
}

// record is a block-shaped entry: its opening line, identifier, and the line
// carrying the matching closing brace.
type record struct {
	open, end int
	id        string
}

// findRecords returns every block record whose opening comment equals name
// and whose isa line matches isaRe.
func findRecords(lines []string, name string, isaRe *regexp.Regexp) []record {
	var out []record
	for i, ln := range lines {
		m := reRecordOpen.FindStringSubmatch(trimLine(ln))
		if m == nil || m[2] != name {
			continue
		}
		end := blockEnd(lines, i)
		if !blockHasLine(lines, i, end, isaRe) {
			continue
		}
		out = append(out, record{open: i, end: end, id: m[1]})
	}
	return out
}

// findInBlock returns the index of the first line inside the record whose
// trimmed text equals want, or -1.
func findInBlock(lines []string, b record, want string) int {
	for j := b.open + 1; j <= b.end && j < len(lines); j++ {
		if trimLine(lines[j]) == want {
			return j
		}
	}
	return -1
}

func blockHasLine(lines []string, open, end int, re *regexp.Regexp) bool {
	for j := open + 1; j <= end && j < len(lines); j++ {
		if re.MatchString(trimLine(lines[j])) {
			return true
		}
	}
	return false
}

// blockEnd returns the index of the line that closes the block opened at
// start, found by brace counting. Braces only occur as structure in this
// format, so a per-line count is exact.
func blockEnd(lines []string, start int) int {
	depth := 0
	for i := start; i < len(lines); i++ {
		depth += strings.Count(lines[i], "{") - strings.Count(lines[i], "}")
		if depth <= 0 {
			return i
		}
	}
	return len(lines) - 1
}

// settingsBlock is the buildSettings map of one configuration block: insert
// is the line index just inside the opening brace, end the closing line.
type settingsBlock struct {
	insert, end int
}

// findConfigSettings returns the buildSettings block of every
// XCBuildConfiguration whose "name = <config>;" line matches. The record
// comment is not trusted: the name field is authoritative.
func findConfigSettings(lines []string, config string) []settingsBlock {
	nameLine := "name = " + config + ";"
	nameQuoted := "name = \"" + config + "\";"
	var out []settingsBlock
	for i, ln := range lines {
		m := reRecordOpen.FindStringSubmatch(trimLine(ln))
		if m == nil {
			continue
		}
		end := blockEnd(lines, i)
		if !blockHasLine(lines, i, end, reConfigIsa) {
			continue
		}
		named := false
		for j := i + 1; j <= end && j < len(lines); j++ {
			if t := trimLine(lines[j]); t == nameLine || t == nameQuoted {
				named = true
				break
			}
		}
		if !named {
			continue
		}
		if open := findInBlock(lines, record{open: i, end: end}, `buildSettings = {`); open >= 0 {
			out = append(out, settingsBlock{insert: open + 1, end: blockEnd(lines, open)})
		}
	}
	return out
}

// hasSettingKey reports whether the buildSettings block already assigns key.
func hasSettingKey(lines []string, b settingsBlock, key string) bool {
	prefix := key + " = "
	for j := b.insert; j < b.end && j < len(lines); j++ {
		if strings.HasPrefix(trimLine(lines[j]), prefix) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	return strings.SplitAfter(text, "\n")
}

// trimLine strips the line terminator and surrounding indentation for
// structural comparison. Composition always re-emits canonical indentation.
func trimLine(ln string) string {
	return strings.TrimSpace(ln)
}
