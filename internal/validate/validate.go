// Package validate performs lightweight, dependency-free validation around a
// registration run: plan pre-flight checks before the engine touches the
// manifest, and a referential-integrity pass over the mutated text after.
//
// Goals:
//   - Aggregate multiple issues into a single error for better UX
//   - Deterministic, strict-enough checks without being overbearing
//   - No manifest AST: integrity is checked on the same structural line
//     shapes the engine edits
package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"pbxreg/internal/pbx"
)

// Plans validates a batch of registration plans before any edit:
//
//   - fileName, storedPath and group must be non-empty
//   - storedPath must be relative, forward-slashed, without ".." segments
//   - no two plans in the batch may share a storedPath
//   - build phase names and setting edits must be complete
//
// Returns nil or a single aggregated error describing every issue found.
func Plans(plans []pbx.RegistrationPlan) error {
	var errs errlist

	if len(plans) == 0 {
		errs.add("no registration plans given")
	}

	seen := make(map[string]struct{}, len(plans))
	for i, p := range plans {
		prefix := fmt.Sprintf("plan %d (%s)", i+1, p.FileName)

		if p.FileName == "" {
			errs.add("%s: fileName must be non-empty", prefix)
		}
		if p.Group == "" {
			errs.add("%s: group must be non-empty", prefix)
		}

		switch {
		case p.StoredPath == "":
			errs.add("%s: storedPath must be non-empty", prefix)
		case filepath.IsAbs(p.StoredPath):
			errs.add("%s: storedPath must be relative, got %q", prefix, p.StoredPath)
		case strings.Contains(p.StoredPath, `\`):
			errs.add("%s: storedPath must use forward slashes, found backslash", prefix)
		case hasDotDot(p.StoredPath):
			errs.add("%s: storedPath must not contain '..' segments (got %q)", prefix, p.StoredPath)
		}

		if p.StoredPath != "" {
			if _, dup := seen[p.StoredPath]; dup {
				errs.add("%s: duplicate storedPath %q in batch", prefix, p.StoredPath)
			}
			seen[p.StoredPath] = struct{}{}
		}

		phaseSeen := make(map[string]struct{}, len(p.Phases))
		for _, phase := range p.Phases {
			if strings.TrimSpace(phase) == "" {
				errs.add("%s: build phase name must be non-empty", prefix)
				continue
			}
			if _, dup := phaseSeen[phase]; dup {
				errs.add("%s: duplicate build phase %q", prefix, phase)
			}
			phaseSeen[phase] = struct{}{}
		}
		for j, s := range p.Settings {
			if s.Configuration == "" || s.Key == "" {
				errs.add("%s: setting %d: configuration and key are required", prefix, j+1)
			}
		}
	}

	return errs.err()
}

var (
	reDefined = regexp.MustCompile(`^\s*([0-9A-F]{24}) /\* .* \*/ = \{`)
	reListRef = regexp.MustCompile(`^\s*([0-9A-F]{24}) /\* .* \*/,$`)
	reFileRef = regexp.MustCompile(`fileRef = ([0-9A-F]{24}) `)
)

// Integrity checks that the mutated manifest still forms a closed record
// graph on the line shapes the engine edits: every fileRef and every
// children/files list entry resolves to a defined record, and no identifier
// is defined twice.
func Integrity(text string) error {
	var errs errlist

	defined := make(map[string]int)
	for _, ln := range strings.Split(text, "\n") {
		if m := reDefined.FindStringSubmatch(ln); m != nil {
			defined[m[1]]++
		}
	}
	for id, n := range defined {
		if n > 1 {
			errs.add("identifier %s defined %d times", id, n)
		}
	}

	for i, ln := range strings.Split(text, "\n") {
		if m := reListRef.FindStringSubmatch(ln); m != nil {
			if defined[m[1]] == 0 {
				errs.add("line %d: list entry %s resolves to no record", i+1, m[1])
			}
		}
		if m := reFileRef.FindStringSubmatch(ln); m != nil {
			if defined[m[1]] == 0 {
				errs.add("line %d: fileRef %s resolves to no record", i+1, m[1])
			}
		}
	}

	return errs.err()
}

// --- helpers -----------------------------------------------------------------

func hasDotDot(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// errlist aggregates multiple validation issues into a single error.
type errlist struct {
	msgs []string
}

func (e *errlist) add(format string, args ...any) {
	if e == nil {
		return
	}
	e.msgs = append(e.msgs, fmt.Sprintf(format, args...))
}

func (e *errlist) err() error {
	if e == nil || len(e.msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(e.msgs, "\n"))
}
