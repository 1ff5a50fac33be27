// Package projfile is the persistence boundary for the manifest: discovery
// of project.pbxproj, one read before a run, one write after. The engine
// itself never touches the filesystem.
//
// Conventions:
//   - Find walks up from a start directory looking for *.xcodeproj bundles,
//     the way project roots are usually discovered; two bundles at the same
//     level is an error, never a guess.
//   - Write is atomic (temp file in the target directory, then rename) and
//     may leave a .bak copy of the previous content.
package projfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pbxreg/internal/textutil"
)

const manifestName = "project.pbxproj"

// Find resolves the manifest path. start may be the manifest file itself, an
// .xcodeproj bundle, or any directory at or below the project root.
func Find(start string) (string, error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", start, err)
	}

	if st, err := os.Stat(abs); err == nil && !st.IsDir() {
		if filepath.Base(abs) != manifestName {
			return "", fmt.Errorf("%q is not a %s", start, manifestName)
		}
		return abs, nil
	}

	dir := abs
	if filepath.Ext(dir) == ".xcodeproj" {
		p := filepath.Join(dir, manifestName)
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%q has no %s", start, manifestName)
		}
		return p, nil
	}

	for {
		matches, err := filepath.Glob(filepath.Join(dir, "*.xcodeproj", manifestName))
		if err != nil {
			return "", err
		}
		switch len(matches) {
		case 0:
			// keep walking up
		case 1:
			return matches[0], nil
		default:
			return "", fmt.Errorf("multiple .xcodeproj bundles under %s: %v", dir, matches)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .xcodeproj found at or above %q", start)
		}
		dir = parent
	}
}

// Read loads the manifest and normalizes it to LF/UTF-8 so the engine works
// over one canonical line shape.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}
	return string(textutil.NormalizeUTF8LF(b)), nil
}

// Write persists the mutated manifest atomically. With backup set, the
// previous content is kept next to the manifest as <name>.bak.
func Write(path, text string, backup bool) error {
	if backup {
		prev, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := os.WriteFile(path+".bak", prev, 0o644); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("failed to read manifest for backup: %w", err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pbxreg-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(textutil.EnsureTrailingLF([]byte(text))); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}
