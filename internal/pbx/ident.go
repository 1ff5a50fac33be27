// Package pbx implements the manifest registration engine for Xcode
// project.pbxproj files: identifier allocation, anchor location, entry
// composition, and transactional application of registration plans.
//
// Goals:
//   - Referential integrity: every inserted record resolves after a run
//   - Atomicity: any failure returns the input text byte-for-byte
//   - Determinism: identical inputs compose identical fragments
//   - No full plist parsing: anchors are structural line matches
package pbx

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// identLen is the width of a pbxproj object identifier: 24 uppercase hex
// characters (96 random bits).
const identLen = 24

// allocRetries bounds the collision retry loop. With 96 random bits a single
// retry is already astronomically unlikely.
const allocRetries = 10

// Allocator produces identifiers that are absent from a given manifest text
// and from everything it allocated earlier in the same run. The manifest is
// the only durable record of past allocations, so absence is verified by
// substring search rather than by any counter.
type Allocator struct {
	newRaw func() string
	seen   map[string]struct{}
}

// NewAllocator returns an allocator backed by random UUIDs.
func NewAllocator() *Allocator {
	return &Allocator{
		newRaw: randomIdentifier,
		seen:   make(map[string]struct{}),
	}
}

// Allocate returns a fresh identifier guaranteed not to occur in manifest or
// in this allocator's prior output. It fails with ErrAllocationExhausted
// after allocRetries consecutive collisions.
func (a *Allocator) Allocate(manifest string) (string, error) {
	for i := 0; i < allocRetries; i++ {
		id := a.newRaw()
		if _, dup := a.seen[id]; dup {
			continue
		}
		if strings.Contains(manifest, id) {
			continue
		}
		a.seen[id] = struct{}{}
		return id, nil
	}
	return "", ErrAllocationExhausted
}

// randomIdentifier derives a 24-char uppercase hex token from a v4 UUID,
// matching the identifier shape Xcode itself generates.
func randomIdentifier() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:identLen]
}
