package pbx

import "errors"

// Error kinds reported by the registration engine. Callers should test with
// errors.Is; the wrapped error carries the plan/step detail.
var (
	// ErrAllocationExhausted is returned when the allocator cannot produce a
	// fresh identifier within its retry budget. Seeing it in practice means
	// the entropy source is broken, not that the space is full.
	ErrAllocationExhausted = errors.New("identifier allocation exhausted")

	// ErrAnchorNotFound is returned when no manifest location matches an
	// anchor spec (missing section, unknown group, absent sibling).
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrAmbiguousAnchor is returned when more than one manifest location
	// matches an anchor spec. The engine never guesses among candidates.
	ErrAmbiguousAnchor = errors.New("ambiguous anchor")

	// ErrUnsupportedRecordKind is returned by Compose for a kind it does not
	// render.
	ErrUnsupportedRecordKind = errors.New("unsupported record kind")

	// ErrDuplicateFile is returned when a plan's stored path is already
	// registered as a file reference, before any edit is applied.
	ErrDuplicateFile = errors.New("file already registered")
)
