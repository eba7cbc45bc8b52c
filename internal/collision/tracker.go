// Package collision tracks id/name collisions encountered while decoding a
// palette, and enforces the "each fixed tag occurs at most once" invariant
// for the four layer records inside a main body.
package collision

import (
	"github.com/inkbound/tvg/errs"
)

// NameTracker tracks palette display names keyed by their xxhash64 and
// detects hash collisions: two distinct display names hashing to the same
// 64-bit value.
//
// Hash collisions in a palette are not malformed input — the palette
// still resolves every color_id by its explicit numeric id, never by
// hash — but a collision is surfaced so callers can decide whether to
// warn about it.
type NameTracker struct {
	names        map[uint64]string // hash -> first name seen for that hash
	namesList    []string          // ordered list of every name tracked, including collisions
	hasCollision bool
}

// NewNameTracker creates a new, empty NameTracker.
func NewNameTracker() *NameTracker {
	return &NameTracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackName records a palette display name under its hash.
//
// Returns errs.ErrInvalidColorName if name is empty, or
// errs.ErrDuplicatePaletteColor if the exact same name was already tracked
// under the same hash. A different name sharing the same hash is not an
// error; it sets HasCollision instead.
func (t *NameTracker) TrackName(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidColorName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicatePaletteColor
		}

		t.hasCollision = true
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether any two tracked names shared a hash.
func (t *NameTracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of tracked names, in tracking order.
func (t *NameTracker) Names() []string {
	return t.namesList
}

// Count returns the number of names tracked so far.
func (t *NameTracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state while retaining the
// underlying slice capacity, so the tracker can be reused for the next
// palette without reallocating.
func (t *NameTracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
