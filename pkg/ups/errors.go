package ups

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingHeader indicates that a patch does not begin with the required
// "UPS1" magic marker.
var ErrMissingHeader = errors.New("missing 'UPS1' header at start of patch")

// ErrMalformedPatch indicates that a patch is structurally invalid: a
// variable-length integer failed to terminate within the remaining bytes, the
// patch is too short to hold its header, size fields, and checksum footer, or
// a record would advance the write position beyond the end of the output.
var ErrMalformedPatch = errors.New("patch malformed")

// CRCKind identifies which of a patch's three checksum verifications failed.
type CRCKind uint8

const (
	// CRCOriginal represents the checksum of the supplied source buffer.
	CRCOriginal CRCKind = iota
	// CRCPatch represents the checksum of the patch buffer, excluding the
	// final four bytes that store this checksum itself.
	CRCPatch
	// CRCCombined represents the checksum of the reconstructed target buffer.
	CRCCombined
)

// String provides a human-readable representation of the checksum kind.
func (k CRCKind) String() string {
	switch k {
	case CRCOriginal:
		return "original"
	case CRCPatch:
		return "patch"
	case CRCCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// CRCError indicates that a checksum verification failed. It records which
// buffer failed verification along with the declared and computed values.
type CRCError struct {
	// Kind identifies the buffer whose checksum failed verification.
	Kind CRCKind
	// Expected is the checksum declared by the patch.
	Expected uint32
	// Actual is the checksum computed from the buffer.
	Actual uint32
}

// Error implements error.
func (e CRCError) Error() string {
	return fmt.Sprintf("CRC mismatch (%s): expected %08x, computed %08x",
		e.Kind, e.Expected, e.Actual,
	)
}
