package ups

import (
	"bytes"
	"encoding/binary"
)

// magic is the four-byte marker at the start of every UPS patch.
var magic = []byte("UPS1")

// footerSize is the combined length of the three trailing checksums.
const footerSize = 12

// Patch represents the metadata of a parsed UPS patch. It is immutable after
// parsing.
type Patch struct {
	// SourceSize is the declared size of the source file in bytes.
	SourceSize uint64
	// TargetSize is the declared size of the patched target file in bytes.
	TargetSize uint64
	// SourceCRC is the expected CRC-32 of the source file.
	SourceCRC uint32
	// TargetCRC is the expected CRC-32 of the patched target file.
	TargetCRC uint32
	// PatchCRC is the expected CRC-32 of the patch itself, excluding the
	// final four bytes that store this value.
	PatchCRC uint32
}

// Parse validates the framing of a UPS patch and extracts its metadata. It
// returns the metadata along with a stream over the patch's copy/XOR records.
// The stream borrows the patch buffer and remains valid only as long as the
// buffer is neither mutated nor released; restarting iteration requires
// re-invoking Parse.
func Parse(patch []byte) (Patch, *RecordStream, error) {
	// Verify the magic marker.
	if len(patch) < len(magic) || !bytes.Equal(patch[:len(magic)], magic) {
		return Patch{}, nil, ErrMissingHeader
	}

	// Decode the declared source and target sizes, which immediately follow
	// the marker.
	offset := len(magic)
	consumed, sourceSize, ok := readVuint(patch[offset:])
	if !ok {
		return Patch{}, nil, ErrMalformedPatch
	}
	offset += consumed
	consumed, targetSize, ok := readVuint(patch[offset:])
	if !ok {
		return Patch{}, nil, ErrMalformedPatch
	}
	offset += consumed

	// Verify that there's room for the checksum footer. The footer occupies
	// the final twelve bytes of the patch regardless of body length.
	if len(patch) < offset+footerSize {
		return Patch{}, nil, ErrMalformedPatch
	}

	// Extract the trailing checksums.
	footer := patch[len(patch)-footerSize:]
	metadata := Patch{
		SourceSize: sourceSize,
		TargetSize: targetSize,
		SourceCRC:  binary.LittleEndian.Uint32(footer[:4]),
		TargetCRC:  binary.LittleEndian.Uint32(footer[4:8]),
		PatchCRC:   binary.LittleEndian.Uint32(footer[8:]),
	}

	// Create a stream over the record body, which is everything strictly
	// between the size fields and the footer.
	stream := &RecordStream{body: patch[offset : len(patch)-footerSize]}

	// Success.
	return metadata, stream, nil
}
