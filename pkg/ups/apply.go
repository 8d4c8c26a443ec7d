package ups

import (
	"hash/crc32"
)

// Options controls optional behaviors of patch application.
type Options struct {
	// SkipCRC disables verification of all three checksums: the source
	// buffer's, the patch buffer's, and the reconstructed target buffer's.
	// It always disables all three together, never a subset.
	SkipCRC bool
}

// ApplyPatch applies a UPS patch to the specified source bytes and returns
// the reconstructed target bytes, with all checksum verifications enforced.
// The source buffer is never mutated; the result is always a separate buffer.
func ApplyPatch(source, patch []byte) ([]byte, error) {
	return ApplyPatchWith(Options{}, source, patch)
}

// ApplyPatchWith is a variant of ApplyPatch that accepts options. Any failure
// aborts the whole operation and no output buffer is returned.
func ApplyPatchWith(options Options, source, patch []byte) ([]byte, error) {
	// Parse the patch.
	metadata, records, err := Parse(patch)
	if err != nil {
		return nil, err
	}

	// Unless disabled, verify the source and patch checksums before any
	// reconstruction work. The patch checksum covers every byte of the patch
	// except the final four, which store the checksum itself.
	if !options.SkipCRC {
		if err := verifyCRC(source, metadata.SourceCRC, CRCOriginal); err != nil {
			return nil, err
		}
		if err := verifyCRC(patch[:len(patch)-4], metadata.PatchCRC, CRCPatch); err != nil {
			return nil, err
		}
	}

	// Create the working buffer: a copy of the source sized to the larger of
	// the declared source and target sizes. Bytes beyond the source length
	// start at zero, so XOR spans in the extended region reconstruct target
	// bytes directly.
	size := metadata.SourceSize
	if metadata.TargetSize > size {
		size = metadata.TargetSize
	}
	buffer := make([]byte, size)
	copy(buffer, source)

	// Replay the records at a monotonically advancing write position. Each
	// record leaves its copied span untouched (the buffer already holds the
	// correct source bytes there) and XORs its span in place.
	var cursor uint64
	for {
		record, err := records.Next()
		if err == EndOfRecords {
			break
		} else if err != nil {
			return nil, err
		}

		// A record must never advance the write position beyond the end of
		// the working buffer.
		remaining := size - cursor
		if record.CopyLength > remaining {
			return nil, ErrMalformedPatch
		}
		remaining -= record.CopyLength
		if uint64(len(record.XORBytes)) > remaining {
			return nil, ErrMalformedPatch
		}

		cursor += record.CopyLength
		offset := int(cursor)
		for i, b := range record.XORBytes {
			buffer[offset+i] ^= b
		}
		cursor += uint64(len(record.XORBytes))
	}

	// Unless disabled, verify the reconstructed target.
	if !options.SkipCRC {
		if err := verifyCRC(buffer, metadata.TargetCRC, CRCCombined); err != nil {
			return nil, err
		}
	}

	// Success.
	return buffer, nil
}

// verifyCRC computes the CRC-32 of data using the IEEE (ISO-HDLC) polynomial
// and compares it against the expected value, returning a CRCError of the
// specified kind on mismatch.
func verifyCRC(data []byte, expected uint32, kind CRCKind) error {
	if actual := crc32.ChecksumIEEE(data); actual != expected {
		return CRCError{Kind: kind, Expected: expected, Actual: actual}
	}
	return nil
}
