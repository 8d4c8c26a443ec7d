package ups

import (
	"bytes"

	"github.com/pkg/errors"
)

// EndOfRecords is a sentinel error returned by RecordStream.Next once the
// patch body has been fully consumed.
var EndOfRecords = errors.New("end of records")

// Record represents a single copy/XOR record in a UPS patch body.
type Record struct {
	// CopyLength is the number of bytes carried over unchanged from the
	// current write position.
	CopyLength uint64
	// XORBytes are the bytes to XOR into the working buffer immediately
	// following the copied span. The final byte is always zero: it both
	// terminates the span and is part of it (XOR with zero is a no-op). The
	// slice is a view into the patch buffer and must not be mutated or
	// retained beyond the buffer's lifetime.
	XORBytes []byte
}

// RecordStream is a finite, forward-only pull producer over the records in a
// UPS patch body. Streams are created by Parse and are not restartable.
type RecordStream struct {
	// body is the unconsumed portion of the patch body.
	body []byte
}

// Next returns the next record in the body. It returns EndOfRecords once the
// body is exhausted, including the case where a final span reaches the end of
// the body without a terminating zero byte (i.e. the footer boundary), in
// which case no partial record is produced. A copy length that fails to
// decode from a non-empty body is reported as ErrMalformedPatch.
func (s *RecordStream) Next() (Record, error) {
	// If the body is exhausted, then the stream is complete.
	if len(s.body) == 0 {
		return Record{}, EndOfRecords
	}

	// Decode the copy length at the current position.
	consumed, copyLength, ok := readVuint(s.body)
	if !ok {
		return Record{}, errors.Wrap(ErrMalformedPatch, "unable to decode record copy length")
	}
	s.body = s.body[consumed:]

	// Extract the XOR span, which runs through the next zero byte inclusive.
	// If no zero byte remains, the span has hit the footer boundary and the
	// stream ends without producing a partial record.
	zero := bytes.IndexByte(s.body, 0)
	if zero < 0 {
		s.body = nil
		return Record{}, EndOfRecords
	}
	xorBytes := s.body[:zero+1]
	s.body = s.body[zero+1:]

	// Success.
	return Record{CopyLength: copyLength, XORBytes: xorBytes}, nil
}
