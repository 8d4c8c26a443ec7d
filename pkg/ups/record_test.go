package ups

import (
	"bytes"
	"errors"
	"testing"
)

func TestRecordStreamOrdering(t *testing.T) {
	// Two records: copy 4 then XOR {1, 2, 0}, copy 0 then XOR {5, 0}.
	stream := &RecordStream{body: []byte{0x84, 0x01, 0x02, 0x00, 0x80, 0x05, 0x00}}

	first, err := stream.Next()
	if err != nil {
		t.Fatal("unable to read first record:", err)
	}
	if first.CopyLength != 4 {
		t.Error("first record copy length does not match expected:", first.CopyLength, "!= 4")
	}
	if !bytes.Equal(first.XORBytes, []byte{0x01, 0x02, 0x00}) {
		t.Errorf("first record XOR bytes do not match expected: %x", first.XORBytes)
	}

	second, err := stream.Next()
	if err != nil {
		t.Fatal("unable to read second record:", err)
	}
	if second.CopyLength != 0 {
		t.Error("second record copy length does not match expected:", second.CopyLength, "!= 0")
	}
	if !bytes.Equal(second.XORBytes, []byte{0x05, 0x00}) {
		t.Errorf("second record XOR bytes do not match expected: %x", second.XORBytes)
	}

	if _, err := stream.Next(); err != EndOfRecords {
		t.Error("stream returned unexpected error after final record:", err)
	}

	// Exhaustion is stable.
	if _, err := stream.Next(); err != EndOfRecords {
		t.Error("stream returned unexpected error after exhaustion:", err)
	}
}

func TestRecordStreamSpanTerminatorInclusive(t *testing.T) {
	// A span consisting of only its zero terminator is a valid (if vacuous)
	// XOR span.
	stream := &RecordStream{body: []byte{0x82, 0x00}}
	record, err := stream.Next()
	if err != nil {
		t.Fatal("unable to read record:", err)
	}
	if record.CopyLength != 2 {
		t.Error("record copy length does not match expected:", record.CopyLength, "!= 2")
	}
	if !bytes.Equal(record.XORBytes, []byte{0x00}) {
		t.Errorf("record XOR bytes do not match expected: %x", record.XORBytes)
	}
}

func TestRecordStreamUnterminatedFinalSpan(t *testing.T) {
	// A span that reaches the end of the body without a terminating zero
	// byte ends the stream without producing a partial record.
	stream := &RecordStream{body: []byte{0x80, 0x01, 0x02}}
	if _, err := stream.Next(); err != EndOfRecords {
		t.Error("stream returned unexpected error:", err)
	}
}

func TestRecordStreamMalformedCopyLength(t *testing.T) {
	// A copy length whose varint runs off the end of the body is an explicit
	// malformation, not exhaustion.
	stream := &RecordStream{body: []byte{0x84, 0x01, 0x00, 0x12}}
	if _, err := stream.Next(); err != nil {
		t.Fatal("unable to read first record:", err)
	}
	if _, err := stream.Next(); !errors.Is(err, ErrMalformedPatch) {
		t.Error("stream returned unexpected error for malformed copy length:", err)
	}
}
