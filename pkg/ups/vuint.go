package ups

// readVuint decodes an unsigned integer from the front of input using the UPS
// variable-length encoding and returns the number of bytes consumed, the
// decoded value, and whether or not decoding succeeded. The encoding is
// little-endian base-128 with inverted continuation semantics relative to
// standard LEB128: the terminal byte is the one with its high bit set and
// contributes only its low seven bits, while each preceding byte contributes
// its value with the high bit forced on, baking an implicit +1 correction per
// continuation into the accumulation. Decoding fails only when input is
// exhausted before a terminal byte is found.
func readVuint(input []byte) (int, uint64, bool) {
	var value uint64
	for index, b := range input {
		if b&0x80 != 0 {
			value += uint64(b&0x7f) << (7 * uint(index))
			return index + 1, value, true
		}
		value += uint64(b|0x80) << (7 * uint(index))
	}
	return 0, 0, false
}
