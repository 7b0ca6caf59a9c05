package vm

import "encoding/binary"

// LoadProgramWords groups a byte stream into an ordered sequence of
// 32-bit big-endian words: the first byte of each group is the most
// significant. Empty input is permitted and yields an empty sequence.
func LoadProgramWords(raw []byte) ([]uint32, *Fault) {
	if len(raw)%4 != 0 {
		return nil, faultMalformedInput("byte count is not a multiple of 4")
	}

	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4:])
	}
	return words, nil
}
