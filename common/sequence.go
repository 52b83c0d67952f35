package common

// ReverseComplement returns the reverse complement of a DNA sequence.
// Bytes outside {A,C,G,T} are copied unchanged to the mirrored position so
// that invalid regions stay invalid in both orientations.
func ReverseComplement(seq []byte) []byte {
	result := make([]byte, len(seq))
	for i, c := range seq {
		code, ok := PackBase(c)
		if ok {
			result[len(seq)-1-i] = packToChar[ComplementCode(code)]
		} else {
			result[len(seq)-1-i] = c
		}
	}
	return result
}
