package common

// NodeID identifies a node of a bidirected sequence graph.
// Valid identifiers are positive; id 0 is reserved so that the packed
// position sentinel NoValue stays unambiguous.
type NodeID uint64

// Key64 is a kmer fingerprint packed two bits per base (A=0, C=1, G=2, T=3),
// the most recent base in the lowest bits. Kmers of up to KmerMaxLength
// bases fit into the 62 low bits, which keeps NoKey out of the value range.
type Key64 uint64

const (
	// KmerMaxLength is the longest kmer representable in a Key64.
	KmerMaxLength = 31

	// NoKey marks an absent or invalid kmer fingerprint.
	NoKey = ^Key64(0)
)

// KeyMask covers the 2*k low bits holding a packed kmer of length k.
func KeyMask(k int) Key64 {
	return (Key64(1) << (2 * k)) - 1
}

const invalidBase = 0xff

var charToPack [256]byte

var packToChar = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range charToPack {
		charToPack[i] = invalidBase
	}
	for code, c := range packToChar {
		charToPack[c] = byte(code)
		charToPack[c|0x20] = byte(code) // lower case
	}
}

// PackBase converts a sequence byte into its 2-bit code. The second return
// value is false for any byte outside {A,C,G,T} in either case, which
// resets kmer accumulation at the caller.
func PackBase(c byte) (byte, bool) {
	code := charToPack[c]
	return code, code != invalidBase
}

// ComplementCode returns the 2-bit code of the complementary base.
func ComplementCode(code byte) byte {
	return 3 - code
}

// Decode unpacks the k low bases of the key into an ACGT string.
func (k Key64) Decode(length int) string {
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = packToChar[k&0x3]
		k >>= 2
	}
	return string(buf)
}

// Position is a graph position packed into a single integer. The bit layout
// from low to high is node offset (OffsetBits bits), orientation (1 bit) and
// node id (the remaining bits). The zero value is the NoValue sentinel,
// which is why node id 0 is forbidden.
type Position uint64

const (
	// OffsetBits is the width of the node offset field of a Position.
	OffsetBits = 10

	// OffMask covers the offset field of a Position.
	OffMask = (Position(1) << OffsetBits) - 1

	// NoValue marks an absent position.
	NoValue = Position(0)
)

// EncodePosition packs a graph position. The offset is truncated to
// OffsetBits bits.
func EncodePosition(id NodeID, reverse bool, offset uint32) Position {
	pos := Position(id) << (OffsetBits + 1)
	if reverse {
		pos |= Position(1) << OffsetBits
	}
	return pos | (Position(offset) & OffMask)
}

// ID extracts the node identifier.
func (p Position) ID() NodeID {
	return NodeID(p >> (OffsetBits + 1))
}

// IsReverse extracts the orientation flag.
func (p Position) IsReverse() bool {
	return p&(1<<OffsetBits) != 0
}

// Offset extracts the node offset.
func (p Position) Offset() uint32 {
	return uint32(p & OffMask)
}
