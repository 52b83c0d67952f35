package common

import "encoding/binary"

var (
	_ Serializer[Key64]    = Key64Serializer{}
	_ Serializer[Position] = PositionSerializer{}
	_ Hasher[Key64]        = Key64Hasher{}
)

// Key64Serializer is a Serializer of the Key64 type
type Key64Serializer struct{}

func (s Key64Serializer) ToBytes(key Key64) []byte {
	return binary.LittleEndian.AppendUint64([]byte{}, uint64(key))
}
func (s Key64Serializer) CopyBytes(key Key64, out []byte) {
	binary.LittleEndian.PutUint64(out[0:8], uint64(key))
}
func (s Key64Serializer) FromBytes(bytes []byte) Key64 {
	return Key64(binary.LittleEndian.Uint64(bytes[0:8]))
}
func (s Key64Serializer) Size() int {
	return 8
}

// PositionSerializer is a Serializer of the Position type
type PositionSerializer struct{}

func (s PositionSerializer) ToBytes(pos Position) []byte {
	return binary.LittleEndian.AppendUint64([]byte{}, uint64(pos))
}
func (s PositionSerializer) CopyBytes(pos Position, out []byte) {
	binary.LittleEndian.PutUint64(out[0:8], uint64(pos))
}
func (s PositionSerializer) FromBytes(bytes []byte) Position {
	return Position(binary.LittleEndian.Uint64(bytes[0:8]))
}
func (s PositionSerializer) Size() int {
	return 8
}
