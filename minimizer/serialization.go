package minimizer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/pangraph/graphindex/common"
)

// Serialized indexes start with a four byte magic string and a format
// version, followed by the table parameters, the cells in slot order and
// the value lists of the arena. All integers are little-endian.
var indexMagic = [4]byte{'G', 'M', 'I', 'N'}

const indexVersion = uint32(1)

const (
	// ErrFormat is reported when the input is not a serialized minimizer index.
	ErrFormat = common.ConstError("invalid minimizer index format")

	// ErrVersion is reported for a serialized index of an unsupported version.
	ErrVersion = common.ConstError("unsupported minimizer index version")
)

// Serialize writes the index to the given sink. The slot layout is written
// as-is, so a deserialized index is cell-for-cell identical to the source.
func (idx *Index) Serialize(out io.Writer) error {
	w := bufio.NewWriter(out)
	if _, err := w.Write(indexMagic[:]); err != nil {
		return err
	}
	var scratch [8]byte
	binary.LittleEndian.PutUint32(scratch[0:4], indexVersion)
	if _, err := w.Write(scratch[0:4]); err != nil {
		return err
	}
	header := []uint64{
		uint64(idx.k),
		uint64(idx.w),
		uint64(len(idx.cells)),
		uint64(idx.size),
		uint64(idx.values),
		uint64(idx.uniqueKeys),
		uint64(common.OffsetBits),
	}
	for _, value := range header {
		if err := writeUint64(w, value); err != nil {
			return err
		}
	}
	for i := range idx.cells {
		c := &idx.cells[i]
		if err := writeUint64(w, uint64(c.key)); err != nil {
			return err
		}
		if err := writeUint64(w, c.value); err != nil {
			return err
		}
		shape := byte(0)
		if c.multi {
			shape = 1
		}
		if err := w.WriteByte(shape); err != nil {
			return err
		}
	}
	if err := writeUint64(w, uint64(len(idx.lists))); err != nil {
		return err
	}
	for _, list := range idx.lists {
		if err := writeUint64(w, uint64(len(list))); err != nil {
			return err
		}
		for _, pos := range list {
			if err := writeUint64(w, uint64(pos)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// Deserialize replaces the contents of the index with the serialized index
// read from the source. On failure the index is left in a defined empty
// state with default parameters.
func (idx *Index) Deserialize(in io.Reader) error {
	restored, err := deserialize(bufio.NewReader(in))
	if err != nil {
		*idx = *NewDefault()
		return err
	}
	*idx = *restored
	return nil
}

func deserialize(r *bufio.Reader) (*Index, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if magic != indexMagic {
		return nil, ErrFormat
	}
	var scratch [4]byte
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if version := binary.LittleEndian.Uint32(scratch[:]); version != indexVersion {
		return nil, fmt.Errorf("%w: version %d", ErrVersion, version)
	}

	var header [7]uint64
	for i := range header {
		value, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		header[i] = value
	}
	k, w := int(header[0]), int(header[1])
	capacity := header[2]
	if k < 1 || k > common.KmerMaxLength || w < 1 {
		return nil, fmt.Errorf("%w: parameters k=%d w=%d", ErrFormat, k, w)
	}
	if capacity < initialCapacity || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrFormat, capacity)
	}
	if header[6] != common.OffsetBits {
		return nil, fmt.Errorf("%w: offset width %d", ErrFormat, header[6])
	}

	idx := &Index{
		k:          k,
		w:          w,
		cells:      make([]cell, capacity),
		size:       int(header[3]),
		values:     int(header[4]),
		uniqueKeys: int(header[5]),
	}
	idx.maxKeys = int(maxLoadFactor * float64(capacity))
	for i := range idx.cells {
		key, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		value, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		shape, err := r.ReadByte()
		if err != nil || shape > 1 {
			return nil, fmt.Errorf("%w: cell shape", ErrFormat)
		}
		idx.cells[i] = cell{key: common.Key64(key), value: value, multi: shape == 1}
	}
	listCount, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	idx.lists = make([][]common.Position, listCount)
	for i := range idx.lists {
		length, err := readUint64(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		list := make([]common.Position, length)
		for j := range list {
			value, err := readUint64(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFormat, err)
			}
			list[j] = common.Position(value)
		}
		idx.lists[i] = list
	}
	for i := range idx.cells {
		c := &idx.cells[i]
		if c.multi && c.value >= listCount {
			return nil, fmt.Errorf("%w: dangling value list %d", ErrFormat, c.value)
		}
	}
	return idx, nil
}

// Digest returns the BLAKE2b-256 fingerprint of the serialized index.
func (idx *Index) Digest() ([32]byte, error) {
	var digest [32]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return digest, err
	}
	if err := idx.Serialize(h); err != nil {
		return digest, err
	}
	copy(digest[:], h.Sum(nil))
	return digest, nil
}

func writeUint64(w *bufio.Writer, value uint64) error {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], value)
	_, err := w.Write(scratch[:])
	return err
}

func readUint64(r *bufio.Reader) (uint64, error) {
	var scratch [8]byte
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(scratch[:]), nil
}
