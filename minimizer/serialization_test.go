package minimizer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pangraph/graphindex/common"
)

func TestSerializationRoundTrip(t *testing.T) {
	idx := New(15, 6)
	idx.Insert(getMinimizer(1, 0, false), makePos(1, false, 3))
	idx.Insert(getMinimizer(2, 0, false), makePos(1, false, 3))
	idx.Insert(getMinimizer(2, 0, false), makePos(2, false, 3))

	filename := filepath.Join(t.TempDir(), "minimizers.gmin")
	out, err := os.Create(filename)
	if err != nil {
		t.Fatalf("failed to create the index file: %v", err)
	}
	if err := idx.Serialize(out); err != nil {
		t.Fatalf("failed to serialize the index: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("failed to close the index file: %v", err)
	}

	in, err := os.Open(filename)
	if err != nil {
		t.Fatalf("failed to open the index file: %v", err)
	}
	defer in.Close()
	restored := NewDefault()
	if err := restored.Deserialize(in); err != nil {
		t.Fatalf("failed to deserialize the index: %v", err)
	}

	if !idx.Equal(restored) {
		t.Errorf("loaded index is not identical to the original")
	}
}

func TestRoundTripAfterRehashing(t *testing.T) {
	idx := NewDefault()
	for i := 1; i <= 2*initialCapacity; i++ {
		idx.Insert(getMinimizer(common.Key64(i), 0, false), makePos(common.NodeID(i), false, uint32(i)))
	}

	var buffer bytes.Buffer
	if err := idx.Serialize(&buffer); err != nil {
		t.Fatalf("failed to serialize the index: %v", err)
	}
	restored := NewDefault()
	if err := restored.Deserialize(&buffer); err != nil {
		t.Fatalf("failed to deserialize the index: %v", err)
	}
	if !idx.Equal(restored) {
		t.Errorf("loaded index is not identical to the original")
	}
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	idx := NewDefault()
	err := idx.Deserialize(bytes.NewReader([]byte("not a minimizer index")))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("wrong error for bad magic: %v", err)
	}
	if idx.Size() != 0 || idx.Values() != 0 {
		t.Errorf("failed deserialization left a nonempty index")
	}
}

func TestDeserializeRejectsBadVersion(t *testing.T) {
	idx := New(15, 6)
	idx.Insert(getMinimizer(1, 0, false), makePos(1, false, 3))
	var buffer bytes.Buffer
	if err := idx.Serialize(&buffer); err != nil {
		t.Fatalf("failed to serialize the index: %v", err)
	}
	data := buffer.Bytes()
	data[4] = 0xFF // corrupt the version field

	restored := NewDefault()
	err := restored.Deserialize(bytes.NewReader(data))
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("wrong error for bad version: %v", err)
	}
	if restored.Size() != 0 {
		t.Errorf("failed deserialization left a nonempty index")
	}
}

func TestDeserializeRejectsTruncatedInput(t *testing.T) {
	idx := New(15, 6)
	idx.Insert(getMinimizer(1, 0, false), makePos(1, false, 3))
	var buffer bytes.Buffer
	if err := idx.Serialize(&buffer); err != nil {
		t.Fatalf("failed to serialize the index: %v", err)
	}
	data := buffer.Bytes()

	restored := NewDefault()
	err := restored.Deserialize(bytes.NewReader(data[:len(data)/2]))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("wrong error for truncated input: %v", err)
	}
}

func TestDigestDistinguishesContents(t *testing.T) {
	a, b := New(15, 6), New(15, 6)
	a.Insert(getMinimizer(1, 0, false), makePos(1, false, 3))

	digestA, err := a.Digest()
	if err != nil {
		t.Fatalf("failed to compute the digest: %v", err)
	}
	digestB, err := b.Digest()
	if err != nil {
		t.Fatalf("failed to compute the digest: %v", err)
	}
	if digestA == digestB {
		t.Errorf("different indexes have the same digest")
	}

	again, err := a.Digest()
	if err != nil {
		t.Fatalf("failed to compute the digest: %v", err)
	}
	if digestA != again {
		t.Errorf("digest of an unchanged index is not stable")
	}
}
