package pathcover

import (
	"github.com/pangraph/graphindex/common"
	"github.com/pangraph/graphindex/graph"
)

//go:generate mockgen -source builder.go -destination builder_mocks.go -package pathcover

// PathName identifies a generated path in the metadata of a path index.
type PathName struct {
	Sample uint32
	Contig uint32
	Phase  uint32
	Count  uint32
}

// PathBuilder is the sink of the path cover: an external path-index builder
// ingesting paths as oriented node sequences. Implementations are
// single-writer; the planner never calls them concurrently.
type PathBuilder interface {
	// AddMetadata initializes the metadata of the index under construction.
	AddMetadata()

	// Insert adds a path. With bidirectional set, the path stands for
	// itself and its reverse complement.
	Insert(path []graph.Handle, bidirectional bool) error

	// AddPath records the name of the most recently inserted path.
	AddPath(name PathName)

	// SetSamples records the number of samples in the metadata.
	SetSamples(n int)

	// SetContigs records the number of contigs in the metadata.
	SetContigs(n int)

	// SetHaplotypes records the number of haplotypes in the metadata.
	SetHaplotypes(n int)

	// Finish completes the construction; no insertions may follow.
	Finish() error
}

const (
	// ErrFinished is reported when a path is inserted into a finished builder.
	ErrFinished = common.ConstError("path builder already finished")
)

// PathSet is an in-memory PathBuilder keeping the inserted paths and their
// metadata, for tests and tooling that do not need a compressed index.
type PathSet struct {
	paths         [][]graph.Handle
	bidirectional []bool
	names         []PathName

	samples    int
	contigs    int
	haplotypes int

	hasMetadata bool
	finished    bool
}

// NewPathSet creates an empty path set.
func NewPathSet() *PathSet {
	return &PathSet{}
}

func (b *PathSet) AddMetadata() {
	b.hasMetadata = true
}

func (b *PathSet) Insert(path []graph.Handle, bidirectional bool) error {
	if b.finished {
		return ErrFinished
	}
	stored := make([]graph.Handle, len(path))
	copy(stored, path)
	b.paths = append(b.paths, stored)
	b.bidirectional = append(b.bidirectional, bidirectional)
	return nil
}

func (b *PathSet) AddPath(name PathName) {
	b.names = append(b.names, name)
}

func (b *PathSet) SetSamples(n int)    { b.samples = n }
func (b *PathSet) SetContigs(n int)    { b.contigs = n }
func (b *PathSet) SetHaplotypes(n int) { b.haplotypes = n }

func (b *PathSet) Finish() error {
	b.finished = true
	return nil
}

// Paths returns the inserted paths in insertion order.
func (b *PathSet) Paths() [][]graph.Handle { return b.paths }

// Names returns the recorded path names in insertion order.
func (b *PathSet) Names() []PathName { return b.names }

// Samples returns the recorded number of samples.
func (b *PathSet) Samples() int { return b.samples }

// Contigs returns the recorded number of contigs.
func (b *PathSet) Contigs() int { return b.contigs }

// Haplotypes returns the recorded number of haplotypes.
func (b *PathSet) Haplotypes() int { return b.haplotypes }

// Finished reports whether the construction was completed.
func (b *PathSet) Finished() bool { return b.finished }
