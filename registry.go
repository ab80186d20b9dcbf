package payrun

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// clientDomain is the size of the full client-id space.
const clientDomain = 1 << 16

// Registry is the set of client ids observed during ingestion. It stores
// presence only, one bit per possible id, and drives the finalization
// enumeration without scanning the backend's keyspace.
type Registry struct {
	bits *bitset.BitSet
}

// NewRegistry creates an empty registry covering the whole id domain.
func NewRegistry() *Registry {
	return &Registry{bits: bitset.New(clientDomain)}
}

// Mark records that a client id was seen. Marking is idempotent.
func (r *Registry) Mark(id ClientID) {
	r.bits.Set(uint(id))
}

// Has reports whether the id was marked.
func (r *Registry) Has(id ClientID) bool {
	return r.bits.Test(uint(id))
}

// Count returns the number of marked ids.
func (r *Registry) Count() int {
	return int(r.bits.Count())
}

// All iterates the marked ids in ascending numeric order. The sequence is
// finite; restart it by calling All again.
func (r *Registry) All() iter.Seq[ClientID] {
	return func(yield func(ClientID) bool) {
		for i, ok := r.bits.NextSet(0); ok; i, ok = r.bits.NextSet(i + 1) {
			if !yield(ClientID(i)) {
				return
			}
		}
	}
}
