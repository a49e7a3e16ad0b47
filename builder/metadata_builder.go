package builder

import (
	"math"

	"github.com/variantfmt/variant/errs"
)

// MetadataBuilder accumulates the insertion-ordered, deduplicated set of
// field names shared by an entire builder tree. A VariantBuilder owns one
// MetadataBuilder and hands a pointer to it to every nested ListBuilder
// and ObjectBuilder it spawns, directly or transitively.
type MetadataBuilder struct {
	names    []string
	index    map[string]uint32
	isSorted bool
}

// newMetadataBuilder returns an empty MetadataBuilder. An empty dictionary
// reports IsSorted() == false, matching the interoperability requirement
// that an empty dictionary is never considered sorted.
func newMetadataBuilder() *MetadataBuilder {
	return &MetadataBuilder{
		index: make(map[string]uint32),
	}
}

// Upsert returns the existing ID for name, or appends it and returns the
// newly assigned ID. IDs are assigned in insertion order starting at 0 and
// never change once assigned. Panics with errs.ErrDictionaryOverflow if a
// new name would need an ID beyond the 32-bit range.
func (mb *MetadataBuilder) Upsert(name string) uint32 {
	if id, ok := mb.index[name]; ok {
		return id
	}
	if uint64(len(mb.names)) > math.MaxUint32 {
		panic(errs.ErrDictionaryOverflow)
	}

	id := uint32(len(mb.names))
	mb.names = append(mb.names, name)
	mb.index[name] = id

	switch {
	case id == 0:
		mb.isSorted = true
	case mb.isSorted && name <= mb.names[id-1]:
		mb.isSorted = false
	}

	return id
}

// Len returns the number of distinct field names in the dictionary.
func (mb *MetadataBuilder) Len() int {
	return len(mb.names)
}

// NameAt returns the field name assigned to id. Panics if id is out of
// range, matching the invariant that every ID handed out by Upsert refers
// to an entry that exists for the builder's lifetime.
func (mb *MetadataBuilder) NameAt(id uint32) string {
	return mb.names[id]
}

// IsSorted reports whether every name in the dictionary so far was
// inserted in strictly ascending lexicographic order.
func (mb *MetadataBuilder) IsSorted() bool {
	return mb.isSorted
}

// TotalNameBytes returns the sum of the UTF-8 byte lengths of every name
// in the dictionary.
func (mb *MetadataBuilder) TotalNameBytes() int {
	total := 0
	for _, name := range mb.names {
		total += len(name)
	}

	return total
}

// Extend upserts every name in names, in order, equivalent to calling
// Upsert repeatedly.
func (mb *MetadataBuilder) Extend(names []string) {
	for _, name := range names {
		mb.Upsert(name)
	}
}

// Reserve pre-sizes the dictionary's internal storage for at least
// capacity field names, avoiding reallocation when the approximate
// number of distinct names is known up front.
func (mb *MetadataBuilder) Reserve(capacity int) {
	if cap(mb.names) < capacity {
		grown := make([]string, len(mb.names), capacity)
		copy(grown, mb.names)
		mb.names = grown
	}
	if mb.index == nil {
		mb.index = make(map[string]uint32, capacity)
	}
}

// Finish emits the metadata blob: a header byte (version 1 in the low
// bits, is_sorted at bit 4, offset_size-1 in bits 6-7), the dictionary
// size, an offset table of Len()+1 entries, and the concatenated name
// bytes. The size and every offset are offset_size bytes, little-endian.
func (mb *MetadataBuilder) Finish() []byte {
	offsetSize := intSize(uint64(max(mb.TotalNameBytes(), mb.Len())))

	var sortedBit byte
	if mb.isSorted {
		sortedBit = 1
	}
	header := byte(0x01) | sortedBit<<4 | byte(offsetSize-1)<<6

	out := make([]byte, 0, 1+offsetSize*(2+mb.Len())+mb.TotalNameBytes())
	out = append(out, header)
	out = appendUintN(out, uint64(mb.Len()), offsetSize)

	runningOffset := 0
	for _, name := range mb.names {
		out = appendUintN(out, uint64(runningOffset), offsetSize)
		runningOffset += len(name)
	}
	out = appendUintN(out, uint64(runningOffset), offsetSize)

	for _, name := range mb.names {
		out = append(out, name...)
	}

	return out
}

func appendUintN(buf []byte, v uint64, nbytes int) []byte {
	var tmp [4]byte
	leEngine.PutUint32(tmp[:], uint32(v))

	return append(buf, tmp[:nbytes]...)
}
