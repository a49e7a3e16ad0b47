// Package decoder reads a Variant's metadata and value blobs back into a
// navigable tree, without copying the underlying bytes. It is the read
// side of the builder package: every Variant produced by a builder can be
// round-tripped through Decode, and the re-append walker in the builder
// package uses this package to read a source Variant it is copying from.
package decoder

import (
	"fmt"

	"github.com/variantfmt/variant/errs"
)

// Metadata is a parsed view over a Variant metadata blob: the
// insertion-ordered, deduplicated dictionary of field names referenced by
// field IDs in the corresponding value blob.
type Metadata struct {
	isSorted   bool
	offsetSize int
	offsets    []int
	data       []byte
}

// DecodeMetadata parses a metadata blob produced by
// builder.MetadataBuilder.Finish.
func DecodeMetadata(b []byte) (*Metadata, error) {
	if len(b) < 1 {
		return nil, fmt.Errorf("%w: metadata blob is empty", errs.ErrInvalidInput)
	}

	header := b[0]
	if header&0x0F != 0x01 {
		return nil, fmt.Errorf("%w: unsupported metadata version byte 0x%02x", errs.ErrInvalidInput, header)
	}

	isSorted := (header>>4)&0x1 == 1
	offsetSize := int((header>>6)&0x3) + 1

	pos := 1
	nkeys, pos, err := readUintNAt(b, pos, offsetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading dictionary size: %s", errs.ErrInvalidInput, err)
	}

	offsets := make([]int, nkeys+1)
	for i := range offsets {
		var v int
		v, pos, err = readUintNAt(b, pos, offsetSize)
		if err != nil {
			return nil, fmt.Errorf("%w: reading offset table entry %d: %s", errs.ErrInvalidInput, i, err)
		}
		offsets[i] = v
	}

	totalStringBytes := offsets[nkeys]
	if len(b) < pos+totalStringBytes {
		return nil, fmt.Errorf("%w: string data truncated", errs.ErrInvalidInput)
	}

	return &Metadata{
		isSorted:   isSorted,
		offsetSize: offsetSize,
		offsets:    offsets,
		data:       b[pos : pos+totalStringBytes],
	}, nil
}

// Len returns the number of distinct field names in the dictionary.
func (m *Metadata) Len() int {
	return len(m.offsets) - 1
}

// IsSorted reports whether the dictionary was written with names in
// strictly ascending lexicographic order.
func (m *Metadata) IsSorted() bool {
	return m.isSorted
}

// NameAt returns the field name at the given dictionary ID.
func (m *Metadata) NameAt(id uint32) (string, error) {
	if int(id) >= m.Len() {
		return "", fmt.Errorf("%w: id %d", errs.ErrUnknownFieldName, id)
	}
	start, end := m.offsets[id], m.offsets[id+1]

	return string(m.data[start:end]), nil
}

// Names returns every field name in the dictionary, in insertion order.
func (m *Metadata) Names() []string {
	names := make([]string, m.Len())
	for i := range names {
		names[i], _ = m.NameAt(uint32(i))
	}

	return names
}

func readUintNAt(b []byte, pos, nbytes int) (int, int, error) {
	if len(b) < pos+nbytes {
		return 0, pos, fmt.Errorf("need %d bytes at offset %d, have %d", nbytes, pos, len(b)-pos)
	}

	var v uint32
	for i := nbytes - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[pos+i])
	}

	return int(v), pos + nbytes, nil
}
