package builder

import (
	"math/big"
	"sort"

	"github.com/variantfmt/variant/decoder"
	"github.com/variantfmt/variant/errs"
)

// ObjectBuilder builds one Object value.
//
// WARNING: an ObjectBuilder has no effect on whatever spawned it until
// Finish is called. Inserting a duplicate key overwrites the previous
// field-to-offset mapping but leaves the old value's bytes in the
// buffer, so a finished object with duplicate keys is larger than it
// needs to be; enable unique-field validation to reject this instead.
type ObjectBuilder struct {
	parent        parentState
	fields        map[uint32]int
	buffer        ValueBuffer
	validateDupes bool
	duplicateIDs  map[uint32]struct{}
	finished      bool
}

func newObjectBuilder(parent parentState, validateDupes bool) *ObjectBuilder {
	return &ObjectBuilder{
		parent:        parent,
		fields:        make(map[uint32]int),
		buffer:        newScratchValueBuffer(),
		validateDupes: validateDupes,
		duplicateIDs:  make(map[uint32]struct{}),
	}
}

// record upserts key into the shared dictionary and captures the
// starting offset of the value about to be written for it.
func (ob *ObjectBuilder) record(key string) {
	fieldID := ob.parent.Metadata().Upsert(key)
	offset := ob.buffer.Len()

	if _, exists := ob.fields[fieldID]; exists && ob.validateDupes {
		ob.duplicateIDs[fieldID] = struct{}{}
	}
	ob.fields[fieldID] = offset
}

func (ob *ObjectBuilder) InsertNull(key string) {
	ob.record(key)
	ob.buffer.AppendNull()
}

func (ob *ObjectBuilder) InsertBool(key string, v bool) {
	ob.record(key)
	ob.buffer.AppendBool(v)
}

func (ob *ObjectBuilder) InsertInt8(key string, v int8) {
	ob.record(key)
	ob.buffer.AppendInt8(v)
}

func (ob *ObjectBuilder) InsertInt16(key string, v int16) {
	ob.record(key)
	ob.buffer.AppendInt16(v)
}

func (ob *ObjectBuilder) InsertInt32(key string, v int32) {
	ob.record(key)
	ob.buffer.AppendInt32(v)
}

func (ob *ObjectBuilder) InsertInt64(key string, v int64) {
	ob.record(key)
	ob.buffer.AppendInt64(v)
}

func (ob *ObjectBuilder) InsertFloat(key string, v float32) {
	ob.record(key)
	ob.buffer.AppendFloat(v)
}

func (ob *ObjectBuilder) InsertDouble(key string, v float64) {
	ob.record(key)
	ob.buffer.AppendDouble(v)
}

func (ob *ObjectBuilder) InsertDate(key string, days int32) {
	ob.record(key)
	ob.buffer.AppendDate(days)
}

func (ob *ObjectBuilder) InsertTimestampMicros(key string, micros int64) {
	ob.record(key)
	ob.buffer.AppendTimestampMicros(micros)
}

func (ob *ObjectBuilder) InsertTimestampNtzMicros(key string, micros int64) {
	ob.record(key)
	ob.buffer.AppendTimestampNtzMicros(micros)
}

func (ob *ObjectBuilder) InsertDecimal4(key string, scale uint8, unscaled int32) {
	ob.record(key)
	ob.buffer.AppendDecimal4(scale, unscaled)
}

func (ob *ObjectBuilder) InsertDecimal8(key string, scale uint8, unscaled int64) {
	ob.record(key)
	ob.buffer.AppendDecimal8(scale, unscaled)
}

func (ob *ObjectBuilder) InsertDecimal16(key string, scale uint8, unscaled *big.Int) {
	ob.record(key)
	ob.buffer.AppendDecimal16(scale, unscaled)
}

func (ob *ObjectBuilder) InsertBinary(key string, data []byte) {
	ob.record(key)
	ob.buffer.AppendBinary(data)
}

// InsertString inserts a string field, choosing the ShortString encoding
// when it fits and the long-form String encoding otherwise.
func (ob *ObjectBuilder) InsertString(key, s string) {
	ob.record(key)
	if len(s) <= MaxShortStringLen {
		ob.buffer.AppendShortString(s)
	} else {
		ob.buffer.AppendString(s)
	}
}

// InsertVariant copies a fully-decoded Variant into this object under
// key, the ObjectBuilder equivalent of AppendVariant.
func (ob *ObjectBuilder) InsertVariant(key string, v decoder.Variant) error {
	return reappendField(ob, key, v)
}

// NewObject returns an object builder that inserts a new nested object
// under key. The returned builder has no effect until its Finish is
// called.
func (ob *ObjectBuilder) NewObject(key string) *ObjectBuilder {
	return newObjectBuilder(
		objectParentState(&ob.buffer, ob.parent.Metadata(), &ob.fields, &ob.duplicateIDs, ob.validateDupes, key),
		ob.validateDupes,
	)
}

// NewList returns a list builder that inserts a new nested list under
// key. The returned builder has no effect until its Finish is called.
func (ob *ObjectBuilder) NewList(key string) *ListBuilder {
	return newListBuilder(
		objectParentState(&ob.buffer, ob.parent.Metadata(), &ob.fields, &ob.duplicateIDs, ob.validateDupes, key),
		ob.validateDupes,
	)
}

// Finish finalizes the object and splices its encoded bytes into the
// parent's buffer, sorting fields by name as required by the wire
// format. It returns an *errs.DuplicateFieldsError if unique-field
// validation is enabled and any key was inserted more than once. The
// ObjectBuilder must not be used again afterward, whether or not Finish
// returns an error.
func (ob *ObjectBuilder) Finish() error {
	if ob.finished {
		panic("builder: object already finished")
	}
	ob.finished = true

	metadata := ob.parent.Metadata()

	if ob.validateDupes && len(ob.duplicateIDs) > 0 {
		names := make([]string, 0, len(ob.duplicateIDs))
		for id := range ob.duplicateIDs {
			names = append(names, metadata.NameAt(id))
		}
		sort.Strings(names)
		ob.buffer.release()

		return errs.NewDuplicateFieldsError(names)
	}

	dataSize := ob.buffer.Len()
	numFields := len(ob.fields)
	isLarge := numFields > 0xFF

	ids := make([]uint32, 0, numFields)
	var maxID uint32
	for id := range ob.fields {
		ids = append(ids, id)
		if id > maxID {
			maxID = id
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return metadata.NameAt(ids[i]) < metadata.NameAt(ids[j])
	})

	idSize := intSize(uint64(maxID))
	offsetSize := intSize(uint64(dataSize))

	parentBuf := ob.parent.Buffer()
	startingOffset := parentBuf.Len()

	parentBuf.Header(objectHeader(isLarge, idSize, offsetSize), isLarge, numFields)

	idInts := make([]int, numFields)
	offsets := make([]int, numFields)
	for i, id := range ids {
		idInts[i] = int(id)
		offsets[i] = ob.fields[id]
	}
	parentBuf.OffsetArray(idInts, nil, idSize)
	parentBuf.OffsetArray(offsets, &dataSize, offsetSize)
	parentBuf.Extend(ob.buffer.Bytes())

	ob.buffer.release()
	ob.parent.finish(startingOffset)

	return nil
}

// Abandon discards the object without writing anything to the parent
// buffer. Field names upserted into the shared dictionary by values
// already inserted here remain, since the dictionary is append-only and
// never rolled back.
func (ob *ObjectBuilder) Abandon() {
	if ob.finished {
		panic("builder: object already finished")
	}
	ob.finished = true
	ob.buffer.release()
}
