package builder

import "math/big"

// ListBuilder builds one Array value.
//
// WARNING: a ListBuilder has no effect on whatever spawned it (the root
// VariantBuilder, an enclosing ListBuilder, or an enclosing ObjectBuilder)
// until Finish is called. Spawning a ListBuilder or ObjectBuilder from the
// same parent takes exclusive access to it; the parent must not be
// touched again until this builder's Finish or Abandon returns.
type ListBuilder struct {
	parent        parentState
	offsets       []int
	buffer        ValueBuffer
	validateDupes bool
	finished      bool
}

func newListBuilder(parent parentState, validateDupes bool) *ListBuilder {
	return &ListBuilder{
		parent:        parent,
		buffer:        newScratchValueBuffer(),
		validateDupes: validateDupes,
	}
}

// mark records the starting offset of the element about to be appended.
func (lb *ListBuilder) mark() {
	lb.offsets = append(lb.offsets, lb.buffer.Len())
}

func (lb *ListBuilder) AppendNull() {
	lb.mark()
	lb.buffer.AppendNull()
}

func (lb *ListBuilder) AppendBool(v bool) {
	lb.mark()
	lb.buffer.AppendBool(v)
}

func (lb *ListBuilder) AppendInt8(v int8) {
	lb.mark()
	lb.buffer.AppendInt8(v)
}

func (lb *ListBuilder) AppendInt16(v int16) {
	lb.mark()
	lb.buffer.AppendInt16(v)
}

func (lb *ListBuilder) AppendInt32(v int32) {
	lb.mark()
	lb.buffer.AppendInt32(v)
}

func (lb *ListBuilder) AppendInt64(v int64) {
	lb.mark()
	lb.buffer.AppendInt64(v)
}

func (lb *ListBuilder) AppendFloat(v float32) {
	lb.mark()
	lb.buffer.AppendFloat(v)
}

func (lb *ListBuilder) AppendDouble(v float64) {
	lb.mark()
	lb.buffer.AppendDouble(v)
}

func (lb *ListBuilder) AppendDate(days int32) {
	lb.mark()
	lb.buffer.AppendDate(days)
}

func (lb *ListBuilder) AppendTimestampMicros(micros int64) {
	lb.mark()
	lb.buffer.AppendTimestampMicros(micros)
}

func (lb *ListBuilder) AppendTimestampNtzMicros(micros int64) {
	lb.mark()
	lb.buffer.AppendTimestampNtzMicros(micros)
}

func (lb *ListBuilder) AppendDecimal4(scale uint8, unscaled int32) {
	lb.mark()
	lb.buffer.AppendDecimal4(scale, unscaled)
}

func (lb *ListBuilder) AppendDecimal8(scale uint8, unscaled int64) {
	lb.mark()
	lb.buffer.AppendDecimal8(scale, unscaled)
}

func (lb *ListBuilder) AppendDecimal16(scale uint8, unscaled *big.Int) {
	lb.mark()
	lb.buffer.AppendDecimal16(scale, unscaled)
}

func (lb *ListBuilder) AppendBinary(data []byte) {
	lb.mark()
	lb.buffer.AppendBinary(data)
}

// AppendString appends a string element, choosing the ShortString
// encoding when it fits and the long-form String encoding otherwise.
func (lb *ListBuilder) AppendString(s string) {
	lb.mark()
	if len(s) <= MaxShortStringLen {
		lb.buffer.AppendShortString(s)
	} else {
		lb.buffer.AppendString(s)
	}
}

// NewObject returns an object builder that appends a new nested object
// to this list. The returned builder has no effect until its Finish is
// called.
func (lb *ListBuilder) NewObject() *ObjectBuilder {
	return newObjectBuilder(listParentState(&lb.buffer, lb.parent.Metadata(), &lb.offsets), lb.validateDupes)
}

// NewList returns a list builder that appends a new nested list to this
// list. The returned builder has no effect until its Finish is called.
func (lb *ListBuilder) NewList() *ListBuilder {
	return newListBuilder(listParentState(&lb.buffer, lb.parent.Metadata(), &lb.offsets), lb.validateDupes)
}

// Finish finalizes the list and splices its encoded bytes into the
// parent's buffer. The ListBuilder must not be used again afterward.
func (lb *ListBuilder) Finish() {
	if lb.finished {
		panic("builder: list already finished")
	}
	lb.finished = true

	dataSize := lb.buffer.Len()
	numElements := len(lb.offsets)
	isLarge := numElements > 0xFF
	offsetSize := intSize(uint64(dataSize))

	parentBuf := lb.parent.Buffer()
	startingOffset := parentBuf.Len()

	parentBuf.Header(arrayHeader(isLarge, offsetSize), isLarge, numElements)
	parentBuf.OffsetArray(lb.offsets, &dataSize, offsetSize)
	parentBuf.Extend(lb.buffer.Bytes())

	lb.buffer.release()
	lb.parent.finish(startingOffset)
}

// Abandon discards the list without writing anything to the parent
// buffer. Field names upserted into the shared dictionary by values
// already appended here remain, since the dictionary is append-only and
// never rolled back.
func (lb *ListBuilder) Abandon() {
	if lb.finished {
		panic("builder: list already finished")
	}
	lb.finished = true
	lb.buffer.release()
}
