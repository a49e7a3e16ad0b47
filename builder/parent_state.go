package builder

// parentStateKind tags which of a builder's three shapes a parentState
// describes. Dispatching on this tag keeps finish() a flat switch instead
// of dynamic interface dispatch, mirroring how the root VariantBuilder,
// ListBuilder, and ObjectBuilder are laid out.
type parentStateKind uint8

const (
	parentRoot parentStateKind = iota
	parentInList
	parentInObject
)

// parentState captures exclusive, non-owning access to whatever a child
// builder will write back into once it finishes. It is created when a
// ListBuilder or ObjectBuilder is spawned and consumed by exactly one
// call to finish. Holding a parentState is what makes the parent
// unusable until the child it was handed to is finished or abandoned —
// Go has no borrow checker to enforce this, so ListBuilder, VariantBuilder,
// and ValueAppender.NewList/NewObject document the caller's obligation to
// finish a child before touching the parent again.
type parentState struct {
	kind parentStateKind

	buffer   *ValueBuffer
	metadata *MetadataBuilder

	// valid when kind == parentInList
	listOffsets *[]int

	// valid when kind == parentInObject
	objectFields  *map[uint32]int
	duplicateIDs  *map[uint32]struct{}
	pendingField  string
	validateDupes bool
}

func rootParentState(buffer *ValueBuffer, metadata *MetadataBuilder) parentState {
	return parentState{kind: parentRoot, buffer: buffer, metadata: metadata}
}

func listParentState(buffer *ValueBuffer, metadata *MetadataBuilder, offsets *[]int) parentState {
	return parentState{kind: parentInList, buffer: buffer, metadata: metadata, listOffsets: offsets}
}

func objectParentState(
	buffer *ValueBuffer,
	metadata *MetadataBuilder,
	fields *map[uint32]int,
	duplicateIDs *map[uint32]struct{},
	validateDupes bool,
	pendingField string,
) parentState {
	return parentState{
		kind:          parentInObject,
		buffer:        buffer,
		metadata:      metadata,
		objectFields:  fields,
		duplicateIDs:  duplicateIDs,
		validateDupes: validateDupes,
		pendingField:  pendingField,
	}
}

// Buffer returns the parent's value buffer, the destination a finishing
// child splices its bytes into.
func (ps *parentState) Buffer() *ValueBuffer {
	return ps.buffer
}

// Metadata returns the field-name dictionary shared by the whole tree.
func (ps *parentState) Metadata() *MetadataBuilder {
	return ps.metadata
}

// finish records the child's contribution at startingOffset, the position
// in the parent buffer where the child's bytes begin.
func (ps *parentState) finish(startingOffset int) {
	switch ps.kind {
	case parentRoot:
		// no-op: the root has no enclosing collection to register with.
	case parentInList:
		*ps.listOffsets = append(*ps.listOffsets, startingOffset)
	case parentInObject:
		fieldID := ps.metadata.Upsert(ps.pendingField)
		if _, exists := (*ps.objectFields)[fieldID]; exists && ps.validateDupes {
			(*ps.duplicateIDs)[fieldID] = struct{}{}
		}
		(*ps.objectFields)[fieldID] = startingOffset
	}
}
