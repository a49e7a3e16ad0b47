// Package builder constructs Variant metadata and value blobs.
//
// A VariantBuilder owns a field-name dictionary (MetadataBuilder) and the
// top-level value buffer. Nested collections are built with ListBuilder
// and ObjectBuilder, spawned via NewList/NewObject on whichever builder
// currently holds the slot the nested value will occupy. A spawned child
// has no effect on its parent until its Finish method is called; calling
// any other method on the parent before that happens is a misuse this
// package cannot detect at compile time, since Go has no borrow checker,
// so callers are expected to respect the one-child-at-a-time discipline
// documented on ValueAppender.NewList/NewObject, ListBuilder, and
// VariantBuilder.
//
//	b := builder.NewVariantBuilder()
//	obj := b.NewObject()
//	obj.InsertInt8("age", 42)
//	obj.InsertString("name", "alice")
//	if err := obj.Finish(); err != nil {
//	    // duplicate field keys, if validation was enabled
//	}
//	metadata, value := b.Finish()
//
// The field-name dictionary is shared by every nested builder in a tree
// and is append-only: once a name has been assigned an ID, abandoning
// the builder that inserted it does not remove the name, only the bytes
// it would have contributed to the value blob.
package builder
