package builder

import (
	"fmt"
	"sort"

	"github.com/variantfmt/variant/decoder"
	"github.com/variantfmt/variant/errs"
)

// Reappend decodes src and re-emits an equivalent value into dst, which
// may be the root VariantBuilder or a nested ListBuilder. It is how a
// Variant produced against one dictionary is copied into a builder tree
// that uses a different (or growing) dictionary: object field names are
// resolved against dst's own dictionary, and any name not already
// present there is upserted as a new entry rather than rejected.
//
// On error, any partially-built nested list or object spawned by this
// call is abandoned before the error is returned, leaving dst otherwise
// untouched except for dictionary entries already upserted — consistent
// with the package's abandonment-neutral contract.
func Reappend(dst ValueAppender, src decoder.Variant) error {
	kind, err := src.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case decoder.KindArray:
		return reappendList(dst, src)
	case decoder.KindObject:
		return reappendObject(dst, src)
	default:
		return appendPrimitiveTo(dst, src, kind)
	}
}

func reappendList(dst ValueAppender, src decoder.Variant) error {
	list, err := src.List()
	if err != nil {
		return err
	}

	lb := dst.NewList()
	for i := 0; i < list.Len(); i++ {
		elem, err := list.Element(i)
		if err != nil {
			lb.Abandon()

			return err
		}
		if err := Reappend(lb, elem); err != nil {
			lb.Abandon()

			return err
		}
	}
	lb.Finish()

	return nil
}

func reappendObject(dst ValueAppender, src decoder.Variant) error {
	obj, err := src.Object()
	if err != nil {
		return err
	}

	return reappendObjectFields(dst.NewObject(), destinationMetadata(dst), obj)
}

// AppendVariant copies a fully-decoded Variant into dst as a single new
// element or top-level value, equivalent to calling Reappend(dst, v).
// It is the entry point a caller reaches for when re-ingesting content
// already read back out of another Variant, rather than rebuilding it
// field by field.
func AppendVariant(dst ValueAppender, v decoder.Variant) error {
	return Reappend(dst, v)
}

// reappendField copies one source field into an in-progress ObjectBuilder
// under key. ObjectBuilder is deliberately excluded from ValueAppender —
// inserting into an object always needs a key — so this mirrors Reappend
// for the ObjectBuilder case instead of sharing its signature.
func reappendField(ob *ObjectBuilder, key string, v decoder.Variant) error {
	kind, err := v.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case decoder.KindArray:
		list, err := v.List()
		if err != nil {
			return err
		}

		lb := ob.NewList(key)
		for i := 0; i < list.Len(); i++ {
			elem, err := list.Element(i)
			if err != nil {
				lb.Abandon()

				return err
			}
			if err := Reappend(lb, elem); err != nil {
				lb.Abandon()

				return err
			}
		}
		lb.Finish()

		return nil
	case decoder.KindObject:
		nested, err := v.Object()
		if err != nil {
			return err
		}

		return reappendObjectFields(ob.NewObject(key), ob.parent.Metadata(), nested)
	default:
		ob.record(key)

		return appendPrimitive(&ob.buffer, v, kind)
	}
}

// reappendObjectFields inserts every field of obj into ob, in an order
// biased toward md's existing dictionary positions (fields already known
// to md sort before fields that will be newly upserted), then finishes
// ob. The bias only affects insertion order, not the final wire order:
// ObjectBuilder.Finish always re-sorts fields by name.
func reappendObjectFields(ob *ObjectBuilder, md *MetadataBuilder, obj decoder.Object) error {
	type sourceField struct {
		name  string
		value decoder.Variant
	}

	fields := make([]sourceField, obj.Len())
	for i := 0; i < obj.Len(); i++ {
		name, err := obj.FieldName(i)
		if err != nil {
			ob.Abandon()

			return err
		}
		val, err := obj.Value(i)
		if err != nil {
			ob.Abandon()

			return err
		}
		fields[i] = sourceField{name, val}
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return destinationRank(md, fields[i].name) < destinationRank(md, fields[j].name)
	})

	for _, f := range fields {
		if err := reappendField(ob, f.name, f.value); err != nil {
			ob.Abandon()

			return err
		}
	}

	return ob.Finish()
}

// destinationRank returns name's position in md's dictionary, or md.Len()
// if name is not yet present there.
func destinationRank(md *MetadataBuilder, name string) int {
	if md == nil {
		return 0
	}
	if id, ok := md.index[name]; ok {
		return int(id)
	}

	return md.Len()
}

func destinationMetadata(dst ValueAppender) *MetadataBuilder {
	switch d := dst.(type) {
	case *VariantBuilder:
		return d.metadata
	case *ListBuilder:
		return d.parent.Metadata()
	default:
		return nil
	}
}

// appendPrimitiveTo dispatches a primitive-kind source value to the
// correct underlying buffer for dst, performing whatever offset
// bookkeeping dst requires before the bytes are written.
func appendPrimitiveTo(dst ValueAppender, v decoder.Variant, kind decoder.Kind) error {
	switch d := dst.(type) {
	case *VariantBuilder:
		return appendPrimitive(&d.buffer, v, kind)
	case *ListBuilder:
		d.mark()

		return appendPrimitive(&d.buffer, v, kind)
	default:
		return fmt.Errorf("%w: unsupported re-append target", errs.ErrUnsupportedVariantKind)
	}
}

// appendPrimitive decodes v (whose kind must already be a non-container
// Kind) and writes it to buf.
func appendPrimitive(buf *ValueBuffer, v decoder.Variant, kind decoder.Kind) error {
	switch kind {
	case decoder.KindNull:
		buf.AppendNull()
	case decoder.KindBooleanTrue:
		buf.AppendBool(true)
	case decoder.KindBooleanFalse:
		buf.AppendBool(false)
	case decoder.KindInt8:
		val, err := v.Int8()
		if err != nil {
			return err
		}
		buf.AppendInt8(val)
	case decoder.KindInt16:
		val, err := v.Int16()
		if err != nil {
			return err
		}
		buf.AppendInt16(val)
	case decoder.KindInt32:
		val, err := v.Int32()
		if err != nil {
			return err
		}
		buf.AppendInt32(val)
	case decoder.KindInt64:
		val, err := v.Int64()
		if err != nil {
			return err
		}
		buf.AppendInt64(val)
	case decoder.KindFloat:
		val, err := v.Float()
		if err != nil {
			return err
		}
		buf.AppendFloat(val)
	case decoder.KindDouble:
		val, err := v.Double()
		if err != nil {
			return err
		}
		buf.AppendDouble(val)
	case decoder.KindDate:
		val, err := v.Date()
		if err != nil {
			return err
		}
		buf.AppendDate(val)
	case decoder.KindTimestampMicros:
		val, err := v.TimestampMicros()
		if err != nil {
			return err
		}
		buf.AppendTimestampMicros(val)
	case decoder.KindTimestampNtzMicros:
		val, err := v.TimestampNtzMicros()
		if err != nil {
			return err
		}
		buf.AppendTimestampNtzMicros(val)
	case decoder.KindDecimal4:
		val, err := v.Decimal4()
		if err != nil {
			return err
		}
		buf.AppendDecimal4(val.Scale, val.Unscaled)
	case decoder.KindDecimal8:
		val, err := v.Decimal8()
		if err != nil {
			return err
		}
		buf.AppendDecimal8(val.Scale, val.Unscaled)
	case decoder.KindDecimal16:
		val, err := v.Decimal16()
		if err != nil {
			return err
		}
		buf.AppendDecimal16(val.Scale, val.Unscaled)
	case decoder.KindBinary:
		val, err := v.Binary()
		if err != nil {
			return err
		}
		buf.AppendBinary(val)
	case decoder.KindString:
		val, err := v.StringValue()
		if err != nil {
			return err
		}
		if len(val) <= MaxShortStringLen {
			buf.AppendShortString(val)
		} else {
			buf.AppendString(val)
		}
	default:
		return fmt.Errorf("%w: cannot re-append kind %s as a primitive", errs.ErrUnsupportedVariantKind, kind)
	}

	return nil
}
