// Package decode implements the Decoder: an interpreter that walks a
// resolved typedesc.Description in lockstep with an encoded payload,
// emitting one visitor.Visitor event per node visited. It is the
// consumer-side mirror of packages codec (which writes payloads) and
// describe (which builds descriptions), grounded in
// original_source/logpack/src/decoder.rs's Decoder/decode_* methods.
package decode

import (
	"fmt"

	"github.com/logpack-go/logpack/errs"
	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/visitor"
	"github.com/logpack-go/logpack/wire"
)

// Decoder reads payload bytes from an underlying wire.Reader, resolving
// any ByName(id, nil) reference it meets against a registry.NameMap.
//
// A Decoder borrows both its Reader and its NameMap for its lifetime;
// it does not mutate the NameMap (Feed is the registry's only writer),
// so one NameMap may back any number of concurrently running Decoders
// reading independent buffers (spec.md §5).
type Decoder struct {
	types *registry.NameMap
	r     *wire.Reader
}

// NewDecoder creates a Decoder over r, resolving ByName references
// against types.
func NewDecoder(types *registry.NameMap, r *wire.Reader) *Decoder {
	return &Decoder{types: types, r: r}
}

// Decode walks desc once, consuming exactly as many bytes from the
// underlying reader as desc's shape prescribes, and reports every node
// visited to v.
func (d *Decoder) Decode(desc typedesc.Description, v visitor.Visitor) error {
	switch desc.Kind {
	case typedesc.KindU8:
		val, err := d.r.GetUint8()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleU8(val)
		return nil

	case typedesc.KindU16:
		val, err := d.r.GetUint16()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleU16(val)
		return nil

	case typedesc.KindU32:
		val, err := d.r.GetUint32()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleU32(val)
		return nil

	case typedesc.KindU64:
		val, err := d.r.GetUint64()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleU64(val)
		return nil

	case typedesc.KindI8:
		val, err := d.r.GetInt8()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleI8(val)
		return nil

	case typedesc.KindI16:
		val, err := d.r.GetInt16()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleI16(val)
		return nil

	case typedesc.KindI32:
		val, err := d.r.GetInt32()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleI32(val)
		return nil

	case typedesc.KindI64:
		val, err := d.r.GetInt64()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleI64(val)
		return nil

	case typedesc.KindBool:
		val, err := d.r.GetBool()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleBool(val)
		return nil

	case typedesc.KindUnit:
		v.HandleUnit()
		return nil

	case typedesc.KindPhantom:
		v.HandlePhantom()
		return nil

	case typedesc.KindString:
		return d.decodeString(v)

	case typedesc.KindOption:
		return d.decodeOption(*desc.Elem, v)

	case typedesc.KindResult:
		return d.decodeResult(*desc.Ok, *desc.Err, v)

	case typedesc.KindArray:
		return d.decodeArray(desc.Len, *desc.Elem, v)

	case typedesc.KindSlice:
		return d.decodeSlice(*desc.Elem, v)

	case typedesc.KindTuple:
		return d.decodeTuple(desc.Elems, v)

	case typedesc.KindByName:
		if desc.Body != nil {
			return d.decodeByNameDirect(*desc.Name, *desc.Body, v)
		}
		return d.decodeByName(*desc.Name, v)

	case typedesc.KindRawPtr:
		val, err := d.r.GetUint64()
		if err != nil {
			return wrapGet(err)
		}
		v.HandleU64(val)
		return nil

	default:
		return fmt.Errorf("decode: unknown description kind %v", desc.Kind)
	}
}

func wrapGet(err error) error {
	if be, ok := err.(*errs.BufferError); ok {
		return errs.NewErrGet(be)
	}
	return err
}

// decodeByName resolves typename against the registry, failing with
// ErrMissingType if it was never fed.
func (d *Decoder) decodeByName(id typedesc.Id, v visitor.Visitor) error {
	named, ok := d.types.Lookup(id)
	if !ok {
		return &errs.ErrMissingType{Name: id.Name, Disambiguator: id.Disambiguator}
	}
	return d.decodeByNameDirect(id, named, v)
}

func (d *Decoder) decodeByNameDirect(id typedesc.Id, named typedesc.Named, v visitor.Visitor) error {
	if named.IsEnum {
		variantCount := len(named.Variants)
		idx, err := d.readTag(variantCount)
		if err != nil {
			return err
		}
		if idx >= variantCount {
			return &errs.ErrInvalidIndex{Index: idx, Cardinality: variantCount}
		}

		ctx := v.BeginEnum(id, named.Variants[idx].Name)
		if err := d.decodeStruct(nil, named.Variants[idx].Shape, ctx); err != nil {
			return err
		}
		ctx.EndEnum(id)
		return nil
	}

	return d.decodeStruct(&id, named.Fields, v)
}

// readTag reads an enum's discriminant, whose width wire.TagWidth picks
// from the variant count: u8 below 256 variants, u16 below 65536, u32
// otherwise — the same selection used for encoding (spec.md §4.2).
func (d *Decoder) readTag(cardinality int) (int, error) {
	idx, err := d.r.GetTag(cardinality)
	if err != nil {
		return 0, wrapGet(err)
	}
	return idx, nil
}

func (d *Decoder) decodeStruct(id *typedesc.Id, shape typedesc.Struct, v visitor.Visitor) error {
	switch shape.Kind {
	case typedesc.StructUnit:
		v.StructUnit(id)
		return nil

	case typedesc.StructNamed:
		ctx := v.BeginStructNamed(id)
		for idx, field := range shape.NamedFields {
			fieldCtx := ctx.BeginNamedField(idx, field.Name)
			if err := d.Decode(field.Desc, fieldCtx); err != nil {
				return err
			}
			ctx.EndNamedField()
		}
		ctx.EndStructNamed()
		return nil

	case typedesc.StructTuple:
		ctx := v.BeginStructTuple(id)
		for idx, field := range shape.TupleFields {
			fieldCtx := ctx.BeginTupleField(idx)
			if err := d.Decode(field, fieldCtx); err != nil {
				return err
			}
			ctx.EndTupleField()
		}
		ctx.EndStructTuple()
		return nil

	default:
		return nil
	}
}

func (d *Decoder) decodeArray(size int, elem typedesc.Description, v visitor.Visitor) error {
	ctx := v.BeginArray(size)
	for idx := 0; idx < size; idx++ {
		ctx.BeginArrayItem(idx)
		if err := d.Decode(elem, ctx); err != nil {
			return err
		}
		ctx.EndArrayItem()
	}
	ctx.EndArray()
	return nil
}

func (d *Decoder) decodeSlice(elem typedesc.Description, v visitor.Visitor) error {
	rawSize, err := d.r.GetUint64()
	if err != nil {
		return wrapGet(err)
	}
	size := int(rawSize)

	ctx := v.BeginSlice(size)
	for idx := 0; idx < size; idx++ {
		ctx.BeginSliceItem(idx)
		if err := d.Decode(elem, ctx); err != nil {
			return err
		}
		ctx.EndSliceItem()
	}
	ctx.EndSlice()
	return nil
}

func (d *Decoder) decodeTuple(elems []typedesc.Description, v visitor.Visitor) error {
	ctx := v.BeginTuple(len(elems))
	for idx, elem := range elems {
		ctx.BeginTupleItem(idx)
		if err := d.Decode(elem, ctx); err != nil {
			return err
		}
		ctx.EndTupleItem()
	}
	ctx.EndTuple()
	return nil
}

func (d *Decoder) decodeOption(elem typedesc.Description, v visitor.Visitor) error {
	tag, err := d.r.GetUint8()
	if err != nil {
		return wrapGet(err)
	}

	switch tag {
	case 0:
		v.OptionNone()
	case 1:
		ctx := v.OptionSome()
		if err := d.Decode(elem, ctx); err != nil {
			return err
		}
		ctx.OptionEnd()
	default:
		return &errs.ErrInvalidSome{Byte: tag}
	}
	return nil
}

func (d *Decoder) decodeResult(ok, errDesc typedesc.Description, v visitor.Visitor) error {
	tag, err := d.r.GetUint8()
	if err != nil {
		return wrapGet(err)
	}

	switch tag {
	case 0:
		ctx := v.ResultOk()
		if err := d.Decode(ok, ctx); err != nil {
			return err
		}
		ctx.ResultEnd()
	case 1:
		ctx := v.ResultErr()
		if err := d.Decode(errDesc, ctx); err != nil {
			return err
		}
		ctx.ResultEnd()
	default:
		return &errs.ErrInvalidResult{Byte: tag}
	}
	return nil
}

func (d *Decoder) decodeString(v visitor.Visitor) error {
	s, err := d.r.GetString()
	if err != nil {
		return wrapGet(err)
	}
	v.HandleString(s)
	return nil
}
