// Package typedesc implements the type-description algebra: the
// structural model a producer emits alongside a binary payload so a
// consumer can decode it without compile-time knowledge of the producer's
// types.
//
// A Description is a small, closed algebraic sum of scalar leaves,
// product/sum containers (Option, Result, Array, Slice, Tuple), and a
// single recursion point, ByName, that lets cyclic or merely repeated
// named types appear on the wire exactly once per producer session.
package typedesc

// Kind tags the variant of a Description.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindBool
	KindUnit
	KindString
	KindPhantom
	KindRawPtr

	KindOption
	KindResult
	KindArray
	KindSlice
	KindTuple
	KindByName
)

// String renders the Kind using the same spelling as the scalar
// Description variant names in spec.md §3.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindI8:
		return "I8"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindBool:
		return "Bool"
	case KindUnit:
		return "Unit"
	case KindString:
		return "String"
	case KindPhantom:
		return "Phantom"
	case KindRawPtr:
		return "RawPtr"
	case KindOption:
		return "Option"
	case KindResult:
		return "Result"
	case KindArray:
		return "Array"
	case KindSlice:
		return "Slice"
	case KindTuple:
		return "Tuple"
	case KindByName:
		return "ByName"
	default:
		return "Unknown"
	}
}

// Id names a user-declared (struct or enum) type. Two Ids are the same
// named type iff they compare equal; Id is comparable so it can be used
// directly as a map key (registry.NameMap keys its body map by Id).
type Id struct {
	Name          string
	Disambiguator uint16
}

// Description is a value describing the wire shape of a type. Exactly
// the fields relevant to Kind are populated; the rest are left zero.
//
// Description is modeled as one tagged struct rather than an interface
// hierarchy: it has to compare equal by value (NameMap.Feed's Dups check),
// marshal cleanly to the side-channel format, and avoid an explosion of
// concrete types for what is, per spec.md §3, a closed, fixed set of
// variants.
type Description struct {
	Kind Kind

	// Option, Slice: the single sub-description.
	Elem *Description
	// Result: Ok sub-description (Elem is unused for Result).
	Ok *Description
	// Result: Err sub-description.
	Err *Description
	// Array: fixed element count; Elem is the element description.
	Len int
	// Tuple: element descriptions in order.
	Elems []Description

	// ByName: the stable identity of a named type.
	Name *Id
	// ByName: Some(body) on first sighting in a producer session, nil
	// (None) on every later occurrence.
	Body *Named
}

// Named is the expanded body of a user-declared sum (Enum) or product
// (Struct) type.
type Named struct {
	// Exactly one of Variants or Fields is meaningful, selected by IsEnum.
	IsEnum bool

	// Enum: (variant name, variant shape) pairs in declaration order.
	Variants []Variant

	// Struct: the product shape.
	Fields Struct
}

// Variant is one (name, shape) pair of an Enum body. The shape is always
// a Struct (Unit for a bare variant, Tuple for positional fields, Named
// for record-style fields) — enum payloads are anonymous, unlike a
// top-level Struct, which may carry its own Id.
type Variant struct {
	Name  string
	Shape Struct
}

// StructKind tags the shape of a Struct.
type StructKind uint8

const (
	StructUnit StructKind = iota
	StructTuple
	StructNamed
)

// Struct is the product-type shape: no fields, positional fields, or
// named fields. Field order is part of the shape (spec.md §3).
type Struct struct {
	Kind StructKind

	// StructTuple: element descriptions in declaration order.
	TupleFields []Description

	// StructNamed: (field name, description) pairs in declaration order.
	NamedFields []NamedField
}

// NamedField is one (name, description) pair of a StructNamed shape.
type NamedField struct {
	Name string
	Desc Description
}

// Convenience constructors for the scalar/zero-arg variants, so callers
// building descriptions by hand don't need to spell out a zero-valued
// Description{Kind: ...} literal.

func U8() Description           { return Description{Kind: KindU8} }
func U16() Description          { return Description{Kind: KindU16} }
func U32() Description          { return Description{Kind: KindU32} }
func U64() Description          { return Description{Kind: KindU64} }
func I8() Description           { return Description{Kind: KindI8} }
func I16() Description          { return Description{Kind: KindI16} }
func I32() Description          { return Description{Kind: KindI32} }
func I64() Description          { return Description{Kind: KindI64} }
func Bool() Description         { return Description{Kind: KindBool} }
func Unit() Description         { return Description{Kind: KindUnit} }
func PhantomData() Description  { return Description{Kind: KindPhantom} }
func String() Description       { return Description{Kind: KindString} }
func RawPtr() Description       { return Description{Kind: KindRawPtr} }

// OptionOf builds an Option(elem) description.
func OptionOf(elem Description) Description {
	return Description{Kind: KindOption, Elem: &elem}
}

// ResultOf builds a Result(ok, err) description.
func ResultOf(ok, errDesc Description) Description {
	return Description{Kind: KindResult, Ok: &ok, Err: &errDesc}
}

// ArrayOf builds a fixed-length Array(n, elem) description.
func ArrayOf(n int, elem Description) Description {
	return Description{Kind: KindArray, Len: n, Elem: &elem}
}

// SliceOf builds a dynamic-length Slice(elem) description.
func SliceOf(elem Description) Description {
	return Description{Kind: KindSlice, Elem: &elem}
}

// TupleOf builds a Tuple(elems...) description.
func TupleOf(elems ...Description) Description {
	return Description{Kind: KindTuple, Elems: elems}
}

// ByName builds a ByName(id, body) description. body is nil for every
// occurrence after the first sighting of id within a producer session.
func ByName(id Id, body *Named) Description {
	return Description{Kind: KindByName, Name: &id, Body: body}
}
