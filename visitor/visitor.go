// Package visitor defines the event-sink contract a Decoder drives as
// it walks a resolved Description in lockstep with an encoded payload —
// the Go analogue of original_source/logpack/src/decoder.rs's Callbacks
// trait.
//
// Rust's trait carries an associated type, SubType: Callbacks, so each
// beginX method can hand the walk a differently-typed nested context.
// Go generics have no associated-type equivalent reachable through a
// plain interface value, so every beginX method here returns the
// Visitor interface itself; an implementation that wants a distinct
// nested representation (e.g. a tree builder) returns a different
// Visitor value from beginX rather than a different static type. The
// render package's Plain and ANSI always return themselves.
package visitor

import "github.com/logpack-go/logpack/typedesc"

// Visitor receives one event per Description node the Decoder visits.
//
// Every BeginX method that introduces a nested shape (a struct's
// fields, an enum's active variant, a container's elements) returns the
// Visitor to use for that nested walk. The closing call of such a shape
// (EndEnum, OptionEnd, ResultEnd, EndStructNamed, EndStructTuple,
// EndTuple, EndArray, EndSlice) goes to the Visitor its BeginX returned;
// EndNamedField and EndTupleField go to the Visitor that
// BeginNamedField/BeginTupleField was called on, not to the per-field
// Visitor they returned.
//
// BeginTupleItem, BeginArrayItem, and BeginSliceItem return nothing: in
// the original trait, only the outer BeginTuple/BeginArray/BeginSlice
// call introduces a nested context, and every element of that
// container — regardless of position — is decoded against that same
// context. This is asymmetric with BeginTupleField/BeginNamedField
// (each field of a named or tuple struct gets its own nested context,
// since each field can carry a distinct type), and that asymmetry is
// carried over here unchanged because it is the original format's
// actual wire-walking contract, not an oversight.
type Visitor interface {
	HandleU8(v uint8)
	HandleU16(v uint16)
	HandleU32(v uint32)
	HandleU64(v uint64)
	HandleI8(v int8)
	HandleI16(v int16)
	HandleI32(v int32)
	HandleI64(v int64)
	HandleBool(v bool)
	HandleString(v string)
	HandleUnit()
	HandlePhantom()

	BeginEnum(id typedesc.Id, variantName string) Visitor
	EndEnum(id typedesc.Id)

	OptionNone()
	OptionSome() Visitor
	OptionEnd()

	ResultOk() Visitor
	ResultErr() Visitor
	ResultEnd()

	// StructUnit announces a unit struct. id is nil when the unit shape
	// is an enum variant's payload rather than a named struct type.
	StructUnit(id *typedesc.Id)

	BeginStructNamed(id *typedesc.Id) Visitor
	BeginNamedField(idx int, name string) Visitor
	EndNamedField()
	EndStructNamed()

	BeginStructTuple(id *typedesc.Id) Visitor
	BeginTupleField(idx int) Visitor
	EndTupleField()
	EndStructTuple()

	BeginTuple(size int) Visitor
	BeginTupleItem(idx int)
	EndTupleItem()
	EndTuple()

	BeginArray(size int) Visitor
	BeginArrayItem(idx int)
	EndArrayItem()
	EndArray()

	BeginSlice(size int) Visitor
	BeginSliceItem(idx int)
	EndSliceItem()
	EndSlice()
}
