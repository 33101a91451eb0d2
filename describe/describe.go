// Package describe builds typedesc.Description values for Go types,
// mirroring the blanket Logpack trait impls of
// original_source/logpack/src/lib.rs as generic Describer[T] instances
// — the description-side counterpart to package codec's Encoder[T].
//
// A description only depends on a type's shape, not on any particular
// value of it (scalars, containers, and even enum bodies list every
// variant regardless of which one a given value holds) — so Describer's
// zero-value-independent Describe method is the primary one; Describe
// ByValue exists only to mirror the Rust trait's by-value entry point
// and defaults to ignoring the value.
package describe

import (
	"reflect"

	"github.com/logpack-go/logpack/codec"
	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
)

// Describer is the description-side contract for a single Go type.
type Describer[T any] interface {
	Describe(seen *registry.SeenTypes) typedesc.Description
	DescribeByValue(v T, seen *registry.SeenTypes) typedesc.Description
}

// byValue adapts a value-independent Describe into the by-value entry
// point, the same default original_source/logpack/src/lib.rs's trait
// gives logpack_describe_by_value.
type byValue[T any] struct{ describeOnly }

// describeOnly is the value-independent half of Describer that byValue
// wraps.
type describeOnly interface {
	Describe(seen *registry.SeenTypes) typedesc.Description
}

func (b byValue[T]) DescribeByValue(_ T, seen *registry.SeenTypes) typedesc.Description {
	return b.Describe(seen)
}

type scalarDescriber struct {
	kind typedesc.Kind
}

func (s scalarDescriber) describe() typedesc.Description { return typedesc.Description{Kind: s.kind} }

type uint8Describer struct{ scalarDescriber }

func (d uint8Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d uint8Describer) DescribeByValue(uint8, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type uint16Describer struct{ scalarDescriber }

func (d uint16Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d uint16Describer) DescribeByValue(uint16, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type uint32Describer struct{ scalarDescriber }

func (d uint32Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d uint32Describer) DescribeByValue(uint32, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type uint64Describer struct{ scalarDescriber }

func (d uint64Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d uint64Describer) DescribeByValue(uint64, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type int8Describer struct{ scalarDescriber }

func (d int8Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d int8Describer) DescribeByValue(int8, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type int16Describer struct{ scalarDescriber }

func (d int16Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d int16Describer) DescribeByValue(int16, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type int32Describer struct{ scalarDescriber }

func (d int32Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d int32Describer) DescribeByValue(int32, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type int64Describer struct{ scalarDescriber }

func (d int64Describer) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d int64Describer) DescribeByValue(int64, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type boolDescriber struct{ scalarDescriber }

func (d boolDescriber) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d boolDescriber) DescribeByValue(bool, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type stringDescriber struct{ scalarDescriber }

func (d stringDescriber) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d stringDescriber) DescribeByValue(string, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type unitDescriber struct{ scalarDescriber }

func (d unitDescriber) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d unitDescriber) DescribeByValue(struct{}, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type phantomDescriber struct{ scalarDescriber }

func (d phantomDescriber) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d phantomDescriber) DescribeByValue(struct{}, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

type rawPtrDescriber struct{ scalarDescriber }

func (d rawPtrDescriber) Describe(*registry.SeenTypes) typedesc.Description { return d.describe() }
func (d rawPtrDescriber) DescribeByValue(uintptr, *registry.SeenTypes) typedesc.Description {
	return d.describe()
}

// The scalar describer instances, one shared value per type.
var (
	U8      Describer[uint8]    = uint8Describer{scalarDescriber{typedesc.KindU8}}
	U16     Describer[uint16]   = uint16Describer{scalarDescriber{typedesc.KindU16}}
	U32     Describer[uint32]   = uint32Describer{scalarDescriber{typedesc.KindU32}}
	U64     Describer[uint64]   = uint64Describer{scalarDescriber{typedesc.KindU64}}
	I8      Describer[int8]     = int8Describer{scalarDescriber{typedesc.KindI8}}
	I16     Describer[int16]    = int16Describer{scalarDescriber{typedesc.KindI16}}
	I32     Describer[int32]    = int32Describer{scalarDescriber{typedesc.KindI32}}
	I64     Describer[int64]    = int64Describer{scalarDescriber{typedesc.KindI64}}
	Bool    Describer[bool]     = boolDescriber{scalarDescriber{typedesc.KindBool}}
	String  Describer[string]   = stringDescriber{scalarDescriber{typedesc.KindString}}
	Unit    Describer[struct{}] = unitDescriber{scalarDescriber{typedesc.KindUnit}}
	Phantom Describer[struct{}] = phantomDescriber{scalarDescriber{typedesc.KindPhantom}}
	RawPtr  Describer[uintptr]  = rawPtrDescriber{scalarDescriber{typedesc.KindRawPtr}}
)

type optionDescriber[T any] struct {
	elem Describer[T]
}

// Option builds the Describer for *T, the pointer standing in for
// Rust's Option<T> the same way it does in package codec.
func Option[T any](elem Describer[T]) Describer[*T] {
	return byValue[*T]{optionDescriber[T]{elem: elem}}
}

func (d optionDescriber[T]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.OptionOf(d.elem.Describe(seen))
}

type eitherDescriber[T, E any] struct {
	ok  Describer[T]
	err Describer[E]
}

// Result builds the Describer for codec.Either[T, E].
func Result[T, E any](ok Describer[T], err Describer[E]) Describer[codec.Either[T, E]] {
	return byValue[codec.Either[T, E]]{eitherDescriber[T, E]{ok: ok, err: err}}
}

func (d eitherDescriber[T, E]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.ResultOf(d.ok.Describe(seen), d.err.Describe(seen))
}

type sliceDescriber[T any] struct {
	elem Describer[T]
}

// Slice builds the Describer for []T.
func Slice[T any](elem Describer[T]) Describer[[]T] {
	return byValue[[]T]{sliceDescriber[T]{elem: elem}}
}

func (d sliceDescriber[T]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.SliceOf(d.elem.Describe(seen))
}

type arrayDescriber[T any] struct {
	n    int
	elem Describer[T]
}

// Array builds the Describer for a fixed-length []T of n elements.
func Array[T any](n int, elem Describer[T]) Describer[[]T] {
	return byValue[[]T]{arrayDescriber[T]{n: n, elem: elem}}
}

func (d arrayDescriber[T]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.ArrayOf(d.n, d.elem.Describe(seen))
}

// Named builds a ByName description for a user-declared struct or enum
// type, following original_source/logpack/src/lib.rs's
// std_type_to_tuple! pattern: the body is built (and so every field/
// variant type recursively described) only the first time nativeType is
// seen in this producer session; every later sighting elides it to
// ByName(id, nil).
//
// buildBody is only invoked when firstSeen is true, so it is safe for it
// to recursively describe the same nativeType (a self-referential or
// mutually recursive type): the recursive call hits the already-
// registered Id before it can invoke buildBody again.
func Named(name string, nativeType reflect.Type, seen *registry.SeenTypes, buildBody func(seen *registry.SeenTypes) typedesc.Named) typedesc.Description {
	firstSeen, id := seen.MakeNameForID(name, nativeType)
	if !firstSeen {
		return typedesc.ByName(id, nil)
	}

	body := buildBody(seen)
	return typedesc.ByName(id, &body)
}

// StructDescriber is a Describer for a user-declared product type,
// built once with Named and reused across every value of T.
type StructDescriber[T any] struct {
	describe func(seen *registry.SeenTypes) typedesc.Description
}

// NewStructDescriber wraps a Named-built description function as a
// Describer[T].
func NewStructDescriber[T any](describe func(seen *registry.SeenTypes) typedesc.Description) Describer[T] {
	return byValue[T]{StructDescriber[T]{describe: describe}}
}

func (d StructDescriber[T]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return d.describe(seen)
}
