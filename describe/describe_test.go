package describe

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
)

func TestScalarDescribe(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	require.Equal(typedesc.KindU32, U32.Describe(seen).Kind)
	require.Equal(typedesc.KindString, String.Describe(seen).Kind)
}

func TestOptionAndSliceDescribe(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	opt := Option(U32)
	d := opt.Describe(seen)
	require.Equal(typedesc.KindOption, d.Kind)
	require.Equal(typedesc.KindU32, d.Elem.Kind)

	sl := Slice(Bool)
	ds := sl.Describe(seen)
	require.Equal(typedesc.KindSlice, ds.Kind)
	require.Equal(typedesc.KindBool, ds.Elem.Kind)
}

func TestNamedElidesBodyAfterFirstSighting(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	typ := reflect.TypeOf(struct{ X int }{})

	build := func(seen *registry.SeenTypes) typedesc.Named {
		return typedesc.Named{Fields: typedesc.Struct{Kind: typedesc.StructUnit}}
	}

	first := Named("Widget", typ, seen, build)
	require.NotNil(first.Body)

	second := Named("Widget", typ, seen, build)
	require.Nil(second.Body)
	require.Equal(*first.Name, *second.Name)
}

func TestDurationDescribeIsNamedTuple(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	d := Duration.Describe(seen)
	require.Equal(typedesc.KindByName, d.Kind)
	require.Equal("Duration", d.Name.Name)
	require.NotNil(d.Body)
	require.Equal(typedesc.StructTuple, d.Body.Fields.Kind)
	require.Len(d.Body.Fields.TupleFields, 2)
}

func TestTimeDescribeIsNamedInstant(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	d := Time.Describe(seen)
	require.Equal(typedesc.KindByName, d.Kind)
	require.Equal("Instant", d.Name.Name)
	require.NotNil(d.Body)
	require.Equal(typedesc.StructTuple, d.Body.Fields.Kind)
	require.Len(d.Body.Fields.TupleFields, 2)
}

func TestTuple3Describe(t *testing.T) {
	require := require.New(t)

	seen := registry.NewSeenTypes()
	tup := Tuple3(U32, Bool, String)
	d := tup.Describe(seen)
	require.Equal(typedesc.KindTuple, d.Kind)
	require.Len(d.Elems, 3)
}
