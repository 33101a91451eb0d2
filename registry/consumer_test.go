package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/typedesc"
)

func simpleNamedBody() *typedesc.Named {
	return &typedesc.Named{
		Fields: typedesc.Struct{
			Kind: typedesc.StructNamed,
			NamedFields: []typedesc.NamedField{
				{Name: "x", Desc: typedesc.U32()},
			},
		},
	}
}

func TestFeedFirstSightingInsertsBodyAndStripsIt(t *testing.T) {
	require := require.New(t)

	m := NewNameMap()
	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	desc := typedesc.ByName(id, simpleNamedBody())

	out, err := m.Feed(desc)
	require.NoError(err)
	require.Equal(typedesc.KindByName, out.Kind)
	require.Nil(out.Body)
	require.Equal(id, *out.Name)

	body, ok := m.Lookup(id)
	require.True(ok)
	require.False(body.IsEnum)
	require.Len(body.Fields.NamedFields, 1)
}

func TestFeedIsIdempotent(t *testing.T) {
	require := require.New(t)

	m := NewNameMap()
	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	desc := typedesc.ByName(id, simpleNamedBody())

	first, err := m.Feed(desc)
	require.NoError(err)

	second, err := m.Feed(first)
	require.NoError(err)
	require.Equal(first, second)
}

func TestFeedConflictingBodiesUnderSameIdIsDups(t *testing.T) {
	require := require.New(t)

	m := NewNameMap()
	id := typedesc.Id{Name: "Point", Disambiguator: 0}

	_, err := m.Feed(typedesc.ByName(id, simpleNamedBody()))
	require.NoError(err)

	conflicting := &typedesc.Named{
		Fields: typedesc.Struct{
			Kind: typedesc.StructNamed,
			NamedFields: []typedesc.NamedField{
				{Name: "y", Desc: typedesc.U64()},
			},
		},
	}
	_, err = m.Feed(typedesc.ByName(id, conflicting))
	require.Error(err)
}

func TestFeedRecursesThroughContainers(t *testing.T) {
	require := require.New(t)

	m := NewNameMap()
	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	inner := typedesc.ByName(id, simpleNamedBody())

	desc := typedesc.SliceOf(typedesc.OptionOf(inner))
	out, err := m.Feed(desc)
	require.NoError(err)

	require.Equal(typedesc.KindSlice, out.Kind)
	require.Equal(typedesc.KindOption, out.Elem.Kind)
	require.Nil(out.Elem.Elem.Body)

	_, ok := m.Lookup(id)
	require.True(ok)
}

func TestFeedNoneBodyPassesThroughUnresolved(t *testing.T) {
	require := require.New(t)

	m := NewNameMap()
	id := typedesc.Id{Name: "Point", Disambiguator: 0}

	out, err := m.Feed(typedesc.ByName(id, nil))
	require.NoError(err)
	require.Nil(out.Body)

	_, ok := m.Lookup(id)
	require.False(ok)
}
