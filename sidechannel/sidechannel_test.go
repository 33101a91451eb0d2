package sidechannel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/typedesc"
)

func TestRoundTripScalar(t *testing.T) {
	require := require.New(t)

	data, err := Encode(typedesc.U32())
	require.NoError(err)

	got, err := Decode(data)
	require.NoError(err)
	require.Equal(typedesc.U32(), got)
}

func TestRoundTripNamedStruct(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	desc := typedesc.ByName(id, &typedesc.Named{
		Fields: typedesc.Struct{
			Kind: typedesc.StructNamed,
			NamedFields: []typedesc.NamedField{
				{Name: "x", Desc: typedesc.U32()},
				{Name: "y", Desc: typedesc.OptionOf(typedesc.String())},
			},
		},
	})

	data, err := Encode(desc)
	require.NoError(err)

	got, err := Decode(data)
	require.NoError(err)
	require.Equal(desc, got)
}

func TestRoundTripEnum(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "SimpleEnum", Disambiguator: 1}
	desc := typedesc.ByName(id, &typedesc.Named{
		IsEnum: true,
		Variants: []typedesc.Variant{
			{Name: "WithUnit", Shape: typedesc.Struct{Kind: typedesc.StructUnit}},
			{Name: "WithTuple", Shape: typedesc.Struct{
				Kind:        typedesc.StructTuple,
				TupleFields: []typedesc.Description{typedesc.U32()},
			}},
		},
	})

	data, err := Encode(desc)
	require.NoError(err)

	got, err := Decode(data)
	require.NoError(err)
	require.Equal(desc, got)
}

func TestRoundTripContainers(t *testing.T) {
	require := require.New(t)

	desc := typedesc.TupleOf(
		typedesc.ArrayOf(3, typedesc.U8()),
		typedesc.SliceOf(typedesc.Bool()),
		typedesc.ResultOf(typedesc.U32(), typedesc.String()),
	)

	data, err := Encode(desc)
	require.NoError(err)

	got, err := Decode(data)
	require.NoError(err)
	require.Equal(desc, got)
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	require := require.New(t)

	_, err := Decode([]byte("kind: NotAKind\n"))
	require.Error(err)
}
