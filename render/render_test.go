package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/decode"
	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/wire"
)

func TestPlainRendersNamedStruct(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	desc := typedesc.ByName(id, &typedesc.Named{
		Fields: typedesc.Struct{
			Kind: typedesc.StructNamed,
			NamedFields: []typedesc.NamedField{
				{Name: "x", Desc: typedesc.U32()},
				{Name: "y", Desc: typedesc.U32()},
			},
		},
	})

	buf := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	p := NewPlain()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	require.NoError(dec.Decode(desc, p))
	require.Equal("Point(x: 1, y: 2)", p.String())
}

func TestPlainRendersOptionAndString(t *testing.T) {
	require := require.New(t)

	desc := typedesc.OptionOf(typedesc.String())

	w := wire.NewWriter(make([]byte, 16))
	require.NoError(w.PutUint8(1))
	require.NoError(w.PutString("hi"))

	p := NewPlain()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader(w.Content()))
	require.NoError(dec.Decode(desc, p))
	require.Equal(`Some("hi")`, p.String())
}

func TestPlainRendersEnumWithOptionalTypeName(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "SimpleEnum", Disambiguator: 0}
	desc := typedesc.ByName(id, &typedesc.Named{
		IsEnum: true,
		Variants: []typedesc.Variant{
			{Name: "WithUnit", Shape: typedesc.Struct{Kind: typedesc.StructUnit}},
		},
	})

	p := NewPlain().WithEnumNames(true)
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader([]byte{0x00}))
	require.NoError(dec.Decode(desc, p))
	require.Equal("SimpleEnum::WithUnit", p.String())
}

// TestPlainRendersUnitStruct is spec.md §8 scenario 4: SimpleStructUnit
// has an empty wire encoding and renders as its bare name.
func TestPlainRendersUnitStruct(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "SimpleStructUnit", Disambiguator: 0}
	desc := typedesc.ByName(id, &typedesc.Named{
		Fields: typedesc.Struct{Kind: typedesc.StructUnit},
	})

	p := NewPlain()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader(nil))
	require.NoError(dec.Decode(desc, p))
	require.Equal("SimpleStructUnit", p.String())
}

// TestPlainRendersOptionSomeU32 is spec.md §8 scenario 5: Option<u32> =
// Some(10) is wire bytes `01 0a 00 00 00` and renders as "Some(10)".
func TestPlainRendersOptionSomeU32(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x01, 0x0a, 0x00, 0x00, 0x00}
	desc := typedesc.OptionOf(typedesc.U32())

	p := NewPlain()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	require.NoError(dec.Decode(desc, p))
	require.Equal("Some(10)", p.String())
}

// TestPlainRendersDynamicSlice is spec.md §8 scenario 6: a dynamic u8
// slice [1, 2, 3] is an 8-byte little-endian length prefix (3) followed
// by its elements, and renders as "[1, 2, 3]".
func TestPlainRendersDynamicSlice(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}
	desc := typedesc.SliceOf(typedesc.U8())

	p := NewPlain()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	require.NoError(dec.Decode(desc, p))
	require.Equal("[1, 2, 3]", p.String())
}

func TestANSIWrapsSegmentsInEscapes(t *testing.T) {
	require := require.New(t)

	a := NewANSI()
	dec := decode.NewDecoder(registry.NewNameMap(), wire.NewReader([]byte{5}))
	require.NoError(dec.Decode(typedesc.U8(), a))

	out := a.String()
	require.Contains(out, "\x1b[38;2;255;200;0m")
	require.Contains(out, "5")
	require.Contains(out, "\x1b[0m")
}
