package decode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/visitor"
	"github.com/logpack-go/logpack/wire"
)

// recordingVisitor captures every event it receives as a flat trace, so
// tests can assert on call order and values without building a full
// rendering pipeline. It always returns itself from every BeginX method,
// which is sufficient for the fixtures below (none nest a second,
// distinct recorder).
type recordingVisitor struct {
	trace []string
}

var _ visitor.Visitor = (*recordingVisitor)(nil)

func newRecordingVisitor() *recordingVisitor { return &recordingVisitor{} }

func (v *recordingVisitor) record(s string) { v.trace = append(v.trace, s) }

func (v *recordingVisitor) HandleU8(val uint8)    { v.record("u8") }
func (v *recordingVisitor) HandleU16(val uint16)  { v.record("u16") }
func (v *recordingVisitor) HandleU32(val uint32)  { v.record("u32") }
func (v *recordingVisitor) HandleU64(val uint64)  { v.record("u64") }
func (v *recordingVisitor) HandleI8(val int8)     { v.record("i8") }
func (v *recordingVisitor) HandleI16(val int16)   { v.record("i16") }
func (v *recordingVisitor) HandleI32(val int32)   { v.record("i32") }
func (v *recordingVisitor) HandleI64(val int64)   { v.record("i64") }
func (v *recordingVisitor) HandleBool(val bool)   { v.record("bool") }
func (v *recordingVisitor) HandleString(s string) { v.record("string:" + s) }
func (v *recordingVisitor) HandleUnit()           { v.record("unit") }
func (v *recordingVisitor) HandlePhantom()        { v.record("phantom") }

func (v *recordingVisitor) BeginEnum(id typedesc.Id, variantName string) visitor.Visitor {
	v.record("begin_enum:" + variantName)
	return v
}
func (v *recordingVisitor) EndEnum(id typedesc.Id) { v.record("end_enum") }

func (v *recordingVisitor) OptionNone()              { v.record("option_none") }
func (v *recordingVisitor) OptionSome() visitor.Visitor { v.record("option_some"); return v }
func (v *recordingVisitor) OptionEnd()               { v.record("option_end") }

func (v *recordingVisitor) ResultOk() visitor.Visitor  { v.record("result_ok"); return v }
func (v *recordingVisitor) ResultErr() visitor.Visitor { v.record("result_err"); return v }
func (v *recordingVisitor) ResultEnd()                 { v.record("result_end") }

func (v *recordingVisitor) StructUnit(id *typedesc.Id) { v.record("struct_unit") }

func (v *recordingVisitor) BeginStructNamed(id *typedesc.Id) visitor.Visitor {
	v.record("begin_struct_named")
	return v
}
func (v *recordingVisitor) BeginNamedField(idx int, name string) visitor.Visitor {
	v.record("begin_named_field:" + name)
	return v
}
func (v *recordingVisitor) EndNamedField()    { v.record("end_named_field") }
func (v *recordingVisitor) EndStructNamed()   { v.record("end_struct_named") }

func (v *recordingVisitor) BeginStructTuple(id *typedesc.Id) visitor.Visitor {
	v.record("begin_struct_tuple")
	return v
}
func (v *recordingVisitor) BeginTupleField(idx int) visitor.Visitor {
	v.record("begin_tuple_field")
	return v
}
func (v *recordingVisitor) EndTupleField()  { v.record("end_tuple_field") }
func (v *recordingVisitor) EndStructTuple() { v.record("end_struct_tuple") }

func (v *recordingVisitor) BeginTuple(size int) visitor.Visitor { v.record("begin_tuple"); return v }
func (v *recordingVisitor) BeginTupleItem(idx int)              { v.record("begin_tuple_item") }
func (v *recordingVisitor) EndTupleItem()                       { v.record("end_tuple_item") }
func (v *recordingVisitor) EndTuple()                           { v.record("end_tuple") }

func (v *recordingVisitor) BeginArray(size int) visitor.Visitor { v.record("begin_array"); return v }
func (v *recordingVisitor) BeginArrayItem(idx int)              { v.record("begin_array_item") }
func (v *recordingVisitor) EndArrayItem()                       { v.record("end_array_item") }
func (v *recordingVisitor) EndArray()                           { v.record("end_array") }

func (v *recordingVisitor) BeginSlice(size int) visitor.Visitor { v.record("begin_slice"); return v }
func (v *recordingVisitor) BeginSliceItem(idx int)              { v.record("begin_slice_item") }
func (v *recordingVisitor) EndSliceItem()                       { v.record("end_slice_item") }
func (v *recordingVisitor) EndSlice()                           { v.record("end_slice") }

func TestDecodeScalar(t *testing.T) {
	require := require.New(t)

	buf := []byte{0x1e, 0x00, 0x00, 0x00}
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	v := newRecordingVisitor()

	require.NoError(dec.Decode(typedesc.U32(), v))
	require.Equal([]string{"u32"}, v.trace)
}

func TestDecodeOptionSomeAndNone(t *testing.T) {
	require := require.New(t)

	desc := typedesc.OptionOf(typedesc.U8())

	v := newRecordingVisitor()
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader([]byte{0x00}))
	require.NoError(dec.Decode(desc, v))
	require.Equal([]string{"option_none"}, v.trace)

	v2 := newRecordingVisitor()
	dec2 := NewDecoder(registry.NewNameMap(), wire.NewReader([]byte{0x01, 0x07}))
	require.NoError(dec2.Decode(desc, v2))
	require.Equal([]string{"option_some", "u8", "option_end"}, v2.trace)
}

func TestDecodeSliceReadsLengthPrefix(t *testing.T) {
	require := require.New(t)

	desc := typedesc.SliceOf(typedesc.U8())
	buf := []byte{2, 0, 0, 0, 0, 0, 0, 0, 9, 8}

	v := newRecordingVisitor()
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	require.NoError(dec.Decode(desc, v))
	require.Equal([]string{"begin_slice", "begin_slice_item", "u8", "end_slice_item",
		"begin_slice_item", "u8", "end_slice_item", "end_slice"}, v.trace)
}

func TestDecodeByNameMissingType(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "Widget", Disambiguator: 0}
	desc := typedesc.ByName(id, nil)

	v := newRecordingVisitor()
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader(nil))
	err := dec.Decode(desc, v)
	require.Error(err)
}

func TestDecodeByNameResolvesFromRegistry(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "Point", Disambiguator: 0}
	body := &typedesc.Named{
		Fields: typedesc.Struct{
			Kind: typedesc.StructNamed,
			NamedFields: []typedesc.NamedField{
				{Name: "x", Desc: typedesc.U32()},
			},
		},
	}

	m := registry.NewNameMap()
	fed, err := m.Feed(typedesc.ByName(id, body))
	require.NoError(err)

	buf := []byte{1, 0, 0, 0}
	v := newRecordingVisitor()
	dec := NewDecoder(m, wire.NewReader(buf))
	require.NoError(dec.Decode(fed, v))
	require.Equal([]string{"begin_struct_named", "begin_named_field:x", "u32", "end_named_field", "end_struct_named"}, v.trace)
}

func TestDecodeEnumSelectsVariantByTag(t *testing.T) {
	require := require.New(t)

	id := typedesc.Id{Name: "SimpleEnum", Disambiguator: 0}
	body := &typedesc.Named{
		IsEnum: true,
		Variants: []typedesc.Variant{
			{Name: "WithUnit", Shape: typedesc.Struct{Kind: typedesc.StructUnit}},
			{Name: "WithTuple", Shape: typedesc.Struct{Kind: typedesc.StructTuple, TupleFields: []typedesc.Description{typedesc.U32()}}},
		},
	}

	desc := typedesc.ByName(id, body)

	buf := []byte{0x00}
	v := newRecordingVisitor()
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader(buf))
	require.NoError(dec.Decode(desc, v))
	require.Equal([]string{"begin_enum:WithUnit", "struct_unit", "end_enum"}, v.trace)
}

func TestDecodeInvalidOptionMarker(t *testing.T) {
	require := require.New(t)

	desc := typedesc.OptionOf(typedesc.U8())
	v := newRecordingVisitor()
	dec := NewDecoder(registry.NewNameMap(), wire.NewReader([]byte{0x02}))
	require.Error(dec.Decode(desc, v))
}
