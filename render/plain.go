// Package render implements the two reference Visitor implementations
// spec.md §4.7 describes: Plain, a bare-text Rust-literal-style
// renderer, and ANSI, the same rendering with SGR color escapes. Both
// are grounded in original_source/logpack-ron/src/lib.rs and
// original_source/logpack-ron/src/ansi.rs.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/visitor"
)

// Plain renders a decoded value as Rust-literal-style text: struct and
// enum names, positional and named fields, Option/Result wrapping, and
// bracketed containers — with no color.
type Plain struct {
	out       strings.Builder
	enumNames bool
}

var _ visitor.Visitor = (*Plain)(nil)

// NewPlain creates a Plain renderer with enum variant names unqualified
// (WithEnumNames opts into the TypeName::Variant form).
func NewPlain() *Plain {
	return &Plain{}
}

// WithEnumNames turns on the typename-qualified rendering of enum
// variants (TypeName::Variant instead of bare Variant).
func (p *Plain) WithEnumNames(on bool) *Plain {
	p.enumNames = on
	return p
}

// String returns everything rendered so far.
func (p *Plain) String() string { return p.out.String() }

func (p *Plain) HandleU8(v uint8)   { p.out.WriteString(strconv.FormatUint(uint64(v), 10)) }
func (p *Plain) HandleU16(v uint16) { p.out.WriteString(strconv.FormatUint(uint64(v), 10)) }
func (p *Plain) HandleU32(v uint32) { p.out.WriteString(strconv.FormatUint(uint64(v), 10)) }
func (p *Plain) HandleU64(v uint64) { p.out.WriteString(strconv.FormatUint(v, 10)) }
func (p *Plain) HandleI8(v int8)    { p.out.WriteString(strconv.FormatInt(int64(v), 10)) }
func (p *Plain) HandleI16(v int16)  { p.out.WriteString(strconv.FormatInt(int64(v), 10)) }
func (p *Plain) HandleI32(v int32)  { p.out.WriteString(strconv.FormatInt(int64(v), 10)) }
func (p *Plain) HandleI64(v int64)  { p.out.WriteString(strconv.FormatInt(v, 10)) }
func (p *Plain) HandleBool(v bool)  { p.out.WriteString(strconv.FormatBool(v)) }
func (p *Plain) HandleString(v string) {
	p.out.WriteString(fmt.Sprintf("%q", v))
}
func (p *Plain) HandleUnit()    { p.out.WriteString("()") }
func (p *Plain) HandlePhantom() { p.out.WriteString("PhantomData") }

func (p *Plain) BeginEnum(id typedesc.Id, variantName string) visitor.Visitor {
	if p.enumNames {
		p.out.WriteString(id.Name)
		p.out.WriteString("::")
	}
	p.out.WriteString(variantName)
	return p
}
func (p *Plain) EndEnum(typedesc.Id) {}

func (p *Plain) OptionNone()                 { p.out.WriteString("None") }
func (p *Plain) OptionSome() visitor.Visitor { p.out.WriteString("Some("); return p }
func (p *Plain) OptionEnd()                  { p.out.WriteString(")") }

func (p *Plain) ResultOk() visitor.Visitor  { p.out.WriteString("Ok("); return p }
func (p *Plain) ResultErr() visitor.Visitor { p.out.WriteString("Err("); return p }
func (p *Plain) ResultEnd()                 { p.out.WriteString(")") }

func (p *Plain) StructUnit(id *typedesc.Id) {
	if id != nil {
		p.out.WriteString(id.Name)
	}
}

func (p *Plain) BeginStructNamed(id *typedesc.Id) visitor.Visitor {
	if id != nil {
		p.out.WriteString(id.Name)
	}
	p.out.WriteString("(")
	return p
}
func (p *Plain) BeginNamedField(idx int, name string) visitor.Visitor {
	if idx != 0 {
		p.out.WriteString(", ")
	}
	p.out.WriteString(name)
	p.out.WriteString(": ")
	return p
}
func (p *Plain) EndNamedField()  {}
func (p *Plain) EndStructNamed() { p.out.WriteString(")") }

func (p *Plain) BeginStructTuple(id *typedesc.Id) visitor.Visitor {
	if id != nil {
		p.out.WriteString(id.Name)
	}
	p.out.WriteString("(")
	return p
}
func (p *Plain) BeginTupleField(idx int) visitor.Visitor {
	if idx != 0 {
		p.out.WriteString(", ")
	}
	return p
}
func (p *Plain) EndTupleField()  {}
func (p *Plain) EndStructTuple() { p.out.WriteString(")") }

func (p *Plain) BeginTuple(int) visitor.Visitor { p.out.WriteString("("); return p }
func (p *Plain) BeginTupleItem(idx int) {
	if idx != 0 {
		p.out.WriteString(", ")
	}
}
func (p *Plain) EndTupleItem() {}
func (p *Plain) EndTuple()     { p.out.WriteString(")") }

func (p *Plain) BeginArray(int) visitor.Visitor { p.out.WriteString("["); return p }
func (p *Plain) BeginArrayItem(idx int) {
	if idx != 0 {
		p.out.WriteString(", ")
	}
}
func (p *Plain) EndArrayItem() {}
func (p *Plain) EndArray()     { p.out.WriteString("]") }

func (p *Plain) BeginSlice(int) visitor.Visitor { p.out.WriteString("["); return p }
func (p *Plain) BeginSliceItem(idx int) {
	if idx != 0 {
		p.out.WriteString(", ")
	}
}
func (p *Plain) EndSliceItem() {}
func (p *Plain) EndSlice()     { p.out.WriteString("]") }
