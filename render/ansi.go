package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/visitor"
)

// color is a 24-bit SGR foreground color, the Go stand-in for
// ansi_term::Colour::RGB — no ANSI/terminal-color library turned up
// anywhere in the retrieved pack, so the escape sequences here are
// hand-rolled directly from the literal RGB triples
// original_source/logpack-ron/src/ansi.rs defines.
type color struct{ r, g, b byte }

func (c color) sgr(bold bool) string {
	if bold {
		return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm", c.r, c.g, c.b)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
}

const sgrReset = "\x1b[0m"

func (c color) paint(s string) string      { return c.sgr(false) + s + sgrReset }
func (c color) paintBold(s string) string { return c.sgr(true) + s + sgrReset }

var (
	colorNum       = color{255, 200, 0}
	colorStr       = color{0, 192, 255}
	colorVoid      = color{80, 80, 80}
	colorPunct     = color{255, 255, 180}
	colorOpt       = color{100, 200, 100}
	colorValName   = color{150, 250, 50}
	colorOptNeg    = color{200, 100, 100}
	colorFieldName = color{180, 180, 255}
	colorTypeName  = color{150, 250, 0}
)

// ANSI renders a decoded value the same way Plain does, with each
// rendered segment wrapped in a 24-bit SGR foreground color matching
// original_source/logpack-ron/src/ansi.rs's palette: numbers, strings,
// punctuation, type/field names, and Option/Result markers each get
// their own color.
type ANSI struct {
	out       strings.Builder
	enumNames bool
}

var _ visitor.Visitor = (*ANSI)(nil)

// NewANSI creates an ANSI renderer with enum variant names unqualified.
func NewANSI() *ANSI {
	return &ANSI{}
}

// WithEnumNames turns on the typename-qualified rendering of enum
// variants, matching Plain.WithEnumNames.
func (a *ANSI) WithEnumNames(on bool) *ANSI {
	a.enumNames = on
	return a
}

// String returns everything rendered so far, including escape codes.
func (a *ANSI) String() string { return a.out.String() }

func (a *ANSI) push(c color, s string) { a.out.WriteString(c.paint(s)) }

func (a *ANSI) HandleU8(v uint8)   { a.push(colorNum, strconv.FormatUint(uint64(v), 10)) }
func (a *ANSI) HandleU16(v uint16) { a.push(colorNum, strconv.FormatUint(uint64(v), 10)) }
func (a *ANSI) HandleU32(v uint32) { a.push(colorNum, strconv.FormatUint(uint64(v), 10)) }
func (a *ANSI) HandleU64(v uint64) { a.push(colorNum, strconv.FormatUint(v, 10)) }
func (a *ANSI) HandleI8(v int8)    { a.push(colorNum, strconv.FormatInt(int64(v), 10)) }
func (a *ANSI) HandleI16(v int16)  { a.push(colorNum, strconv.FormatInt(int64(v), 10)) }
func (a *ANSI) HandleI32(v int32)  { a.push(colorNum, strconv.FormatInt(int64(v), 10)) }
func (a *ANSI) HandleI64(v int64)  { a.push(colorNum, strconv.FormatInt(v, 10)) }
func (a *ANSI) HandleBool(v bool)  { a.push(colorNum, strconv.FormatBool(v)) }
func (a *ANSI) HandleString(v string) {
	a.push(colorStr, fmt.Sprintf("%q", v))
}
func (a *ANSI) HandleUnit()    { a.push(colorVoid, "()") }
func (a *ANSI) HandlePhantom() { a.push(colorVoid, "PhantomData") }

func (a *ANSI) BeginEnum(id typedesc.Id, variantName string) visitor.Visitor {
	if a.enumNames {
		a.push(colorTypeName, id.Name)
		a.out.WriteString(colorPunct.paintBold("::"))
	}
	a.push(colorOpt, variantName)
	return a
}
func (a *ANSI) EndEnum(typedesc.Id) {}

func (a *ANSI) OptionNone() { a.push(colorOptNeg, "None") }
func (a *ANSI) OptionSome() visitor.Visitor {
	a.push(colorOpt, "Some")
	a.push(colorPunct, "(")
	return a
}
func (a *ANSI) OptionEnd() { a.push(colorPunct, ")") }

func (a *ANSI) ResultOk() visitor.Visitor {
	a.push(colorOpt, "Ok")
	a.push(colorPunct, "(")
	return a
}
func (a *ANSI) ResultErr() visitor.Visitor {
	a.push(colorOptNeg, "Err")
	a.push(colorPunct, "(")
	return a
}
func (a *ANSI) ResultEnd() { a.push(colorPunct, ")") }

func (a *ANSI) StructUnit(id *typedesc.Id) {
	if id != nil {
		a.push(colorValName, id.Name)
	}
}

func (a *ANSI) BeginStructNamed(id *typedesc.Id) visitor.Visitor {
	if id != nil {
		a.push(colorValName, id.Name)
	}
	a.push(colorPunct, "(")
	return a
}
func (a *ANSI) BeginNamedField(idx int, name string) visitor.Visitor {
	if idx != 0 {
		a.push(colorPunct, ", ")
	}
	a.push(colorFieldName, name)
	a.push(colorPunct, ": ")
	return a
}
func (a *ANSI) EndNamedField()  {}
func (a *ANSI) EndStructNamed() { a.push(colorPunct, ")") }

func (a *ANSI) BeginStructTuple(id *typedesc.Id) visitor.Visitor {
	if id != nil {
		a.push(colorValName, id.Name)
	}
	a.push(colorPunct, "(")
	return a
}
func (a *ANSI) BeginTupleField(idx int) visitor.Visitor {
	if idx != 0 {
		a.push(colorPunct, ", ")
	}
	return a
}
func (a *ANSI) EndTupleField()  {}
func (a *ANSI) EndStructTuple() { a.push(colorPunct, ")") }

func (a *ANSI) BeginTuple(int) visitor.Visitor { a.push(colorPunct, "("); return a }
func (a *ANSI) BeginTupleItem(idx int) {
	if idx != 0 {
		a.push(colorPunct, ", ")
	}
}
func (a *ANSI) EndTupleItem() {}
func (a *ANSI) EndTuple()     { a.push(colorPunct, ")") }

func (a *ANSI) BeginArray(int) visitor.Visitor { a.push(colorPunct, "["); return a }
func (a *ANSI) BeginArrayItem(idx int) {
	if idx != 0 {
		a.push(colorPunct, ", ")
	}
}
func (a *ANSI) EndArrayItem() {}
func (a *ANSI) EndArray()     { a.push(colorPunct, "]") }

func (a *ANSI) BeginSlice(int) visitor.Visitor { a.push(colorPunct, "["); return a }
func (a *ANSI) BeginSliceItem(idx int) {
	if idx != 0 {
		a.push(colorPunct, ", ")
	}
}
func (a *ANSI) EndSliceItem() {}
func (a *ANSI) EndSlice()     { a.push(colorPunct, "]") }
