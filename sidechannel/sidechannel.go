// Package sidechannel serializes a typedesc.Description to and from the
// out-of-band wire format a producer and consumer exchange descriptions
// over — spec.md §4.6 leaves the side-channel encoding open; this
// package picks YAML (via gopkg.in/yaml.v3, already an indirect
// dependency of the teacher's test stack and promoted here to direct
// use) because Description's tagged-union shape maps onto a
// self-describing, human-readable document without needing a schema
// registry of its own — useful for logging the shape of a session's
// types alongside its binary payload, or diffing two captured sessions
// by eye.
//
// Description itself is not annotated with yaml tags: its pointer-heavy
// variant fields (Elem/Ok/Err/Name/Body) would marshal as a confusing
// tangle of nulls for every Kind that doesn't use them. Instead this
// package mirrors Description as a parallel, tag-annotated shadow tree
// and converts between the two, the same trade pattern the original
// Rust describes as an explicit wire type distinct from its in-memory
// Description<T> (original_source/logpack/src/lib.rs's Description<Id>
// vs Description<TypeNameId> substitution).
package sidechannel

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/logpack-go/logpack/typedesc"
)

type wireDescription struct {
	Kind  string            `yaml:"kind"`
	Elem  *wireDescription  `yaml:"elem,omitempty"`
	Ok    *wireDescription  `yaml:"ok,omitempty"`
	Err   *wireDescription  `yaml:"err,omitempty"`
	Len   int               `yaml:"len,omitempty"`
	Elems []wireDescription `yaml:"elems,omitempty"`
	Name  *wireID           `yaml:"name,omitempty"`
	Body  *wireNamed        `yaml:"body,omitempty"`
}

type wireID struct {
	Name          string `yaml:"name"`
	Disambiguator uint16 `yaml:"disambiguator"`
}

type wireNamed struct {
	IsEnum   bool          `yaml:"is_enum,omitempty"`
	Variants []wireVariant `yaml:"variants,omitempty"`
	Fields   *wireStruct   `yaml:"fields,omitempty"`
}

type wireVariant struct {
	Name  string     `yaml:"name"`
	Shape wireStruct `yaml:"shape"`
}

type wireStruct struct {
	Kind        string            `yaml:"kind"`
	TupleFields []wireDescription `yaml:"tuple_fields,omitempty"`
	NamedFields []wireNamedField  `yaml:"named_fields,omitempty"`
}

type wireNamedField struct {
	Name string          `yaml:"name"`
	Desc wireDescription `yaml:"desc"`
}

// Encode renders desc as a YAML document.
func Encode(desc typedesc.Description) ([]byte, error) {
	return yaml.Marshal(toWire(desc))
}

// Decode parses a YAML document produced by Encode back into a
// Description.
func Decode(data []byte) (typedesc.Description, error) {
	var w wireDescription
	if err := yaml.Unmarshal(data, &w); err != nil {
		return typedesc.Description{}, fmt.Errorf("sidechannel: %w", err)
	}
	return fromWire(w)
}

func toWire(d typedesc.Description) wireDescription {
	w := wireDescription{Kind: d.Kind.String(), Len: d.Len}

	if d.Elem != nil {
		e := toWire(*d.Elem)
		w.Elem = &e
	}
	if d.Ok != nil {
		e := toWire(*d.Ok)
		w.Ok = &e
	}
	if d.Err != nil {
		e := toWire(*d.Err)
		w.Err = &e
	}
	if d.Elems != nil {
		w.Elems = make([]wireDescription, len(d.Elems))
		for i, e := range d.Elems {
			w.Elems[i] = toWire(e)
		}
	}
	if d.Name != nil {
		w.Name = &wireID{Name: d.Name.Name, Disambiguator: d.Name.Disambiguator}
	}
	if d.Body != nil {
		body := namedToWire(*d.Body)
		w.Body = &body
	}

	return w
}

func namedToWire(n typedesc.Named) wireNamed {
	w := wireNamed{IsEnum: n.IsEnum}
	if n.IsEnum {
		w.Variants = make([]wireVariant, len(n.Variants))
		for i, v := range n.Variants {
			w.Variants[i] = wireVariant{Name: v.Name, Shape: structToWire(v.Shape)}
		}
		return w
	}

	fields := structToWire(n.Fields)
	w.Fields = &fields
	return w
}

func structToWire(s typedesc.Struct) wireStruct {
	w := wireStruct{Kind: structKindName(s.Kind)}
	if len(s.TupleFields) > 0 {
		w.TupleFields = make([]wireDescription, len(s.TupleFields))
		for i, f := range s.TupleFields {
			w.TupleFields[i] = toWire(f)
		}
	}
	if len(s.NamedFields) > 0 {
		w.NamedFields = make([]wireNamedField, len(s.NamedFields))
		for i, f := range s.NamedFields {
			w.NamedFields[i] = wireNamedField{Name: f.Name, Desc: toWire(f.Desc)}
		}
	}
	return w
}

func fromWire(w wireDescription) (typedesc.Description, error) {
	kind, err := kindFromName(w.Kind)
	if err != nil {
		return typedesc.Description{}, err
	}

	d := typedesc.Description{Kind: kind, Len: w.Len}

	if w.Elem != nil {
		e, err := fromWire(*w.Elem)
		if err != nil {
			return typedesc.Description{}, err
		}
		d.Elem = &e
	}
	if w.Ok != nil {
		e, err := fromWire(*w.Ok)
		if err != nil {
			return typedesc.Description{}, err
		}
		d.Ok = &e
	}
	if w.Err != nil {
		e, err := fromWire(*w.Err)
		if err != nil {
			return typedesc.Description{}, err
		}
		d.Err = &e
	}
	if w.Elems != nil {
		d.Elems = make([]typedesc.Description, len(w.Elems))
		for i, e := range w.Elems {
			elem, err := fromWire(e)
			if err != nil {
				return typedesc.Description{}, err
			}
			d.Elems[i] = elem
		}
	}
	if w.Name != nil {
		d.Name = &typedesc.Id{Name: w.Name.Name, Disambiguator: w.Name.Disambiguator}
	}
	if w.Body != nil {
		body, err := namedFromWire(*w.Body)
		if err != nil {
			return typedesc.Description{}, err
		}
		d.Body = &body
	}

	return d, nil
}

func namedFromWire(w wireNamed) (typedesc.Named, error) {
	if w.IsEnum {
		variants := make([]typedesc.Variant, len(w.Variants))
		for i, v := range w.Variants {
			shape, err := structFromWire(v.Shape)
			if err != nil {
				return typedesc.Named{}, err
			}
			variants[i] = typedesc.Variant{Name: v.Name, Shape: shape}
		}
		return typedesc.Named{IsEnum: true, Variants: variants}, nil
	}

	if w.Fields == nil {
		return typedesc.Named{}, fmt.Errorf("sidechannel: struct body missing fields")
	}
	fields, err := structFromWire(*w.Fields)
	if err != nil {
		return typedesc.Named{}, err
	}
	return typedesc.Named{Fields: fields}, nil
}

func structFromWire(w wireStruct) (typedesc.Struct, error) {
	kind, err := structKindFromName(w.Kind)
	if err != nil {
		return typedesc.Struct{}, err
	}

	s := typedesc.Struct{Kind: kind}
	if len(w.TupleFields) > 0 {
		s.TupleFields = make([]typedesc.Description, len(w.TupleFields))
		for i, f := range w.TupleFields {
			d, err := fromWire(f)
			if err != nil {
				return typedesc.Struct{}, err
			}
			s.TupleFields[i] = d
		}
	}
	if len(w.NamedFields) > 0 {
		s.NamedFields = make([]typedesc.NamedField, len(w.NamedFields))
		for i, f := range w.NamedFields {
			d, err := fromWire(f.Desc)
			if err != nil {
				return typedesc.Struct{}, err
			}
			s.NamedFields[i] = typedesc.NamedField{Name: f.Name, Desc: d}
		}
	}
	return s, nil
}

func structKindName(k typedesc.StructKind) string {
	switch k {
	case typedesc.StructUnit:
		return "unit"
	case typedesc.StructTuple:
		return "tuple"
	case typedesc.StructNamed:
		return "named"
	default:
		return "unknown"
	}
}

func structKindFromName(s string) (typedesc.StructKind, error) {
	switch s {
	case "unit":
		return typedesc.StructUnit, nil
	case "tuple":
		return typedesc.StructTuple, nil
	case "named":
		return typedesc.StructNamed, nil
	default:
		return 0, fmt.Errorf("sidechannel: unknown struct kind %q", s)
	}
}

func kindFromName(s string) (typedesc.Kind, error) {
	switch s {
	case "U8":
		return typedesc.KindU8, nil
	case "U16":
		return typedesc.KindU16, nil
	case "U32":
		return typedesc.KindU32, nil
	case "U64":
		return typedesc.KindU64, nil
	case "I8":
		return typedesc.KindI8, nil
	case "I16":
		return typedesc.KindI16, nil
	case "I32":
		return typedesc.KindI32, nil
	case "I64":
		return typedesc.KindI64, nil
	case "Bool":
		return typedesc.KindBool, nil
	case "Unit":
		return typedesc.KindUnit, nil
	case "String":
		return typedesc.KindString, nil
	case "Phantom":
		return typedesc.KindPhantom, nil
	case "RawPtr":
		return typedesc.KindRawPtr, nil
	case "Option":
		return typedesc.KindOption, nil
	case "Result":
		return typedesc.KindResult, nil
	case "Array":
		return typedesc.KindArray, nil
	case "Slice":
		return typedesc.KindSlice, nil
	case "Tuple":
		return typedesc.KindTuple, nil
	case "ByName":
		return typedesc.KindByName, nil
	default:
		return 0, fmt.Errorf("sidechannel: unknown description kind %q", s)
	}
}
