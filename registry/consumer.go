package registry

import (
	"reflect"

	"github.com/logpack-go/logpack/errs"
	"github.com/logpack-go/logpack/typedesc"
)

// NameMap is the consumer-side registry: it absorbs Description trees
// fed to it, storing each named type's expanded body by Id, and
// rewrites the description it returns so every ByName reference carries
// no inline body — all named content lives in the map (spec.md §4.5
// post-condition).
//
// NameMap is read-only during decoding; a single writer (Feed) must not
// run concurrently with any decoder reading it (spec.md §5).
type NameMap struct {
	bodies map[typedesc.Id]typedesc.Named
}

// NewNameMap creates an empty consumer registry.
func NewNameMap() *NameMap {
	return &NameMap{bodies: make(map[typedesc.Id]typedesc.Named)}
}

// Lookup returns the body previously inserted for id, if any.
func (m *NameMap) Lookup(id typedesc.Id) (typedesc.Named, bool) {
	body, ok := m.bodies[id]
	return body, ok
}

// Feed recursively absorbs desc: every ByName(id, Some(body)) it
// contains is inserted into the map and rewritten to ByName(id, None);
// every ByName(id, None) is returned unchanged (its body is assumed
// already present, or to arrive in a later Feed call — missing bodies
// are only detected at decode time, per spec.md §4.5).
//
// Feed is idempotent (spec.md §8 invariant 3): feeding the output of a
// previous Feed call inserts no new bodies, because that output no
// longer carries any inline Some(body).
func (m *NameMap) Feed(desc typedesc.Description) (typedesc.Description, error) {
	switch desc.Kind {
	case typedesc.KindOption:
		elem, err := m.Feed(*desc.Elem)
		if err != nil {
			return typedesc.Description{}, err
		}
		return typedesc.OptionOf(elem), nil

	case typedesc.KindSlice:
		elem, err := m.Feed(*desc.Elem)
		if err != nil {
			return typedesc.Description{}, err
		}
		return typedesc.SliceOf(elem), nil

	case typedesc.KindArray:
		elem, err := m.Feed(*desc.Elem)
		if err != nil {
			return typedesc.Description{}, err
		}
		return typedesc.ArrayOf(desc.Len, elem), nil

	case typedesc.KindResult:
		ok, err := m.Feed(*desc.Ok)
		if err != nil {
			return typedesc.Description{}, err
		}
		errDesc, err := m.Feed(*desc.Err)
		if err != nil {
			return typedesc.Description{}, err
		}
		return typedesc.ResultOf(ok, errDesc), nil

	case typedesc.KindTuple:
		elems := make([]typedesc.Description, len(desc.Elems))
		for i, e := range desc.Elems {
			fed, err := m.Feed(e)
			if err != nil {
				return typedesc.Description{}, err
			}
			elems[i] = fed
		}
		return typedesc.TupleOf(elems...), nil

	case typedesc.KindByName:
		if desc.Body == nil {
			return desc, nil
		}

		resolved, err := m.feedNamed(*desc.Body)
		if err != nil {
			return typedesc.Description{}, err
		}

		id := *desc.Name
		if existing, ok := m.bodies[id]; ok {
			if !reflect.DeepEqual(existing, resolved) {
				return typedesc.Description{}, &errs.ErrDups{Name: id.Name, Disambiguator: id.Disambiguator}
			}
		} else {
			m.bodies[id] = resolved
		}

		return typedesc.ByName(id, nil), nil

	default:
		// Scalars and other leaf variants pass through unchanged.
		return desc, nil
	}
}

func (m *NameMap) feedNamed(named typedesc.Named) (typedesc.Named, error) {
	if named.IsEnum {
		variants := make([]typedesc.Variant, len(named.Variants))
		for i, v := range named.Variants {
			shape, err := m.feedStruct(v.Shape)
			if err != nil {
				return typedesc.Named{}, err
			}
			variants[i] = typedesc.Variant{Name: v.Name, Shape: shape}
		}
		return typedesc.Named{IsEnum: true, Variants: variants}, nil
	}

	fields, err := m.feedStruct(named.Fields)
	if err != nil {
		return typedesc.Named{}, err
	}
	return typedesc.Named{Fields: fields}, nil
}

func (m *NameMap) feedStruct(s typedesc.Struct) (typedesc.Struct, error) {
	switch s.Kind {
	case typedesc.StructUnit:
		return s, nil

	case typedesc.StructTuple:
		fields := make([]typedesc.Description, len(s.TupleFields))
		for i, f := range s.TupleFields {
			fed, err := m.Feed(f)
			if err != nil {
				return typedesc.Struct{}, err
			}
			fields[i] = fed
		}
		return typedesc.Struct{Kind: typedesc.StructTuple, TupleFields: fields}, nil

	case typedesc.StructNamed:
		fields := make([]typedesc.NamedField, len(s.NamedFields))
		for i, f := range s.NamedFields {
			fed, err := m.Feed(f.Desc)
			if err != nil {
				return typedesc.Struct{}, err
			}
			fields[i] = typedesc.NamedField{Name: f.Name, Desc: fed}
		}
		return typedesc.Struct{Kind: typedesc.StructNamed, NamedFields: fields}, nil

	default:
		return s, nil
	}
}
