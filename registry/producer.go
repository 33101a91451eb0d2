// Package registry implements the two type registries spec.md §3
// describes: the producer-side SeenTypes, which de-duplicates named
// types within a single producer session, and the consumer-side
// NameMap, which absorbs descriptions fed to it and resolves ByName
// references at decode time.
package registry

import (
	"reflect"

	"github.com/logpack-go/logpack/typedesc"
)

// SeenTypes assigns each native type a stable typedesc.Id the first time
// it is described in a producer session, and remembers that assignment
// for every later sighting of the same type.
//
// A Go program has no first-class TypeId the way Rust does; reflect.Type
// already is a comparable, per-type identity value, so it plays that
// role directly — no TypeId-style wrapper or hashing is needed.
//
// SeenTypes is not safe for concurrent use (spec.md §5: "the producer
// registry is written only while building a Description and is
// otherwise read-only. Locking is the caller's responsibility.").
type SeenTypes struct {
	byType map[reflect.Type]typedesc.Id
	names  map[string]uint16
}

// NewSeenTypes creates an empty producer registry.
func NewSeenTypes() *SeenTypes {
	return &SeenTypes{
		byType: make(map[reflect.Type]typedesc.Id),
		names:  make(map[string]uint16),
	}
}

// MakeNameForID returns the stable Id for nativeType under display name
// name, allocating one on first sighting.
//
// The disambiguator numbering resolves spec.md §9 Open Question (a): the
// first distinct native type seen under a given display name gets
// disambiguator 0; every later distinct native type sharing that name
// gets the next integer in first-sighting order (1, 2, …). This follows
// original_source/logpack/src/lib.rs's SeenTypes::make_name_for_id read
// literally — the "first name inserted with value 0" is not a bug, it's
// the base case of that counter.
//
// firstSeen is true exactly once per nativeType per SeenTypes instance;
// the describe path (package describe) uses it to decide whether to
// emit the type's expanded body or elide it.
func (s *SeenTypes) MakeNameForID(name string, nativeType reflect.Type) (firstSeen bool, id typedesc.Id) {
	if existing, ok := s.byType[nativeType]; ok {
		return false, existing
	}

	disambiguator, seenName := s.names[name]
	if !seenName {
		s.names[name] = 0
		id = typedesc.Id{Name: name, Disambiguator: 0}
		s.byType[nativeType] = id
		return true, id
	}

	next := disambiguator + 1
	s.names[name] = next
	id = typedesc.Id{Name: name, Disambiguator: next}
	s.byType[nativeType] = id
	return true, id
}
