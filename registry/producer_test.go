package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type producerFoo struct{ A int }
type producerBar struct{ B int }

func TestSeenTypesFirstSightingGetsZero(t *testing.T) {
	require := require.New(t)

	s := NewSeenTypes()
	first, id := s.MakeNameForID("Widget", reflect.TypeOf(producerFoo{}))
	require.True(first)
	require.Equal("Widget", id.Name)
	require.Equal(uint16(0), id.Disambiguator)
}

func TestSeenTypesRepeatSightingReturnsSameId(t *testing.T) {
	require := require.New(t)

	s := NewSeenTypes()
	_, id1 := s.MakeNameForID("Widget", reflect.TypeOf(producerFoo{}))

	second, id2 := s.MakeNameForID("Widget", reflect.TypeOf(producerFoo{}))
	require.False(second)
	require.Equal(id1, id2)
}

func TestSeenTypesDistinctTypesSameNameGetIncreasingDisambiguators(t *testing.T) {
	require := require.New(t)

	s := NewSeenTypes()
	_, id1 := s.MakeNameForID("Widget", reflect.TypeOf(producerFoo{}))
	_, id2 := s.MakeNameForID("Widget", reflect.TypeOf(producerBar{}))

	require.Equal(uint16(0), id1.Disambiguator)
	require.Equal(uint16(1), id2.Disambiguator)
	require.NotEqual(id1, id2)
}

func TestSeenTypesIndependentNamesDoNotShareCounters(t *testing.T) {
	require := require.New(t)

	s := NewSeenTypes()
	_, id1 := s.MakeNameForID("Widget", reflect.TypeOf(producerFoo{}))
	_, id2 := s.MakeNameForID("Gadget", reflect.TypeOf(producerBar{}))

	require.Equal(uint16(0), id1.Disambiguator)
	require.Equal(uint16(0), id2.Disambiguator)
}
