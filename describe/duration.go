package describe

import (
	"reflect"
	"time"

	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
)

var durationType = reflect.TypeOf(time.Duration(0))
var timeType = reflect.TypeOf(time.Time{})

// Duration is the Describer for time.Duration, grounded in
// original_source/logpack/src/lib.rs's std_type_to_tuple!(Duration: u64,
// u32): a named tuple struct of two fields, here a whole-seconds field
// and a subsecond-nanoseconds field (see codec.DurationCodec).
var Duration Describer[time.Duration] = byValue[time.Duration]{durationDescriber{}}

type durationDescriber struct{}

func (durationDescriber) Describe(seen *registry.SeenTypes) typedesc.Description {
	return Named("Duration", durationType, seen, func(seen *registry.SeenTypes) typedesc.Named {
		return typedesc.Named{
			Fields: typedesc.Struct{
				Kind: typedesc.StructTuple,
				TupleFields: []typedesc.Description{
					U64.Describe(seen),
					U32.Describe(seen),
				},
			},
		}
	})
}

// Time is the Describer for time.Time, the Go stand-in for the
// original's std::time::Instant (see codec.TimeCodec): the same
// (u64, u32) named-tuple shape as Duration, distinguished only by name
// so a consumer can tell a measured span from a point in time.
var Time Describer[time.Time] = byValue[time.Time]{timeDescriber{}}

type timeDescriber struct{}

func (timeDescriber) Describe(seen *registry.SeenTypes) typedesc.Description {
	return Named("Instant", timeType, seen, func(seen *registry.SeenTypes) typedesc.Named {
		return typedesc.Named{
			Fields: typedesc.Struct{
				Kind: typedesc.StructTuple,
				TupleFields: []typedesc.Description{
					U64.Describe(seen),
					U32.Describe(seen),
				},
			},
		}
	})
}
