// Tuple describers, arity 2 through 16, mirroring codec's T2..T16
// value types and original_source/logpack/src/lib.rs's tuple! macro.
package describe

import (
	"github.com/logpack-go/logpack/codec"
	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/typedesc"
)

type tuple2Describer[A, B any] struct {
	d0 Describer[A]
	d1 Describer[B]
}

// Tuple2 builds the Describer for codec.T2[A, B].
func Tuple2[A, B any](d0 Describer[A], d1 Describer[B]) Describer[codec.T2[A, B]] {
	return byValue[codec.T2[A, B]]{tuple2Describer[A, B]{d0: d0, d1: d1}}
}

func (c tuple2Describer[A, B]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen))
}

type tuple3Describer[A, B, C any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
}

// Tuple3 builds the Describer for codec.T3[A, B, C].
func Tuple3[A, B, C any](d0 Describer[A], d1 Describer[B], d2 Describer[C]) Describer[codec.T3[A, B, C]] {
	return byValue[codec.T3[A, B, C]]{tuple3Describer[A, B, C]{d0: d0, d1: d1, d2: d2}}
}

func (c tuple3Describer[A, B, C]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen))
}

type tuple4Describer[A, B, C, D any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
}

// Tuple4 builds the Describer for codec.T4[A, B, C, D].
func Tuple4[A, B, C, D any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D]) Describer[codec.T4[A, B, C, D]] {
	return byValue[codec.T4[A, B, C, D]]{tuple4Describer[A, B, C, D]{d0: d0, d1: d1, d2: d2, d3: d3}}
}

func (c tuple4Describer[A, B, C, D]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen))
}

type tuple5Describer[A, B, C, D, E any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
}

// Tuple5 builds the Describer for codec.T5[A, B, C, D, E].
func Tuple5[A, B, C, D, E any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E]) Describer[codec.T5[A, B, C, D, E]] {
	return byValue[codec.T5[A, B, C, D, E]]{tuple5Describer[A, B, C, D, E]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4}}
}

func (c tuple5Describer[A, B, C, D, E]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen))
}

type tuple6Describer[A, B, C, D, E, F any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
}

// Tuple6 builds the Describer for codec.T6[A, B, C, D, E, F].
func Tuple6[A, B, C, D, E, F any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F]) Describer[codec.T6[A, B, C, D, E, F]] {
	return byValue[codec.T6[A, B, C, D, E, F]]{tuple6Describer[A, B, C, D, E, F]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5}}
}

func (c tuple6Describer[A, B, C, D, E, F]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen))
}

type tuple7Describer[A, B, C, D, E, F, G any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
}

// Tuple7 builds the Describer for codec.T7[A, B, C, D, E, F, G].
func Tuple7[A, B, C, D, E, F, G any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G]) Describer[codec.T7[A, B, C, D, E, F, G]] {
	return byValue[codec.T7[A, B, C, D, E, F, G]]{tuple7Describer[A, B, C, D, E, F, G]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6}}
}

func (c tuple7Describer[A, B, C, D, E, F, G]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen))
}

type tuple8Describer[A, B, C, D, E, F, G, H any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
}

// Tuple8 builds the Describer for codec.T8[A, B, C, D, E, F, G, H].
func Tuple8[A, B, C, D, E, F, G, H any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H]) Describer[codec.T8[A, B, C, D, E, F, G, H]] {
	return byValue[codec.T8[A, B, C, D, E, F, G, H]]{tuple8Describer[A, B, C, D, E, F, G, H]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7}}
}

func (c tuple8Describer[A, B, C, D, E, F, G, H]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen))
}

type tuple9Describer[A, B, C, D, E, F, G, H, I any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
}

// Tuple9 builds the Describer for codec.T9[A, B, C, D, E, F, G, H, I].
func Tuple9[A, B, C, D, E, F, G, H, I any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I]) Describer[codec.T9[A, B, C, D, E, F, G, H, I]] {
	return byValue[codec.T9[A, B, C, D, E, F, G, H, I]]{tuple9Describer[A, B, C, D, E, F, G, H, I]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8}}
}

func (c tuple9Describer[A, B, C, D, E, F, G, H, I]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen))
}

type tuple10Describer[A, B, C, D, E, F, G, H, I, J any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
}

// Tuple10 builds the Describer for codec.T10[A, B, C, D, E, F, G, H, I, J].
func Tuple10[A, B, C, D, E, F, G, H, I, J any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J]) Describer[codec.T10[A, B, C, D, E, F, G, H, I, J]] {
	return byValue[codec.T10[A, B, C, D, E, F, G, H, I, J]]{tuple10Describer[A, B, C, D, E, F, G, H, I, J]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9}}
}

func (c tuple10Describer[A, B, C, D, E, F, G, H, I, J]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen))
}

type tuple11Describer[A, B, C, D, E, F, G, H, I, J, K any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
}

// Tuple11 builds the Describer for codec.T11[A, B, C, D, E, F, G, H, I, J, K].
func Tuple11[A, B, C, D, E, F, G, H, I, J, K any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K]) Describer[codec.T11[A, B, C, D, E, F, G, H, I, J, K]] {
	return byValue[codec.T11[A, B, C, D, E, F, G, H, I, J, K]]{tuple11Describer[A, B, C, D, E, F, G, H, I, J, K]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10}}
}

func (c tuple11Describer[A, B, C, D, E, F, G, H, I, J, K]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen))
}

type tuple12Describer[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
	d11 Describer[L]
}

// Tuple12 builds the Describer for codec.T12[A, B, C, D, E, F, G, H, I, J, K, L].
func Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K], d11 Describer[L]) Describer[codec.T12[A, B, C, D, E, F, G, H, I, J, K, L]] {
	return byValue[codec.T12[A, B, C, D, E, F, G, H, I, J, K, L]]{tuple12Describer[A, B, C, D, E, F, G, H, I, J, K, L]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10, d11: d11}}
}

func (c tuple12Describer[A, B, C, D, E, F, G, H, I, J, K, L]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen), c.d11.Describe(seen))
}

type tuple13Describer[A, B, C, D, E, F, G, H, I, J, K, L, M any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
	d11 Describer[L]
	d12 Describer[M]
}

// Tuple13 builds the Describer for codec.T13[A, B, C, D, E, F, G, H, I, J, K, L, M].
func Tuple13[A, B, C, D, E, F, G, H, I, J, K, L, M any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K], d11 Describer[L], d12 Describer[M]) Describer[codec.T13[A, B, C, D, E, F, G, H, I, J, K, L, M]] {
	return byValue[codec.T13[A, B, C, D, E, F, G, H, I, J, K, L, M]]{tuple13Describer[A, B, C, D, E, F, G, H, I, J, K, L, M]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10, d11: d11, d12: d12}}
}

func (c tuple13Describer[A, B, C, D, E, F, G, H, I, J, K, L, M]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen), c.d11.Describe(seen), c.d12.Describe(seen))
}

type tuple14Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
	d11 Describer[L]
	d12 Describer[M]
	d13 Describer[N]
}

// Tuple14 builds the Describer for codec.T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N].
func Tuple14[A, B, C, D, E, F, G, H, I, J, K, L, M, N any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K], d11 Describer[L], d12 Describer[M], d13 Describer[N]) Describer[codec.T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]] {
	return byValue[codec.T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]]{tuple14Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10, d11: d11, d12: d12, d13: d13}}
}

func (c tuple14Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen), c.d11.Describe(seen), c.d12.Describe(seen), c.d13.Describe(seen))
}

type tuple15Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
	d11 Describer[L]
	d12 Describer[M]
	d13 Describer[N]
	d14 Describer[O]
}

// Tuple15 builds the Describer for codec.T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O].
func Tuple15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K], d11 Describer[L], d12 Describer[M], d13 Describer[N], d14 Describer[O]) Describer[codec.T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]] {
	return byValue[codec.T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]]{tuple15Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10, d11: d11, d12: d12, d13: d13, d14: d14}}
}

func (c tuple15Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen), c.d11.Describe(seen), c.d12.Describe(seen), c.d13.Describe(seen), c.d14.Describe(seen))
}

type tuple16Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] struct {
	d0 Describer[A]
	d1 Describer[B]
	d2 Describer[C]
	d3 Describer[D]
	d4 Describer[E]
	d5 Describer[F]
	d6 Describer[G]
	d7 Describer[H]
	d8 Describer[I]
	d9 Describer[J]
	d10 Describer[K]
	d11 Describer[L]
	d12 Describer[M]
	d13 Describer[N]
	d14 Describer[O]
	d15 Describer[P]
}

// Tuple16 builds the Describer for codec.T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P].
func Tuple16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](d0 Describer[A], d1 Describer[B], d2 Describer[C], d3 Describer[D], d4 Describer[E], d5 Describer[F], d6 Describer[G], d7 Describer[H], d8 Describer[I], d9 Describer[J], d10 Describer[K], d11 Describer[L], d12 Describer[M], d13 Describer[N], d14 Describer[O], d15 Describer[P]) Describer[codec.T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]] {
	return byValue[codec.T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]]{tuple16Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]{d0: d0, d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10, d11: d11, d12: d12, d13: d13, d14: d14, d15: d15}}
}

func (c tuple16Describer[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) Describe(seen *registry.SeenTypes) typedesc.Description {
	return typedesc.TupleOf(c.d0.Describe(seen), c.d1.Describe(seen), c.d2.Describe(seen), c.d3.Describe(seen), c.d4.Describe(seen), c.d5.Describe(seen), c.d6.Describe(seen), c.d7.Describe(seen), c.d8.Describe(seen), c.d9.Describe(seen), c.d10.Describe(seen), c.d11.Describe(seen), c.d12.Describe(seen), c.d13.Describe(seen), c.d14.Describe(seen), c.d15.Describe(seen))
}

