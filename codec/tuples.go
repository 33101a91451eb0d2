// Code in this file follows the tuple! macro instantiations of
// original_source/logpack/src/encoder.rs (arity 2 through 16): one
// generic value type and one codec constructor per arity, since Go
// generics have no variadic type parameter list to collapse them into
// a single definition.
package codec

import "github.com/logpack-go/logpack/wire"

// T2 is a 2-tuple value, the Go analogue of a Rust (A, B) tuple.
type T2[A, B any] struct {
	V0 A
	V1 B
}

type tuple2Codec[A, B any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
}

// Tuple2 builds the Encoder for T2[A, B] from its per-field encoders.
func Tuple2[A, B any](e0 Encoder[A], e1 Encoder[B]) Encoder[T2[A, B]] {
	return tuple2Codec[A, B]{e0: e0, e1: e1}
}

func (c tuple2Codec[A, B]) Encode(v T2[A, B], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	return nil
}

func (c tuple2Codec[A, B]) SizeOf(v T2[A, B]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1)
}

// T3 is a 3-tuple value, the Go analogue of a Rust (A, B, C) tuple.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type tuple3Codec[A, B, C any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
}

// Tuple3 builds the Encoder for T3[A, B, C] from its per-field encoders.
func Tuple3[A, B, C any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C]) Encoder[T3[A, B, C]] {
	return tuple3Codec[A, B, C]{e0: e0, e1: e1, e2: e2}
}

func (c tuple3Codec[A, B, C]) Encode(v T3[A, B, C], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	return nil
}

func (c tuple3Codec[A, B, C]) SizeOf(v T3[A, B, C]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2)
}

// T4 is a 4-tuple value, the Go analogue of a Rust (A, B, C, D) tuple.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type tuple4Codec[A, B, C, D any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
}

// Tuple4 builds the Encoder for T4[A, B, C, D] from its per-field encoders.
func Tuple4[A, B, C, D any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D]) Encoder[T4[A, B, C, D]] {
	return tuple4Codec[A, B, C, D]{e0: e0, e1: e1, e2: e2, e3: e3}
}

func (c tuple4Codec[A, B, C, D]) Encode(v T4[A, B, C, D], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	return nil
}

func (c tuple4Codec[A, B, C, D]) SizeOf(v T4[A, B, C, D]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3)
}

// T5 is a 5-tuple value, the Go analogue of a Rust (A, B, C, D, E) tuple.
type T5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type tuple5Codec[A, B, C, D, E any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
}

// Tuple5 builds the Encoder for T5[A, B, C, D, E] from its per-field encoders.
func Tuple5[A, B, C, D, E any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E]) Encoder[T5[A, B, C, D, E]] {
	return tuple5Codec[A, B, C, D, E]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4}
}

func (c tuple5Codec[A, B, C, D, E]) Encode(v T5[A, B, C, D, E], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	return nil
}

func (c tuple5Codec[A, B, C, D, E]) SizeOf(v T5[A, B, C, D, E]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4)
}

// T6 is a 6-tuple value, the Go analogue of a Rust (A, B, C, D, E, F) tuple.
type T6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

type tuple6Codec[A, B, C, D, E, F any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
}

// Tuple6 builds the Encoder for T6[A, B, C, D, E, F] from its per-field encoders.
func Tuple6[A, B, C, D, E, F any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F]) Encoder[T6[A, B, C, D, E, F]] {
	return tuple6Codec[A, B, C, D, E, F]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5}
}

func (c tuple6Codec[A, B, C, D, E, F]) Encode(v T6[A, B, C, D, E, F], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	return nil
}

func (c tuple6Codec[A, B, C, D, E, F]) SizeOf(v T6[A, B, C, D, E, F]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5)
}

// T7 is a 7-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G) tuple.
type T7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

type tuple7Codec[A, B, C, D, E, F, G any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
}

// Tuple7 builds the Encoder for T7[A, B, C, D, E, F, G] from its per-field encoders.
func Tuple7[A, B, C, D, E, F, G any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G]) Encoder[T7[A, B, C, D, E, F, G]] {
	return tuple7Codec[A, B, C, D, E, F, G]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6}
}

func (c tuple7Codec[A, B, C, D, E, F, G]) Encode(v T7[A, B, C, D, E, F, G], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	return nil
}

func (c tuple7Codec[A, B, C, D, E, F, G]) SizeOf(v T7[A, B, C, D, E, F, G]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6)
}

// T8 is a 8-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H) tuple.
type T8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

type tuple8Codec[A, B, C, D, E, F, G, H any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
}

// Tuple8 builds the Encoder for T8[A, B, C, D, E, F, G, H] from its per-field encoders.
func Tuple8[A, B, C, D, E, F, G, H any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H]) Encoder[T8[A, B, C, D, E, F, G, H]] {
	return tuple8Codec[A, B, C, D, E, F, G, H]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7}
}

func (c tuple8Codec[A, B, C, D, E, F, G, H]) Encode(v T8[A, B, C, D, E, F, G, H], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	return nil
}

func (c tuple8Codec[A, B, C, D, E, F, G, H]) SizeOf(v T8[A, B, C, D, E, F, G, H]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7)
}

// T9 is a 9-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I) tuple.
type T9[A, B, C, D, E, F, G, H, I any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
}

type tuple9Codec[A, B, C, D, E, F, G, H, I any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
}

// Tuple9 builds the Encoder for T9[A, B, C, D, E, F, G, H, I] from its per-field encoders.
func Tuple9[A, B, C, D, E, F, G, H, I any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I]) Encoder[T9[A, B, C, D, E, F, G, H, I]] {
	return tuple9Codec[A, B, C, D, E, F, G, H, I]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8}
}

func (c tuple9Codec[A, B, C, D, E, F, G, H, I]) Encode(v T9[A, B, C, D, E, F, G, H, I], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	return nil
}

func (c tuple9Codec[A, B, C, D, E, F, G, H, I]) SizeOf(v T9[A, B, C, D, E, F, G, H, I]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8)
}

// T10 is a 10-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J) tuple.
type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
}

type tuple10Codec[A, B, C, D, E, F, G, H, I, J any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
}

// Tuple10 builds the Encoder for T10[A, B, C, D, E, F, G, H, I, J] from its per-field encoders.
func Tuple10[A, B, C, D, E, F, G, H, I, J any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J]) Encoder[T10[A, B, C, D, E, F, G, H, I, J]] {
	return tuple10Codec[A, B, C, D, E, F, G, H, I, J]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9}
}

func (c tuple10Codec[A, B, C, D, E, F, G, H, I, J]) Encode(v T10[A, B, C, D, E, F, G, H, I, J], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	return nil
}

func (c tuple10Codec[A, B, C, D, E, F, G, H, I, J]) SizeOf(v T10[A, B, C, D, E, F, G, H, I, J]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9)
}

// T11 is a 11-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K) tuple.
type T11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
}

type tuple11Codec[A, B, C, D, E, F, G, H, I, J, K any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
}

// Tuple11 builds the Encoder for T11[A, B, C, D, E, F, G, H, I, J, K] from its per-field encoders.
func Tuple11[A, B, C, D, E, F, G, H, I, J, K any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K]) Encoder[T11[A, B, C, D, E, F, G, H, I, J, K]] {
	return tuple11Codec[A, B, C, D, E, F, G, H, I, J, K]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10}
}

func (c tuple11Codec[A, B, C, D, E, F, G, H, I, J, K]) Encode(v T11[A, B, C, D, E, F, G, H, I, J, K], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	return nil
}

func (c tuple11Codec[A, B, C, D, E, F, G, H, I, J, K]) SizeOf(v T11[A, B, C, D, E, F, G, H, I, J, K]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10)
}

// T12 is a 12-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K, L) tuple.
type T12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
}

type tuple12Codec[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
	e11 Encoder[L]
}

// Tuple12 builds the Encoder for T12[A, B, C, D, E, F, G, H, I, J, K, L] from its per-field encoders.
func Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K], e11 Encoder[L]) Encoder[T12[A, B, C, D, E, F, G, H, I, J, K, L]] {
	return tuple12Codec[A, B, C, D, E, F, G, H, I, J, K, L]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10, e11: e11}
}

func (c tuple12Codec[A, B, C, D, E, F, G, H, I, J, K, L]) Encode(v T12[A, B, C, D, E, F, G, H, I, J, K, L], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	if err := c.e11.Encode(v.V11, w); err != nil {
		return err
	}
	return nil
}

func (c tuple12Codec[A, B, C, D, E, F, G, H, I, J, K, L]) SizeOf(v T12[A, B, C, D, E, F, G, H, I, J, K, L]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10) + c.e11.SizeOf(v.V11)
}

// T13 is a 13-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K, L, M) tuple.
type T13[A, B, C, D, E, F, G, H, I, J, K, L, M any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
	V12 M
}

type tuple13Codec[A, B, C, D, E, F, G, H, I, J, K, L, M any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
	e11 Encoder[L]
	e12 Encoder[M]
}

// Tuple13 builds the Encoder for T13[A, B, C, D, E, F, G, H, I, J, K, L, M] from its per-field encoders.
func Tuple13[A, B, C, D, E, F, G, H, I, J, K, L, M any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K], e11 Encoder[L], e12 Encoder[M]) Encoder[T13[A, B, C, D, E, F, G, H, I, J, K, L, M]] {
	return tuple13Codec[A, B, C, D, E, F, G, H, I, J, K, L, M]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10, e11: e11, e12: e12}
}

func (c tuple13Codec[A, B, C, D, E, F, G, H, I, J, K, L, M]) Encode(v T13[A, B, C, D, E, F, G, H, I, J, K, L, M], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	if err := c.e11.Encode(v.V11, w); err != nil {
		return err
	}
	if err := c.e12.Encode(v.V12, w); err != nil {
		return err
	}
	return nil
}

func (c tuple13Codec[A, B, C, D, E, F, G, H, I, J, K, L, M]) SizeOf(v T13[A, B, C, D, E, F, G, H, I, J, K, L, M]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10) + c.e11.SizeOf(v.V11) + c.e12.SizeOf(v.V12)
}

// T14 is a 14-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K, L, M, N) tuple.
type T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
	V12 M
	V13 N
}

type tuple14Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
	e11 Encoder[L]
	e12 Encoder[M]
	e13 Encoder[N]
}

// Tuple14 builds the Encoder for T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N] from its per-field encoders.
func Tuple14[A, B, C, D, E, F, G, H, I, J, K, L, M, N any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K], e11 Encoder[L], e12 Encoder[M], e13 Encoder[N]) Encoder[T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]] {
	return tuple14Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10, e11: e11, e12: e12, e13: e13}
}

func (c tuple14Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) Encode(v T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	if err := c.e11.Encode(v.V11, w); err != nil {
		return err
	}
	if err := c.e12.Encode(v.V12, w); err != nil {
		return err
	}
	if err := c.e13.Encode(v.V13, w); err != nil {
		return err
	}
	return nil
}

func (c tuple14Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) SizeOf(v T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10) + c.e11.SizeOf(v.V11) + c.e12.SizeOf(v.V12) + c.e13.SizeOf(v.V13)
}

// T15 is a 15-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K, L, M, N, O) tuple.
type T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
	V12 M
	V13 N
	V14 O
}

type tuple15Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
	e11 Encoder[L]
	e12 Encoder[M]
	e13 Encoder[N]
	e14 Encoder[O]
}

// Tuple15 builds the Encoder for T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O] from its per-field encoders.
func Tuple15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K], e11 Encoder[L], e12 Encoder[M], e13 Encoder[N], e14 Encoder[O]) Encoder[T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]] {
	return tuple15Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10, e11: e11, e12: e12, e13: e13, e14: e14}
}

func (c tuple15Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) Encode(v T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	if err := c.e11.Encode(v.V11, w); err != nil {
		return err
	}
	if err := c.e12.Encode(v.V12, w); err != nil {
		return err
	}
	if err := c.e13.Encode(v.V13, w); err != nil {
		return err
	}
	if err := c.e14.Encode(v.V14, w); err != nil {
		return err
	}
	return nil
}

func (c tuple15Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) SizeOf(v T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10) + c.e11.SizeOf(v.V11) + c.e12.SizeOf(v.V12) + c.e13.SizeOf(v.V13) + c.e14.SizeOf(v.V14)
}

// T16 is a 16-tuple value, the Go analogue of a Rust (A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P) tuple.
type T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
	V10 K
	V11 L
	V12 M
	V13 N
	V14 O
	V15 P
}

type tuple16Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] struct {
	e0 Encoder[A]
	e1 Encoder[B]
	e2 Encoder[C]
	e3 Encoder[D]
	e4 Encoder[E]
	e5 Encoder[F]
	e6 Encoder[G]
	e7 Encoder[H]
	e8 Encoder[I]
	e9 Encoder[J]
	e10 Encoder[K]
	e11 Encoder[L]
	e12 Encoder[M]
	e13 Encoder[N]
	e14 Encoder[O]
	e15 Encoder[P]
}

// Tuple16 builds the Encoder for T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P] from its per-field encoders.
func Tuple16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](e0 Encoder[A], e1 Encoder[B], e2 Encoder[C], e3 Encoder[D], e4 Encoder[E], e5 Encoder[F], e6 Encoder[G], e7 Encoder[H], e8 Encoder[I], e9 Encoder[J], e10 Encoder[K], e11 Encoder[L], e12 Encoder[M], e13 Encoder[N], e14 Encoder[O], e15 Encoder[P]) Encoder[T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]] {
	return tuple16Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]{e0: e0, e1: e1, e2: e2, e3: e3, e4: e4, e5: e5, e6: e6, e7: e7, e8: e8, e9: e9, e10: e10, e11: e11, e12: e12, e13: e13, e14: e14, e15: e15}
}

func (c tuple16Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) Encode(v T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P], w *wire.Writer) error {
	if err := c.e0.Encode(v.V0, w); err != nil {
		return err
	}
	if err := c.e1.Encode(v.V1, w); err != nil {
		return err
	}
	if err := c.e2.Encode(v.V2, w); err != nil {
		return err
	}
	if err := c.e3.Encode(v.V3, w); err != nil {
		return err
	}
	if err := c.e4.Encode(v.V4, w); err != nil {
		return err
	}
	if err := c.e5.Encode(v.V5, w); err != nil {
		return err
	}
	if err := c.e6.Encode(v.V6, w); err != nil {
		return err
	}
	if err := c.e7.Encode(v.V7, w); err != nil {
		return err
	}
	if err := c.e8.Encode(v.V8, w); err != nil {
		return err
	}
	if err := c.e9.Encode(v.V9, w); err != nil {
		return err
	}
	if err := c.e10.Encode(v.V10, w); err != nil {
		return err
	}
	if err := c.e11.Encode(v.V11, w); err != nil {
		return err
	}
	if err := c.e12.Encode(v.V12, w); err != nil {
		return err
	}
	if err := c.e13.Encode(v.V13, w); err != nil {
		return err
	}
	if err := c.e14.Encode(v.V14, w); err != nil {
		return err
	}
	if err := c.e15.Encode(v.V15, w); err != nil {
		return err
	}
	return nil
}

func (c tuple16Codec[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) SizeOf(v T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) int {
	return c.e0.SizeOf(v.V0) + c.e1.SizeOf(v.V1) + c.e2.SizeOf(v.V2) + c.e3.SizeOf(v.V3) + c.e4.SizeOf(v.V4) + c.e5.SizeOf(v.V5) + c.e6.SizeOf(v.V6) + c.e7.SizeOf(v.V7) + c.e8.SizeOf(v.V8) + c.e9.SizeOf(v.V9) + c.e10.SizeOf(v.V10) + c.e11.SizeOf(v.V11) + c.e12.SizeOf(v.V12) + c.e13.SizeOf(v.V13) + c.e14.SizeOf(v.V14) + c.e15.SizeOf(v.V15)
}

