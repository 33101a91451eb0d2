// Package logpack is a self-describing binary serialization library for
// structured logging: a producer emits a compact binary payload plus a
// typedesc.Description of its shape, and a consumer can decode that
// payload without compile-time knowledge of the producer's types.
//
// # Core packages
//
// Producers use package describe to build a typedesc.Description from a
// Go value's type, and package codec to write that value's bytes.
// Consumers use package registry to absorb descriptions exchanged out of
// band (over package sidechannel, or any other transport) and package
// decode to walk an encoded payload against a resolved Description,
// emitting events to a package visitor.Visitor such as package render's
// Plain or ANSI implementations.
//
// This root package provides thin convenience wrappers around that
// pipeline for the common case of describing, encoding, and later
// decoding and rendering a single value, the same way mebo's root
// package wraps its blob package for the common encode/decode paths.
// Advanced use — custom Describer/Encoder instances, multiple producers
// sharing one NameMap, streaming over a real transport — should use the
// component packages directly.
//
// # Basic usage
//
//	session := logpack.NewSession()
//
//	desc := logpack.Describe(session, describe.U32, uint32(42))
//	buf := make([]byte, logpack.SizeOf(codec.U32, uint32(42)))
//	_, _ = logpack.Encode(codec.U32, uint32(42), buf)
//
//	fed, _ := session.Feed(desc)
//	out, _ := logpack.Render(session, fed, buf)
//	fmt.Println(out) // "42"
package logpack

import (
	"github.com/logpack-go/logpack/codec"
	"github.com/logpack-go/logpack/describe"
	"github.com/logpack-go/logpack/decode"
	"github.com/logpack-go/logpack/internal/pool"
	"github.com/logpack-go/logpack/registry"
	"github.com/logpack-go/logpack/render"
	"github.com/logpack-go/logpack/typedesc"
	"github.com/logpack-go/logpack/visitor"
	"github.com/logpack-go/logpack/wire"
)

// Session bundles one producer-side SeenTypes registry with one
// consumer-side NameMap, the pairing original_source/test/src/main.rs's
// main function threads through every describe/decode call so that a
// type introduced once keeps the same disambiguator and its body is
// elided from every later Description.
//
// A Session is not safe for concurrent use from multiple goroutines
// without external synchronization, since both SeenTypes and NameMap
// mutate on every new type sighted.
type Session struct {
	Seen  *registry.SeenTypes
	Types *registry.NameMap
}

// NewSession creates an empty Session: no type has been seen yet, and no
// name has been fed to the consumer registry.
func NewSession() *Session {
	return &Session{
		Seen:  registry.NewSeenTypes(),
		Types: registry.NewNameMap(),
	}
}

// Describe builds v's Description using d against the session's producer
// registry.
func Describe[T any](s *Session, d describe.Describer[T], v T) typedesc.Description {
	return d.DescribeByValue(v, s.Seen)
}

// Encode writes v's bytes to buf using enc, returning the slice of buf
// actually written. buf must be at least SizeOf(enc, v) bytes long.
func Encode[T any](enc codec.Encoder[T], v T, buf []byte) ([]byte, error) {
	w := wire.NewWriter(buf)
	if err := enc.Encode(v, w); err != nil {
		return nil, err
	}
	return w.Content(), nil
}

// SizeOf reports exactly how many bytes Encode will write for v.
func SizeOf[T any](enc codec.Encoder[T], v T) int {
	return enc.SizeOf(v)
}

// EncodePooled is Encode's allocation-free counterpart for high-rate
// logging call sites: it borrows a buffer from an internal pool sized
// via SizeOf instead of requiring the caller to allocate one.
//
// The returned slice is only valid until release is called — a log
// record is typically written straight to its transport (a file, a
// socket, a ring buffer) before release runs, not retained past it. A
// caller that needs to keep the bytes longer must copy them out first.
func EncodePooled[T any](enc codec.Encoder[T], v T) (encoded []byte, release func(), err error) {
	size := enc.SizeOf(v)
	buf := pool.Get(size)

	w := wire.NewWriter(buf.B)
	if err := enc.Encode(v, w); err != nil {
		pool.Put(buf)
		return nil, func() {}, err
	}
	return w.Content(), func() { pool.Put(buf) }, nil
}

// Feed absorbs desc into the session's consumer registry, returning the
// resolved Description a Decoder can walk (see (*registry.NameMap).Feed
// for the conflict-detection rules).
func (s *Session) Feed(desc typedesc.Description) (typedesc.Description, error) {
	return s.Types.Feed(desc)
}

// Decode walks desc against buf, reporting every node visited to v.
func Decode(s *Session, desc typedesc.Description, buf []byte, v visitor.Visitor) error {
	dec := decode.NewDecoder(s.Types, wire.NewReader(buf))
	return dec.Decode(desc, v)
}

// Render decodes desc against buf and returns its Plain-style textual
// rendering in one call, the common case for a log line that doesn't
// need ANSI color.
func Render(s *Session, desc typedesc.Description, buf []byte) (string, error) {
	p := render.NewPlain()
	if err := Decode(s, desc, buf, p); err != nil {
		return "", err
	}
	return p.String(), nil
}

// RenderANSI is Render's colorized counterpart, suitable for a terminal
// that understands 24-bit SGR escapes.
func RenderANSI(s *Session, desc typedesc.Description, buf []byte) (string, error) {
	a := render.NewANSI()
	if err := Decode(s, desc, buf, a); err != nil {
		return "", err
	}
	return a.String(), nil
}
