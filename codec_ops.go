package ryu

import (
	"fmt"

	"github.com/aminmarashi/ryu/codec"
)

// codecFunc is an alias for codec.Codec so runCodec can accept either
// Registry.Encode or Registry.Decode as its lookup function.
type codecFunc = codec.Codec

// Encode builds a child that runs every item of parent through the
// encode(kind) codec registered on parent's engine (spec §6 "encode"). If
// kind isn't registered, the child is constructed already Failed with
// ErrUnsupportedCodec.
func Encode[T any](parent *Source[T], kind string) *Source[any] {
	return runCodec[T](parent, "encode_"+kind, parent.engine.codecs.Encode, kind)
}

// Decode builds a child that runs every item of parent through the
// decode(kind) codec registered on parent's engine (spec §6 "decode"). If
// kind isn't registered, the child is constructed already Failed with
// ErrUnsupportedCodec.
func Decode[T any](parent *Source[T], kind string) *Source[any] {
	return runCodec[T](parent, "decode_"+kind, parent.engine.codecs.Decode, kind)
}

func runCodec[T any](parent *Source[T], label string, lookup func(string) (codecFunc, bool), kind string) *Source[any] {
	child := chain[T, any](parent, label)

	c, ok := lookup(kind)
	if !ok {
		child.Fail(fmt.Errorf("%w: %s", ErrUnsupportedCodec, kind))
		return child
	}

	eachWhileSource(parent, child, func(v T) {
		out, err := c(any(v))
		if err != nil {
			child.Fail(err)
			return
		}
		if emitErr := child.Emit(out); emitErr != nil {
			return
		}
	})
	forwardCompletion(parent, child)
	return child
}
