package ryu

import "errors"

// Namespace prefixes every sentinel error this package returns.
const Namespace = "ryu"

var (
	// ErrAlreadyCompleted is returned by Emit when the source's completion handle
	// has already transitioned to a terminal state.
	ErrAlreadyCompleted = errors.New(Namespace + ": already completed")

	// ErrUnsupportedInput is returned by From for an input shape that is
	// neither a []any, an io.Reader, nor a *Handle.
	ErrUnsupportedInput = errors.New(Namespace + ": unsupported input")

	// ErrUnsupportedCodec is the failure Encode/Decode give their child when asked
	// for a kind that has no factory in the engine's codec registry. Kinds are
	// looked up in the registry only; no encode_<kind>/decode_<kind> method is
	// searched for.
	ErrUnsupportedCodec = errors.New(Namespace + ": unsupported codec")

	// ErrNotImplemented is returned by operators deferred to an extension package
	// (debounce, interval).
	ErrNotImplemented = errors.New(Namespace + ": operator not implemented")

	// ErrInvalidOperatorArgument is the failure an operator's child is given at
	// construction time for arguments that can never be satisfied (e.g. chunksize(0)).
	ErrInvalidOperatorArgument = errors.New(Namespace + ": invalid operator argument")

	// ErrNoSuchKey names the switch_str case of a key with no matching branch and
	// no default. SwitchStr drops such items silently and never returns or fails
	// with this error (see switch_str.go).
	ErrNoSuchKey = errors.New(Namespace + ": no matching switch_str branch")
)
