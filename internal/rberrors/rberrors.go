// Package rberrors defines the sentinel error kinds raised by rabench's
// core construction pipeline (spec section on Error Handling Design).
// Callers wrap these with fmt.Errorf("...: %w", rberrors.X) to add context;
// errors.Is against the sentinels recovers the kind.
package rberrors

import "errors"

var (
	// ErrInvalidArgument marks negative sizes, bad range syntax, or a share
	// outside [0,1].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInconsistentDeclaration marks re-adding a location or register with
	// properties that conflict with its existing declaration.
	ErrInconsistentDeclaration = errors.New("inconsistent declaration")

	// ErrRegisterConflict marks a composition that would re-initialize a
	// register already initialized in the host automaton.
	ErrRegisterConflict = errors.New("register conflict")

	// ErrInitializedReplacement marks a partialReplacement candidate that
	// carries a non-empty initial valuation.
	ErrInitializedReplacement = errors.New("replacement has initial valuation")

	// ErrInitializedDiscriminator marks a splitSingle discriminator that
	// carries a non-empty initial valuation.
	ErrInitializedDiscriminator = errors.New("discriminator has initial valuation")

	// ErrNoSplittableLocation marks that splitSingle found no eligible
	// location.
	ErrNoSplittableLocation = errors.New("no splittable location")

	// ErrTrueNotInvertible marks an attempt to negate the True guard or a
	// guard containing it.
	ErrTrueNotInvertible = errors.New("True is not invertible")

	// ErrUnsupportedInRALibDialect marks a guard containing <= or >= reaching
	// the RALib-safe printer without having been desugared first.
	ErrUnsupportedInRALibDialect = errors.New("unsupported operator in RALib dialect")

	// ErrUnboundSymbol marks evaluation of a guard under a valuation missing
	// one of its free variables.
	ErrUnboundSymbol = errors.New("unbound symbol")

	// ErrParseError marks a guard/expression mini-language parse failure.
	// internal/wiki/lang.ParseError wraps this sentinel.
	ErrParseError = errors.New("parse error")

	// ErrIOFailure marks a file-system error from the output writer.
	ErrIOFailure = errors.New("I/O failure")
)
