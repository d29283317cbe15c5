// Package errs defines the sentinel errors shared by all F9Grid packages.
//
// Callers are expected to test failure categories with errors.Is rather than
// comparing error strings. Wrapped errors produced with fmt.Errorf("%w", ...)
// keep these sentinels matchable.
package errs

import "errors"

// Coordinate and index errors.
var (
	// ErrInvalidCoordinate indicates a latitude/longitude input that could not
	// be parsed, or a latitude outside [-90, 90].
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIndexOutOfRange indicates a cell index outside [0, 300626092559].
	ErrIndexOutOfRange = errors.New("cell index out of range")

	// ErrInvalidPositionCode indicates a position code outside [1, 9].
	ErrInvalidPositionCode = errors.New("position code out of range")

	// ErrBandNotFound indicates a band lookup miss for an input that passed
	// validation. The band table partitions the full step and index domains,
	// so this is an invariant violation, not a user error.
	ErrBandNotFound = errors.New("latitude band not found")

	// ErrNoSolution indicates that drift correction found no original cell
	// consistent with the supplied position code. This is a well-defined
	// "no solution" outcome, distinct from invalid input.
	ErrNoSolution = errors.New("no matching original cell")
)

// External code errors.
var (
	// ErrInvalidCode indicates a location code with the wrong length or a
	// character outside the code alphabet.
	ErrInvalidCode = errors.New("invalid location code")
)

// Fix-log format errors.
var (
	// ErrInvalidHeaderSize indicates a fix-log blob shorter than its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid fix log header size")

	// ErrInvalidMagicNumber indicates a fix-log header whose magic number does
	// not identify a supported format version.
	ErrInvalidMagicNumber = errors.New("invalid fix log magic number")

	// ErrInvalidPayload indicates a fix-log payload that fails checksum
	// verification or cannot be decoded back into fixes.
	ErrInvalidPayload = errors.New("invalid fix log payload")

	// ErrEmptyLog indicates an attempt to finish an encoder with no fixes.
	ErrEmptyLog = errors.New("fix log contains no fixes")
)
