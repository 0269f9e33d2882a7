package objects

import "errors"

// Codec and parser errors.
var (
	// ErrMalformedObject is returned when the canonical header is missing a delimiter
	// or the declared length does not match the payload.
	ErrMalformedObject = errors.New("malformed object")

	// ErrTruncatedTree is returned when a tree payload ends in the middle of an entry.
	ErrTruncatedTree = errors.New("truncated tree")

	// ErrMalformedCommit is returned when a commit has no blank line between header and message.
	ErrMalformedCommit = errors.New("malformed commit")

	// ErrUnknownType is returned for a type tag other than blob, tree, commit or tag.
	ErrUnknownType = errors.New("unknown object type")
)

// Store errors.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrNotAFile            = errors.New("object path is not a file")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrDecompressionFailed = errors.New("failed to decompress object")
	ErrInvalidHash         = errors.New("invalid object hash")
	ErrHashMismatch        = errors.New("object hash mismatch")
	ErrUnexpectedType      = errors.New("unexpected object type")
)

// ErrStopWalk may be returned by a WalkHistory visitor to end the walk early without error.
var ErrStopWalk = errors.New("stop walk")
