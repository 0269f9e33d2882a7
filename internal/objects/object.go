package objects

import "fmt"

// ObjectType is the type name written in an object's canonical header.
type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType, TagObjectType:
		return true
	default:
		return false
	}
}

// Object represents any GoGit object that can be stored.
// The set of implementations is closed: *Blob, *Tree, *Commit and *Tag.
type Object interface {
	// Type returns the object type used in the canonical header
	Type() ObjectType

	// Payload returns a copy of the object content without the "<type> <size>\0" header
	Payload() []byte

	// Hash returns the SHA-1 address of the canonical form, recomputed on every call
	Hash() string

	String() string

	// payload exposes the owned content without copying, for encoding
	payload() []byte

	sealed()
}

// NewObject builds the typed object for payload, parsing trees and commits.
func NewObject(objectType ObjectType, payload []byte) (Object, error) {
	switch objectType {
	case BlobObjectType:
		return NewBlob(payload), nil
	case TreeObjectType:
		return NewTreeFromPayload(payload)
	case CommitObjectType:
		return ParseCommit(payload)
	case TagObjectType:
		return NewTag(payload), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(objectType))
	}
}
