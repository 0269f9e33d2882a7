package objects

import (
	"fmt"
	"slices"
)

// Tag is an annotated tag object. Its payload is kept opaque.
type Tag struct {
	content []byte
}

func NewTag(content []byte) *Tag {
	return &Tag{content: slices.Clone(content)}
}

func (t *Tag) Type() ObjectType {
	return TagObjectType
}

func (t *Tag) Payload() []byte {
	return slices.Clone(t.content)
}

func (t *Tag) payload() []byte {
	return t.content
}

func (t *Tag) Hash() string {
	return Address(t)
}

func (t *Tag) String() string {
	return fmt.Sprintf("Tag{hash: %s, size: %d bytes}", t.Hash(), len(t.content))
}

func (t *Tag) sealed() {}
