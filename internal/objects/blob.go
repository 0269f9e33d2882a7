package objects

import (
	"fmt"
	"os"
	"slices"

	"github.com/KostasZigo/gitodb/utils"
)

// Blob holds opaque file content.
type Blob struct {
	content []byte
}

// NewBlob stores a copy of content verbatim. Used when reading objects back from the store.
func NewBlob(content []byte) *Blob {
	return &Blob{content: slices.Clone(content)}
}

// NewBlobFromFile ingests a working-tree file, normalizing CRLF line endings to LF.
func NewBlobFromFile(filepath string) (*Blob, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return &Blob{content: utils.NormalizeLineEndings(content)}, nil
}

func (b *Blob) Type() ObjectType {
	return BlobObjectType
}

func (b *Blob) Payload() []byte {
	return slices.Clone(b.content)
}

func (b *Blob) payload() []byte {
	return b.content
}

func (b *Blob) Hash() string {
	return Address(b)
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.Hash(), b.Size())
}

func (b *Blob) sealed() {}
