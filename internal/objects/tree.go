package objects

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/KostasZigo/gitodb/internal/constants"
)

type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeSymlink     FileMode = "120000" // Symbolic link
	ModeDirectory   FileMode = "40000"  // Directory (tree)
	ModeSubmodule   FileMode = "160000" // Git submodule

	// modeDirectoryPadded is the zero-padded directory mode some tools write.
	modeDirectoryPadded FileMode = "040000"
)

func (m FileMode) IsValid() bool {
	switch m {
	case ModeRegularFile, ModeExecutable, ModeSymlink, ModeDirectory, modeDirectoryPadded, ModeSubmodule:
		return true
	default:
		return false
	}
}

// TreeEntry represents a single entry in a tree object
type TreeEntry struct {
	mode FileMode
	name string
	hash [constants.HashByteLength]byte
}

// NewTreeEntry creates an entry from a hex hash as printed by hash-object.
func NewTreeEntry(mode FileMode, name string, hash string) (*TreeEntry, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid file mode: %s", mode)
	}
	if name == "" || strings.IndexByte(name, constants.NullByte) != -1 || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid entry name: %q", name)
	}

	hashBytes, err := hex.DecodeString(hash)
	if err != nil || len(hashBytes) != constants.HashByteLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}

	entry := &TreeEntry{mode: mode, name: name}
	copy(entry.hash[:], hashBytes)
	return entry, nil
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

// Hash returns the hex form of the referenced object's address.
func (e *TreeEntry) Hash() string {
	return hex.EncodeToString(e.hash[:])
}

// RawHash returns the 20 binary hash bytes as stored in the tree payload.
func (e *TreeEntry) RawHash() [constants.HashByteLength]byte {
	return e.hash
}

func (e *TreeEntry) IsDirectory() bool {
	return e.mode == ModeDirectory || e.mode == modeDirectoryPadded
}

func (e *TreeEntry) IsExecutable() bool {
	return e.mode == ModeExecutable
}

// ObjectType returns the type of object the entry points to.
func (e *TreeEntry) ObjectType() ObjectType {
	switch {
	case e.IsDirectory():
		return TreeObjectType
	case e.mode == ModeSubmodule:
		return CommitObjectType
	default:
		return BlobObjectType
	}
}

// Tree represents a Git tree object (directory)
type Tree struct {
	content []byte
	entries []TreeEntry
}

// NewTree creates a tree object from the list of Tree Entries.
// Entries are sorted in Git order before encoding so equal directories hash equally.
func NewTree(treeEntries []TreeEntry) (*Tree, error) {
	// Files and directories sort apart ("a" vs "a/"), so duplicates are caught before sorting
	names := make(map[string]struct{}, len(treeEntries))
	for _, entry := range treeEntries {
		if _, seen := names[entry.name]; seen {
			return nil, fmt.Errorf("duplicate tree entry: %q", entry.name)
		}
		names[entry.name] = struct{}{}
	}

	entries := slices.Clone(treeEntries)
	slices.SortStableFunc(entries, compareTreeEntries)

	return &Tree{
		content: EncodeTreeEntries(entries),
		entries: entries,
	}, nil
}

// NewTreeFromPayload parses a stored tree payload, keeping on-disk entry order.
func NewTreeFromPayload(payload []byte) (*Tree, error) {
	entries, err := ParseTreeEntries(payload)
	if err != nil {
		return nil, err
	}
	return &Tree{content: slices.Clone(payload), entries: entries}, nil
}

// compareTreeEntries implements Git's tree entry sorting rules:
// - Entries are sorted by name
// - Directory names are treated as if they have a trailing "/" for comparison
// - This ensures correct ordering when directories and files have similar names
func compareTreeEntries(a, b TreeEntry) int {
	nameA := getSortableName(a)
	nameB := getSortableName(b)
	return strings.Compare(nameA, nameB)
}

// getSortableName returns the name used for sorting.
// For directories, appends "/" to follow Git's sorting convention.
func getSortableName(entry TreeEntry) string {
	if entry.IsDirectory() {
		return entry.Name() + "/"
	}
	return entry.Name()
}

// EncodeTreeEntries creates the raw tree content in entry order.
// <mode> <name>\0<20-byte binary SHA> , ex:
// 100644 README.md\0[binary SHA for README blob]
// 100644 main.go\0[binary SHA for main.go blob]
// 40000 src\0[binary SHA for src/ tree]
func EncodeTreeEntries(entries []TreeEntry) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		buf.WriteString(string(entry.mode))
		buf.WriteByte(constants.SpaceByte)
		buf.WriteString(entry.name)
		buf.WriteByte(constants.NullByte)
		buf.Write(entry.hash[:])
	}

	return buf.Bytes()
}

// ParseTreeEntries scans payload left to right, one entry after the other,
// until the cursor lands exactly on the payload end.
func ParseTreeEntries(payload []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	cursor := 0

	for cursor < len(payload) {
		spaceIndex := bytes.IndexByte(payload[cursor:], constants.SpaceByte)
		if spaceIndex == -1 {
			return nil, fmt.Errorf("%w: no mode terminator at offset %d", ErrTruncatedTree, cursor)
		}
		mode := FileMode(payload[cursor : cursor+spaceIndex])
		cursor += spaceIndex + 1

		nullIndex := bytes.IndexByte(payload[cursor:], constants.NullByte)
		if nullIndex == -1 {
			return nil, fmt.Errorf("%w: no name terminator at offset %d", ErrTruncatedTree, cursor)
		}
		name := string(payload[cursor : cursor+nullIndex])
		cursor += nullIndex + 1

		if len(payload)-cursor < constants.HashByteLength {
			return nil, fmt.Errorf("%w: %d hash bytes left for entry %q", ErrTruncatedTree, len(payload)-cursor, name)
		}
		entry := TreeEntry{mode: mode, name: name}
		copy(entry.hash[:], payload[cursor:cursor+constants.HashByteLength])
		cursor += constants.HashByteLength

		entries = append(entries, entry)
	}

	return entries, nil
}

func (t *Tree) Type() ObjectType {
	return TreeObjectType
}

// Payload returns a copy of the raw tree content
func (t *Tree) Payload() []byte {
	return slices.Clone(t.content)
}

func (t *Tree) payload() []byte {
	return t.content
}

// Hash returns the SHA-1 hash of the tree
func (t *Tree) Hash() string {
	return Address(t)
}

// Entries returns a copy of the tree entries in payload order
func (t *Tree) Entries() []TreeEntry {
	return slices.Clone(t.entries)
}

// Size returns the size of the tree content
func (t *Tree) Size() int {
	return len(t.content)
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{hash: %s, entries: %d}", t.Hash(), len(t.entries))
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for _, entry := range t.entries {
		if entry.name == name {
			return &entry, true
		}
	}
	return nil, false
}

func (t *Tree) sealed() {}
