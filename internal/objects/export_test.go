package objects

import (
	"testing"
	"time"

	"github.com/KostasZigo/gitodb/internal/repository"
	"github.com/KostasZigo/gitodb/testutils"
)

// newTestStore creates a temporary repository with .gogit/objects and returns its store.
func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	repo, err := repository.Open(repoPath)
	if err != nil {
		t.Fatalf("Failed to open test repository: %v", err)
	}

	return NewObjectStore(repo), repoPath
}

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := ComputeHash(content, BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Payload()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Payload())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}

// writeObject stores object and fails test on error.
func writeObject(t *testing.T, store *ObjectStore, object Object) string {
	t.Helper()

	hash, err := store.Write(object)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", object.Type(), err)
	}

	return hash
}

// assertTreeEntryEqual verifies two tree entries match.
func assertTreeEntryEqual(t *testing.T, actual, expected TreeEntry) {
	t.Helper()

	if actual.Name() != expected.Name() {
		t.Errorf("Entry name mismatch: expected %s, got %s", expected.Name(), actual.Name())
	}
	if actual.Hash() != expected.Hash() {
		t.Errorf("Entry hash mismatch: expected %s, got %s", expected.Hash(), actual.Hash())
	}
	if actual.Mode() != expected.Mode() {
		t.Errorf("Entry mode mismatch: expected %s, got %s", expected.Mode(), actual.Mode())
	}
}

// createTestSignature returns test signature with UTC timezone.
func createTestSignature(name, email string) Signature {
	return Signature{
		Name:  name,
		Email: email,
		When:  time.Now().UTC().Truncate(time.Second),
	}
}

// createAndStoreCommit creates commit with the given parents, stores it, and returns it.
func createAndStoreCommit(t *testing.T, store *ObjectStore, message string, parents ...string) *Commit {
	t.Helper()

	author := createTestSignature(testutils.RandomString(10), testutils.RandomString(20))
	commit, err := NewCommit(testutils.RandomHash(), parents, message, author, author)
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	writeObject(t, store, commit)
	return commit
}
