package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KostasZigo/gitodb/internal/constants"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character object hash.
// It almost certainly names no stored object, so it doubles as a dangling reference.
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithGogitDir creates a temporary worktree holding only .gogit/objects,
// the minimum an object store needs.
func SetupTestRepoWithGogitDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repoPath, constants.Gogit, constants.Objects), constants.DirPerms))

	return repoPath
}

// SetupTestRepoWithInit creates the layout "gogit init" produces:
// objects/, refs/heads/, refs/tags/ and a HEAD pointing at the default branch.
func SetupTestRepoWithInit(t *testing.T) string {
	t.Helper()

	repoPath := SetupTestRepoWithGogitDir(t)
	gogitDir := filepath.Join(repoPath, constants.Gogit)

	for _, dir := range []string{constants.Heads, constants.Tags} {
		require.NoError(t, os.MkdirAll(filepath.Join(gogitDir, constants.Refs, dir), constants.DirPerms))
	}

	require.NoError(t, os.WriteFile(filepath.Join(gogitDir, constants.Head), []byte(headContent()), constants.FilePerms))

	return repoPath
}

// CreateTestFile writes content to dir/filename and returns the full path.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(filePath, content, constants.FilePerms), "create test file %s", filename)

	return filePath
}

// ObjectPath returns the fan-out location of hash: .gogit/objects/<first 2>/<remaining 38>.
func ObjectPath(repoPath, hash string) string {
	return filepath.Join(repoPath, constants.Gogit, constants.Objects,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
}

// WriteObjectFile places data verbatim at the fan-out location of hash.
// Used to plant corrupt or misplaced objects that the store itself would never write.
func WriteObjectFile(t *testing.T, repoPath, hash string, data []byte) string {
	t.Helper()

	objectPath := ObjectPath(repoPath, hash)
	require.NoError(t, os.MkdirAll(filepath.Dir(objectPath), constants.DirPerms))
	require.NoError(t, os.WriteFile(objectPath, data, constants.FilePerms))

	return objectPath
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	assert.FileExists(t, path)
}

// AssertFileNotExists checks that nothing, file or directory, exists at the given path.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist, "expected nothing at %s", path)
}

// AssertDirExists checks that a directory exists at the given path.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	assert.DirExists(t, path)
}

// AssertRepositoryStructure validates the complete .gogit layout and the HEAD reference.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gogitDir := filepath.Join(repoPath, constants.Gogit)
	AssertDirExists(t, gogitDir)

	for _, dir := range []string{
		constants.Objects,
		constants.Refs,
		filepath.Join(constants.Refs, constants.Heads),
		filepath.Join(constants.Refs, constants.Tags),
	} {
		AssertDirExists(t, filepath.Join(gogitDir, dir))
	}

	content, err := os.ReadFile(filepath.Join(gogitDir, constants.Head))
	require.NoError(t, err, "read %s", constants.Head)
	assert.Equal(t, headContent(), string(content), "%s content", constants.Head)
}

func headContent() string {
	return constants.DefaultRefPrefix + constants.DefaultBranch + "\n"
}
