package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/KostasZigo/gitodb/internal/compression"
	"github.com/KostasZigo/gitodb/internal/constants"
	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/KostasZigo/gitodb/testutils"
	"github.com/agiledragon/gomonkey/v2"
)

// TestDecompressCommand_StoredObject verifies a stored object inflates to its canonical form.
func TestDecompressCommand_StoredObject(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithInit(t)
	changeToRepoDir(t, repoPath)

	hash := storeTestObject(t, repoPath, objects.NewBlob([]byte("hello world\n")))

	output, err := runTestCommand(t, decompressCmd, testutils.ObjectPath(repoPath, hash))
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.DecompressCmdName, err)
	}

	expected := "blob 12\x00hello world\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

// TestDecompressCommand_WorksOutsideRepository verifies no repository is needed.
func TestDecompressCommand_WorksOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	compressed, err := compression.Compress([]byte("arbitrary bytes"))
	if err != nil {
		t.Fatalf("Failed to compress: %v", err)
	}
	filePath := testutils.CreateTestFile(t, dir, "data.z", compressed)

	output, err := runTestCommand(t, decompressCmd, filePath)
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.DecompressCmdName, err)
	}
	if output != "arbitrary bytes" {
		t.Errorf("Expected %q, got %q", "arbitrary bytes", output)
	}
}

func TestDecompressCommand_NotCompressed(t *testing.T) {
	dir := t.TempDir()
	filePath := testutils.CreateTestFile(t, dir, "plain.txt", []byte("plain text"))

	_, err := runTestCommand(t, decompressCmd, filePath)
	if err == nil {
		t.Fatal("Expected error for data that is not zlib compressed")
	}
	if !strings.Contains(err.Error(), "failed to decompress") {
		t.Errorf("Expected decompress error, got %v", err)
	}
}

func TestDecompressCommand_DecompressFailure(t *testing.T) {
	dir := t.TempDir()
	filePath := testutils.CreateTestFile(t, dir, "data.z", []byte("ignored"))

	mockError := errors.New("mocked decompression failure")
	patches := gomonkey.ApplyFunc(compression.Decompress, func(_ []byte) ([]byte, error) {
		return nil, mockError
	})
	defer patches.Reset()

	_, err := runTestCommand(t, decompressCmd, filePath)
	if !errors.Is(err, mockError) {
		t.Fatalf("Expected error to wrap the mock error, got: %v", err)
	}
}

func TestDecompressCommand_FileNotFound(t *testing.T) {
	_, err := runTestCommand(t, decompressCmd, "missing.z")
	if err == nil || !strings.Contains(err.Error(), "failed to read file missing.z") {
		t.Fatalf("Expected file read error, got %v", err)
	}
}
