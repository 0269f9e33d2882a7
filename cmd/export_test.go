package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/KostasZigo/gitodb/internal/repository"
	"github.com/KostasZigo/gitodb/testutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flag values are package globals, so they are reset to their defaults first.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})

	testRootCmd := &cobra.Command{Use: "gogit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// runTestCommand executes cmd with args under a fresh root and returns its stdout.
func runTestCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	testRootCmd := createTestRootCmd(cmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs(append([]string{cmd.Name()}, args...))
	err := testRootCmd.Execute()
	return stdout.String(), err
}

// assertRepositoryStructure verifies .gogit directory structure and HEAD file.
func assertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()
	testutils.AssertRepositoryStructure(t, repoPath)
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

// openTestStore opens the object store of an existing test repository.
func openTestStore(t *testing.T, repoPath string) *objects.ObjectStore {
	t.Helper()

	repo, err := repository.Open(repoPath)
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	return objects.NewObjectStore(repo)
}

// storeTestObject writes object into the repository at repoPath and returns its hash.
func storeTestObject(t *testing.T, repoPath string, object objects.Object) string {
	t.Helper()

	hash, err := openTestStore(t, repoPath).Write(object)
	if err != nil {
		t.Fatalf("Failed to store %s: %v", object.Type(), err)
	}
	return hash
}

// storeTestCommit creates and stores a commit with a fixed author and the given parents.
func storeTestCommit(t *testing.T, repoPath, treeHash, message string, parents ...string) string {
	t.Helper()

	author, err := objects.ParseSignature("Test User <test@example.com> 1700000000 +0000")
	if err != nil {
		t.Fatalf("Failed to parse signature: %v", err)
	}

	commit, err := objects.NewCommit(treeHash, parents, message, author, author)
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}
	return storeTestObject(t, repoPath, commit)
}
