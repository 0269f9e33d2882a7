package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gitodb/internal/constants"
)

// ErrNotARepository is returned when no .gogit directory can be located.
var ErrNotARepository = errors.New("not a gogit repository")

// Repository resolves paths inside a worktree's .gogit store root.
type Repository struct {
	worktree string
	gitDir   string
}

// Open returns the repository rooted at worktree. The .gogit directory must exist.
func Open(worktree string) (*Repository, error) {
	gitDir := filepath.Join(worktree, constants.Gogit)

	info, err := os.Stat(gitDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s directory not found in %s", ErrNotARepository, constants.Gogit, worktree)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check repository path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotARepository, gitDir)
	}

	return &Repository{worktree: worktree, gitDir: gitDir}, nil
}

// Find locates the nearest ancestor of start (start included) that contains a .gogit directory.
func Find(start string) (*Repository, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		gogitPath := filepath.Join(dir, constants.Gogit)
		if info, err := os.Stat(gogitPath); err == nil && info.IsDir() {
			return &Repository{worktree: dir, gitDir: gogitPath}, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .gogit
			return nil, fmt.Errorf("%w: %s directory not found", ErrNotARepository, constants.Gogit)
		}
		dir = parent
	}
}

// Worktree returns the directory containing the .gogit store root.
func (r *Repository) Worktree() string {
	return r.worktree
}

// GitDir returns the .gogit store root.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Path joins segments under the store root without touching the filesystem.
func (r *Repository) Path(segments ...string) string {
	return filepath.Join(append([]string{r.gitDir}, segments...)...)
}

// CreateDir returns Path(segments...) after creating it and any missing parents.
func (r *Repository) CreateDir(segments ...string) (string, error) {
	dir := r.Path(segments...)
	if err := os.MkdirAll(dir, constants.DirPerms); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}

// InitRepository creates the .gogit skeleton (objects, refs/heads, refs/tags, HEAD) at path.
func InitRepository(path string) error {
	// Resolves and adds OS specific separator
	gogitDir := filepath.Join(path, constants.Gogit)

	if err := checkRepositoryDoesNotExist(gogitDir); err != nil {
		return err
	}

	// Any directory or file created before a failure is removed again,
	// so a failed init never leaves a half-built store behind.
	var initSuccess bool
	defer func() {
		if !initSuccess {
			cleanupRepository(gogitDir)
		}
	}()

	directories := []string{
		gogitDir,
		filepath.Join(gogitDir, constants.Objects),
		filepath.Join(gogitDir, constants.Refs),
		filepath.Join(gogitDir, constants.Refs, constants.Heads),
		filepath.Join(gogitDir, constants.Refs, constants.Tags),
	}

	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	// Create HEAD file pointing to main branch
	headFile := filepath.Join(gogitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create HEAD file: %w", err)
	}

	initSuccess = true
	return nil
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	// If path doesn't exist there is no error
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return fmt.Errorf("repository already exists at %s", path)
}

// Removes the entire .gogit directory if it exists
func cleanupRepository(gogitDir string) {
	if _, err := os.Stat(gogitDir); err == nil {
		slog.Debug("Cleaning up partial repository initialization",
			"path", gogitDir)

		if err := os.RemoveAll(gogitDir); err != nil {
			slog.Warn("Failed to cleanup repository directory",
				"path", gogitDir,
				"error", err)
		} else {
			slog.Debug("Successfully cleaned up repository directory",
				"path", gogitDir)
		}
	}
}
