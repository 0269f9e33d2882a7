package objects

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// WalkHistory reads the commit at start and every ancestor reachable through
// parent links, breadth first. Each address is visited at most once, so shared
// ancestors of merge commits are emitted a single time and cyclic parent data terminates.
// Returning ErrStopWalk from visit ends the walk without error.
func (store *ObjectStore) WalkHistory(start string, visit func(hash string, commit *Commit) error) error {
	queue := []string{start}
	visited := make(map[string]struct{})

	for len(queue) > 0 {
		hash := strings.ToLower(queue[0])
		queue = queue[1:]

		if _, seen := visited[hash]; seen {
			continue
		}
		visited[hash] = struct{}{}

		commit, err := store.ReadCommit(hash)
		if err != nil {
			return fmt.Errorf("failed to walk history at %s: %w", hash, err)
		}

		slog.Debug("Visiting commit",
			"hash", hash,
			"parents", len(commit.fields.parents))

		if err := visit(hash, commit); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}

		queue = append(queue, commit.fields.parents...)
	}

	return nil
}
