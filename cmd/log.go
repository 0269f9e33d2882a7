package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log [-n <count>] [--oneline] <commit>",
	Short: "Show the commit history reachable from a commit",
	Long: `Walk the commit graph from the given commit through its parents.
Every commit is shown once, even when several merge parents share an ancestor.

Examples:
  gogit log --oneline -n 10 <commit>`,
	SilenceUsage: true,
	Args:         exactArgs(1, "commit"),
	RunE:         runLog,
}

// dateLayout matches the date line printed by git log.
const dateLayout = "Mon Jan 2 15:04:05 2006 -0700"

var (
	maxCountFlag int
	onelineFlag  bool
)

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntVarP(&maxCountFlag, "max-count", "n", 0, "Limit the number of commits shown (0 shows all)")
	logCmd.Flags().BoolVar(&onelineFlag, "oneline", false, "Show each commit as \"<hash> <subject>\"")
}

// runLog walks the history from args[0] and prints each commit.
func runLog(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shown := 0

	err = store.WalkHistory(args[0], func(hash string, commit *objects.Commit) error {
		if onelineFlag {
			fmt.Fprintf(out, "%s %s\n", hash, commit.Subject())
		} else {
			printCommit(out, hash, commit)
		}

		shown++
		if maxCountFlag > 0 && shown >= maxCountFlag {
			return objects.ErrStopWalk
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	return nil
}

// printCommit writes the multi-line log entry of a commit.
func printCommit(out io.Writer, hash string, commit *objects.Commit) {
	fmt.Fprintf(out, "commit %s\n", hash)

	if commit.IsMerge() {
		fmt.Fprintf(out, "Merge: %s\n", strings.Join(commit.Parents(), " "))
	}

	// Unparseable identities are shown verbatim
	if author, err := objects.ParseSignature(commit.Author()); err == nil {
		fmt.Fprintf(out, "Author: %s\n", author.Identity())
		fmt.Fprintf(out, "Date:   %s\n", author.When.Format(dateLayout))
	} else {
		fmt.Fprintf(out, "Author: %s\n", commit.Author())
	}

	fmt.Fprintln(out)
	for _, line := range strings.Split(commit.Message(), "\n") {
		fmt.Fprintf(out, "    %s\n", line)
	}
	fmt.Fprintln(out)
}
