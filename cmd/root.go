package cmd

import (
	"log/slog"
	"os"

	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/KostasZigo/gitodb/internal/repository"
	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the gogit CLI.
// All subcommands (init, hash-object, cat-file, etc.) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gogit",
	Short: "A simplified Git implementation in GO",
	Long: `GoGit is a simplified Git Implementation developed in GO that stores blobs, trees,
commits and tags in a content-addressable object database and reads them back.`,
	PersistentPreRun: configureLogging,
}

var verboseFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging on stderr")
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogging installs the default slog handler on the command's stderr.
func configureLogging(cmd *cobra.Command, _ []string) {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// openStore locates the repository enclosing the current directory and returns its object store.
func openStore() (*objects.ObjectStore, error) {
	repo, err := repository.Find(".")
	if err != nil {
		return nil, err
	}

	slog.Debug("Using repository", "path", repo.GitDir())
	return objects.NewObjectStore(repo), nil
}
