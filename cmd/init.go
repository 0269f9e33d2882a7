package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KostasZigo/gitodb/internal/constants"
	"github.com/KostasZigo/gitodb/internal/repository"
	"github.com/KostasZigo/gitodb/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create an empty object store",
	Long: `Create a .gogit store root in the given directory (default: current directory).
The store holds an empty objects/ database, where every object is later written zlib-compressed
under objects/<first 2 hash chars>/<remaining 38>, plus refs/ and a HEAD pointing at the default branch.
An existing store is never overwritten.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit creates the store root at the specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	repo, err := repository.Open(dirPath)
	if err != nil {
		return fmt.Errorf("failed to open new repository: %w", err)
	}
	slog.Debug("Created object store", "objects", repo.Path(constants.Objects))

	cmd.Printf("Initialized empty GoGit object store in %s\n", utils.BuildDirPath(dirPath, constants.Gogit))
	return nil
}
