package cmd

import (
	"fmt"
	"os"

	"github.com/KostasZigo/gitodb/internal/compression"
	"github.com/spf13/cobra"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <file>",
	Short: "Print the inflated content of a stored object file",
	Long: `Inflate a zlib-compressed object file and print its canonical form
("<type> <size>\0<payload>") without decoding it. Useful to inspect damaged objects.`,
	SilenceUsage: true,
	Args:         exactArgs(1, "file"),
	RunE:         runDecompress,
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(cmd *cobra.Command, args []string) error {
	compressedData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	data, err := compression.Decompress(compressedData)
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", args[0], err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
