package cmd

import (
	"fmt"

	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file [-t | -s | -p] <object>",
	Short: "Print the content, type or size of a stored object",
	Long: `Read an object from the object database by its hash.
Without flags the raw payload is printed exactly as stored.

Examples:
  gogit cat-file -t 3b18e512dba79e4c8300dd08aeb37f8e728b8dad
  gogit cat-file -p 4b825dc642cb6eb9a060e54bf8d69288fbee4904`,
	SilenceUsage: true,
	Args:         exactArgs(1, "object"),
	RunE:         runCatFile,
}

var (
	catFileTypeFlag   bool
	catFileSizeFlag   bool
	catFilePrettyFlag bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&catFileTypeFlag, "type", "t", false, "Show the object type")
	catFileCmd.Flags().BoolVarP(&catFileSizeFlag, "size", "s", false, "Show the object payload size")
	catFileCmd.Flags().BoolVarP(&catFilePrettyFlag, "pretty", "p", false, "Pretty-print the object content")
	catFileCmd.MarkFlagsMutuallyExclusive("type", "size", "pretty")
}

// runCatFile reads the object and prints the requested view of it.
func runCatFile(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	object, err := store.Read(args[0])
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case catFileTypeFlag:
		fmt.Fprintln(out, object.Type())
	case catFileSizeFlag:
		fmt.Fprintln(out, len(object.Payload()))
	case catFilePrettyFlag:
		if tree, ok := object.(*objects.Tree); ok {
			printTreeEntries(out, tree)
			return nil
		}
		_, err = out.Write(object.Payload())
	default:
		_, err = out.Write(object.Payload())
	}

	return err
}
