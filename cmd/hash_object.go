package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/KostasZigo/gitodb/internal/objects"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [-t <type>] [-w] <filepath>",
	Short: "Compute object hash and optionally create and store an object from a file",
	Long: `Compute the object hash (SHA-1 hash) for a file's content.
Optionally write the resulting object into the objects folder.
Blob content has CRLF line endings normalized to LF; tree and commit
content must already be in their stored format.

Examples:
  # Compute hash without storing
  gogit hash-object myfile.txt

  # Compute hash and store in .gogit/objects
  gogit hash-object -w myfile.txt

  # Store a hand-written commit
  gogit hash-object -t commit -w commit.txt`,
	SilenceUsage: true,
	Args:         exactArgs(1, "filepath"),
	RunE:         runHashObject,
}

var (
	writeFlag      bool
	objectTypeFlag string
)

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	// Add flag using Cobra's flag system
	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the object into the objects folder")
	hashObjectCmd.Flags().StringVarP(&objectTypeFlag, "type", "t", string(objects.BlobObjectType), "Object type (blob, tree, commit, tag)")
}

// runHashObject computes hash and optionally stores the object.
func runHashObject(cmd *cobra.Command, args []string) error {
	object, err := objectFromFile(args[0], objects.ObjectType(objectTypeFlag))
	if err != nil {
		return err
	}

	hash := object.Hash()

	// Print hash to stdout
	fmt.Fprintln(cmd.OutOrStdout(), hash)

	if writeFlag {
		store, err := openStore()
		if err != nil {
			return err
		}

		if _, err := store.Write(object); err != nil {
			if errors.Is(err, objects.ErrObjectAlreadyExists) {
				cmd.PrintErrf("object %s already exists\n", hash)
				return nil
			}
			return fmt.Errorf("failed to store object: %w", err)
		}
	}

	return nil
}

// objectFromFile builds an object of the given type from a file.
func objectFromFile(path string, objectType objects.ObjectType) (objects.Object, error) {
	if !objectType.IsValid() {
		return nil, fmt.Errorf("%w: %q", objects.ErrUnknownType, string(objectType))
	}

	if objectType == objects.BlobObjectType {
		blob, err := objects.NewBlobFromFile(path)
		if err != nil {
			return nil, err
		}
		return blob, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return objects.NewObject(objectType, content)
}
