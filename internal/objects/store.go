package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/KostasZigo/gitodb/internal/compression"
	"github.com/KostasZigo/gitodb/internal/constants"
	"github.com/KostasZigo/gitodb/internal/repository"
	"github.com/KostasZigo/gitodb/utils"
)

// ObjectStore manages storage of Git objects under <store-root>/objects.
type ObjectStore struct {
	repo *repository.Repository
}

func NewObjectStore(repo *repository.Repository) *ObjectStore {
	return &ObjectStore{
		repo: repo,
	}
}

// objectPath maps a hex hash to objects/<first 2 chars>/<rest>.
func (store *ObjectStore) objectPath(hash string) (string, error) {
	if !utils.IsHexHash(hash) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	hash = strings.ToLower(hash)
	return store.repo.Path(constants.Objects, hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:]), nil
}

// Write compresses and saves o at its fan-out path and returns its address.
// An object that is already stored is never overwritten: Write returns the
// address together with ErrObjectAlreadyExists.
func (store *ObjectStore) Write(o Object) (string, error) {
	data := Encode(o)
	hash := utils.Digest(data)

	objectFile, err := store.objectPath(hash)
	if err != nil {
		return "", err
	}

	// Check if object already exists (content-addressable)
	_, err = os.Lstat(objectFile)
	if err == nil {
		slog.Debug("Object with this hash already exists",
			"hash", hash)
		return hash, fmt.Errorf("%w: %s", ErrObjectAlreadyExists, hash)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to check object path %s: %w", objectFile, err)
	}

	if _, err := store.repo.CreateDir(constants.Objects, hash[:constants.HashDirPrefixLength]); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	compressedData, err := compression.Compress(data)
	if err != nil {
		return "", fmt.Errorf("failed to compress object: %w", err)
	}

	if err := writeObjectFile(objectFile, compressedData); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return hash, fmt.Errorf("%w: %s", ErrObjectAlreadyExists, hash)
		}
		return "", fmt.Errorf("failed to write object file: %w", err)
	}

	slog.Debug("Stored object",
		"hash", hash,
		"type", o.Type(),
		"size", len(o.payload()))

	return hash, nil
}

// writeObjectFile creates path exclusively, so a concurrent writer of the same object loses with fs.ErrExist.
func writeObjectFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.FilePerms)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}

	return nil
}

// Read loads, decompresses, decodes and parses the object stored under hash.
func (store *ObjectStore) Read(hash string) (Object, error) {
	objectFile, err := store.objectPath(hash)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(objectFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrObjectNotFound, hash, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat object file %s: %w", hash, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, objectFile)
	}

	compressedData, err := os.ReadFile(objectFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read object file %s: %w", hash, err)
	}

	data, err := compression.Decompress(compressedData)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecompressionFailed, hash, err)
	}

	object, err := DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", hash, err)
	}

	if actual := utils.Digest(data); actual != strings.ToLower(hash) {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, hash, actual)
	}

	slog.Debug("Read object",
		"hash", hash,
		"type", object.Type())

	return object, nil
}

// ReadBlob reads hash and requires it to be a blob.
func (store *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	return readAs[*Blob](store, hash, BlobObjectType)
}

// ReadTree reads hash and requires it to be a tree.
func (store *ObjectStore) ReadTree(hash string) (*Tree, error) {
	return readAs[*Tree](store, hash, TreeObjectType)
}

// ReadCommit reads hash and requires it to be a commit.
func (store *ObjectStore) ReadCommit(hash string) (*Commit, error) {
	return readAs[*Commit](store, hash, CommitObjectType)
}

func readAs[T Object](store *ObjectStore, hash string, want ObjectType) (T, error) {
	var zero T

	object, err := store.Read(hash)
	if err != nil {
		return zero, err
	}

	typed, ok := object.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is a %s, not a %s", ErrUnexpectedType, hash, object.Type(), want)
	}
	return typed, nil
}

// Exists checks if an object exists in storage
func (store *ObjectStore) Exists(hash string) bool {
	objectFile, err := store.objectPath(hash)
	if err != nil {
		return false
	}
	info, err := os.Stat(objectFile)
	return err == nil && info.Mode().IsRegular()
}
