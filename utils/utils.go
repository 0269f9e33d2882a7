package utils

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// Digest returns the SHA-1 of data as 40 lower-case hex characters.
func Digest(data []byte) string {
	sum := DigestBytes(data)
	return hex.EncodeToString(sum[:])
}

// DigestBytes returns the raw 20-byte SHA-1 of data.
func DigestBytes(data []byte) [sha1.Size]byte {
	return sha1.Sum(data)
}

// IsHexHash reports whether s is a full-length lower or upper case hex SHA-1.
func IsHexHash(s string) bool {
	if len(s) != 2*sha1.Size {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// NormalizeLineEndings replaces every CRLF pair with a single LF.
// Lone CR bytes are left untouched.
func NormalizeLineEndings(content []byte) []byte {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}

// BuildDirPath constructs os-agnostic display direcotry path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
