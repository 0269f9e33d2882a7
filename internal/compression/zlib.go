// Package compression wraps the zlib stream format used for stored object files.
package compression

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Compress deflates data into a single zlib stream.
func Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buffer, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	// Close flushes any buffered data and writes the checksum trailer
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush zlib writer: %w", err)
	}

	return buffer.Bytes(), nil
}

// Decompress inflates a zlib stream produced by Compress (or any zlib encoder).
func Decompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %w", err)
	}

	return buffer.Bytes(), nil
}
