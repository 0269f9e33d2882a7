package objects

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/KostasZigo/gitodb/internal/constants"
	"github.com/KostasZigo/gitodb/utils"
)

// Encode returns the canonical form of o: "<type> <size>\0<payload>".
func Encode(o Object) []byte {
	return EncodeRaw(o.Type(), o.payload())
}

// EncodeRaw returns the canonical form for an arbitrary type and payload.
func EncodeRaw(objectType ObjectType, payload []byte) []byte {
	header := string(objectType) + " " + strconv.Itoa(len(payload))

	data := make([]byte, 0, len(header)+1+len(payload))
	data = append(data, header...)
	data = append(data, constants.NullByte)
	return append(data, payload...)
}

// Decode splits canonical bytes into their type name and payload.
// The declared length must match the payload exactly.
func Decode(data []byte) (string, []byte, error) {
	spaceIndex := bytes.IndexByte(data, constants.SpaceByte)
	if spaceIndex == -1 {
		return "", nil, fmt.Errorf("%w: no space after object type", ErrMalformedObject)
	}

	nullIndex := bytes.IndexByte(data[spaceIndex+1:], constants.NullByte)
	if nullIndex == -1 {
		return "", nil, fmt.Errorf("%w: no null byte after object size", ErrMalformedObject)
	}
	nullIndex += spaceIndex + 1

	sizeDigits := string(data[spaceIndex+1 : nullIndex])
	// Only the shortest decimal form re-encodes to the same bytes
	if len(sizeDigits) > 1 && sizeDigits[0] == '0' {
		return "", nil, fmt.Errorf("%w: zero-padded object size %q", ErrMalformedObject, sizeDigits)
	}
	size, err := strconv.ParseUint(sizeDigits, 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid object size %q", ErrMalformedObject, sizeDigits)
	}

	payloadLength := len(data) - (nullIndex + 1)
	if size != uint64(payloadLength) {
		return "", nil, fmt.Errorf("%w: declared size %d, actual size %d", ErrMalformedObject, size, payloadLength)
	}

	return string(data[:spaceIndex]), data[nullIndex+1:], nil
}

// DecodeObject decodes canonical bytes and parses the payload into its typed object.
func DecodeObject(data []byte) (Object, error) {
	typeName, payload, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewObject(ObjectType(typeName), payload)
}

// Address returns the SHA-1 hex digest of o's canonical form.
func Address(o Object) string {
	return utils.Digest(Encode(o))
}

// ComputeHash calculates the address of content as if stored with the given type.
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("%w: %s - hash not computed", ErrUnknownType, objectType)
	}
	return utils.Digest(EncodeRaw(objectType, content)), nil
}
