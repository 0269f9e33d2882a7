package objects

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/KostasZigo/gitodb/internal/constants"
	"github.com/KostasZigo/gitodb/utils"
)

// Commit represents a snapshot of the repository.
// The payload is the single source of truth; the fields are parsed from it once.
type Commit struct {
	content []byte
	fields  commitFields
}

type commitFields struct {
	treeHash     string
	parents      []string
	author       string
	committer    string
	signature    string
	hasSignature bool
	message      string
	headers      map[string]string
}

// NewCommit builds a commit payload and parses it back into a Commit.
func NewCommit(treeHash string, parents []string, message string, author, committer Signature) (*Commit, error) {
	if !utils.IsHexHash(treeHash) {
		return nil, fmt.Errorf("%w: tree %q", ErrInvalidHash, treeHash)
	}
	for _, parent := range parents {
		if !utils.IsHexHash(parent) {
			return nil, fmt.Errorf("%w: parent %q", ErrInvalidHash, parent)
		}
	}

	return ParseCommit(buildCommitContent(treeHash, parents, message, author, committer))
}

// NewInitialCommit builds a parentless commit whose committer is the author.
func NewInitialCommit(treeHash, message string, author Signature) (*Commit, error) {
	return NewCommit(treeHash, nil, message, author, author)
}

func buildCommitContent(treeHash string, parents []string, message string, author, committer Signature) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %s\n", constants.CommitTreeKey, treeHash)
	for _, parent := range parents {
		fmt.Fprintf(&buf, "%s %s\n", constants.CommitParentKey, parent)
	}
	fmt.Fprintf(&buf, "%s %s\n", constants.CommitAuthorKey, author)
	fmt.Fprintf(&buf, "%s %s\n", constants.CommitCommitterKey, committer)

	// Blank line before message
	buf.WriteByte('\n')

	buf.WriteString(message)

	// Ensure message ends in newLine
	if len(message) > 0 && message[len(message)-1] != '\n' {
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// ParseCommit splits payload into header and message at the first blank line,
// captures an optional gpgsig block and reads the remaining header lines.
func ParseCommit(payload []byte) (*Commit, error) {
	header, body, found := strings.Cut(string(payload), "\n\n")
	if !found {
		return nil, fmt.Errorf("%w: no blank line between header and message", ErrMalformedCommit)
	}

	header, signature, hasSignature := strings.Cut(header, constants.CommitSignatureMarker)
	headers := foldHeaderLines(strings.Split(header, "\n"))

	return &Commit{
		content: slices.Clone(payload),
		fields: commitFields{
			treeHash:     headers[constants.CommitTreeKey],
			parents:      splitParents(headers[constants.CommitParentKey]),
			author:       headers[constants.CommitAuthorKey],
			committer:    headers[constants.CommitCommitterKey],
			signature:    signature,
			hasSignature: hasSignature,
			message:      strings.TrimRightFunc(body, unicode.IsSpace),
			headers:      headers,
		},
	}, nil
}

// foldHeaderLines turns "key value" lines into a map. Lines without a space are skipped.
// Repeated parent keys are joined with spaces in encounter order; any other repeated key keeps the last value.
func foldHeaderLines(lines []string) map[string]string {
	headers := make(map[string]string, len(lines))

	for _, line := range lines {
		key, value, found := strings.Cut(strings.TrimSuffix(line, "\r"), " ")
		if !found {
			continue
		}
		if previous, seen := headers[key]; seen && key == constants.CommitParentKey {
			value = previous + " " + value
		}
		headers[key] = value
	}

	return headers
}

func splitParents(value string) []string {
	var parents []string
	for _, parent := range strings.Split(value, " ") {
		if parent != "" {
			parents = append(parents, parent)
		}
	}
	return parents
}

func (c *Commit) Type() ObjectType {
	return CommitObjectType
}

func (c *Commit) Payload() []byte {
	return slices.Clone(c.content)
}

func (c *Commit) payload() []byte {
	return c.content
}

func (c *Commit) Hash() string {
	return Address(c)
}

func (c *Commit) Size() int {
	return len(c.content)
}

// TreeHash returns the hex address of the root tree, or "" if the header has none.
func (c *Commit) TreeHash() string {
	return c.fields.treeHash
}

// Parents returns parent addresses in header order.
func (c *Commit) Parents() []string {
	return slices.Clone(c.fields.parents)
}

// Author returns the raw author header value.
func (c *Commit) Author() string {
	return c.fields.author
}

// Committer returns the raw committer header value.
func (c *Commit) Committer() string {
	return c.fields.committer
}

// Signature returns the verbatim gpgsig block, if any.
func (c *Commit) Signature() (string, bool) {
	return c.fields.signature, c.fields.hasSignature
}

// Message returns the commit message with trailing whitespace removed.
func (c *Commit) Message() string {
	return c.fields.message
}

// Subject returns the first line of the message.
func (c *Commit) Subject() string {
	subject, _, _ := strings.Cut(c.fields.message, "\n")
	return subject
}

// Header returns the value of any header key outside the signature block.
func (c *Commit) Header(key string) (string, bool) {
	value, ok := c.fields.headers[key]
	return value, ok
}

func (c *Commit) IsInitialCommit() bool {
	return len(c.fields.parents) == 0
}

func (c *Commit) IsMerge() bool {
	return len(c.fields.parents) > 1
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{hash: %s, tree: %s, parents: %v, author: %s, message: %q}",
		c.Hash(), c.fields.treeHash, c.fields.parents, c.fields.author, c.fields.message)
}

func (c *Commit) sealed() {}
